package engine

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("keystone/engine")

type instruments struct {
	calcs    metric.Int64Counter
	failures metric.Int64Counter
	invalid  metric.Int64Counter
	duration metric.Float64Histogram
}

// newInstruments registers the engine's metric instruments on the global
// meter provider. Without an installed SDK they record nothing.
func newInstruments() (instruments, error) {
	meter := otel.Meter("keystone/engine")

	var (
		in  instruments
		err error
	)
	in.calcs, err = meter.Int64Counter("keystone.calculations.total",
		metric.WithDescription("Total number of calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return in, fmt.Errorf("creating calculations counter: %w", err)
	}

	in.failures, err = meter.Int64Counter("keystone.calculation.errors.total",
		metric.WithDescription("Calculations that returned an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return in, fmt.Errorf("creating error counter: %w", err)
	}

	in.invalid, err = meter.Int64Counter("keystone.calculation.invalid.total",
		metric.WithDescription("Calculations rejected by input validation"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return in, fmt.Errorf("creating invalid counter: %w", err)
	}

	in.duration, err = meter.Float64Histogram("keystone.calculation.duration",
		metric.WithDescription("Duration of calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return in, fmt.Errorf("creating duration histogram: %w", err)
	}
	return in, nil
}
