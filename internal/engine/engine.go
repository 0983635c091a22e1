// Package engine is the single entry point for structural calculations. It
// dispatches a (structure type, kind) pair to its calculator, validates the
// request, converts units and evaluates compliance.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"Keystone/internal/calc/report"
	"Keystone/internal/compliance"
	"Keystone/internal/models"
	"Keystone/internal/tables"
	"Keystone/internal/validate"
)

// Domain is the only calculation domain the engine serves.
const Domain = "civil"

var (
	ErrUnsupportedCalculation = errors.New("unsupported calculation")
	ErrUnknownStandard        = errors.New("unknown governing standard")
	ErrNonFiniteResult        = errors.New("calculation produced a non-finite value")
)

type Engine struct {
	limits tables.Limits
	log    *zap.Logger
	inst   instruments
}

// New returns an engine checking against limits. A nil logger discards output.
func New(limits tables.Limits, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	inst, err := newInstruments()
	if err != nil {
		return nil, err
	}
	return &Engine{limits: tables.DefaultLimits().Merge(limits), log: log, inst: inst}, nil
}

// Limits returns the engine's base limit set.
func (e *Engine) Limits() tables.Limits { return e.limits }

// Calculate runs kind against req. Invalid input yields a report with
// Valid=false and no error; misuse (unknown kind, grade or standard) yields an
// error and no report.
func (e *Engine) Calculate(ctx context.Context, domain string, kind models.Kind, req models.Request) (*report.Report, error) {
	ctx, span := tracer.Start(ctx, "engine.calculate",
		trace.WithAttributes(
			attribute.String("calculation.kind", string(kind)),
			attribute.String("calculation.structure", string(req.StructureType)),
			attribute.String("calculation.material", string(req.Material)),
		),
	)
	defer span.End()

	start := time.Now()
	attrs := metric.WithAttributes(attribute.String("kind", string(kind)))

	out, err := e.calculate(domain, kind, req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.inst.failures.Add(ctx, 1, attrs)
		e.log.Error("calculation failed",
			zap.String("kind", string(kind)),
			zap.String("structure_type", string(req.StructureType)),
			zap.Error(err),
		)
		return nil, err
	}

	e.inst.calcs.Add(ctx, 1, attrs)
	e.inst.duration.Record(ctx, elapsed, attrs)
	if !out.Valid {
		e.inst.invalid.Add(ctx, 1, attrs)
	}
	for _, w := range out.Warnings {
		e.log.Warn("calculation fallback", zap.String("kind", string(kind)), zap.String("warning", w))
	}
	span.SetAttributes(attribute.Bool("calculation.valid", out.Valid))
	span.SetStatus(codes.Ok, "")
	e.log.Debug("calculation completed",
		zap.String("kind", string(kind)),
		zap.String("structure_type", string(req.StructureType)),
		zap.Bool("valid", out.Valid),
		zap.Float64("duration_ms", elapsed),
	)
	return out, nil
}

func (e *Engine) calculate(domain string, kind models.Kind, req models.Request) (*report.Report, error) {
	if domain != Domain {
		return nil, fmt.Errorf("%w: domain %q", ErrUnsupportedCalculation, domain)
	}
	ent, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %q", ErrUnsupportedCalculation, kind)
	}
	if !ent.accepts(req.StructureType) {
		return nil, fmt.Errorf("%w: %s does not apply to structure %q", ErrUnsupportedCalculation, kind, req.StructureType)
	}

	limits, err := e.resolve(req.Options)
	if err != nil {
		return nil, err
	}

	if v := validate.Request(kind, req); !v.IsValid {
		out := report.Invalid(string(kind), v.Errors)
		out.Inputs = req
		return out, nil
	}

	en := &env{req: req, limits: limits}
	out, err := ent.run(en)
	if err != nil {
		return nil, err
	}
	out.Kind = string(kind)
	for _, w := range en.warnings {
		out.Warn("%s", w)
	}
	if bad := out.NonFinite(); len(bad) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonFiniteResult, bad)
	}
	if req.Options.CheckCompliance {
		c := compliance.Evaluate(out, limits.UtilizationAdvisory)
		out.Compliance = &c
	}
	return out, nil
}

// resolve applies the request's standard and deflection override to the
// engine limits.
func (e *Engine) resolve(o models.Options) (tables.Limits, error) {
	l := e.limits
	if o.Standard != "" {
		std, ok := tables.ForStandard(o.Standard)
		if !ok {
			return tables.Limits{}, fmt.Errorf("%w: %q", ErrUnknownStandard, o.Standard)
		}
		l.Standard = std.Standard
		l.DeflectionDivisor = std.DeflectionDivisor
	}
	if o.DeflectionLimitDivisor > 0 {
		l.DeflectionDivisor = o.DeflectionLimitDivisor
	}
	return l, nil
}
