// Package batch runs many calculation requests through the engine on a
// fixed pool of workers.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Keystone/internal/calc/report"
	"Keystone/internal/models"
)

// Calculator is the engine surface the runner needs.
type Calculator interface {
	Calculate(ctx context.Context, domain string, kind models.Kind, req models.Request) (*report.Report, error)
}

// Item is one request in a batch. ID is free text used in output, e.g. a
// spreadsheet row reference.
type Item struct {
	ID      string         `json:"id" yaml:"id"`
	Kind    models.Kind    `json:"kind" yaml:"kind"`
	Request models.Request `json:"request" yaml:"request"`
}

// Outcome statuses.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"
)

type Outcome struct {
	ID     string         `json:"id"`
	Kind   models.Kind    `json:"kind"`
	Status string         `json:"status"`
	Report *report.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Result struct {
	RunID     string        `json:"run_id"`
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Invalid   int           `json:"invalid"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration_ns"`
	Outcomes  []Outcome     `json:"outcomes"`
}

// DefaultWorkers is used when New is given a non-positive worker count.
const DefaultWorkers = 4

type Runner struct {
	calc    Calculator
	domain  string
	workers int
	log     *zap.Logger

	registry *prometheus.Registry
	items    *prometheus.CounterVec
	duration prometheus.Histogram
}

func New(calc Calculator, domain string, workers int, log *zap.Logger) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		calc:     calc,
		domain:   domain,
		workers:  workers,
		log:      log,
		registry: prometheus.NewRegistry(),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keystone",
			Subsystem: "batch",
			Name:      "items_total",
			Help:      "Batch items processed, by calculation kind and status.",
		}, []string{"kind", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "keystone",
			Subsystem: "batch",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a batch run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	r.registry.MustRegister(r.items, r.duration)
	return r
}

// Registry exposes the runner's counters, accumulated over every Run.
func (r *Runner) Registry() *prometheus.Registry { return r.registry }

// WriteMetrics writes the registry in the node-exporter textfile format.
func (r *Runner) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

// Run calculates every item and returns the outcomes in input order. A
// failed item does not stop the run; items not started before ctx is done
// are marked failed with the context error.
func (r *Runner) Run(ctx context.Context, items []Item) (Result, error) {
	if len(items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID))
	start := time.Now()

	out := Result{RunID: runID, Total: len(items), Outcomes: make([]Outcome, len(items))}
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := min(r.workers, len(items))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out.Outcomes[i] = r.one(ctx, items[i])
			}
		}()
	}

feed:
	for i := range items {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(items); j++ {
				out.Outcomes[j] = Outcome{ID: items[j].ID, Kind: items[j].Kind, Status: StatusFailed, Error: ctx.Err().Error()}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for _, o := range out.Outcomes {
		switch o.Status {
		case StatusOK:
			out.Succeeded++
		case StatusInvalid:
			out.Invalid++
		default:
			out.Failed++
		}
		r.items.WithLabelValues(string(o.Kind), o.Status).Inc()
	}
	out.Duration = time.Since(start)
	r.duration.Observe(out.Duration.Seconds())

	log.Info("batch finished",
		zap.Int("total", out.Total),
		zap.Int("succeeded", out.Succeeded),
		zap.Int("invalid", out.Invalid),
		zap.Int("failed", out.Failed),
		zap.Duration("duration", out.Duration),
	)
	return out, nil
}

func (r *Runner) one(ctx context.Context, it Item) Outcome {
	o := Outcome{ID: it.ID, Kind: it.Kind}
	rep, err := r.calc.Calculate(ctx, r.domain, it.Kind, it.Request)
	switch {
	case err != nil:
		o.Status = StatusFailed
		o.Error = err.Error()
		r.log.Warn("batch item failed", zap.String("id", it.ID), zap.String("kind", string(it.Kind)), zap.Error(err))
	case !rep.Valid:
		o.Status = StatusInvalid
		o.Report = rep
	default:
		o.Status = StatusOK
		o.Report = rep
	}
	return o
}
