package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Observer receives raw trial timings and per-benchmark minima.
type Observer interface {
	ObserveTrial(benchmark string, elapsed time.Duration)
	ObserveMinimum(benchmark string, elapsed time.Duration)
}

// Runner executes benchmarks one at a time.
type Runner struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Observer Observer

	now func() time.Time
}

// NewRunner creates a Runner that traces through the global
// OpenTelemetry provider. observer may be nil.
func NewRunner(logger *slog.Logger, observer Observer) *Runner {
	return &Runner{
		Logger:   logger,
		Tracer:   otel.Tracer("github.com/weiihann/microperf/harness"),
		Observer: observer,
		now:      time.Now,
	}
}

// Run executes b's trials and returns the minimum elapsed time along with
// every raw trial time.
func (r *Runner) Run(ctx context.Context, b Benchmark) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	n := b.trials()

	ctx, span := r.Tracer.Start(ctx, "benchmark "+b.Name,
		trace.WithAttributes(
			attribute.String("benchmark.name", b.Name),
			attribute.Int("benchmark.trials", n),
		),
	)
	defer span.End()

	result, err := r.run(ctx, span, b, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.Float64("benchmark.min_ms", result.Milliseconds()))

	if r.Observer != nil {
		r.Observer.ObserveMinimum(b.Name, result.Min)
	}

	r.Logger.DebugContext(ctx, "benchmark finished",
		slog.String("benchmark", b.Name),
		slog.Int("trials", n),
		slog.Duration("min", result.Min),
		slog.Duration("max", result.Max()),
	)

	return result, nil
}

func (r *Runner) run(
	ctx context.Context,
	span trace.Span,
	b Benchmark,
	n int,
) (*Result, error) {
	if b.Setup != nil {
		if err := b.Setup(ctx); err != nil {
			return nil, fmt.Errorf("%s setup: %w", b.Name, err)
		}
	}

	now := r.now
	if now == nil {
		now = time.Now
	}

	result := &Result{
		Name:   b.Name,
		Trials: make([]time.Duration, 0, n),
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name, err)
		}

		start := now()
		err := b.Trial(ctx)
		elapsed := now().Sub(start)

		if err != nil {
			return nil, fmt.Errorf("%s trial %d: %w", b.Name, i, err)
		}

		span.AddEvent("trial", trace.WithAttributes(
			attribute.Int("trial", i),
			attribute.Int64("elapsed_ns", elapsed.Nanoseconds()),
		))

		if r.Observer != nil {
			r.Observer.ObserveTrial(b.Name, elapsed)
		}

		if i == 0 || elapsed < result.Min {
			result.Min = elapsed
		}

		result.Trials = append(result.Trials, elapsed)
	}

	if b.Verify != nil {
		if err := b.Verify(ctx); err != nil {
			return nil, fmt.Errorf("%s verify: %w", b.Name, err)
		}
	}

	return result, nil
}

// RunAll runs the benchmarks in order, handing each result to emit as soon
// as it is available. It stops at the first failure: results already
// emitted stand and no later benchmark runs.
func (r *Runner) RunAll(
	ctx context.Context,
	benchmarks []Benchmark,
	emit func(Result) error,
) ([]Result, error) {
	results := make([]Result, 0, len(benchmarks))

	for _, b := range benchmarks {
		result, err := r.Run(ctx, b)
		if err != nil {
			return results, err
		}

		results = append(results, *result)

		if emit != nil {
			if err := emit(*result); err != nil {
				return results, fmt.Errorf("report %s: %w", b.Name, err)
			}
		}
	}

	return results, nil
}
