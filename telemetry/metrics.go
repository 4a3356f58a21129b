// Package telemetry exposes benchmark timings as Prometheus metrics and
// wires OpenTelemetry tracing for benchmark spans.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Metrics records trial timings in a private registry. It implements
// harness.Observer.
type Metrics struct {
	registry *prometheus.Registry

	trialSeconds *prometheus.HistogramVec
	minSeconds   *prometheus.GaugeVec
	trialsTotal  *prometheus.CounterVec
}

// NewMetrics creates a Metrics with its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Labels: benchmark
		trialSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "microperf",
			Subsystem: "harness",
			Name:      "trial_seconds",
			Help:      "Wall-clock time of each timed trial",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"benchmark"}),

		minSeconds: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "microperf",
			Subsystem: "harness",
			Name:      "min_seconds",
			Help:      "Minimum trial time per benchmark",
		}, []string{"benchmark"}),

		trialsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "microperf",
			Subsystem: "harness",
			Name:      "trials_total",
			Help:      "Timed trials executed per benchmark",
		}, []string{"benchmark"}),
	}
}

// Registry returns the registry the metrics live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTrial records one raw trial.
func (m *Metrics) ObserveTrial(benchmark string, elapsed time.Duration) {
	m.trialSeconds.WithLabelValues(benchmark).Observe(elapsed.Seconds())
	m.trialsTotal.WithLabelValues(benchmark).Inc()
}

// ObserveMinimum records the reported minimum for a benchmark.
func (m *Metrics) ObserveMinimum(benchmark string, elapsed time.Duration) {
	m.minSeconds.WithLabelValues(benchmark).Set(elapsed.Seconds())
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
