// Package harness runs benchmarks under the minimum-of-N timing protocol.
package harness

import (
	"slices"
	"time"
)

// Result holds the timings of one benchmark.
type Result struct {
	Name   string          `json:"name"`
	Min    time.Duration   `json:"min_ns"`
	Trials []time.Duration `json:"trials_ns"`
}

// Milliseconds returns the minimum trial time in milliseconds.
func (r Result) Milliseconds() float64 {
	return r.Min.Seconds() * 1000
}

// Median returns the median trial time.
func (r Result) Median() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}

	sorted := slices.Clone(r.Trials)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// Max returns the slowest trial time.
func (r Result) Max() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}

	return slices.Max(r.Trials)
}
