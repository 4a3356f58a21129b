package harness

import (
	"context"
	"errors"
	"fmt"
)

// ErrCheckFailed is wrapped by every failed correctness self-check.
var ErrCheckFailed = errors.New("check failed")

// DefaultTrials is the number of timed trials per benchmark.
const DefaultTrials = 5

// Benchmark describes one timed workload.
//
// Setup runs once, untimed, before the first trial. Trial is the timed
// body; an error from it aborts the benchmark. Verify runs once after the
// last trial. Setup and Verify are optional.
type Benchmark struct {
	Name   string
	Trials int
	Setup  func(ctx context.Context) error
	Trial  func(ctx context.Context) error
	Verify func(ctx context.Context) error
}

// Validate reports whether b can be run.
func (b Benchmark) Validate() error {
	if b.Name == "" {
		return errors.New("benchmark has no name")
	}

	if b.Trial == nil {
		return fmt.Errorf("benchmark %s: no trial function", b.Name)
	}

	if b.Trials < 0 {
		return fmt.Errorf("benchmark %s: negative trial count %d",
			b.Name, b.Trials)
	}

	return nil
}

func (b Benchmark) trials() int {
	if b.Trials == 0 {
		return DefaultTrials
	}

	return b.Trials
}

// Checkf returns an error wrapping ErrCheckFailed.
func Checkf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCheckFailed, fmt.Sprintf(format, args...))
}
