// Package suite assembles the benchmark battery: the nine kernels in their
// fixed reporting order, with inputs, repetition counts and correctness
// checks.
package suite

import (
	"context"
	"math"

	"github.com/weiihann/microperf/harness"
	"github.com/weiihann/microperf/kernels"
	"github.com/weiihann/microperf/linalg"
	"github.com/weiihann/microperf/workload"
)

// Benchmark names in reporting order.
const (
	Fib         = "fib"
	ParseInt    = "parse_int"
	Ones        = "ones"
	AtA         = "AtA"
	Mandel      = "mandel"
	Quicksort   = "quicksort"
	PiSum       = "pi_sum"
	RandMatStat = "rand_mat_stat"
	RandMatMul  = "rand_mat_mul"
)

// Names returns the benchmark names in reporting order.
func Names() []string {
	return []string{
		Fib, ParseInt, Ones, AtA, Mandel,
		Quicksort, PiSum, RandMatStat, RandMatMul,
	}
}

const (
	fibN       = 20
	fibWant    = 6765
	parseInput = "1111000011110000111100001111"
	parseWant  = 252645135
	mandelWant = 14720
	piSumWant  = 1.644834071848065
	piSumTol   = 1e-12
)

// Config sizes the workloads.
type Config struct {
	Seed       uint64
	Trials     int
	ParseReps  int
	OnesSize   int
	AtASize    int
	SortSize   int
	StatTrials int
	MatMulSize int
}

// DefaultConfig returns the standard workload sizes.
func DefaultConfig() Config {
	return Config{
		Seed:       0,
		Trials:     harness.DefaultTrials,
		ParseReps:  1000,
		OnesSize:   200,
		AtASize:    200,
		SortSize:   5000,
		StatTrials: 1000,
		MatMulSize: 1000,
	}
}

// Benchmarks builds the battery. All randomness is drawn from gen, in
// benchmark order.
func Benchmarks(cfg Config, gen *workload.Generator) []harness.Benchmark {
	return []harness.Benchmark{
		fibBenchmark(cfg),
		parseIntBenchmark(cfg),
		onesBenchmark(cfg),
		atABenchmark(cfg),
		mandelBenchmark(cfg),
		quicksortBenchmark(cfg, gen),
		piSumBenchmark(cfg),
		randMatStatBenchmark(cfg, gen),
		randMatMulBenchmark(cfg, gen),
	}
}

func fibBenchmark(cfg Config) harness.Benchmark {
	var sink int

	return harness.Benchmark{
		Name:   Fib,
		Trials: cfg.Trials,
		Setup: func(context.Context) error {
			if got := kernels.Fib(fibN); got != fibWant {
				return harness.Checkf("fib(%d) = %d, want %d", fibN, got, fibWant)
			}

			return nil
		},
		Trial: func(context.Context) error {
			sink = kernels.Fib(fibN)

			return nil
		},
		Verify: func(context.Context) error {
			if sink != fibWant {
				return harness.Checkf("fib(%d) = %d, want %d", fibN, sink, fibWant)
			}

			return nil
		},
	}
}

func parseIntBenchmark(cfg Config) harness.Benchmark {
	return harness.Benchmark{
		Name:   ParseInt,
		Trials: cfg.Trials,
		Setup: func(context.Context) error {
			got, err := kernels.ParseInt(parseInput, 2)
			if err != nil {
				return err
			}

			if got != parseWant {
				return harness.Checkf("parse_int(%q, 2) = %d, want %d",
					parseInput, got, parseWant)
			}

			return nil
		},
		Trial: func(context.Context) error {
			for k := 0; k < cfg.ParseReps; k++ {
				if _, err := kernels.ParseInt(parseInput, 2); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func onesBenchmark(cfg Config) harness.Benchmark {
	var sink *linalg.Dense

	return harness.Benchmark{
		Name:   Ones,
		Trials: cfg.Trials,
		Trial: func(context.Context) error {
			sink = kernels.Ones(cfg.OnesSize, cfg.OnesSize)

			return nil
		},
		Verify: func(context.Context) error {
			if len(sink.Data) != cfg.OnesSize*cfg.OnesSize {
				return harness.Checkf("ones: %d elements, want %d",
					len(sink.Data), cfg.OnesSize*cfg.OnesSize)
			}

			return nil
		},
	}
}

func atABenchmark(cfg Config) harness.Benchmark {
	var b, sink *linalg.Dense

	return harness.Benchmark{
		Name:   AtA,
		Trials: cfg.Trials,
		Setup: func(context.Context) error {
			b = kernels.Ones(cfg.AtASize, cfg.AtASize)

			return nil
		},
		Trial: func(context.Context) error {
			sink = kernels.MatmulAAt(b)

			return nil
		},
		Verify: func(context.Context) error {
			if cfg.AtASize > 0 && sink.At(0, 0) != float64(cfg.AtASize) {
				return harness.Checkf("AtA[0,0] = %v, want %d",
					sink.At(0, 0), cfg.AtASize)
			}

			return nil
		},
	}
}

func mandelBenchmark(cfg Config) harness.Benchmark {
	var sum int

	return harness.Benchmark{
		Name:   Mandel,
		Trials: cfg.Trials,
		Trial: func(context.Context) error {
			sum = kernels.MandelPerf()

			return nil
		},
		Verify: func(context.Context) error {
			if sum != mandelWant {
				return harness.Checkf("mandel sum = %d, want %d", sum, mandelWant)
			}

			return nil
		},
	}
}

func quicksortBenchmark(cfg Config, gen *workload.Generator) harness.Benchmark {
	return harness.Benchmark{
		Name:   Quicksort,
		Trials: cfg.Trials,
		Trial: func(context.Context) error {
			d := gen.Uniform(cfg.SortSize)
			kernels.Quicksort(d, 0, len(d)-1)

			return nil
		},
	}
}

func piSumBenchmark(cfg Config) harness.Benchmark {
	var pi float64

	return harness.Benchmark{
		Name:   PiSum,
		Trials: cfg.Trials,
		Trial: func(context.Context) error {
			pi = kernels.PiSum()

			return nil
		},
		Verify: func(context.Context) error {
			if math.Abs(pi-piSumWant) >= piSumTol {
				return harness.Checkf("pi_sum = %.17g, want %.17g +/- %g",
					pi, piSumWant, piSumTol)
			}

			return nil
		},
	}
}

func randMatStatBenchmark(cfg Config, gen *workload.Generator) harness.Benchmark {
	var sink kernels.Dispersion

	return harness.Benchmark{
		Name:   RandMatStat,
		Trials: cfg.Trials,
		Trial: func(context.Context) error {
			sink = kernels.RandMatStat(gen, cfg.StatTrials)

			return nil
		},
		Verify: func(context.Context) error {
			// NaN is expected for fewer than two trials; only Inf means a
			// raw sum of exactly zero went unnoticed.
			if math.IsInf(sink.S1, 0) || math.IsInf(sink.S2, 0) {
				return harness.Checkf("rand_mat_stat s1 = %v, s2 = %v, want finite",
					sink.S1, sink.S2)
			}

			return nil
		},
	}
}

func randMatMulBenchmark(cfg Config, gen *workload.Generator) harness.Benchmark {
	return harness.Benchmark{
		Name:   RandMatMul,
		Trials: cfg.Trials,
		Trial: func(context.Context) error {
			c := kernels.RandMatMul(gen, cfg.MatMulSize)
			if len(c.Data) > 0 && c.Data[0] < 0 {
				return harness.Checkf("rand_mat_mul C[0] = %v, want >= 0", c.Data[0])
			}

			return nil
		},
	}
}
