package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/microperf/harness"
	"github.com/weiihann/microperf/report"
	"github.com/weiihann/microperf/workload"
)

func smallConfig() Config {
	return Config{
		Trials:     2,
		ParseReps:  10,
		OnesSize:   8,
		AtASize:    8,
		SortSize:   100,
		StatTrials: 10,
		MatMulSize: 16,
	}
}

var lineRE = regexp.MustCompile(`^c,[A-Za-z_]+,\d+\.\d{6}$`)

func runSuite(t *testing.T, cfg Config) (string, []harness.Result) {
	t.Helper()

	gen := workload.NewGenerator(workload.Config{Seed: cfg.Seed})
	runner := harness.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	var buf bytes.Buffer

	results, err := runner.RunAll(context.Background(), Benchmarks(cfg, gen),
		func(r harness.Result) error {
			return report.WriteLine(&buf, r)
		})
	require.NoError(t, err)

	return buf.String(), results
}

func TestBenchmarksOrder(t *testing.T) {
	benchmarks := Benchmarks(smallConfig(), workload.NewGenerator(workload.Config{}))

	names := make([]string, len(benchmarks))
	for i, b := range benchmarks {
		names[i] = b.Name
		assert.NoError(t, b.Validate())
	}

	assert.Equal(t, []string{
		"fib", "parse_int", "ones", "AtA", "mandel",
		"quicksort", "pi_sum", "rand_mat_stat", "rand_mat_mul",
	}, names)
	assert.Equal(t, Names(), names)
}

func TestSuiteOutput(t *testing.T) {
	cfg := smallConfig()

	out, results := runSuite(t, cfg)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(Names()))

	for i, line := range lines {
		assert.Regexp(t, lineRE, line)
		assert.True(t, strings.HasPrefix(line, "c,"+Names()[i]+","),
			"line %d = %q, want benchmark %s", i, line, Names()[i])
	}

	for _, r := range results {
		assert.Len(t, r.Trials, cfg.Trials, r.Name)
		assert.GreaterOrEqual(t, r.Min.Nanoseconds(), int64(0), r.Name)

		for _, d := range r.Trials {
			assert.LessOrEqual(t, r.Min, d, r.Name)
		}
	}
}

func TestSuiteConsumesSharedStream(t *testing.T) {
	cfg := smallConfig()
	gen := workload.NewGenerator(workload.Config{})

	runner := harness.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	_, err := runner.RunAll(context.Background(), Benchmarks(cfg, gen), nil)
	require.NoError(t, err)

	perTrial := cfg.SortSize +
		cfg.StatTrials*4*25 +
		2*cfg.MatMulSize*cfg.MatMulSize
	assert.Equal(t, uint64(cfg.Trials*perTrial), gen.Drawn())
}

func TestDefaultSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size suite")
	}

	out, _ := runSuite(t, DefaultConfig())

	assert.Equal(t, 9, strings.Count(out, "\n"))
}

func TestRandMatStatSingleTrialIsNotFatal(t *testing.T) {
	// One trial yields NaN statistics, which is documented behaviour
	// rather than a failed check.
	cfg := smallConfig()
	cfg.StatTrials = 1

	_, results := runSuite(t, cfg)
	assert.Len(t, results, len(Names()))
}

func TestBenchmarksDoNotShareState(t *testing.T) {
	cfg := smallConfig()
	runner := harness.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	first := Benchmarks(cfg, workload.NewGenerator(workload.Config{}))
	second := Benchmarks(cfg, workload.NewGenerator(workload.Config{}))

	for i := range first {
		_, err := runner.Run(context.Background(), first[i])
		require.NoError(t, err, first[i].Name)
	}

	// Verify on a fresh battery must see its own trial results, not the
	// ones left behind by the first battery.
	for _, b := range second {
		if b.Verify == nil {
			continue
		}

		if b.Name == RandMatStat {
			// A zero Dispersion is finite; only a leaked Inf would fail.
			assert.NoError(t, b.Verify(context.Background()), b.Name)

			continue
		}

		if b.Name == Ones || b.Name == AtA {
			assert.Panics(t, func() { _ = b.Verify(context.Background()) }, b.Name)

			continue
		}

		assert.Error(t, b.Verify(context.Background()), b.Name)
	}
}
