// Package main provides the CLI entry point for microperf, a
// cross-implementation micro-benchmark suite.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/microperf/harness"
	"github.com/weiihann/microperf/report"
	"github.com/weiihann/microperf/suite"
	"github.com/weiihann/microperf/telemetry"
	"github.com/weiihann/microperf/workload"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type runConfig struct {
	format   string
	logLevel string
	metrics  bool
	trace    bool
	suite    suite.Config
	build    func(suite.Config, *workload.Generator) []harness.Benchmark
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newCmd(stdout, stderr, runConfig{
		suite: suite.DefaultConfig(),
		build: suite.Benchmarks,
	})
}

func newCmd(stdout, stderr io.Writer, cfg runConfig) *cobra.Command {

	root := &cobra.Command{
		Use:   "microperf",
		Short: "Cross-implementation micro-benchmark suite",
		Long: `Microperf runs a fixed battery of numeric and symbolic kernels
(recursion, integer parsing, array construction, matrix products,
Mandelbrot escape counts, quicksort, series summation and random-matrix
statistics) under a minimum-of-5 timing protocol and prints one
c,<name>,<milliseconds> line per kernel.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(stderr, cfg.logLevel)
			if err != nil {
				return err
			}

			if err := runSuite(cmd.Context(), logger, stdout, stderr, cfg); err != nil {
				logger.Error("benchmark failed", slog.String("error", err.Error()))

				return err
			}

			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.Flags()
	flags.StringVar(&cfg.format, "format", string(report.FormatCSV),
		"Output format: csv, markdown, json")
	flags.StringVar(&cfg.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	flags.BoolVar(&cfg.metrics, "metrics", false,
		"Write Prometheus metrics for all trials to stderr after the run")
	flags.BoolVar(&cfg.trace, "trace", false,
		"Write OpenTelemetry spans for each benchmark to stderr")

	return root
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})), nil
}

func runSuite(
	ctx context.Context,
	logger *slog.Logger,
	stdout, stderr io.Writer,
	cfg runConfig,
) error {
	format, err := report.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	if cfg.trace {
		shutdown, err := telemetry.InitTracing(stderr)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}

		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("failed to flush traces",
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	metrics := telemetry.NewMetrics()
	gen := workload.NewGenerator(workload.Config{Seed: cfg.suite.Seed})
	build := cfg.build
	if build == nil {
		build = suite.Benchmarks
	}

	benchmarks := build(cfg.suite, gen)

	logger.InfoContext(ctx, "starting benchmark",
		slog.Uint64("seed", gen.Seed()),
		slog.Int("benchmarks", len(benchmarks)),
		slog.Int("trials", cfg.suite.Trials),
		slog.String("format", string(format)),
	)

	// CSV lines stream as each benchmark finishes so a failing check
	// leaves earlier results printed.
	var emit func(harness.Result) error
	if format == report.FormatCSV {
		emit = func(r harness.Result) error {
			return report.WriteLine(stdout, r)
		}
	}

	runner := harness.NewRunner(logger, metrics)

	results, err := runner.RunAll(ctx, benchmarks, emit)
	if err != nil {
		return err
	}

	switch format {
	case report.FormatMarkdown:
		if err := report.Generate(stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	case report.FormatJSON:
		if err := report.GenerateJSON(stdout, report.NewSuite(gen.Seed(), results)); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	if cfg.metrics {
		if err := metrics.WriteText(stderr); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete",
		slog.Int("results", len(results)),
		slog.Uint64("variates", gen.Drawn()),
	)

	return nil
}
