// Package report formats benchmark results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/weiihann/microperf/harness"
)

// Format selects how results are written.
type Format string

// Supported output formats.
const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatMarkdown, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want csv, markdown or json)", s)
	}
}

// WriteLine writes one result as c,<name>,<milliseconds>.
func WriteLine(w io.Writer, r harness.Result) error {
	_, err := fmt.Fprintf(w, "c,%s,%.6f\n", r.Name, r.Milliseconds())

	return err
}

// Generate writes a markdown table for the given results.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Benchmark | Min | Median | Max | Trials |")
	fmt.Fprintln(w, "|-----------|-----|--------|-----|--------|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %d |\n",
			r.Name,
			formatDuration(r.Min),
			formatDuration(r.Median()),
			formatDuration(r.Max()),
			len(r.Trials),
		)
	}

	return nil
}

// Host describes the machine a suite ran on.
type Host struct {
	OS     string `json:"os"`
	Arch   string `json:"arch"`
	NumCPU int    `json:"num_cpu"`
	Go     string `json:"go"`
}

// Suite is the JSON document for one run.
type Suite struct {
	RunID     string           `json:"run_id"`
	Timestamp time.Time        `json:"timestamp"`
	Seed      uint64           `json:"seed"`
	Host      Host             `json:"host"`
	Results   []harness.Result `json:"results"`
}

// NewSuite stamps results with a fresh run id and the current host.
func NewSuite(seed uint64, results []harness.Result) Suite {
	return Suite{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Seed:      seed,
		Host: Host{
			OS:     runtime.GOOS,
			Arch:   runtime.GOARCH,
			NumCPU: runtime.NumCPU(),
			Go:     runtime.Version(),
		},
		Results: results,
	}
}

// GenerateJSON writes s as indented JSON to w.
func GenerateJSON(w io.Writer, s Suite) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func formatDuration(d time.Duration) string {
	ms := d.Seconds() * 1000
	if ms < 1000 {
		return fmt.Sprintf("%.3fms", ms)
	}

	return fmt.Sprintf("%.2fs", ms/1000)
}
