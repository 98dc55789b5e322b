package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iosched-sim/iosched-sim/sim"
	"github.com/iosched-sim/iosched-sim/sim/trace"
	"github.com/iosched-sim/iosched-sim/sim/workload"
)

// Report is the machine-readable form of a sweep.
type Report struct {
	Trace     string      `yaml:"trace"`
	Requests  int         `yaml:"requests"`
	Truncated bool        `yaml:"truncated"`
	StoppedAt int         `yaml:"stopped_at,omitempty"`
	Runs      []RunReport `yaml:"runs"`
}

// RunReport describes one simulated limit.
type RunReport struct {
	Limit         int                 `yaml:"limit"`
	Completed     int                 `yaml:"completed"`
	Pending       []int64             `yaml:"pending,omitempty"`
	PeakActive    int                 `yaml:"peak_active"`
	MaxQueueDepth int                 `yaml:"max_queue_depth"`
	EndTime       int64               `yaml:"end_time"`
	Stats         sim.Summary         `yaml:"stats"`
	Decisions     *trace.TraceSummary `yaml:"decisions,omitempty"`
}

// NewReport assembles a Report from parsed trace metadata and sweep results.
func NewReport(path string, tr *workload.Trace, results []sim.SweepResult) Report {
	rep := Report{
		Trace:     path,
		Requests:  len(tr.Requests),
		Truncated: tr.Truncated,
		StoppedAt: tr.StoppedAt,
		Runs:      make([]RunReport, 0, len(results)),
	}
	for _, res := range results {
		run := RunReport{
			Limit:         res.Limit,
			Completed:     len(res.Completed),
			PeakActive:    res.PeakActive,
			MaxQueueDepth: res.MaxQueueDepth,
			EndTime:       res.EndTime,
			Stats:         res.Summary,
		}
		for _, p := range res.Pending {
			run.Pending = append(run.Pending, p.ID)
		}
		if res.Trace != nil {
			run.Decisions = trace.Summarize(res.Trace)
		}
		rep.Runs = append(rep.Runs, run)
	}
	return rep
}

// WriteText prints per-limit statistics in the human-readable layout.
func WriteText(w io.Writer, results []sim.SweepResult) {
	for _, res := range results {
		fmt.Fprintf(w, "\nResults for N=%d:\n", res.Limit)
		res.Summary.Print(w)
		if len(res.Pending) > 0 {
			fmt.Fprintf(w, "\nUnresolved pending requests: %d\n", len(res.Pending))
		}
		if res.Trace != nil {
			s := trace.Summarize(res.Trace)
			fmt.Fprintf(w, "\nDecisions: %d admitted, %d refused, %d head-of-line stalls, mean wait %.2f usec\n",
				s.AdmittedCount, s.RefusedCount, s.HeadOfLineStalls, s.MeanWait)
		}
		fmt.Fprintln(w, "------------------------")
	}
}

// WriteYAML encodes rep as YAML.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing report encoder: %w", err)
	}
	return nil
}
