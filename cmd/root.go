package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iosched-sim/iosched-sim/sim"
	"github.com/iosched-sim/iosched-sim/sim/trace"
	"github.com/iosched-sim/iosched-sim/sim/workload"
)

var (
	logLevel string // Log verbosity level

	// CLI flags for the run command
	configPath  string // Optional YAML sweep config
	tracePath   string // Request trace file
	limits      []int  // Concurrency limits to sweep
	parallelism int    // Simulations run at once
	readCost    int64  // Ticks per unit for non-write requests
	writeCost   int64  // Ticks per unit for write requests
	traceLevel  string // Decision trace level
	outputFmt   string // text or yaml
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "iosched-sim",
	Short: "Discrete-event simulator for storage device request scheduling",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// runCmd replays a trace once per configured concurrency limit
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a request trace and report read/write latency statistics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveSweepConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runSweep(cmd.Context(), cfg, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// resolveSweepConfig layers defaults, the optional config file, and explicitly set flags.
func resolveSweepConfig(cmd *cobra.Command) (SweepConfig, error) {
	cfg := DefaultSweepConfig()
	if configPath != "" {
		loaded, err := LoadSweepConfig(configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		cfg.Trace = tracePath
	}
	if flags.Changed("limits") {
		cfg.Limits = limits
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = parallelism
	}
	if flags.Changed("read-cost") {
		cfg.ReadCost = readCost
	}
	if flags.Changed("write-cost") {
		cfg.WriteCost = writeCost
	}
	if flags.Changed("trace-level") {
		cfg.TraceLevel = traceLevel
	}
	if flags.Changed("output") {
		cfg.Output = outputFmt
	}
	return cfg, cfg.Validate()
}

// runSweep loads the trace, simulates every limit, and writes the report to out.
func runSweep(ctx context.Context, cfg SweepConfig, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	tr, err := workload.LoadTrace(cfg.Trace)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %d requests from %s (truncated=%v); limits=%v", len(tr.Requests), cfg.Trace, tr.Truncated, cfg.Limits)

	level, err := trace.ParseTraceLevel(cfg.TraceLevel)
	if err != nil {
		return err
	}
	base := sim.Config{
		Latency:    &sim.SizeLatencyModel{WriteCostPerUnit: cfg.WriteCost, ReadCostPerUnit: cfg.ReadCost},
		TraceLevel: level,
	}
	startTime := time.Now()
	results, err := sim.RunSweep(ctx, tr.Requests, cfg.Limits, base, cfg.Parallelism)
	if err != nil {
		return err
	}
	logrus.Infof("Sweep of %d limits finished in %s", len(cfg.Limits), time.Since(startTime))

	if cfg.Output == OutputYAML {
		return WriteYAML(out, NewReport(cfg.Trace, tr, results))
	}
	WriteText(out, results)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	def := DefaultSweepConfig()
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML sweep config; explicitly set flags override it")
	runCmd.Flags().StringVar(&tracePath, "trace", def.Trace, "Request trace file (id timestamp type address size)")
	runCmd.Flags().IntSliceVar(&limits, "limits", def.Limits, "Comma-separated concurrency limits to simulate")
	runCmd.Flags().IntVar(&parallelism, "parallelism", def.Parallelism, "Number of limits simulated concurrently")
	runCmd.Flags().Int64Var(&readCost, "read-cost", def.ReadCost, "Service ticks per unit for non-write requests")
	runCmd.Flags().Int64Var(&writeCost, "write-cost", def.WriteCost, "Service ticks per unit for write requests")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", def.TraceLevel, "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&outputFmt, "output", def.Output, "Output format (text, yaml)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
