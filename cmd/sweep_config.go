package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iosched-sim/iosched-sim/sim/trace"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// SweepConfig describes one invocation of the run command.
// It can be loaded from YAML; explicitly set flags override file values.
type SweepConfig struct {
	Trace       string `yaml:"trace"`
	Limits      []int  `yaml:"limits"`
	Parallelism int    `yaml:"parallelism"`
	ReadCost    int64  `yaml:"read_cost"`
	WriteCost   int64  `yaml:"write_cost"`
	TraceLevel  string `yaml:"trace_level"`
	Output      string `yaml:"output"`
}

// DefaultSweepConfig mirrors the classic replay: input.txt at N = 1, 5, 10.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Trace:       "input.txt",
		Limits:      []int{1, 5, 10},
		Parallelism: 1,
		ReadCost:    2,
		WriteCost:   1,
		TraceLevel:  string(trace.TraceLevelNone),
		Output:      OutputText,
	}
}

// LoadSweepConfig parses the YAML file at path over base.
// Uses strict field checking: typos must cause errors.
func LoadSweepConfig(path string, base SweepConfig) (SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading sweep config: %w", err)
	}
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parsing sweep config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a sweep.
func (c SweepConfig) Validate() error {
	if c.Trace == "" {
		return fmt.Errorf("trace path must not be empty")
	}
	if len(c.Limits) == 0 {
		return fmt.Errorf("at least one limit required")
	}
	for _, n := range c.Limits {
		if n < 0 {
			return fmt.Errorf("limits must be non-negative, got %d", n)
		}
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be >= 1, got %d", c.Parallelism)
	}
	if c.ReadCost < 0 || c.WriteCost < 0 {
		return fmt.Errorf("costs must be non-negative, got read=%d write=%d", c.ReadCost, c.WriteCost)
	}
	if _, err := trace.ParseTraceLevel(c.TraceLevel); err != nil {
		return err
	}
	if c.Output != OutputText && c.Output != OutputYAML {
		return fmt.Errorf("unknown output format %q; valid: text, yaml", c.Output)
	}
	return nil
}
