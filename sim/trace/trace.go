package trace

import "fmt"

// TraceLevel selects what a run records.
type TraceLevel string

const (
	TraceLevelNone      TraceLevel = "none"
	TraceLevelDecisions TraceLevel = "decisions" // every admission decision and completion
)

// ParseTraceLevel maps a flag or config value to a TraceLevel. Empty means none.
func ParseTraceLevel(s string) (TraceLevel, error) {
	switch level := TraceLevel(s); level {
	case "", TraceLevelNone:
		return TraceLevelNone, nil
	case TraceLevelDecisions:
		return level, nil
	default:
		return TraceLevelNone, fmt.Errorf("unknown trace level %q; valid: none, decisions", s)
	}
}

// IsValidTraceLevel reports whether ParseTraceLevel accepts level.
func IsValidTraceLevel(level string) bool {
	_, err := ParseTraceLevel(level)
	return err == nil
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether decisions should be recorded.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions
}

// SimulationTrace is the ordered log of one run's scheduling decisions.
// Records appear in the order the engine made them.
type SimulationTrace struct {
	Config      TraceConfig        `yaml:"-"`
	Admissions  []AdmissionRecord  `yaml:"admissions"`
	Completions []CompletionRecord `yaml:"completions"`
}

// NewSimulationTrace returns an empty trace for config.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Admissions:  []AdmissionRecord{},
		Completions: []CompletionRecord{},
	}
}

func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	st.Admissions = append(st.Admissions, record)
}

func (st *SimulationTrace) RecordCompletion(record CompletionRecord) {
	st.Completions = append(st.Completions, record)
}
