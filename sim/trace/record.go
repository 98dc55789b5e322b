// Package trace provides decision-trace recording for scheduler analysis.
// It stores plain data types and does not import sim/.
package trace

// Decision sources for an AdmissionRecord.
const (
	SourceArrival = "arrival"    // evaluated when the request arrived
	SourceQueue   = "wait-queue" // evaluated as head of the wait queue after a completion
)

// AdmissionRecord captures a single admission decision.
type AdmissionRecord struct {
	RequestID   int64  `yaml:"request_id"`
	Clock       int64  `yaml:"clock"`
	Source      string `yaml:"source"`
	Admitted    bool   `yaml:"admitted"`
	Reason      string `yaml:"reason,omitempty"`
	ActiveCount int    `yaml:"active_count"` // slots occupied when the decision was made
}

// CompletionRecord captures a request leaving its slot.
type CompletionRecord struct {
	RequestID int64 `yaml:"request_id"`
	Clock     int64 `yaml:"clock"`
	Latency   int64 `yaml:"latency"` // completion minus arrival
	Waited    int64 `yaml:"waited"`  // admission minus arrival
}
