package sim

import (
	"fmt"

	"github.com/iosched-sim/iosched-sim/sim/trace"
)

// Config holds the parameters of a single simulation run.
type Config struct {
	// Limit is the number of concurrency slots (N). Limit <= 0 admits nothing.
	Limit int
	// Latency defaults to DefaultLatencyModel when nil.
	Latency LatencyModel
	// Admission defaults to WriteExclusion{Limit} when nil. A policy that
	// implements SlotLimiter must report the same limit; other policies are
	// trusted to agree with Limit.
	Admission AdmissionPolicy
	// TraceLevel enables decision recording when set to trace.TraceLevelDecisions.
	TraceLevel trace.TraceLevel
}

// withDefaults fills unset collaborators.
func (c Config) withDefaults() Config {
	if c.Latency == nil {
		c.Latency = DefaultLatencyModel()
	}
	if c.Admission == nil {
		c.Admission = NewWriteExclusion(c.Limit)
	}
	return c
}

// checkSlotLimit reports a policy whose own slot limit disagrees with Limit.
func (c Config) checkSlotLimit() error {
	if sl, ok := c.Admission.(SlotLimiter); ok && sl.SlotLimit() != c.Limit {
		return fmt.Errorf("admission policy limit %d does not match limit %d", sl.SlotLimit(), c.Limit)
	}
	return nil
}
