package sim

import "fmt"

// AdmissionPolicy decides whether a candidate may occupy a slot right now.
// Receives the run's arena and the current active set.
type AdmissionPolicy interface {
	Admit(candidate *Request, active *ActiveSet, arena *RequestArena) (admitted bool, reason string)
}

// SlotLimiter is implemented by policies that carry their own slot limit.
// The engine requires that limit to equal Config.Limit, since the wait-queue
// drain stops on Config.Limit while the policy refuses on its own.
type SlotLimiter interface {
	SlotLimit() int
}

// Refusal reasons reported by WriteExclusion.
const (
	ReasonSlotsFull = "concurrency limit reached"
)

// WriteExclusion admits a candidate when a slot is free and no active WRITE
// overlaps its address range.
//
// The rule is asymmetric: an active READ never blocks anything, so a WRITE may
// start on top of an in-flight overlapping READ.
type WriteExclusion struct {
	Limit int
}

// NewWriteExclusion creates a WriteExclusion policy with the given slot limit.
func NewWriteExclusion(limit int) *WriteExclusion {
	return &WriteExclusion{Limit: limit}
}

func (p *WriteExclusion) SlotLimit() int {
	return p.Limit
}

func (p *WriteExclusion) Admit(candidate *Request, active *ActiveSet, arena *RequestArena) (bool, string) {
	if active.Len() >= p.Limit {
		return false, ReasonSlotsFull
	}
	for _, h := range active.Members() {
		other := arena.Get(h)
		if other.IsWrite() && Overlaps(other, candidate) {
			return false, fmt.Sprintf("overlaps active write %d", other.ID)
		}
	}
	return true, ""
}
