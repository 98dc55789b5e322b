package sim

// LatencyModel estimates how long an admitted request occupies its slot.
// All time estimates are in ticks (µs).
type LatencyModel interface {
	// ServiceTime returns the slot occupancy of req from admission to completion.
	ServiceTime(req *Request) int64
}

// SizeLatencyModel charges a fixed cost per logical unit, by operation kind.
type SizeLatencyModel struct {
	WriteCostPerUnit int64
	ReadCostPerUnit  int64 // applies to every non-write token
}

// DefaultLatencyModel models reads at twice the per-unit cost of writes.
func DefaultLatencyModel() *SizeLatencyModel {
	return &SizeLatencyModel{WriteCostPerUnit: 1, ReadCostPerUnit: 2}
}

func (m *SizeLatencyModel) ServiceTime(req *Request) int64 {
	if req.IsWrite() {
		return req.Size * m.WriteCostPerUnit
	}
	return req.Size * m.ReadCostPerUnit
}
