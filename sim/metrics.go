// Computes per-kind latency statistics over completed requests.

package sim

import (
	"fmt"
	"io"
)

// LatencyStats summarizes sojourn latencies (completion minus arrival) in ticks.
type LatencyStats struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Median float64 `yaml:"median"`
	Min    int64   `yaml:"min"`
	Max    int64   `yaml:"max"`
}

// Summary holds read and write statistics. A nil field means the partition was empty.
type Summary struct {
	Read  *LatencyStats `yaml:"read,omitempty"`
	Write *LatencyStats `yaml:"write,omitempty"`
}

// Aggregate partitions completed requests into writes and everything else,
// and computes statistics over each non-empty partition.
func Aggregate(completed []Request) Summary {
	var reads, writes []int64
	for _, req := range completed {
		if req.IsWrite() {
			writes = append(writes, req.Latency())
		} else {
			reads = append(reads, req.Latency())
		}
	}
	return Summary{
		Read:  NewLatencyStats(reads),
		Write: NewLatencyStats(writes),
	}
}

// NewLatencyStats computes statistics over latencies, or returns nil when empty.
func NewLatencyStats(latencies []int64) *LatencyStats {
	if len(latencies) == 0 {
		return nil
	}
	lo, hi := CalculateMinMax(latencies)
	return &LatencyStats{
		Count:  len(latencies),
		Mean:   CalculateMean(latencies),
		Median: CalculateMedian(latencies),
		Min:    lo,
		Max:    hi,
	}
}

// Print writes the READ and WRITE statistics blocks. Empty partitions print only their heading.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "READ statistics:")
	s.Read.print(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "WRITE statistics:")
	s.Write.print(w)
}

func (ls *LatencyStats) print(w io.Writer) {
	if ls == nil {
		return
	}
	fmt.Fprintf(w, "Average: %.6g usec\n", ls.Mean)
	fmt.Fprintf(w, "Median: %.6g usec\n", ls.Median)
	fmt.Fprintf(w, "Min: %d usec\n", ls.Min)
	fmt.Fprintf(w, "Max: %d usec\n", ls.Max)
}
