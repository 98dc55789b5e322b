package trace

// TraceSummary aggregates statistics from a SimulationTrace.
// QueueAdmissions counts requests admitted from the wait-queue head, and
// HeadOfLineStalls counts wait-queue heads refused after a completion.
type TraceSummary struct {
	TotalDecisions   int            `yaml:"total_decisions"`
	AdmittedCount    int            `yaml:"admitted"`
	RefusedCount     int            `yaml:"refused"`
	QueueAdmissions  int            `yaml:"queue_admissions"`
	HeadOfLineStalls int            `yaml:"head_of_line_stalls"`
	Completions      int            `yaml:"completions"`
	MeanWait         float64        `yaml:"mean_wait"`
	MaxWait          int64          `yaml:"max_wait"`
	RefusalReasons   map[string]int `yaml:"refusal_reasons"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		RefusalReasons: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Admissions)
	for _, a := range st.Admissions {
		switch {
		case a.Admitted:
			summary.AdmittedCount++
			if a.Source == SourceQueue {
				summary.QueueAdmissions++
			}
		default:
			summary.RefusedCount++
			summary.RefusalReasons[a.Reason]++
			if a.Source == SourceQueue {
				summary.HeadOfLineStalls++
			}
		}
	}

	if len(st.Completions) > 0 {
		var totalWait int64
		for _, c := range st.Completions {
			totalWait += c.Waited
			if c.Waited > summary.MaxWait {
				summary.MaxWait = c.Waited
			}
		}
		summary.Completions = len(st.Completions)
		summary.MeanWait = float64(totalWait) / float64(len(st.Completions))
	}

	return summary
}
