package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAccesses    int         `yaml:"total_accesses"`
	Hits             int         `yaml:"hits"`
	Faults           int         `yaml:"faults"`
	Evictions        int         `yaml:"evictions"`
	HitRatio         float64     `yaml:"hit_ratio"`
	SlotDistribution map[int]int `yaml:"slot_distribution"` // slot → number of faults landing there
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SlotDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAccesses = len(st.Accesses)
	for _, a := range st.Accesses {
		if a.Hit {
			summary.Hits++
			continue
		}
		summary.Faults++
		summary.SlotDistribution[a.Slot]++
		if a.Evicted != nil {
			summary.Evictions++
		}
	}

	if summary.TotalAccesses > 0 {
		summary.HitRatio = float64(summary.Hits) / float64(summary.TotalAccesses)
	}

	return summary
}
