package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalUpdates   int     `json:"total_updates"`
	TotalDrops     int     `json:"total_drops"`
	FinalWatermark float64 `json:"final_watermark"`
	MeanLateness   float64 `json:"mean_lateness"`
	MaxLateness    float64 `json:"max_lateness"`
	Monotonic      bool    `json:"monotonic"` // recorded watermarks never decreased and never went negative
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields, Monotonic=true).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{Monotonic: true}
	if st == nil {
		return summary
	}

	summary.TotalUpdates = len(st.Updates)
	prev := 0.0
	for _, u := range st.Updates {
		if u.Watermark < prev || u.Watermark < 0 {
			summary.Monotonic = false
		}
		prev = u.Watermark
	}
	if len(st.Updates) > 0 {
		summary.FinalWatermark = st.Updates[len(st.Updates)-1].Watermark
	}

	summary.TotalDrops = len(st.Drops)
	if len(st.Drops) > 0 {
		total := 0.0
		for _, d := range st.Drops {
			l := d.Lateness()
			total += l
			if l > summary.MaxLateness {
				summary.MaxLateness = l
			}
		}
		summary.MeanLateness = total / float64(len(st.Drops))
	}

	return summary
}
