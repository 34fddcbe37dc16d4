package sim

import (
	"fmt"
	"math"
)

// Result aggregates the counters of one simulation run.
type Result struct {
	NumRecords            int `json:"num_records"`
	NumDroppedByWatermark int `json:"num_dropped_by_watermark"`
}

// NumAggregated is the number of records that made it past the watermark.
func (r Result) NumAggregated() int {
	return r.NumRecords - r.NumDroppedByWatermark
}

// DroppedFraction returns dropped / total. NaN when the result holds no records;
// Run never produces such a result.
func (r Result) DroppedFraction() float64 {
	if r.NumRecords <= 0 {
		return math.NaN()
	}
	return float64(r.NumDroppedByWatermark) / float64(r.NumRecords)
}

// AggregatedFraction returns 1 - DroppedFraction.
func (r Result) AggregatedFraction() float64 {
	return 1 - r.DroppedFraction()
}

func (r Result) String() string {
	return fmt.Sprintf("(percentage_aggregated: %v)", r.AggregatedFraction())
}
