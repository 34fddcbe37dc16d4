package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/waterpark-sim/waterpark/sim/distribution"
)

// TrialSummary aggregates repeated independent runs of one configuration.
// Statistics are over the per-trial dropped fraction.
type TrialSummary struct {
	Results       []Result `json:"results"`
	MeanDropped   float64  `json:"mean_dropped_fraction"`
	StdDevDropped float64  `json:"stddev_dropped_fraction"`
	MinDropped    float64  `json:"min_dropped_fraction"`
	MaxDropped    float64  `json:"max_dropped_fraction"`
	P50Dropped    float64  `json:"p50_dropped_fraction"`
	P90Dropped    float64  `json:"p90_dropped_fraction"`
}

// RunTrials runs n independent simulations of cfg. Trial i draws its delays
// from key's SubsystemTrial(i) stream, so trial 0 reproduces a single Run
// seeded with the same key.
func RunTrials(cfg Config, sampler distribution.Sampler, key SimulationKey, n int) (*TrialSummary, error) {
	if n < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", n)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rngs := NewPartitionedRNG(key)
	summary := &TrialSummary{Results: make([]Result, 0, n)}
	fractions := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		s, err := NewSimulator(cfg, sampler, rngs.ForSubsystem(SubsystemTrial(i)))
		if err != nil {
			return nil, err
		}
		r := s.Run()
		summary.Results = append(summary.Results, r)
		fractions = append(fractions, r.DroppedFraction())
	}

	summary.MeanDropped, summary.StdDevDropped = stat.MeanStdDev(fractions, nil)
	if n == 1 {
		summary.StdDevDropped = 0
	}
	summary.MinDropped = floats.Min(fractions)
	summary.MaxDropped = floats.Max(fractions)

	sort.Float64s(fractions)
	summary.P50Dropped = stat.Quantile(0.5, stat.Empirical, fractions, nil)
	summary.P90Dropped = stat.Quantile(0.9, stat.Empirical, fractions, nil)
	return summary, nil
}
