package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/waterpark-sim/waterpark/sim/distribution"
)

// SweepPoint is the outcome of one watermark delay in a sweep.
type SweepPoint struct {
	WatermarkDelay float64 `json:"watermark_delay"`
	Result         Result  `json:"result"`
}

// Sweep evaluates each watermark delay against the same record stream, drawn
// once from key's SubsystemDelay stream. cfg.WatermarkDelay is ignored.
// Points are returned in the order of delays.
func Sweep(cfg Config, sampler distribution.Sampler, key SimulationKey, delays []float64) ([]SweepPoint, error) {
	if len(delays) == 0 {
		return nil, fmt.Errorf("sweep requires at least one watermark delay")
	}
	cfg.WatermarkDelay = 0
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i, d := range delays {
		if err := validateWatermarkDelay(d); err != nil {
			return nil, fmt.Errorf("delays[%d]: %w", i, err)
		}
	}

	rng := NewPartitionedRNG(key).ForSubsystem(SubsystemDelay)
	records := GenerateRecords(sampler, rng, cfg.InputRate, cfg.Duration)
	arrivals := SortByArrival(records)

	points := make([]SweepPoint, len(delays))
	for i, d := range delays {
		dropped := processArrivals(arrivals, d, cfg.WatermarkSpeed, nil)
		points[i] = SweepPoint{
			WatermarkDelay: d,
			Result:         Result{NumRecords: len(records), NumDroppedByWatermark: dropped},
		}
		logrus.Debugf("Sweep point delay=%v dropped=%d/%d", d, dropped, len(records))
	}
	return points, nil
}
