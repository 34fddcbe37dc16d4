package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/waterpark-sim/waterpark/sim/distribution"
	"github.com/waterpark-sim/waterpark/sim/trace"
)

// watermarkState is the per-run engine state. Both fields start at 0 and never decrease.
type watermarkState struct {
	globalWatermark  float64
	maxEventTimeSeen float64
}

// Simulator runs one watermark experiment over a synthetic record stream.
//
// Thread-safety: NOT thread-safe. A Simulator owns its RNG and trace.
type Simulator struct {
	Config  Config
	Trace   *trace.SimulationTrace // nil unless EnableTrace was called with a level other than none
	sampler distribution.Sampler
	rng     *rand.Rand
}

// NewSimulator validates cfg and returns a Simulator drawing delays from
// sampler with rng.
func NewSimulator(cfg Config, sampler distribution.Sampler, rng *rand.Rand) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		Config:  cfg,
		sampler: sampler,
		rng:     rng,
	}, nil
}

// EnableTrace turns on watermark decision recording for subsequent runs.
func (s *Simulator) EnableTrace(level trace.TraceLevel) {
	if level == "" || level == trace.TraceLevelNone {
		s.Trace = nil
		return
	}
	s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: level})
}

// Run generates the records, orders them by arrival and applies the watermark.
func (s *Simulator) Run() Result {
	records := GenerateRecords(s.sampler, s.rng, s.Config.InputRate, s.Config.Duration)
	arrivals := SortByArrival(records)
	dropped := processArrivals(arrivals, s.Config.WatermarkDelay, s.Config.WatermarkSpeed, s.Trace)

	result := Result{
		NumRecords:            len(records),
		NumDroppedByWatermark: dropped,
	}
	logrus.Debugf("Simulation finished: records=%d dropped=%d delay=%v speed=%d",
		result.NumRecords, result.NumDroppedByWatermark, s.Config.WatermarkDelay, s.Config.WatermarkSpeed)
	return result
}

// Run validates cfg and executes a single simulation.
func Run(sampler distribution.Sampler, rng *rand.Rand, cfg Config) (Result, error) {
	s, err := NewSimulator(cfg, sampler, rng)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}

// processArrivals walks records in arrival order and returns how many were
// dropped as late. A record is late when its event time is strictly below the
// watermark in effect. Accepted records raise the max event time; at every
// watermarkSpeed-th position (position 0 included) the watermark becomes
// max(maxEventTimeSeen - watermarkDelay, 0). A late record at a boundary
// position skips that update.
func processArrivals(arrivals []Record, watermarkDelay float64, watermarkSpeed int, st *trace.SimulationTrace) int {
	var state watermarkState
	dropped := 0

	for i, r := range arrivals {
		if r.EventTime < state.globalWatermark {
			dropped++
			if logrus.IsLevelEnabled(logrus.TraceLevel) {
				logrus.Tracef("[pos %07d] dropped event=%.6f arrival=%.6f watermark=%.6f",
					i, r.EventTime, r.ArrivalTime, state.globalWatermark)
			}
			if st != nil {
				st.RecordDrop(trace.DropRecord{
					Position:    i,
					EventTime:   r.EventTime,
					ArrivalTime: r.ArrivalTime,
					Watermark:   state.globalWatermark,
				})
			}
			continue
		}

		state.maxEventTimeSeen = math.Max(state.maxEventTimeSeen, r.EventTime)

		if i%watermarkSpeed == 0 {
			state.globalWatermark = math.Max(state.maxEventTimeSeen-watermarkDelay, 0)
			if st != nil {
				st.RecordUpdate(trace.WatermarkUpdate{
					Position:     i,
					MaxEventTime: state.maxEventTimeSeen,
					Watermark:    state.globalWatermark,
				})
			}
		}
	}
	return dropped
}
