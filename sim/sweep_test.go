package sim

import (
	"errors"
	"testing"

	"github.com/waterpark-sim/waterpark/sim/distribution"
)

func TestSweep_PointsFollowInputOrder(t *testing.T) {
	sampler, _ := distribution.New("gamma", []float64{2, 0.5})
	delays := []float64{1.0, 0, 0.5}
	points, err := Sweep(Config{WatermarkSpeed: 1, InputRate: 50, Duration: 4}, sampler, NewSimulationKey(3), delays)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != len(delays) {
		t.Fatalf("points = %d, want %d", len(points), len(delays))
	}
	for i, p := range points {
		if p.WatermarkDelay != delays[i] {
			t.Errorf("point %d delay = %v, want %v", i, p.WatermarkDelay, delays[i])
		}
		if p.Result.NumRecords != 200 {
			t.Errorf("point %d records = %d, want 200", i, p.Result.NumRecords)
		}
	}
}

func TestSweep_MatchesIndividualRuns(t *testing.T) {
	// GIVEN a sweep over three delays
	sampler, _ := distribution.New("exponential", []float64{2})
	cfg := Config{WatermarkSpeed: 3, InputRate: 30, Duration: 5}
	delays := []float64{0, 0.25, 2}
	points, err := Sweep(cfg, sampler, NewSimulationKey(8), delays)
	if err != nil {
		t.Fatal(err)
	}

	// THEN each point equals a standalone run with the same seed and delay
	for i, d := range delays {
		c := cfg
		c.WatermarkDelay = d
		want, err := Run(sampler, delayRNG(8), c)
		if err != nil {
			t.Fatal(err)
		}
		if points[i].Result != want {
			t.Errorf("delay %v: sweep %+v, run %+v", d, points[i].Result, want)
		}
	}
}

func TestSweep_Errors(t *testing.T) {
	sampler, _ := distribution.New("constant", []float64{0})
	cfg := Config{WatermarkSpeed: 1, InputRate: 1, Duration: 1}
	if _, err := Sweep(cfg, sampler, 1, nil); err == nil {
		t.Error("expected error for empty sweep")
	}
	if _, err := Sweep(cfg, sampler, 1, []float64{0, -1}); !errors.Is(err, ErrInvalidWatermarkDelay) {
		t.Errorf("error = %v, want ErrInvalidWatermarkDelay", err)
	}
	cfg.WatermarkSpeed = 0
	if _, err := Sweep(cfg, sampler, 1, []float64{0}); !errors.Is(err, ErrInvalidCadence) {
		t.Errorf("error = %v, want ErrInvalidCadence", err)
	}
}
