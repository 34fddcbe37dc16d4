package sim

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/waterpark-sim/waterpark/sim/distribution"
)

func writeSpecFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExperimentSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := writeSpecFile(t, `
distribution:
  type: gamma
  parameters: [2.0, 0.5]
watermark_delay: 1.5
watermark_speed: 10
input_rate: 100
duration: 20
seed: 7
trials: 3
sweep_delays: [0, 0.5]
trace: watermarks
`)
	spec, err := LoadExperimentSpec(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Distribution.Type != "gamma" || len(spec.Distribution.Parameters) != 2 {
		t.Errorf("distribution = %+v", spec.Distribution)
	}
	cfg := spec.Config()
	want := Config{WatermarkDelay: 1.5, WatermarkSpeed: 10, InputRate: 100, Duration: 20}
	if cfg != want {
		t.Errorf("Config() = %+v, want %+v", cfg, want)
	}
	if spec.Seed != 7 || spec.NumTrials() != 3 || len(spec.SweepDelays) != 2 {
		t.Errorf("seed=%d trials=%d sweep=%v", spec.Seed, spec.NumTrials(), spec.SweepDelays)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadExperimentSpec_Defaults(t *testing.T) {
	path := writeSpecFile(t, `
distribution: {type: constant, parameters: [0]}
watermark_speed: 1
input_rate: 5
`)
	spec, err := LoadExperimentSpec(path)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Config().Duration != DefaultDuration {
		t.Errorf("duration = %d, want default %d", spec.Config().Duration, DefaultDuration)
	}
	if spec.NumTrials() != 1 {
		t.Errorf("trials = %d, want 1", spec.NumTrials())
	}
}

func TestLoadExperimentSpec_UnknownKey_ReturnsError(t *testing.T) {
	path := writeSpecFile(t, `
distribution: {type: constant, parameters: [0]}
watermark_sped: 1
input_rate: 5
`)
	_, err := LoadExperimentSpec(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "watermark_sped") {
		t.Errorf("error %q should name the unknown key", err)
	}
}

func TestLoadExperimentSpec_MissingFile(t *testing.T) {
	if _, err := LoadExperimentSpec("/nonexistent/experiment.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExperimentSpec_Validate(t *testing.T) {
	zero := 0
	base := func() *ExperimentSpec {
		return &ExperimentSpec{
			Distribution:   DistributionSpec{Type: "uniform", Parameters: []float64{0, 1}},
			WatermarkSpeed: 1,
			InputRate:      10,
		}
	}
	tests := []struct {
		name    string
		mutate  func(s *ExperimentSpec)
		wantErr error
		wantMsg string
	}{
		{"valid", func(s *ExperimentSpec) {}, nil, ""},
		{"bad arity", func(s *ExperimentSpec) { s.Distribution.Parameters = []float64{1} }, distribution.ErrInvalidParameters, ""},
		{"unknown family", func(s *ExperimentSpec) { s.Distribution.Type = "bogus" }, distribution.ErrUnsupportedDistribution, ""},
		{"zero cadence", func(s *ExperimentSpec) { s.WatermarkSpeed = 0 }, ErrInvalidCadence, ""},
		{"explicit zero duration", func(s *ExperimentSpec) { s.Duration = &zero }, ErrNoRecords, ""},
		{"negative trials", func(s *ExperimentSpec) { s.Trials = -1 }, nil, "trials"},
		{"bad sweep delay", func(s *ExperimentSpec) { s.SweepDelays = []float64{1, -2} }, ErrInvalidWatermarkDelay, "sweep_delays[1]"},
		{"bad trace", func(s *ExperimentSpec) { s.Trace = "verbose" }, nil, "trace level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == nil && tt.wantMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
		})
	}
}
