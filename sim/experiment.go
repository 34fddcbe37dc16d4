package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/waterpark-sim/waterpark/sim/distribution"
	"github.com/waterpark-sim/waterpark/sim/trace"
)

// DistributionSpec names a delay model and its ordered parameters.
type DistributionSpec struct {
	Type       string    `yaml:"type" json:"type"`
	Parameters []float64 `yaml:"parameters" json:"parameters"`
}

// ExperimentSpec is a YAML experiment description.
// Loaded from YAML via LoadExperimentSpec(path).
type ExperimentSpec struct {
	Distribution   DistributionSpec `yaml:"distribution" json:"distribution"`
	WatermarkDelay float64          `yaml:"watermark_delay" json:"watermark_delay"`
	WatermarkSpeed int              `yaml:"watermark_speed" json:"watermark_speed"`
	InputRate      int              `yaml:"input_rate" json:"input_rate"`
	Duration       *int             `yaml:"duration,omitempty" json:"duration,omitempty"` // nil = DefaultDuration
	Seed           int64            `yaml:"seed" json:"seed"`
	Trials         int              `yaml:"trials,omitempty" json:"trials,omitempty"` // 0 = 1 trial
	SweepDelays    []float64        `yaml:"sweep_delays,omitempty" json:"sweep_delays,omitempty"`
	Trace          string           `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// LoadExperimentSpec reads and parses a YAML experiment file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadExperimentSpec(path string) (*ExperimentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment spec: %w", err)
	}
	var spec ExperimentSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing experiment spec: %w", err)
	}
	return &spec, nil
}

// Config returns the run parameters, applying the default duration.
func (s *ExperimentSpec) Config() Config {
	duration := DefaultDuration
	if s.Duration != nil {
		duration = *s.Duration
	}
	return Config{
		WatermarkDelay: s.WatermarkDelay,
		WatermarkSpeed: s.WatermarkSpeed,
		InputRate:      s.InputRate,
		Duration:       duration,
	}
}

// NumTrials returns the trial count, defaulting to 1.
func (s *ExperimentSpec) NumTrials() int {
	if s.Trials == 0 {
		return 1
	}
	return s.Trials
}

// Sampler builds the configured delay model.
func (s *ExperimentSpec) Sampler() (distribution.Sampler, error) {
	return distribution.New(s.Distribution.Type, s.Distribution.Parameters)
}

// Validate checks that all fields of the experiment are valid.
func (s *ExperimentSpec) Validate() error {
	if _, err := s.Sampler(); err != nil {
		return fmt.Errorf("distribution: %w", err)
	}
	if err := s.Config().Validate(); err != nil {
		return err
	}
	if s.Trials < 0 {
		return fmt.Errorf("trials must be non-negative, got %d", s.Trials)
	}
	for i, d := range s.SweepDelays {
		if err := validateWatermarkDelay(d); err != nil {
			return fmt.Errorf("sweep_delays[%d]: %w", i, err)
		}
	}
	if !trace.IsValidTraceLevel(s.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, watermarks, full", s.Trace)
	}
	return nil
}
