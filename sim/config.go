package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInputRate is returned when the input rate is not positive.
	ErrInvalidInputRate = errors.New("input rate must be positive")
	// ErrInvalidDuration is returned for a negative duration.
	ErrInvalidDuration = errors.New("duration must be non-negative")
	// ErrInvalidCadence is returned when the watermark update cadence is below 1.
	ErrInvalidCadence = errors.New("watermark speed must be at least 1")
	// ErrInvalidWatermarkDelay is returned for a negative or non-finite watermark delay.
	ErrInvalidWatermarkDelay = errors.New("watermark delay must be a finite non-negative number")
	// ErrNoRecords is returned when duration * input rate is zero, which would
	// leave the dropped fraction undefined.
	ErrNoRecords = errors.New("duration * input rate must be positive")
)

// DefaultDuration is the run length in seconds used when none is given.
const DefaultDuration = 10

// Config groups the scalar parameters of one simulation run.
type Config struct {
	WatermarkDelay float64 // allowance subtracted from the max event time (seconds, >= 0)
	WatermarkSpeed int     // watermark is recomputed every WatermarkSpeed records in arrival order (>= 1)
	InputRate      int     // records generated per second of event time (> 0)
	Duration       int     // seconds of event time to generate (>= 0)
}

// NumRecords returns the number of records a run with this config generates.
func (c Config) NumRecords() int {
	return c.Duration * c.InputRate
}

// Validate checks the run preconditions. It must pass before any sampling.
func (c Config) Validate() error {
	if c.InputRate <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidInputRate, c.InputRate)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidDuration, c.Duration)
	}
	if c.WatermarkSpeed < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidCadence, c.WatermarkSpeed)
	}
	if err := validateWatermarkDelay(c.WatermarkDelay); err != nil {
		return err
	}
	if c.NumRecords() <= 0 {
		return fmt.Errorf("%w, got duration=%d input_rate=%d", ErrNoRecords, c.Duration, c.InputRate)
	}
	return nil
}

func validateWatermarkDelay(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidWatermarkDelay, d)
	}
	return nil
}
