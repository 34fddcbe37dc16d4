package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	sim "github.com/waterpark-sim/waterpark/sim"
)

// resolveExperiment builds the experiment from --config (when given) and the
// command-line flags. A flag overrides the file only when explicitly set, so
// file values are not clobbered by flag defaults.
func resolveExperiment(flags *pflag.FlagSet) (*sim.ExperimentSpec, error) {
	spec := &sim.ExperimentSpec{}
	if configPath != "" {
		loaded, err := sim.LoadExperimentSpec(configPath)
		if err != nil {
			return nil, err
		}
		spec = loaded
	}
	fromFile := configPath != ""
	use := func(name string) bool {
		if flags.Lookup(name) == nil {
			return false
		}
		return !fromFile || flags.Changed(name)
	}

	if use("distribution") {
		spec.Distribution.Type = distributionName
	}
	if use("parameters") {
		spec.Distribution.Parameters = append([]float64(nil), parameters...)
	}
	if use("watermark-delay") {
		spec.WatermarkDelay = watermarkDelay
	}
	if use("watermark-speed") {
		spec.WatermarkSpeed = watermarkSpeed
	}
	if use("input-rate") {
		spec.InputRate = inputRate
	}
	if use("duration") {
		d := duration
		spec.Duration = &d
	}
	if use("seed") {
		spec.Seed = seed
	}
	if use("trials") {
		spec.Trials = trials
	}
	if use("trace") {
		spec.Trace = traceLevel
	}
	if use("delays") {
		spec.SweepDelays = append([]float64(nil), sweepDelays...)
	}

	if spec.Distribution.Type == "" {
		return nil, fmt.Errorf("distribution not provided")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
