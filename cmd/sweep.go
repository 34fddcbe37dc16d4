package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/waterpark-sim/waterpark/sim"
)

var sweepDelays []float64

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one simulation per watermark delay over the same record stream",
	Long:  "Generate the record stream once and replay it against each --delays value, printing the resulting drop rates as a table.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := resolveExperiment(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid experiment: %v", err)
		}
		if err := validateReportMode(reportMode); err != nil {
			logrus.Fatalf("%v", err)
		}
		if len(spec.SweepDelays) == 0 {
			logrus.Fatalf("at least one --delays value is required")
		}
		sampler, err := spec.Sampler()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		printRunHeader(os.Stdout, spec)
		points, err := sim.Sweep(spec.Config(), sampler, sim.NewSimulationKey(spec.Seed), spec.SweepDelays)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printSweep(os.Stdout, points, reportMode)

		if resultsPath != "" {
			if err := writeResults(resultsPath, &runOutput{Experiment: spec, Sweep: points}); err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
		}
	},
}

func init() {
	registerExperimentFlags(sweepCmd.Flags())
	sweepCmd.Flags().Float64SliceVar(&sweepDelays, "delays", nil, "Comma-separated watermark delays to evaluate")

	rootCmd.AddCommand(sweepCmd)
}
