package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/waterpark-sim/waterpark/sim"
	"github.com/waterpark-sim/waterpark/sim/distribution"
	"github.com/waterpark-sim/waterpark/sim/trace"
)

var (
	// CLI flags shared by run and sweep
	distributionName string    // Delay distribution family
	parameters       []float64 // Ordered distribution parameters
	watermarkDelay   float64   // Allowance subtracted from the max event time (seconds)
	watermarkSpeed   int       // Watermark is recomputed every N records
	inputRate        int       // Records generated per second
	duration         int       // Seconds of event time to simulate
	seed             int64     // Seed for delay sampling
	configPath       string    // Optional YAML experiment file
	reportMode       string    // "aggregated" or "dropped"
	resultsPath      string    // Optional JSON results file
	logLevel         string    // Log verbosity level

	// run only
	trials     int    // Independent repetitions
	traceLevel string // Watermark trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "waterpark",
	Short: "Event-time watermark simulator for out-of-order streams",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the watermark simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := resolveExperiment(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid experiment: %v", err)
		}
		if err := validateReportMode(reportMode); err != nil {
			logrus.Fatalf("%v", err)
		}
		sampler, err := spec.Sampler()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg := spec.Config()

		printRunHeader(os.Stdout, spec)
		logrus.Infof("Starting simulation: %s, records=%d, speed=%d, seed=%d, trials=%d",
			distribution.Describe(spec.Distribution.Type, spec.Distribution.Parameters),
			cfg.NumRecords(), cfg.WatermarkSpeed, spec.Seed, spec.NumTrials())

		out := &runOutput{Experiment: spec}
		if spec.NumTrials() > 1 {
			summary, err := sim.RunTrials(cfg, sampler, sim.NewSimulationKey(spec.Seed), spec.NumTrials())
			if err != nil {
				logrus.Fatalf("Simulation failed: %v", err)
			}
			printTrialSummary(os.Stdout, summary, reportMode)
			out.Trials = summary
		} else {
			rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).ForSubsystem(sim.SubsystemDelay)
			s, err := sim.NewSimulator(cfg, sampler, rng)
			if err != nil {
				logrus.Fatalf("Simulation failed: %v", err)
			}
			s.EnableTrace(trace.TraceLevel(spec.Trace))
			result := s.Run()
			if s.Trace != nil {
				out.Trace = trace.Summarize(s.Trace)
				printTraceSummary(os.Stdout, out.Trace)
			}
			printResult(os.Stdout, result, reportMode)
			out.Result = &result
		}

		if resultsPath != "" {
			if err := writeResults(resultsPath, out); err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
			logrus.Infof("Results written to %s", resultsPath)
		}
		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies --log to the global logrus logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// wordSepNormalizeFunc accepts --watermark_delay style names as aliases of --watermark-delay.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// registerExperimentFlags adds the flags shared by run and sweep.
func registerExperimentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&distributionName, "distribution", "", "Delay distribution ("+strings.Join(distribution.Families(), ", ")+")")
	flags.Float64SliceVar(&parameters, "parameters", nil, "Comma-separated parameters for the selected distribution")
	flags.Float64Var(&watermarkDelay, "watermark-delay", 0, "Watermark delay in seconds")
	flags.IntVar(&watermarkSpeed, "watermark-speed", 0, "The watermark updates every watermark-speed records")
	flags.IntVar(&inputRate, "input-rate", 0, "Input rate in records per second")
	flags.IntVar(&duration, "duration", sim.DefaultDuration, "Seconds of event time to simulate")
	flags.Int64Var(&seed, "seed", 42, "Seed for delay sampling")
	flags.StringVar(&configPath, "config", "", "Path to YAML experiment file; explicit flags override it")
	flags.StringVar(&reportMode, "report", reportAggregated, "Final line: aggregated (1 - dropped/total) or dropped (dropped/total)")
	flags.StringVar(&resultsPath, "results-path", "", "Write results as JSON to this file")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)

	registerExperimentFlags(runCmd.Flags())
	runCmd.Flags().IntVar(&trials, "trials", 1, "Number of independent trials")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Watermark trace level (none, watermarks, full)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
