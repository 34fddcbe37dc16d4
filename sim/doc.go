// Package sim provides the core watermark simulation engine for waterpark.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - record.go: Record generation (event time + sampled delay) and arrival ordering
//   - simulator.go: The watermark advance / drop loop
//   - metrics.go: Result and its derived dropped / aggregated ratios
//
// # Architecture
//
// The sim package owns the run loop; supporting pieces live in sub-packages:
//   - sim/distribution/: delay models (gamma, exponential, uniform, constant, gaussian)
//   - sim/trace/: watermark decision trace recording
//
// Randomness is never global. Every run draws from an injected *rand.Rand,
// usually obtained from PartitionedRNG so that trials stay isolated and
// reproducible for a given seed.
//
// # Higher-level drivers
//
//   - trials.go: repeated independent runs with dropped-fraction statistics
//   - sweep.go: one run per watermark delay over a shared record stream
//   - experiment.go: YAML experiment files
package sim
