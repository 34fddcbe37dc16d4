package sim

import "math/rand"

// scriptedSampler replays a fixed delay sequence, cycling when exhausted.
// It ignores the RNG so tests can pin exact arrival orders.
type scriptedSampler struct {
	delays []float64
	next   int
}

func (s *scriptedSampler) Sample(_ *rand.Rand) float64 {
	d := s.delays[s.next%len(s.delays)]
	s.next++
	return d
}

func newScripted(delays ...float64) *scriptedSampler {
	return &scriptedSampler{delays: delays}
}

// delayRNG returns the delay stream for seed, as the CLI would build it.
func delayRNG(seed int64) *rand.Rand {
	return NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemDelay)
}
