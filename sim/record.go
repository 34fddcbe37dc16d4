package sim

import (
	"math/rand"
	"sort"

	"github.com/waterpark-sim/waterpark/sim/distribution"
)

// Record is one synthetic input record. Times are in seconds.
type Record struct {
	EventTime   float64 // when the record claims to have happened
	ArrivalTime float64 // when the engine receives it
}

// Delay is how long the record spent in flight.
func (r Record) Delay() float64 {
	return r.ArrivalTime - r.EventTime
}

// GenerateRecords emits inputRate records per second for duration seconds in
// index order. Record i has event time i/inputRate and one freshly sampled delay.
func GenerateRecords(sampler distribution.Sampler, rng *rand.Rand, inputRate, duration int) []Record {
	n := duration * inputRate
	if n < 0 {
		n = 0
	}
	records := make([]Record, n)
	for i := range records {
		eventTime := float64(i) / float64(inputRate)
		records[i] = Record{
			EventTime:   eventTime,
			ArrivalTime: eventTime + sampler.Sample(rng),
		}
	}
	return records
}

// SortByArrival returns a copy of records ordered by ascending arrival time,
// the order in which the engine observes them. The input is left untouched.
// Ties keep no particular order.
func SortByArrival(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}
