// Package trace provides watermark decision-trace recording for simulation analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// WatermarkUpdate captures a single watermark emission at a cadence boundary.
type WatermarkUpdate struct {
	Position     int     // index in arrival order
	MaxEventTime float64 // max event time seen when the watermark was emitted
	Watermark    float64 // emitted watermark (clamped at 0)
}

// DropRecord captures a record discarded because its event time was behind the watermark.
type DropRecord struct {
	Position    int
	EventTime   float64
	ArrivalTime float64
	Watermark   float64 // watermark in effect when the record was processed
}

// Lateness is how far behind the watermark the record's event time was.
func (d DropRecord) Lateness() float64 {
	return d.Watermark - d.EventTime
}
