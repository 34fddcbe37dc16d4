package trace

// TraceLevel controls the verbosity of watermark tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelWatermarks captures every watermark update.
	TraceLevelWatermarks TraceLevel = "watermarks"
	// TraceLevelFull captures watermark updates and every dropped record.
	TraceLevelFull TraceLevel = "full"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelWatermarks: true,
	TraceLevelFull:       true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects watermark decisions during a simulation run.
type SimulationTrace struct {
	Config  TraceConfig
	Updates []WatermarkUpdate
	Drops   []DropRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:  config,
		Updates: make([]WatermarkUpdate, 0),
		Drops:   make([]DropRecord, 0),
	}
}

// RecordUpdate appends a watermark update if the level includes updates.
func (st *SimulationTrace) RecordUpdate(record WatermarkUpdate) {
	if st.Config.Level != TraceLevelWatermarks && st.Config.Level != TraceLevelFull {
		return
	}
	st.Updates = append(st.Updates, record)
}

// RecordDrop appends a dropped-record entry if the level is full.
func (st *SimulationTrace) RecordDrop(record DropRecord) {
	if st.Config.Level != TraceLevelFull {
		return
	}
	st.Drops = append(st.Drops, record)
}
