package trace

import (
	"testing"
)

func TestSimulationTrace_RecordUpdate_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for watermarks
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelWatermarks})

	// WHEN an update is recorded
	st.RecordUpdate(WatermarkUpdate{Position: 0, MaxEventTime: 1.5, Watermark: 0.5})

	// THEN the trace contains one update with correct data
	if len(st.Updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(st.Updates))
	}
	if st.Updates[0].Watermark != 0.5 {
		t.Errorf("expected watermark 0.5, got %v", st.Updates[0].Watermark)
	}
}

func TestSimulationTrace_WatermarksLevel_IgnoresDrops(t *testing.T) {
	// GIVEN a trace configured for watermarks only
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelWatermarks})

	// WHEN a drop is recorded
	st.RecordDrop(DropRecord{Position: 3, EventTime: 0, ArrivalTime: 2.5, Watermark: 2})

	// THEN it is not retained
	if len(st.Drops) != 0 {
		t.Errorf("expected 0 drops at watermarks level, got %d", len(st.Drops))
	}
}

func TestSimulationTrace_FullLevel_RecordsBoth(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFull})
	st.RecordUpdate(WatermarkUpdate{Position: 0, Watermark: 1})
	st.RecordDrop(DropRecord{Position: 1, EventTime: 0.5, Watermark: 1})
	st.RecordUpdate(WatermarkUpdate{Position: 2, Watermark: 2})

	if len(st.Updates) != 2 || len(st.Drops) != 1 {
		t.Fatalf("got %d updates, %d drops; want 2, 1", len(st.Updates), len(st.Drops))
	}
	if st.Updates[0].Position != 0 || st.Updates[1].Position != 2 {
		t.Error("update order not preserved")
	}
}

func TestSimulationTrace_NoneLevel_RecordsNothing(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone})
	st.RecordUpdate(WatermarkUpdate{Position: 0, Watermark: 1})
	st.RecordDrop(DropRecord{Position: 1})
	if len(st.Updates) != 0 || len(st.Drops) != 0 {
		t.Error("none level must not record")
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"none", true},
		{"watermarks", true},
		{"full", true},
		{"", true},
		{"decisions", false},
		{"FULL", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.want {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
