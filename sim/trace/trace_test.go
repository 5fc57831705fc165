package trace

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestSimulationTrace_RecordAccess_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for accesses
	st := NewSimulationTrace("fifo", TraceConfig{Level: TraceLevelAccesses, Capacity: 3})

	// WHEN an access record is recorded
	st.RecordAccess(AccessRecord{Index: 0, Page: 7, Hit: false, Slot: 0})

	// THEN the trace contains one record with correct data
	if len(st.Accesses) != 1 {
		t.Fatalf("expected 1 access, got %d", len(st.Accesses))
	}
	if st.Accesses[0].Page != 7 {
		t.Errorf("expected page 7, got %d", st.Accesses[0].Page)
	}
	if st.Accesses[0].Hit {
		t.Error("expected hit=false")
	}
	if st.Policy != "fifo" {
		t.Errorf("expected policy fifo, got %s", st.Policy)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace("lru", TraceConfig{Level: TraceLevelAccesses, Capacity: 1})

	// WHEN multiple records are added
	st.RecordAccess(AccessRecord{Index: 0, Page: 1, Slot: 0})
	st.RecordAccess(AccessRecord{Index: 1, Page: 2, Slot: 0, Evicted: intPtr(1)})
	st.RecordAccess(AccessRecord{Index: 2, Page: 2, Hit: true, Slot: 0})

	// THEN order is preserved
	if len(st.Accesses) != 3 {
		t.Fatalf("expected 3 accesses, got %d", len(st.Accesses))
	}
	for i, a := range st.Accesses {
		if a.Index != i {
			t.Errorf("record %d has index %d", i, a.Index)
		}
	}
	if st.Accesses[1].Evicted == nil || *st.Accesses[1].Evicted != 1 {
		t.Error("expected second record to evict page 1")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"accesses", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
