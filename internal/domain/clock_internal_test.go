package domain

import (
	"testing"
	"time"
)

func TestTimestampsUseAmbientClock(t *testing.T) {
	fixed := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	calc, err := NewCalculator(0)
	if err != nil {
		t.Fatalf("NewCalculator() error = %v", err)
	}

	calc.Add(1).MemoryStore()
	if err := calc.Err(); err != nil {
		t.Fatalf("unexpected engine error: %v", err)
	}

	entry, ok := calc.LastResult()
	if !ok {
		t.Fatal("expected a history entry")
	}
	if !entry.Timestamp.Equal(fixed) {
		t.Errorf("history timestamp = %v, want %v", entry.Timestamp, fixed)
	}

	reg, ok := calc.Memory()
	if !ok {
		t.Fatal("expected a memory register")
	}
	if !reg.UpdatedAt.Equal(fixed) {
		t.Errorf("memory UpdatedAt = %v, want %v", reg.UpdatedAt, fixed)
	}
}

func TestMemoryTimestampAdvancesOnAdjustment(t *testing.T) {
	first := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)
	current := first
	orig := timeNow
	timeNow = func() time.Time { return current }
	defer func() { timeNow = orig }()

	calc, _ := NewCalculator(5)
	calc.MemoryStore()
	current = second
	calc.MemoryAdd(1)

	reg, ok := calc.Memory()
	if !ok {
		t.Fatal("expected a memory register")
	}
	if !reg.UpdatedAt.Equal(second) {
		t.Errorf("memory UpdatedAt = %v, want %v", reg.UpdatedAt, second)
	}
	if reg.Value != 6 {
		t.Errorf("memory value = %v, want 6", reg.Value)
	}
}
