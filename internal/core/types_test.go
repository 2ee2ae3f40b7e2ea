package core

import (
	"testing"
	"time"
)

func TestJobCardUrgencyOrder(t *testing.T) {
	for i, status := range JobCardStatuses {
		if got := status.Urgency(); got != i {
			t.Fatalf("expected %s urgency %d, got %d", status, i, got)
		}
	}
	if got := JobCardStatus("Archived").Urgency(); got != -1 {
		t.Fatalf("expected unknown status urgency -1, got %d", got)
	}
}

func TestRandomSourceRanges(t *testing.T) {
	rs := NewRandomSource(42)
	for i := 0; i < 1000; i++ {
		if v := rs.UniformInt(40, 100); v < 40 || v > 100 {
			t.Fatalf("UniformInt out of range: %d", v)
		}
		if v := rs.Uniform(1, 2); v < 1 || v >= 2 {
			t.Fatalf("Uniform out of range: %f", v)
		}
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	for i := 0; i < 100; i++ {
		ts := rs.TimeBetween(start, end)
		if ts.Before(start) || !ts.Before(end) {
			t.Fatalf("TimeBetween out of range: %v", ts)
		}
	}
	if got := rs.TimeBetween(end, start); !got.Equal(end) {
		t.Fatalf("expected empty span to return start, got %v", got)
	}
}

func TestRandomSourceSeedIsReproducible(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)
	for i := 0; i < 20; i++ {
		if a.UniformInt(0, 1000) != b.UniformInt(0, 1000) {
			t.Fatal("expected identical draws for identical seeds")
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{-5, 0, 100, 0},
		{50, 0, 100, 50},
		{150, 0, 100, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
	if got := ClampPositive(-1); got != 0 {
		t.Errorf("ClampPositive(-1) = %v, want 0", got)
	}
}
