package flow

import (
	"math"
	"testing"
)

func TestScaleMap(t *testing.T) {
	s := NewScale(300, 500, 1, 15)

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"MinMapsToMinWidth", 300, 1},
		{"MaxMapsToMaxWidth", 500, 15},
		{"Midpoint", 400, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Map(tt.value); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Map(%g) = %g, want %g", tt.value, got, tt.want)
			}
		})
	}
}

func TestScaleMonotonic(t *testing.T) {
	s := NewScale(0, 1000, 1, 15)

	prev := math.Inf(-1)
	for v := 0.0; v <= 1000; v += 50 {
		got := s.Map(v)
		if got < prev {
			t.Fatalf("Map(%g) = %g, smaller than previous %g", v, got, prev)
		}
		if got < 1 || got > 15 {
			t.Fatalf("Map(%g) = %g, outside [1,15]", v, got)
		}
		prev = got
	}
}

// All observed values equal: the scale must not divide by zero and every
// value collapses to the lower output bound.
func TestScaleDegenerateRange(t *testing.T) {
	s := NewScale(100, 100, 1, 15)

	for _, v := range []float64{0, 100, 1000} {
		got := s.Map(v)
		if got != 1 {
			t.Errorf("Map(%g) = %g, want 1", v, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Map(%g) = %g, want finite", v, got)
		}
	}

	if got := s.Normalize(100); got != 0 {
		t.Errorf("Normalize(100) = %g, want 0", got)
	}
}

func TestScaleNormalize(t *testing.T) {
	s := NewScale(200, 600, 1, 15)

	if got := s.Normalize(200); got != 0 {
		t.Errorf("Normalize(200) = %g, want 0", got)
	}
	if got := s.Normalize(600); got != 1 {
		t.Errorf("Normalize(600) = %g, want 1", got)
	}
	if got := s.Normalize(400); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Normalize(400) = %g, want 0.5", got)
	}
}
