package compass

import (
	"errors"
	"math"
	"testing"

	crosserrors "github.com/crossflow/crossflow/pkg/errors"
)

const epsilon = 1e-9

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		directions map[string]float64
		radius     float64
		wantErr    bool
	}{
		{
			name:       "Empty",
			directions: map[string]float64{},
			radius:     10,
			wantErr:    true,
		},
		{
			name:       "SingleDirection",
			directions: map[string]float64{"N": 0},
			radius:     10,
		},
		{
			name:       "DuplicateAngle",
			directions: map[string]float64{"A": 90, "B": 90},
			radius:     10,
			wantErr:    true,
		},
		{
			name:       "DuplicateAngleAfterNormalization",
			directions: map[string]float64{"A": 45, "B": 405},
			radius:     10,
			wantErr:    true,
		},
		{
			name:       "ZeroRadius",
			directions: map[string]float64{"N": 0},
			radius:     0,
			wantErr:    true,
		},
		{
			name:       "CustomJunction",
			directions: map[string]float64{"High Street": 0, "Kings Road": 240, "Park Avenue": 60, "Main Street": 195, "Green Lane": 300},
			radius:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.directions, tt.radius)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !crosserrors.Is(err, crosserrors.ErrCodeInvalidDirections) {
				t.Errorf("error code = %v, want INVALID_DIRECTIONS", crosserrors.GetCode(err))
			}
		})
	}
}

func TestCartesianAngles(t *testing.T) {
	rose := Standard(10)

	want := map[string]float64{
		"N":  90,
		"NE": 45,
		"E":  0,
		"SE": 315,
		"S":  270,
		"SW": 225,
		"W":  180,
		"NW": 135,
	}

	for label, expected := range want {
		got, err := rose.CartesianAngle(label)
		if err != nil {
			t.Fatalf("CartesianAngle(%q) error = %v", label, err)
		}
		if math.Abs(got-expected) > epsilon {
			t.Errorf("CartesianAngle(%q) = %g, want %g", label, got, expected)
		}
		if got < 0 || got >= 360 {
			t.Errorf("CartesianAngle(%q) = %g, outside [0,360)", label, got)
		}
	}
}

func TestOrdered(t *testing.T) {
	rose, err := New(map[string]float64{"W": 270, "N": 0, "E": 90, "S": 180}, 10)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := rose.Ordered()
	want := []string{"N", "E", "S", "W"}
	if len(got) != len(want) {
		t.Fatalf("Ordered() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	idx := rose.Index()
	for i, label := range want {
		if idx[label] != i {
			t.Errorf("Index()[%q] = %d, want %d", label, idx[label], i)
		}
	}
}

func TestPoints(t *testing.T) {
	rose, err := New(map[string]float64{"N": 0, "E": 90, "S": 180, "W": 270}, 10)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		label string
		x, y  float64
	}{
		{"N", 0, 10},  // north points up
		{"E", 10, 0},  // east points right
		{"S", 0, -10}, // south points down
		{"W", -10, 0}, // west points left
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p, err := rose.Point(tt.label)
			if err != nil {
				t.Fatalf("Point(%q) error = %v", tt.label, err)
			}
			if math.Abs(p.X-tt.x) > epsilon || math.Abs(p.Y-tt.y) > epsilon {
				t.Errorf("Point(%q) = (%g, %g), want (%g, %g)", tt.label, p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestMissingDirection(t *testing.T) {
	rose := Standard(10)

	_, err := rose.Point("NNE")
	if err == nil {
		t.Fatal("Point() on unknown label: want error, got nil")
	}

	var miss *MissingDirectionError
	if !errors.As(err, &miss) {
		t.Fatalf("error type = %T, want *MissingDirectionError", err)
	}
	if miss.Label != "NNE" {
		t.Errorf("missing label = %q, want %q", miss.Label, "NNE")
	}
}

func TestCircularDistance(t *testing.T) {
	ring := []string{"N", "E", "S", "W"}

	tests := []struct {
		name         string
		origin, dest string
		side         Side
		want         int
	}{
		{"SameRight", "N", "N", RightHand, 0},
		{"AdjacentClockwise", "N", "E", RightHand, 1},
		{"OppositeRight", "N", "S", RightHand, 2},
		{"WrapClockwise", "W", "N", RightHand, 1},
		{"AdjacentCounterClockwise", "E", "N", LeftHand, 1},
		{"WrapCounterClockwise", "N", "W", LeftHand, 1},
		{"FullFanLeft", "N", "E", LeftHand, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CircularDistance(ring, tt.origin, tt.dest, tt.side)
			if err != nil {
				t.Fatalf("CircularDistance() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CircularDistance(%q, %q, %v) = %d, want %d", tt.origin, tt.dest, tt.side, got, tt.want)
			}
		})
	}
}

// Reversing origin and destination while flipping the driving side must
// preserve the distance for any fixed ring ordering.
func TestCircularDistanceSymmetry(t *testing.T) {
	ring := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

	for _, a := range ring {
		for _, b := range ring {
			right, err := CircularDistance(ring, a, b, RightHand)
			if err != nil {
				t.Fatalf("CircularDistance() error = %v", err)
			}
			left, err := CircularDistance(ring, b, a, LeftHand)
			if err != nil {
				t.Fatalf("CircularDistance() error = %v", err)
			}
			if right != left {
				t.Errorf("distance(%s→%s, right) = %d, distance(%s→%s, left) = %d; want equal", a, b, right, b, a, left)
			}
		}
	}
}

func TestCircularDistanceSingleDirection(t *testing.T) {
	ring := []string{"N"}

	for _, side := range []Side{RightHand, LeftHand} {
		got, err := CircularDistance(ring, "N", "N", side)
		if err != nil {
			t.Fatalf("CircularDistance() error = %v", err)
		}
		if got != 0 {
			t.Errorf("CircularDistance(N, N, %v) = %d, want 0", side, got)
		}
	}
}

func TestCircularDistanceUnknownLabel(t *testing.T) {
	ring := []string{"N", "S"}
	if _, err := CircularDistance(ring, "N", "E", RightHand); err == nil {
		t.Error("CircularDistance() with unknown destination: want error, got nil")
	}
}

func TestSideFactor(t *testing.T) {
	if got := RightHand.Factor(); got != 1 {
		t.Errorf("RightHand.Factor() = %g, want 1", got)
	}
	if got := LeftHand.Factor(); got != -1 {
		t.Errorf("LeftHand.Factor() = %g, want -1", got)
	}
}
