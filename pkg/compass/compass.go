package compass

import (
	"fmt"
	"math"
	"sort"

	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/errors"
)

// Side identifies the side of the road traffic drives on. It determines
// the direction edges fan out from the road centerline and the direction
// circular distances are measured in.
type Side int

const (
	// RightHand is right-hand traffic (continental Europe, the Americas).
	RightHand Side = iota
	// LeftHand is left-hand traffic (UK, Japan, Australia).
	LeftHand
)

// Factor returns the driving-side factor: +1 for right-hand traffic,
// −1 for left-hand traffic.
func (s Side) Factor() float64 {
	if s == LeftHand {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == LeftHand {
		return "left-hand"
	}
	return "right-hand"
}

// StandardDirections is the default 8-point compass rose.
func StandardDirections() map[string]float64 {
	return map[string]float64{
		"N":  0,
		"NE": 45,
		"E":  90,
		"SE": 135,
		"S":  180,
		"SW": 225,
		"W":  270,
		"NW": 315,
	}
}

// MissingDirectionError reports a flow referencing a direction label that
// is not part of the configured rose.
type MissingDirectionError struct {
	Label string
}

func (e *MissingDirectionError) Error() string {
	return fmt.Sprintf("direction %q not in configured directions", e.Label)
}

// Rose is a validated, immutable set of approach directions placed on a
// ring of the configured radius. All derived geometry (cartesian angles,
// ring points, ordering) is computed once at construction and reused
// across plot calls.
type Rose struct {
	radius    float64
	compass   map[string]float64
	cartesian map[string]float64
	points    map[string]curve.Point
	ordered   []string
}

// New builds a Rose from a direction→compass-angle map. The map must have
// at least one entry; labels and angles must be unique. Two directions
// with zero angular separation are a configuration error because the ring
// ordering and the roadside perimeter degenerate.
func New(directions map[string]float64, radius float64) (*Rose, error) {
	if len(directions) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDirections, "at least one direction is required")
	}
	if radius <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDirections, "radius must be positive, got %g", radius)
	}

	seen := make(map[float64]string, len(directions))
	for label, angle := range directions {
		norm := normalizeDegrees(angle)
		if prev, ok := seen[norm]; ok {
			return nil, errors.New(errors.ErrCodeInvalidDirections,
				"directions %q and %q share compass angle %g", prev, label, norm)
		}
		seen[norm] = label
	}

	r := &Rose{
		radius:    radius,
		compass:   make(map[string]float64, len(directions)),
		cartesian: make(map[string]float64, len(directions)),
		points:    make(map[string]curve.Point, len(directions)),
		ordered:   make([]string, 0, len(directions)),
	}

	for label, angle := range directions {
		norm := normalizeDegrees(angle)
		cart := normalizeDegrees(450 - norm)
		r.compass[label] = norm
		r.cartesian[label] = cart
		// The drawing bearing is shifted −90° so compass 0 points up.
		bearing := Radians(cart - 90)
		r.points[label] = curve.Pt(radius*math.Cos(bearing), radius*math.Sin(bearing))
		r.ordered = append(r.ordered, label)
	}

	// Canonical ring order: ascending by the configured compass angle,
	// not the transformed cartesian angle.
	sort.Slice(r.ordered, func(i, j int) bool {
		return r.compass[r.ordered[i]] < r.compass[r.ordered[j]]
	})

	return r, nil
}

// Standard builds the default 8-point rose.
func Standard(radius float64) *Rose {
	r, err := New(StandardDirections(), radius)
	if err != nil {
		// The standard rose is statically valid.
		panic(err)
	}
	return r
}

// Radius returns the ring radius.
func (r *Rose) Radius() float64 { return r.radius }

// Len returns the number of directions.
func (r *Rose) Len() int { return len(r.compass) }

// Has reports whether label is part of the rose.
func (r *Rose) Has(label string) bool {
	_, ok := r.compass[label]
	return ok
}

// CompassAngle returns the configured compass angle of label.
func (r *Rose) CompassAngle(label string) (float64, error) {
	a, ok := r.compass[label]
	if !ok {
		return 0, &MissingDirectionError{Label: label}
	}
	return a, nil
}

// CartesianAngle returns the angle of label in standard mathematical
// convention, (450 − compass) mod 360 degrees.
func (r *Rose) CartesianAngle(label string) (float64, error) {
	a, ok := r.cartesian[label]
	if !ok {
		return 0, &MissingDirectionError{Label: label}
	}
	return a, nil
}

// Bearing returns the drawing bearing of label in radians: the cartesian
// angle shifted by −90° so that compass north points up the canvas.
func (r *Rose) Bearing(label string) (float64, error) {
	a, ok := r.cartesian[label]
	if !ok {
		return 0, &MissingDirectionError{Label: label}
	}
	return Radians(a - 90), nil
}

// Point returns the ring placement of label.
func (r *Rose) Point(label string) (curve.Point, error) {
	p, ok := r.points[label]
	if !ok {
		return curve.Point{}, &MissingDirectionError{Label: label}
	}
	return p, nil
}

// Ordered returns the direction labels sorted ascending by compass angle.
// This is the canonical circular order used for ring adjacency. The
// returned slice must not be modified.
func (r *Rose) Ordered() []string { return r.ordered }

// Index returns each label's position in the canonical ring order.
func (r *Rose) Index() map[string]int {
	idx := make(map[string]int, len(r.ordered))
	for i, label := range r.ordered {
		idx[label] = i
	}
	return idx
}

// CircularDistance measures how far around ring the travel from origin to
// destination is: clockwise steps for right-hand traffic, counter-clockwise
// for left-hand. The distance of a label to itself is zero; on a
// single-element ring the adjacency wraps to itself.
func CircularDistance(ring []string, origin, destination string, side Side) (int, error) {
	start := indexOf(ring, origin)
	if start < 0 {
		return 0, &MissingDirectionError{Label: origin}
	}
	end := indexOf(ring, destination)
	if end < 0 {
		return 0, &MissingDirectionError{Label: destination}
	}

	if side == RightHand {
		if end >= start {
			return end - start, nil
		}
		return len(ring) - start + end, nil
	}
	if start >= end {
		return start - end, nil
	}
	return len(ring) - end + start, nil
}

func indexOf(ring []string, label string) int {
	for i, l := range ring {
		if l == label {
			return i
		}
	}
	return -1
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// normalizeDegrees maps an angle into [0,360).
func normalizeDegrees(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
