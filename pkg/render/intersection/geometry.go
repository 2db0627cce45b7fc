package intersection

import (
	"math"

	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/compass"
	"github.com/crossflow/crossflow/pkg/render"
)

// angleEps is the tolerance for treating two connection angles as
// directly opposite. Angles come from user-configured bearings, so exact
// float comparison would miss e.g. 0 vs 180.00000000001.
const angleEps = 1e-9

// loopArmFactor scales the control arms of self-loop curves relative to
// the ring radius. Negative: the arms extend away from the approach
// bearing, swinging the loop wide around the outside of the node.
const loopArmFactor = -5.0

// unit returns the unit vector at deg degrees in mathematical convention.
func unit(deg float64) curve.Vec2 {
	rad := compass.Radians(deg)
	return curve.Vec(math.Cos(rad), math.Sin(rad))
}

// bearingVec returns the unit vector of a drawing bearing in radians.
func bearingVec(bearing float64) curve.Vec2 {
	return curve.Vec(math.Cos(bearing), math.Sin(bearing))
}

// opposite reports whether two connection angles differ by a multiple of
// 180°, i.e. the directions face each other (or coincide) and a 3-point
// curve through them degenerates.
func opposite(angleA, angleB float64) bool {
	diff := math.Mod(math.Abs(angleB-angleA), 180)
	return diff < angleEps || 180-diff < angleEps
}

// rayIntersection returns the intersection of the rays leaving a at
// angleA and b at angleB. Parallel rays have no usable intersection.
func rayIntersection(a curve.Point, angleA float64, b curve.Point, angleB float64) (curve.Point, bool) {
	da := unit(angleA)
	db := unit(angleB)
	denom := da.Cross(db)
	if math.Abs(denom) < angleEps {
		return curve.Point{}, false
	}
	t := b.Sub(a).Cross(db) / denom
	return a.Translate(da.Mul(t)), true
}

// connect draws the connector from a to b with entry angle angleA and
// exit angle angleB (degrees, mathematical convention): a straight
// segment when the angles are directly opposite, otherwise a 3-point
// curve through the intersection of the two angle rays. A degenerate
// intersection falls back to the straight segment.
func connect(canvas render.Canvas, a, b curve.Point, angleA, angleB float64, s render.Stroke) {
	if opposite(angleA, angleB) {
		canvas.Line(a, b, s)
		return
	}
	ctrl, ok := rayIntersection(a, angleA, b, angleB)
	if !ok {
		canvas.Line(a, b, s)
		return
	}
	canvas.QuadCurve(a, ctrl, b, s)
}

// connectLoop draws a self-loop from a back to b (both anchors of the
// same direction) with symmetric control arms of length arm along the
// connection angle, producing a wide loop instead of a degenerate point.
func connectLoop(canvas render.Canvas, a, b curve.Point, angle, arm float64, s render.Stroke) {
	armVec := unit(angle).Mul(arm)
	canvas.CubicCurve(a, a.Translate(armVec), b.Translate(armVec), b, s)
}

// lowerHemisphere reports whether an angle in degrees points into the
// left/lower half of the ring, where labels must be flipped to stay
// readable.
func lowerHemisphere(angleDeg float64) bool {
	return angleDeg > 90 && angleDeg < 270
}
