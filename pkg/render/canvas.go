package render

import (
	"image/color"

	"honnef.co/go/curve"
)

// Stroke carries the style attributes of a line or curve command.
type Stroke struct {
	Color  color.Color
	Width  float64 // device pixels
	Alpha  float64 // [0,1]
	Dashed bool
}

// Fill carries the style attributes of a filled polygon command.
type Fill struct {
	Color color.Color
	Alpha float64 // [0,1]
}

// Align is the horizontal anchoring of a text command relative to its
// position. Text is always centered vertically.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// TextStyle carries the style attributes of a text command.
type TextStyle struct {
	Color    color.Color
	Size     float64 // device pixels
	Rotation float64 // degrees counter-clockwise
	Align    Align
}

// Canvas is the external 2D drawing surface the diagram issues commands
// to. Frame is always the first command of a plot and declares the world
// bounds; everything after it draws in world coordinates.
//
// Implementations must tolerate any command order after Frame and must
// not retain the points slices passed to Polygon.
type Canvas interface {
	// Frame declares the world bounds of the drawing and hides any axis
	// chrome the surface would otherwise show.
	Frame(min, max curve.Point)

	// Line draws a straight segment from a to b.
	Line(a, b curve.Point, s Stroke)

	// QuadCurve draws a quadratic Bézier from a to b through control ctrl.
	QuadCurve(a, ctrl, b curve.Point, s Stroke)

	// CubicCurve draws a cubic Bézier from a to b with controls c1, c2.
	CubicCurve(a, c1, c2, b curve.Point, s Stroke)

	// Polygon fills the closed polygon through pts.
	Polygon(pts []curve.Point, f Fill)

	// Text draws a string anchored at pos.
	Text(pos curve.Point, text string, ts TextStyle)
}
