package intersection

import (
	"image/color"
	"math"

	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/compass"
	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/render"
)

// centerlineLength is the world-unit length of the dashed centerline
// drawn inward from each node.
const centerlineLength = 2.0

// boundaryStroke is the stroke of the roadside perimeter and centerline.
var boundaryStroke = render.Stroke{Color: color.Black, Width: 2, Alpha: 1}

// roadsideAnchor holds the two lane-edge anchor points of one direction
// and the connection angle shared by both. The anchors live only for the
// duration of a single plot call, keeping Plot reentrant.
type roadsideAnchor struct {
	right curve.Point
	left  curve.Point
	angle float64
}

// plotNodes draws the per-direction node layers (crossbar, exit arrow,
// direction label, centerline, movement sums) and closes the roadside
// perimeter around the ring.
func (d *Diagram) plotNodes(canvas render.Canvas, matrix flow.Matrix, directions []string) error {
	outbound, inbound := matrix.Totals()

	anchors := make(map[string]roadsideAnchor, len(directions))
	for _, label := range directions {
		point, err := d.rose.Point(label)
		if err != nil {
			return err
		}
		bearing, _ := d.rose.Bearing(label)
		angle, _ := d.rose.CartesianAngle(label)
		bearingDeg := compass.Degrees(bearing)
		roadDelta := bearingVec(bearing).Mul(d.cfg.RoadWidth)

		if d.cfg.Crossbar {
			canvas.Line(point.Translate(roadDelta.Negate()), point.Translate(roadDelta), render.Stroke{
				Color: d.colors[label],
				Width: d.cfg.CrossbarWidth,
				Alpha: d.cfg.NodesAlpha,
			})
		}

		if d.cfg.ExitArrow {
			d.exitArrow(canvas, label, point, bearing, roadDelta)
		}

		if d.cfg.DirectionText {
			rotation := bearingDeg
			if lowerHemisphere(bearingDeg) {
				rotation = bearingDeg - 180
			}
			at := point.Translate(bearingVec(bearing + math.Pi/2).Mul(d.cfg.TextOffset))
			canvas.Text(at, label, render.TextStyle{
				Color:    d.colors[label],
				Size:     d.cfg.DirectionFont,
				Rotation: rotation,
				Align:    render.AlignCenter,
			})
		}

		if d.cfg.Centerline {
			delta := bearingVec(bearing + math.Pi/2).Mul(centerlineLength)
			stroke := boundaryStroke
			stroke.Dashed = true
			canvas.Line(point.Translate(delta.Negate()), point, stroke)
		}

		if d.cfg.Roadside {
			anchors[label] = roadsideAnchor{
				right: point.Translate(roadDelta.Negate()),
				left:  point.Translate(roadDelta),
				angle: angle,
			}
		}

		if d.cfg.SumText {
			d.sumLabel(canvas, point, bearing, bearingDeg, outbound[label], inbound[label])
		}
	}

	if d.cfg.Roadside {
		d.roadside(canvas, directions, anchors)
	}
	return nil
}

// exitArrow draws the directional triangle marking the side of the road
// traffic exits on. The driving-side factor mirrors it for left-hand
// traffic.
func (d *Diagram) exitArrow(canvas render.Canvas, label string, point curve.Point, bearing float64, roadDelta curve.Vec2) {
	factor := d.side.Factor()
	tip := bearingVec(bearing + compass.Radians(factor*90))
	middle := roadDelta.Div(2).Add(tip)
	canvas.Polygon([]curve.Point{
		point,
		point.Translate(roadDelta.Mul(factor)),
		point.Translate(middle.Mul(factor)),
	}, render.Fill{Color: d.colors[label], Alpha: d.cfg.NodesAlpha})
}

// sumLabel annotates a node with its total outbound and inbound volume.
// Outbound is the row sum of the direction as origin and inbound the
// column sum as destination, so the figures match the movement values
// leaving and entering the approach. Reading order follows the driving
// side so the outbound figure sits on the exit half of the roadway bar,
// and the label flips on the lower hemisphere like every other text
// layer.
func (d *Diagram) sumLabel(canvas render.Canvas, point curve.Point, bearing, bearingDeg, out, in float64) {
	outText := "∑ out: " + formatValue(out)
	inText := "∑ in: " + formatValue(in)

	rotation := bearingDeg
	flipped := lowerHemisphere(bearingDeg)
	if flipped {
		rotation = bearingDeg - 180
	}

	leftHand := d.side == compass.LeftHand
	var text string
	if flipped != leftHand {
		text = outText + " | " + inText + "  "
	} else {
		text = "  " + inText + " | " + outText
	}

	at := point.Translate(bearingVec(bearing + math.Pi/2).Mul(d.cfg.TextOffset / 2))
	canvas.Text(at, text, render.TextStyle{
		Color:    color.Black,
		Size:     d.cfg.SumFont,
		Rotation: rotation,
		Align:    render.AlignCenter,
	})
}

// roadside closes the perimeter boundary: each direction's left anchor
// connects to the next ring member's right anchor with the usual
// straight/curved selection. A single direction wraps to itself.
func (d *Diagram) roadside(canvas render.Canvas, directions []string, anchors map[string]roadsideAnchor) {
	for i, label := range directions {
		next := directions[(i+1)%len(directions)]
		from := anchors[label]
		to := anchors[next]
		connect(canvas, from.left, to.right, from.angle, to.angle, boundaryStroke)
	}
}
