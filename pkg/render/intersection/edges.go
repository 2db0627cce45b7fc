package intersection

import (
	"image/color"
	"strconv"

	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/compass"
	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/render"
)

// plotEdges draws one connector per matrix entry, fanned into distinct
// lane offsets along each node's roadway bar.
//
// The lane offset grows with the circular distance between origin and
// destination: edges sharing an approach diverge further apart the
// further around the ring they travel, so parallel movements do not
// overlap. The origin offset is negated relative to the destination
// offset and both are flipped by the driving-side factor, putting lanes
// on the correct side of the road centerline.
func (d *Diagram) plotEdges(canvas render.Canvas, matrix flow.Matrix, directions []string, widths flow.Scale) error {
	factor := d.side.Factor()
	for _, mv := range matrix {
		originPoint, err := d.rose.Point(mv.From)
		if err != nil {
			return err
		}
		destPoint, err := d.rose.Point(mv.To)
		if err != nil {
			return err
		}
		originBearing, _ := d.rose.Bearing(mv.From)
		destBearing, _ := d.rose.Bearing(mv.To)
		angleA, _ := d.rose.CartesianAngle(mv.From)
		angleB, _ := d.rose.CartesianAngle(mv.To)

		distance, err := compass.CircularDistance(directions, mv.From, mv.To, d.side)
		if err != nil {
			return err
		}
		offset := float64(distance+1) / float64(len(directions)+1) * d.cfg.RoadWidth

		origin := originPoint.Translate(bearingVec(originBearing).Mul(-factor * offset))
		dest := destPoint.Translate(bearingVec(destBearing).Mul(factor * offset))

		stroke := render.Stroke{
			Color: d.edgeColor(mv, widths),
			Width: widths.Map(mv.Value),
			Alpha: d.cfg.EdgesAlpha,
		}

		if mv.From == mv.To {
			connectLoop(canvas, origin, dest, angleA, loopArmFactor*d.cfg.Radius, stroke)
		} else {
			connect(canvas, origin, dest, angleA, angleB, stroke)
		}

		if d.cfg.MovementText {
			d.movementLabel(canvas, origin, angleA, mv.Value)
		}
	}
	return nil
}

// edgeColor picks the edge color: the origin direction's node color, or a
// value-normalized sample of the edge colormap when one is configured.
func (d *Diagram) edgeColor(mv flow.Movement, widths flow.Scale) color.Color {
	if d.edgeScheme == nil {
		return d.colors[mv.From]
	}
	return d.edgeScheme.At(widths.Normalize(mv.Value))
}

// movementLabel annotates an edge with its volume at the origin anchor,
// rotated along the approach and flipped on the lower hemisphere so the
// text never renders upside down.
func (d *Diagram) movementLabel(canvas render.Canvas, at curve.Point, originAngle, value float64) {
	rotation := originAngle
	align := render.AlignLeft
	if lowerHemisphere(originAngle) {
		rotation = originAngle - 180
		align = render.AlignRight
	}
	canvas.Text(at, formatValue(value), render.TextStyle{
		Color:    color.Black,
		Size:     d.cfg.MovementFont,
		Rotation: rotation,
		Align:    align,
	})
}

// formatValue renders a volume without a trailing ".0" for whole numbers.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
