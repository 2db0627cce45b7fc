package intersection

import (
	"image/color"

	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/compass"
	"github.com/crossflow/crossflow/pkg/errors"
	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/render"
	"github.com/crossflow/crossflow/pkg/style"
)

// frameFactor sizes the square drawing frame relative to the ring radius.
const frameFactor = 1.5

// Diagram renders origin-destination flow diagrams for one intersection
// layout. Construction resolves and validates everything that can fail:
// the direction rose, the color schemes, the per-direction colors. A
// Diagram is immutable after New and safe for concurrent Plot calls.
type Diagram struct {
	cfg        style.Config
	rose       *compass.Rose
	side       compass.Side
	edgeScheme *style.Scheme
	colors     map[string]color.Color
}

// New builds a Diagram from a style configuration. The direction map
// defaults to the standard 8-point compass when nil. Scheme names that
// resolve to neither a colormap nor a named color fail here, not at plot
// time.
func New(cfg style.Config) (*Diagram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	directions := cfg.Directions
	if directions == nil {
		directions = compass.StandardDirections()
	}
	rose, err := compass.New(directions, cfg.Radius)
	if err != nil {
		return nil, err
	}

	nodeScheme, err := style.ResolveScheme(cfg.NodeScheme)
	if err != nil {
		return nil, err
	}

	var edgeScheme *style.Scheme
	if cfg.EdgeScheme != "" {
		s, err := style.ResolveScheme(cfg.EdgeScheme)
		if err != nil {
			return nil, err
		}
		edgeScheme = &s
	}

	side := compass.RightHand
	if cfg.LeftHandTraffic {
		side = compass.LeftHand
	}

	// One color per direction, sampled at i/n in ring order. A flat
	// scheme assigns the same color everywhere.
	colors := make(map[string]color.Color, rose.Len())
	for i, label := range rose.Ordered() {
		colors[label] = nodeScheme.At(float64(i) / float64(rose.Len()))
	}

	return &Diagram{
		cfg:        cfg,
		rose:       rose,
		side:       side,
		edgeScheme: edgeScheme,
		colors:     colors,
	}, nil
}

// Rose returns the diagram's direction geometry.
func (d *Diagram) Rose() *compass.Rose { return d.rose }

// Side returns the configured driving side.
func (d *Diagram) Side() compass.Side { return d.side }

// Color returns the node color assigned to a direction label.
func (d *Diagram) Color(label string) (color.Color, bool) {
	c, ok := d.colors[label]
	return c, ok
}

// Plot completes and sorts the flow matrix, then issues all draw commands
// for it against canvas: frame first, then the flow edges, then the node
// layers (crossbar, arrow, labels, centerline, roadside perimeter).
//
// Every direction label in the matrix must be present in the configured
// direction map; an unknown label aborts the plot. The matrix may cover a
// strict subset of the configured directions, so one Diagram can render
// differently shaped intersections per call.
func (d *Diagram) Plot(canvas render.Canvas, matrix flow.Matrix) error {
	if len(matrix) == 0 {
		return errors.New(errors.ErrCodeInvalidMatrix, "flow matrix is empty")
	}

	completed := flow.Complete(matrix)
	sorted, err := flow.SortByRing(completed, d.rose.Ordered())
	if err != nil {
		return err
	}
	directions := sorted.Directions()

	lim := frameFactor * d.cfg.Radius
	canvas.Frame(curve.Pt(-lim, -lim), curve.Pt(lim, lim))

	minValue, maxValue, err := sorted.MinMax()
	if err != nil {
		return err
	}
	widths := flow.NewScale(minValue, maxValue, d.cfg.MinEdgeWidth, d.cfg.MaxEdgeWidth)

	if err := d.plotEdges(canvas, sorted, directions, widths); err != nil {
		return err
	}
	return d.plotNodes(canvas, sorted, directions)
}
