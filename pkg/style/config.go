package style

import (
	"github.com/crossflow/crossflow/pkg/errors"
)

// Default knob values, matching the established look of the diagrams.
const (
	DefaultRadius        = 10.0
	DefaultNodeScheme    = "set2"
	DefaultNodesAlpha    = 0.7
	DefaultEdgesAlpha    = 0.7
	DefaultMinEdgeWidth  = 1.0
	DefaultMaxEdgeWidth  = 15.0
	DefaultRoadWidth     = 3.0
	DefaultCrossbarWidth = 20.0
	DefaultTextOffset    = 3.0
	DefaultDirectionFont = 20.0
	DefaultSumFont       = 10.0
	DefaultMovementFont  = 5.0
)

// Config is the immutable set of style knobs fixed at diagram
// construction and consumed read-only by every layout and draw step.
// The zero value is not usable; start from Default.
type Config struct {
	// Radius is the ring size the approach directions are placed on.
	Radius float64

	// Directions maps direction labels to compass angles in degrees.
	// Nil selects the standard 8-point compass.
	Directions map[string]float64

	// LeftHandTraffic flips the driving-side factor, the lane-fan
	// direction, and the exit-arrow side.
	LeftHandTraffic bool

	// NodeScheme names the color source for nodes and, when EdgeScheme is
	// empty, for edges via their origin direction. Either a continuous
	// colormap name or a flat color name.
	NodeScheme string

	// EdgeScheme optionally names a colormap that colors each edge by its
	// normalized value instead of its origin direction. Empty disables it.
	EdgeScheme string

	// NodesAlpha and EdgesAlpha are the layer opacities in [0,1].
	NodesAlpha float64
	EdgesAlpha float64

	// MinEdgeWidth and MaxEdgeWidth bound the linear width encoding.
	MinEdgeWidth float64
	MaxEdgeWidth float64

	// RoadWidth is the half-length of the roadway bar at each node and
	// the scale of lane offsets.
	RoadWidth float64

	// Crossbar toggles the bar overlay across each node; CrossbarWidth is
	// its stroke width.
	Crossbar      bool
	CrossbarWidth float64

	// ExitArrow toggles the directional arrow marker at each node.
	ExitArrow bool

	// Centerline toggles the dashed reference line at each node.
	Centerline bool

	// Roadside toggles the perimeter boundary around the intersection.
	Roadside bool

	// TextOffset displaces labels outward from their node.
	TextOffset float64

	// DirectionText, SumText and MovementText toggle the three label
	// layers; the *FontSize knobs size them.
	DirectionText bool
	DirectionFont float64
	SumText       bool
	SumFont       float64
	MovementText  bool
	MovementFont  float64
}

// Default returns the configuration with all knobs at their defaults.
func Default() Config {
	return Config{
		Radius:        DefaultRadius,
		NodeScheme:    DefaultNodeScheme,
		NodesAlpha:    DefaultNodesAlpha,
		EdgesAlpha:    DefaultEdgesAlpha,
		MinEdgeWidth:  DefaultMinEdgeWidth,
		MaxEdgeWidth:  DefaultMaxEdgeWidth,
		RoadWidth:     DefaultRoadWidth,
		CrossbarWidth: DefaultCrossbarWidth,
		ExitArrow:     true,
		Centerline:    true,
		Roadside:      true,
		TextOffset:    DefaultTextOffset,
		DirectionText: true,
		DirectionFont: DefaultDirectionFont,
		SumText:       true,
		SumFont:       DefaultSumFont,
		MovementText:  true,
		MovementFont:  DefaultMovementFont,
	}
}

// Validate checks the numeric knobs for consistency.
func (c Config) Validate() error {
	if c.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "radius must be positive, got %g", c.Radius)
	}
	if c.MinEdgeWidth <= 0 || c.MaxEdgeWidth < c.MinEdgeWidth {
		return errors.New(errors.ErrCodeInvalidConfig,
			"edge width range [%g,%g] must be positive and ordered", c.MinEdgeWidth, c.MaxEdgeWidth)
	}
	if c.RoadWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "road width must be positive, got %g", c.RoadWidth)
	}
	if c.NodesAlpha < 0 || c.NodesAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "nodes alpha %g outside [0,1]", c.NodesAlpha)
	}
	if c.EdgesAlpha < 0 || c.EdgesAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "edges alpha %g outside [0,1]", c.EdgesAlpha)
	}
	if c.TextOffset < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "text offset must not be negative, got %g", c.TextOffset)
	}
	return nil
}
