package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/crossflow/crossflow/pkg/compass"
	"github.com/crossflow/crossflow/pkg/errors"
	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/style"
)

// Manifest is a fully resolved diagram description: the style
// configuration with file overrides applied on top of the defaults, and
// the flow matrix to plot.
type Manifest struct {
	Title  string
	Config style.Config
	Flows  flow.Matrix
}

// Load reads and parses a TOML manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading manifest %s", path)
	}
	return Parse(data)
}

// Parse parses TOML manifest data. Style keys not present in the file
// keep their default values; unknown keys are rejected so typos do not
// silently fall back to defaults.
func Parse(data []byte) (*Manifest, error) {
	var file fileSchema
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parsing manifest")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown manifest key %q", undecoded[0].String())
	}

	cfg := style.Default()
	cfg.LeftHandTraffic = file.LeftHandTraffic
	if len(file.Directions) > 0 {
		cfg.Directions = file.Directions
	}
	file.Style.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(file.Flows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest defines no flows")
	}

	directions := cfg.Directions
	if directions == nil {
		directions = compass.StandardDirections()
	}

	matrix := make(flow.Matrix, 0, len(file.Flows))
	for i, f := range file.Flows {
		if f.From == "" || f.To == "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "flow %d is missing from/to", i)
		}
		if _, ok := directions[f.From]; !ok {
			return nil, errors.New(errors.ErrCodeDirectionNotFound, "flow %d references unknown direction %q", i, f.From)
		}
		if _, ok := directions[f.To]; !ok {
			return nil, errors.New(errors.ErrCodeDirectionNotFound, "flow %d references unknown direction %q", i, f.To)
		}
		if f.Value < 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "flow %d has negative value %g", i, f.Value)
		}
		matrix = append(matrix, flow.Movement{From: f.From, To: f.To, Value: f.Value})
	}

	return &Manifest{
		Title:  file.Title,
		Config: cfg,
		Flows:  matrix,
	}, nil
}

type fileSchema struct {
	Title           string             `toml:"title"`
	LeftHandTraffic bool               `toml:"left_hand_traffic"`
	Directions      map[string]float64 `toml:"directions"`
	Style           styleSchema        `toml:"style"`
	Flows           []flowSchema       `toml:"flows"`
}

type flowSchema struct {
	From  string  `toml:"from"`
	To    string  `toml:"to"`
	Value float64 `toml:"value"`
}

// styleSchema mirrors style.Config with pointer fields, so absent keys
// are distinguishable from explicit zero values.
type styleSchema struct {
	Radius        *float64 `toml:"radius"`
	NodeScheme    *string  `toml:"node_scheme"`
	EdgeScheme    *string  `toml:"edge_scheme"`
	NodesAlpha    *float64 `toml:"nodes_alpha"`
	EdgesAlpha    *float64 `toml:"edges_alpha"`
	MinEdgeWidth  *float64 `toml:"min_edge_width"`
	MaxEdgeWidth  *float64 `toml:"max_edge_width"`
	RoadWidth     *float64 `toml:"road_width"`
	Crossbar      *bool    `toml:"crossbar"`
	CrossbarWidth *float64 `toml:"crossbar_width"`
	ExitArrow     *bool    `toml:"exit_arrow"`
	Centerline    *bool    `toml:"centerline"`
	Roadside      *bool    `toml:"roadside"`
	TextOffset    *float64 `toml:"text_offset"`
	DirectionText *bool    `toml:"direction_text"`
	DirectionFont *float64 `toml:"direction_font"`
	SumText       *bool    `toml:"sum_text"`
	SumFont       *float64 `toml:"sum_font"`
	MovementText  *bool    `toml:"movement_text"`
	MovementFont  *float64 `toml:"movement_font"`
}

func (s styleSchema) apply(cfg *style.Config) {
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setFloat(&cfg.Radius, s.Radius)
	if s.NodeScheme != nil {
		cfg.NodeScheme = *s.NodeScheme
	}
	if s.EdgeScheme != nil {
		cfg.EdgeScheme = *s.EdgeScheme
	}
	setFloat(&cfg.NodesAlpha, s.NodesAlpha)
	setFloat(&cfg.EdgesAlpha, s.EdgesAlpha)
	setFloat(&cfg.MinEdgeWidth, s.MinEdgeWidth)
	setFloat(&cfg.MaxEdgeWidth, s.MaxEdgeWidth)
	setFloat(&cfg.RoadWidth, s.RoadWidth)
	setBool(&cfg.Crossbar, s.Crossbar)
	setFloat(&cfg.CrossbarWidth, s.CrossbarWidth)
	setBool(&cfg.ExitArrow, s.ExitArrow)
	setBool(&cfg.Centerline, s.Centerline)
	setBool(&cfg.Roadside, s.Roadside)
	setFloat(&cfg.TextOffset, s.TextOffset)
	setBool(&cfg.DirectionText, s.DirectionText)
	setFloat(&cfg.DirectionFont, s.DirectionFont)
	setBool(&cfg.SumText, s.SumText)
	setFloat(&cfg.SumFont, s.SumFont)
	setBool(&cfg.MovementText, s.MovementText)
	setFloat(&cfg.MovementFont, s.MovementFont)
}
