package style

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/crossflow/crossflow/pkg/errors"
)

// SchemeKind discriminates the two ways a scheme name can resolve.
type SchemeKind int

const (
	// SchemeContinuous samples a colormap along [0,1].
	SchemeContinuous SchemeKind = iota
	// SchemeFlat applies one named color uniformly.
	SchemeFlat
)

// Scheme is a resolved color source: either a continuous colormap or a
// flat color. Resolution happens once, at diagram construction; sampling
// is cheap and allocation-free afterwards.
type Scheme struct {
	kind SchemeKind
	name string
	cmap Colormap
	flat colorful.Color
}

// ResolveScheme resolves a scheme name. Colormap names win over color
// names; a name matching neither a registered colormap nor an SVG 1.1
// color is a configuration error.
func ResolveScheme(name string) (Scheme, error) {
	if cmap, ok := LookupColormap(name); ok {
		return Scheme{kind: SchemeContinuous, name: cmap.Name(), cmap: cmap}, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(name)]; ok {
		flat, _ := colorful.MakeColor(rgba)
		return Scheme{kind: SchemeFlat, name: strings.ToLower(name), flat: flat}, nil
	}
	return Scheme{}, errors.New(errors.ErrCodeInvalidScheme,
		"%q is neither a known colormap nor a named color", name)
}

// Kind returns whether the scheme is continuous or flat.
func (s Scheme) Kind() SchemeKind { return s.kind }

// Name returns the resolved scheme name.
func (s Scheme) Name() string { return s.name }

// At samples the scheme at t in [0,1]. Flat schemes ignore t.
func (s Scheme) At(t float64) color.Color {
	if s.kind == SchemeFlat {
		return s.flat
	}
	return s.cmap.At(t)
}
