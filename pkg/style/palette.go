package style

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap samples a named palette along [0,1]. Continuous maps blend
// between gradient stops in Lab space; qualitative maps pick the nearest
// discrete entry, so sampling at i/n walks the palette in order.
type Colormap struct {
	name        string
	stops       []colorful.Color
	qualitative bool
}

// Name returns the registered colormap name.
func (c Colormap) Name() string { return c.name }

// At samples the colormap at t, clamped to [0,1].
func (c Colormap) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	if c.qualitative {
		i := int(t * float64(len(c.stops)))
		if i >= len(c.stops) {
			i = len(c.stops) - 1
		}
		return c.stops[i]
	}

	pos := t * float64(len(c.stops)-1)
	i := int(pos)
	if i >= len(c.stops)-1 {
		return c.stops[len(c.stops)-1]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return c.stops[i]
	}
	return c.stops[i].BlendLab(c.stops[i+1], frac).Clamped()
}

// colormaps is the palette registry, keyed by lowercase name.
var colormaps = map[string]Colormap{
	"viridis": {
		name:  "viridis",
		stops: hexStops("#440154", "#414487", "#2a788e", "#22a884", "#7ad151", "#fde725"),
	},
	"plasma": {
		name:  "plasma",
		stops: hexStops("#0d0887", "#7e03a8", "#cc4778", "#f89441", "#f0f921"),
	},
	"coolwarm": {
		name:  "coolwarm",
		stops: hexStops("#3b4cc0", "#9abbff", "#dddddd", "#f49a7b", "#b40426"),
	},
	"spectral": {
		name:  "spectral",
		stops: hexStops("#9e0142", "#f46d43", "#ffffbf", "#66c2a5", "#5e4fa2"),
	},
	"set1": {
		name:        "set1",
		qualitative: true,
		stops: hexStops("#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
			"#ffff33", "#a65628", "#f781bf", "#999999"),
	},
	"set2": {
		name:        "set2",
		qualitative: true,
		stops: hexStops("#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
			"#ffd92f", "#e5c494", "#b3b3b3"),
	},
	"tab10": {
		name:        "tab10",
		qualitative: true,
		stops: hexStops("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"),
	},
}

// LookupColormap finds a registered colormap by name, case-insensitively.
func LookupColormap(name string) (Colormap, bool) {
	c, ok := colormaps[strings.ToLower(name)]
	return c, ok
}

// ColormapNames returns the registered colormap names, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hexStops(hexes ...string) []colorful.Color {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("style: bad palette stop " + h)
		}
		stops[i] = c
	}
	return stops
}
