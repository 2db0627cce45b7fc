// Package fonts provides the typeface used for diagram labels.
//
// Raster output draws text with the Go Regular font shipped in
// golang.org/x/image, so no font files need to exist on the host. SVG
// output references the same family by name and falls back to whatever
// sans-serif the viewer has.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family is the CSS font-family name for SVG text elements.
const Family = "Go"

// FallbackFamily provides fallbacks for viewers without the Go fonts.
const FallbackFamily = `'Go', 'Helvetica Neue', 'Arial', sans-serif`

var (
	parsedOnce sync.Once
	parsed     *opentype.Font
	parseErr   error
)

// Face returns a font face of the embedded Go Regular typeface at the
// given size in pixels. Each call builds a fresh face; faces are not
// safe for concurrent use, the parsed font behind them is.
func Face(size float64) (font.Face, error) {
	parsedOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
