package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/fonts"
	"github.com/crossflow/crossflow/pkg/render"
	"github.com/crossflow/crossflow/pkg/render/intersection"
)

// DefaultSize is the output edge length in pixels when no option
// overrides it. Diagrams are always square.
const DefaultSize = 640

// SVGOption configures SVG rendering.
type SVGOption func(*SVG)

// WithSize sets the output edge length in pixels.
func WithSize(px int) SVGOption {
	return func(s *SVG) { s.size = float64(px) }
}

// SVG is a drawing surface that records diagram commands as SVG
// elements. The zero value is not usable; use NewSVG. An SVG is good for
// a single plot: create one per render.
type SVG struct {
	size float64
	buf  bytes.Buffer

	// World-to-pixel mapping, fixed by the Frame command.
	scale      float64
	minX, maxY float64
}

// NewSVG returns an empty SVG surface.
func NewSVG(opts ...SVGOption) *SVG {
	s := &SVG{size: DefaultSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bytes returns the complete SVG document for the commands recorded so
// far.
func (s *SVG) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		s.size, s.size, s.size, s.size)
	fmt.Fprintf(&out, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")
	out.Write(s.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// Frame fixes the world-to-pixel mapping: world y grows upward, SVG y
// grows downward, so y is flipped around the frame top.
func (s *SVG) Frame(min, max curve.Point) {
	s.scale = s.size / (max.X - min.X)
	s.minX = min.X
	s.maxY = max.Y
}

func (s *SVG) px(p curve.Point) (float64, float64) {
	return (p.X - s.minX) * s.scale, (s.maxY - p.Y) * s.scale
}

func (s *SVG) Line(a, b curve.Point, st render.Stroke) {
	ax, ay := s.px(a)
	bx, by := s.px(b)
	fmt.Fprintf(&s.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n",
		ax, ay, bx, by, strokeAttrs(st))
}

func (s *SVG) QuadCurve(a, ctrl, b curve.Point, st render.Stroke) {
	ax, ay := s.px(a)
	cx, cy := s.px(ctrl)
	bx, by := s.px(b)
	fmt.Fprintf(&s.buf, `  <path d="M %.2f %.2f Q %.2f %.2f %.2f %.2f" fill="none"%s/>`+"\n",
		ax, ay, cx, cy, bx, by, strokeAttrs(st))
}

func (s *SVG) CubicCurve(a, c1, c2, b curve.Point, st render.Stroke) {
	ax, ay := s.px(a)
	c1x, c1y := s.px(c1)
	c2x, c2y := s.px(c2)
	bx, by := s.px(b)
	fmt.Fprintf(&s.buf, `  <path d="M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f" fill="none"%s/>`+"\n",
		ax, ay, c1x, c1y, c2x, c2y, bx, by, strokeAttrs(st))
}

func (s *SVG) Polygon(pts []curve.Point, f render.Fill) {
	parts := make([]string, len(pts))
	for i, p := range pts {
		x, y := s.px(p)
		parts[i] = fmt.Sprintf("%.2f,%.2f", x, y)
	}
	fmt.Fprintf(&s.buf, `  <polygon points="%s" fill="%s" fill-opacity="%.2f"/>`+"\n",
		strings.Join(parts, " "), hexColor(f.Color), f.Alpha)
}

func (s *SVG) Text(pos curve.Point, text string, ts render.TextStyle) {
	x, y := s.px(pos)

	anchor := "middle"
	switch ts.Align {
	case render.AlignLeft:
		anchor = "start"
	case render.AlignRight:
		anchor = "end"
	}

	// SVG rotation is clockwise in screen coordinates; the flipped y axis
	// makes a negative angle match the counter-clockwise world rotation.
	transform := ""
	if ts.Rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, -ts.Rotation, x, y)
	}

	fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="middle"%s>%s</text>`+"\n",
		x, y, fonts.FallbackFamily, ts.Size, hexColor(ts.Color), anchor, transform, escapeText(text))
}

// RenderSVG plots a flow matrix on a fresh SVG surface and returns the
// document.
func RenderSVG(d *intersection.Diagram, m flow.Matrix, opts ...SVGOption) ([]byte, error) {
	s := NewSVG(opts...)
	if err := d.Plot(s, m); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func strokeAttrs(st render.Stroke) string {
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"`,
		hexColor(st.Color), st.Width, st.Alpha)
	if st.Dashed {
		attrs += ` stroke-dasharray="6 4"`
	}
	return attrs
}

func hexColor(c color.Color) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(text string) string {
	return textEscaper.Replace(text)
}
