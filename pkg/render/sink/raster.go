package sink

import (
	"bytes"
	"image"

	"github.com/fogleman/gg"
	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/errors"
	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/fonts"
	"github.com/crossflow/crossflow/pkg/render"
	"github.com/crossflow/crossflow/pkg/render/intersection"
)

// RasterOption configures raster rendering.
type RasterOption func(*Raster)

// WithRasterSize sets the output edge length in pixels.
func WithRasterSize(px int) RasterOption {
	return func(r *Raster) { r.size = px }
}

// Raster is a drawing surface that rasterizes diagram commands into an
// in-process image, with no external tools involved. Like SVG it serves
// a single plot.
type Raster struct {
	size int
	dc   *gg.Context

	scale      float64
	minX, maxY float64
	textErr    error
}

// NewRaster returns an empty raster surface.
func NewRaster(opts ...RasterOption) *Raster {
	r := &Raster{size: DefaultSize}
	for _, opt := range opts {
		opt(r)
	}
	r.dc = gg.NewContext(r.size, r.size)
	return r
}

// Image returns the rasterized image for the commands recorded so far.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG returns the rasterized image encoded as PNG.
func (r *Raster) EncodePNG() ([]byte, error) {
	if r.textErr != nil {
		return nil, r.textErr
	}
	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}

func (r *Raster) Frame(min, max curve.Point) {
	r.scale = float64(r.size) / (max.X - min.X)
	r.minX = min.X
	r.maxY = max.Y

	r.dc.SetRGB(1, 1, 1)
	r.dc.Clear()
	r.dc.SetLineCapButt()
}

func (r *Raster) px(p curve.Point) (float64, float64) {
	return (p.X - r.minX) * r.scale, (r.maxY - p.Y) * r.scale
}

func (r *Raster) setStroke(s render.Stroke) {
	cr, cg, cb, _ := s.Color.RGBA()
	r.dc.SetRGBA(float64(cr)/65535, float64(cg)/65535, float64(cb)/65535, s.Alpha)
	r.dc.SetLineWidth(s.Width)
	if s.Dashed {
		r.dc.SetDash(6, 4)
	} else {
		r.dc.SetDash()
	}
}

func (r *Raster) Line(a, b curve.Point, s render.Stroke) {
	ax, ay := r.px(a)
	bx, by := r.px(b)
	r.setStroke(s)
	r.dc.DrawLine(ax, ay, bx, by)
	r.dc.Stroke()
}

func (r *Raster) QuadCurve(a, ctrl, b curve.Point, s render.Stroke) {
	ax, ay := r.px(a)
	cx, cy := r.px(ctrl)
	bx, by := r.px(b)
	r.setStroke(s)
	r.dc.MoveTo(ax, ay)
	r.dc.QuadraticTo(cx, cy, bx, by)
	r.dc.Stroke()
}

func (r *Raster) CubicCurve(a, c1, c2, b curve.Point, s render.Stroke) {
	ax, ay := r.px(a)
	c1x, c1y := r.px(c1)
	c2x, c2y := r.px(c2)
	bx, by := r.px(b)
	r.setStroke(s)
	r.dc.MoveTo(ax, ay)
	r.dc.CubicTo(c1x, c1y, c2x, c2y, bx, by)
	r.dc.Stroke()
}

func (r *Raster) Polygon(pts []curve.Point, f render.Fill) {
	if len(pts) == 0 {
		return
	}
	cr, cg, cb, _ := f.Color.RGBA()
	r.dc.SetRGBA(float64(cr)/65535, float64(cg)/65535, float64(cb)/65535, f.Alpha)
	x, y := r.px(pts[0])
	r.dc.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = r.px(p)
		r.dc.LineTo(x, y)
	}
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *Raster) Text(pos curve.Point, text string, ts render.TextStyle) {
	face, err := fonts.Face(ts.Size)
	if err != nil {
		// Surface the first failure from EncodePNG; Canvas methods do not
		// return errors.
		if r.textErr == nil {
			r.textErr = errors.Wrap(errors.ErrCodeInternal, err, "loading label font")
		}
		return
	}
	defer face.Close()

	x, y := r.px(pos)
	cr, cg, cb, _ := ts.Color.RGBA()
	r.dc.SetRGBA(float64(cr)/65535, float64(cg)/65535, float64(cb)/65535, 1)
	r.dc.SetFontFace(face)

	ax := 0.5
	switch ts.Align {
	case render.AlignLeft:
		ax = 0
	case render.AlignRight:
		ax = 1
	}

	r.dc.Push()
	if ts.Rotation != 0 {
		r.dc.RotateAbout(gg.Radians(-ts.Rotation), x, y)
	}
	r.dc.DrawStringAnchored(text, x, y, ax, 0.5)
	r.dc.Pop()
}

// RenderRasterPNG plots a flow matrix on a fresh raster surface and
// returns the PNG-encoded image. Unlike RenderPNG this needs no external
// converter.
func RenderRasterPNG(d *intersection.Diagram, m flow.Matrix, opts ...RasterOption) ([]byte, error) {
	r := NewRaster(opts...)
	if err := d.Plot(r, m); err != nil {
		return nil, err
	}
	return r.EncodePNG()
}
