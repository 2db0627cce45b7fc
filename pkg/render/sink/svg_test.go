package sink

import (
	"image/color"
	"strings"
	"testing"

	"honnef.co/go/curve"

	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/render"
	"github.com/crossflow/crossflow/pkg/render/intersection"
	"github.com/crossflow/crossflow/pkg/style"
)

func testDiagram(t *testing.T) *intersection.Diagram {
	t.Helper()
	cfg := style.Default()
	cfg.Directions = map[string]float64{"N": 0, "E": 90, "S": 180, "W": 270}
	d, err := intersection.New(cfg)
	if err != nil {
		t.Fatalf("intersection.New() error = %v", err)
	}
	return d
}

func testMatrix() flow.Matrix {
	return flow.Matrix{
		{From: "N", To: "E", Value: 500},
		{From: "E", To: "W", Value: 300},
		{From: "S", To: "N", Value: 400},
	}
}

func TestRenderSVG(t *testing.T) {
	out, err := RenderSVG(testDiagram(t), testMatrix())
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	svg := string(out)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output does not start with an svg element")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not closed")
	}
	if !strings.Contains(svg, `viewBox="0 0 640 640"`) {
		t.Error("default size not applied to viewBox")
	}
	for _, want := range []string{"<line ", "<path ", "<polygon ", "<text "} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %s elements", want)
		}
	}
	// Direction labels and volume sums survive into the document.
	for _, want := range []string{">N</text>", "∑ out: 500", "∑ in: 500"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderSVGSize(t *testing.T) {
	out, err := RenderSVG(testDiagram(t), testMatrix(), WithSize(1280))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(out), `width="1280" height="1280"`) {
		t.Error("WithSize(1280) not reflected in output")
	}
}

func TestSVGCoordinateMapping(t *testing.T) {
	s := NewSVG(WithSize(100))
	s.Frame(curve.Pt(-10, -10), curve.Pt(10, 10))
	s.Line(curve.Pt(-10, 10), curve.Pt(10, -10), render.Stroke{Color: color.Black, Width: 1, Alpha: 1})

	svg := string(s.Bytes())
	// World top-left maps to pixel origin, world bottom-right to the far
	// corner: y is flipped.
	if !strings.Contains(svg, `x1="0.00" y1="0.00"`) {
		t.Errorf("world (-10,10) did not map to pixel (0,0):\n%s", svg)
	}
	if !strings.Contains(svg, `x2="100.00" y2="100.00"`) {
		t.Errorf("world (10,-10) did not map to pixel (100,100):\n%s", svg)
	}
}

func TestSVGTextEscaping(t *testing.T) {
	s := NewSVG()
	s.Frame(curve.Pt(-10, -10), curve.Pt(10, 10))
	s.Text(curve.Pt(0, 0), "A&B <toll>", render.TextStyle{Color: color.Black, Size: 10})

	svg := string(s.Bytes())
	if !strings.Contains(svg, "A&amp;B &lt;toll&gt;") {
		t.Errorf("text not escaped:\n%s", svg)
	}
}

func TestSVGDashedStroke(t *testing.T) {
	s := NewSVG()
	s.Frame(curve.Pt(-10, -10), curve.Pt(10, 10))
	s.Line(curve.Pt(0, 0), curve.Pt(1, 1), render.Stroke{Color: color.Black, Width: 2, Alpha: 1, Dashed: true})

	if !strings.Contains(string(s.Bytes()), "stroke-dasharray") {
		t.Error("dashed stroke missing stroke-dasharray")
	}
}

func TestRenderRasterPNG(t *testing.T) {
	out, err := RenderRasterPNG(testDiagram(t), testMatrix(), WithRasterSize(200))
	if err != nil {
		t.Fatalf("RenderRasterPNG() error = %v", err)
	}
	if len(out) < 8 || string(out[1:4]) != "PNG" {
		t.Fatal("output is not a PNG")
	}
}

func TestRasterImageSize(t *testing.T) {
	r := NewRaster(WithRasterSize(320))
	if err := testDiagram(t).Plot(r, testMatrix()); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}
	bounds := r.Image().Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 320 {
		t.Errorf("image bounds = %v, want 320x320", bounds)
	}
}
