package fonts

import "testing"

func TestFace(t *testing.T) {
	face, err := Face(20)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	defer face.Close()

	bounds, advance, ok := face.GlyphBounds('N')
	if !ok {
		t.Fatal("no glyph for 'N'")
	}
	if bounds.Max.X <= bounds.Min.X || advance <= 0 {
		t.Errorf("degenerate glyph metrics: bounds=%v advance=%v", bounds, advance)
	}
}

func TestFaceSizes(t *testing.T) {
	small, err := Face(5)
	if err != nil {
		t.Fatalf("Face(5) error = %v", err)
	}
	defer small.Close()
	large, err := Face(20)
	if err != nil {
		t.Fatalf("Face(20) error = %v", err)
	}
	defer large.Close()

	if small.Metrics().Height >= large.Metrics().Height {
		t.Errorf("face heights not ordered: %v >= %v", small.Metrics().Height, large.Metrics().Height)
	}
}
