package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/crossflow/crossflow/pkg/errors"
)

// converterBin is the external SVG converter the PDF and scaled-PNG
// paths shell out to. Ships with librsvg (brew install librsvg on
// macOS, apt install librsvg2-bin on Linux).
const converterBin = "rsvg-convert"

// ToPDF converts rendered SVG bytes to PDF via rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts rendered SVG bytes to PNG via rsvg-convert. Scale is a
// resolution multiplier; 2.0 doubles the pixel dimensions.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func convert(svg []byte, format string, extra ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterBin); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export needs %s (librsvg); install it and retry", format, converterBin)
	}

	var out, stderr bytes.Buffer
	cmd := exec.Command(converterBin, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s conversion failed: %s", format, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
