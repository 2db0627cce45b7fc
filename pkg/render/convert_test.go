package render

import (
	"testing"

	"github.com/crossflow/crossflow/pkg/errors"
)

func TestConvertMissingBinary(t *testing.T) {
	// An empty PATH guarantees the converter lookup fails regardless of
	// what is installed on the host.
	t.Setenv("PATH", "")

	if _, err := ToPDF([]byte("<svg/>")); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("ToPDF error = %v, want code %s", err, errors.ErrCodeUnsupported)
	}
	if _, err := ToPNG([]byte("<svg/>"), 2.0); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("ToPNG error = %v, want code %s", err, errors.ErrCodeUnsupported)
	}
}
