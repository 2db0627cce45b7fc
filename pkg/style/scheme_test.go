package style

import (
	"testing"

	"github.com/crossflow/crossflow/pkg/errors"
)

func TestResolveScheme(t *testing.T) {
	tests := []struct {
		name     string
		scheme   string
		wantKind SchemeKind
		wantErr  bool
	}{
		{"QualitativeColormap", "set2", SchemeContinuous, false},
		{"ContinuousColormap", "viridis", SchemeContinuous, false},
		{"CaseInsensitiveColormap", "Viridis", SchemeContinuous, false},
		{"FlatColor", "steelblue", SchemeFlat, false},
		{"FlatColorMixedCase", "SteelBlue", SchemeFlat, false},
		{"Unknown", "sunset-boulevard", 0, true},
		{"Empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ResolveScheme(tt.scheme)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveScheme(%q) error = %v, wantErr %v", tt.scheme, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidScheme) {
					t.Errorf("error code = %v, want INVALID_SCHEME", errors.GetCode(err))
				}
				return
			}
			if s.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", s.Kind(), tt.wantKind)
			}
		})
	}
}

func TestFlatSchemeIgnoresT(t *testing.T) {
	s, err := ResolveScheme("black")
	if err != nil {
		t.Fatalf("ResolveScheme() error = %v", err)
	}

	r0, g0, b0, _ := s.At(0).RGBA()
	r1, g1, b1, _ := s.At(1).RGBA()
	if r0 != r1 || g0 != g1 || b0 != b1 {
		t.Error("flat scheme sampled different colors for different t")
	}
}

func TestColormapAt(t *testing.T) {
	cmap, ok := LookupColormap("viridis")
	if !ok {
		t.Fatal("viridis not registered")
	}

	// Endpoints hit the first and last stop exactly.
	first := cmap.At(0)
	if first.Hex() != "#440154" {
		t.Errorf("At(0) = %s, want #440154", first.Hex())
	}
	last := cmap.At(1)
	if last.Hex() != "#fde725" {
		t.Errorf("At(1) = %s, want #fde725", last.Hex())
	}

	// Out-of-range samples clamp.
	if cmap.At(-1).Hex() != first.Hex() {
		t.Error("At(-1) did not clamp to At(0)")
	}
	if cmap.At(2).Hex() != last.Hex() {
		t.Error("At(2) did not clamp to At(1)")
	}
}

func TestQualitativeColormapWalksInOrder(t *testing.T) {
	cmap, ok := LookupColormap("set2")
	if !ok {
		t.Fatal("set2 not registered")
	}

	// Sampling at i/n for n ≤ palette size yields distinct colors.
	n := 4
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		hex := cmap.At(float64(i) / float64(n)).Hex()
		if seen[hex] {
			t.Errorf("color %s repeated at index %d", hex, i)
		}
		seen[hex] = true
	}
}

func TestColormapNames(t *testing.T) {
	names := ColormapNames()
	if len(names) == 0 {
		t.Fatal("no colormaps registered")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"NegativeRadius", func(c *Config) { c.Radius = -1 }, true},
		{"InvertedWidths", func(c *Config) { c.MinEdgeWidth = 10; c.MaxEdgeWidth = 2 }, true},
		{"ZeroRoadWidth", func(c *Config) { c.RoadWidth = 0 }, true},
		{"AlphaTooLarge", func(c *Config) { c.EdgesAlpha = 1.5 }, true},
		{"NegativeTextOffset", func(c *Config) { c.TextOffset = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}
