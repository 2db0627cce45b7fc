package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crossflow/crossflow/pkg/cache"
	"github.com/crossflow/crossflow/pkg/flow"
	"github.com/crossflow/crossflow/pkg/manifest"
	"github.com/crossflow/crossflow/pkg/render/intersection"
	"github.com/crossflow/crossflow/pkg/render/sink"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"

	// artifactTTL bounds how long rendered artifacts stay cached.
	artifactTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (single format) or base path (multiple)
	formats []string // output formats: "svg", "png", "pdf"
	size    int      // output edge length in pixels
	scale   float64  // resolution multiplier for rsvg PNG conversion
	raster  bool     // rasterize PNG in-process instead of via rsvg-convert
	noCache bool     // bypass the artifact cache
}

// renderCommand creates the render command for generating diagrams.
//
// Default settings:
//   - format: svg
//   - size: 640px square
//   - PNG via rsvg-convert at 2x resolution (--raster switches to the
//     in-process rasterizer, which needs no external tools)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{size: sink.DefaultSize, scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render an intersection diagram from a TOML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "output edge length in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier (rsvg conversion only)")
	cmd.Flags().BoolVar(&opts.raster, "raster", false, "rasterize PNG in-process instead of via rsvg-convert")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, .pdf), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file path for one rendered format. An explicit
// --output wins when only a single format is requested.
func outputPath(base, output string, formats []string, format string) string {
	if output != "" && len(formats) == 1 {
		return output
	}
	return base + "." + format
}

// runRender loads the manifest, builds the diagram and writes every
// requested format next to the input (or to --output).
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	c.Logger.Infof("Rendering %s", input)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return err
	}

	d, err := intersection.New(m.Config)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded manifest: %d flows, %d directions", len(m.Flows), d.Rose().Len())
	if m.Title != "" {
		printInfo("%s", m.Title)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	p := newProgress(c.Logger)
	base := basePath(opts.output, input)

	for _, format := range opts.formats {
		artifact, hit, err := c.renderArtifact(ctx, store, data, d, m.Flows, format, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		if hit {
			c.Logger.Debugf("Cache hit for %s", format)
		}

		path := outputPath(base, opts.output, opts.formats, format)
		if err := os.WriteFile(path, artifact, 0o644); err != nil {
			return err
		}
		printFile(path, hit)
	}

	p.done(fmt.Sprintf("Rendered %d file(s)", len(opts.formats)))
	return nil
}

// renderArtifact returns the rendered bytes for one format, consulting
// the artifact cache first. The key covers the raw manifest, the format
// variant and every flag that changes the output bytes, so any edit or
// flag change re-renders.
func (c *CLI) renderArtifact(ctx context.Context, store cache.Cache, manifestData []byte, d *intersection.Diagram, flows flow.Matrix, format string, opts *renderOpts) ([]byte, bool, error) {
	key := cache.ArtifactKey(manifestData, artifactVariant(format, opts), opts.size)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	data, err := c.renderFormat(d, flows, format, opts)
	if err != nil {
		return nil, false, err
	}
	if err := store.Set(ctx, key, data, artifactTTL); err != nil {
		c.Logger.Debugf("Cache write failed: %v", err)
	}
	return data, false, nil
}

// artifactVariant names the output variant for cache keying. The rsvg
// PNG path embeds the scale factor because it changes the pixel
// dimensions of the artifact; the raster path ignores scale.
func artifactVariant(format string, opts *renderOpts) string {
	if format == formatPNG {
		if opts.raster {
			return "png-raster"
		}
		return fmt.Sprintf("png@%gx", opts.scale)
	}
	return format
}

// renderFormat dispatches to the sink for one output format.
func (c *CLI) renderFormat(d *intersection.Diagram, flows flow.Matrix, format string, opts *renderOpts) ([]byte, error) {
	switch format {
	case formatSVG:
		return sink.RenderSVG(d, flows, sink.WithSize(opts.size))
	case formatPNG:
		if opts.raster {
			return sink.RenderRasterPNG(d, flows, sink.WithRasterSize(opts.size))
		}
		return sink.RenderPNG(d, flows,
			sink.WithScale(opts.scale),
			sink.WithPNGSVGOptions(sink.WithSize(opts.size)))
	case formatPDF:
		return sink.RenderPDF(d, flows, sink.WithPDFSVGOptions(sink.WithSize(opts.size)))
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
