// Package sink provides output surfaces and format renderers for flow
// diagrams.
//
// A "sink" is where a plotted diagram ends up. This package provides:
//
//   - SVG: vector output written element by element
//   - Raster PNG: in-process rasterization via fogleman/gg
//   - PNG: high-fidelity raster via rsvg-convert (requires librsvg)
//   - PDF: print-ready output via rsvg-convert (requires librsvg)
//
// # Surfaces
//
// [SVG] and [Raster] implement the drawing surface the diagram plots
// onto, so they can also be used directly:
//
//	s := sink.NewSVG(sink.WithSize(800))
//	if err := d.Plot(s, matrix); err != nil { ... }
//	os.WriteFile("out.svg", s.Bytes(), 0o644)
//
// Both surfaces serve a single plot; create a fresh one per render.
//
// # One-shot renderers
//
// [RenderSVG], [RenderRasterPNG], [RenderPNG] and [RenderPDF] bundle
// surface creation, plotting and encoding:
//
//	svg, err := sink.RenderSVG(d, matrix)
//	png, err := sink.RenderRasterPNG(d, matrix, sink.WithRasterSize(1280))
//
// [RenderPNG] and [RenderPDF] convert from SVG with rsvg-convert and need
// librsvg installed; [RenderRasterPNG] has no external dependency.
package sink
