// Package render defines the drawing-surface contract consumed by the
// diagram builder and format conversion helpers shared by the sinks.
//
// The layout engine never draws pixels itself: it issues line, curve,
// polygon and text commands against the [Canvas] interface with world
// coordinates and style attributes. Implementations live in
// [github.com/crossflow/crossflow/pkg/render/sink]; callers can supply
// their own surface to embed diagrams elsewhere.
//
// # Coordinate model
//
// Positions are in world units with y pointing up, the origin at the
// intersection center. [Canvas.Frame] is issued first and declares the
// world bounds; stroke widths and font sizes are in device pixels and are
// not scaled by the world→device mapping.
package render
