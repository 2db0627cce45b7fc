// Package style holds the immutable visual configuration of a diagram and
// resolves color scheme names into usable schemes.
//
// A scheme name resolves either to a continuous colormap (sampled along
// [0,1]) or to a flat named color applied uniformly; anything else is a
// configuration error raised before any drawing happens. Colormaps are
// blended perceptually with lucasb-eyer/go-colorful; flat names come from
// the SVG 1.1 set in golang.org/x/image/colornames.
package style
