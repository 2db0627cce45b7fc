// Package flow models origin-destination traffic matrices and their
// visual encoding.
//
// A matrix is a sparse list of movements between direction labels. Before
// rendering it is completed to the full Cartesian product of referenced
// directions (missing pairs default to zero) and stable-sorted into the
// canonical ring order, which fixes both the rendering order and the lane
// offsets of parallel edges.
//
// Values map to stroke widths and colors through a linear [Scale]; the
// degenerate all-equal case collapses to the lower output bound instead of
// dividing by zero.
package flow
