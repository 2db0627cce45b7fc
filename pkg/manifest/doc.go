// Package manifest loads diagram descriptions from TOML files.
//
// A manifest bundles everything one render needs: the direction layout,
// style overrides and the traffic volumes. A minimal file lists only
// flows and inherits the standard 8-point compass and default style:
//
//	[[flows]]
//	from = "N"
//	to = "E"
//	value = 500
//
// A full manifest can reshape the intersection and restyle the output:
//
//	title = "Main St / 5th Ave"
//	left_hand_traffic = false
//
//	[directions]
//	N = 0
//	E = 90
//	S = 180
//	W = 270
//
//	[style]
//	radius = 12
//	node_scheme = "tab10"
//	edge_scheme = "viridis"
//
//	[[flows]]
//	from = "N"
//	to = "S"
//	value = 1200
//
// Unknown keys are rejected rather than ignored.
package manifest
