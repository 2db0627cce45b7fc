// Package compass models the approach directions of a road intersection.
//
// Directions are configured as compass bearings (degrees clockwise from
// north) and converted once into standard mathematical angles for
// trigonometric placement on a ring. The package owns the direction→angle
// mapping, the direction→point mapping, the canonical ring ordering, and
// the circular distances used to fan out parallel flow edges.
//
// # Conventions
//
//   - Compass angle: degrees clockwise from north, the configuration input.
//   - Cartesian angle: degrees counter-clockwise from east, derived as
//     (450 − compass) mod 360. The single formula performs both the axis
//     flip and the zero-point rotation.
//   - Drawing bearing: cartesian angle − 90°, in radians, so that a
//     direction at compass 0 points straight up on the canvas.
//
// # Example
//
//	rose, err := compass.New(map[string]float64{"N": 0, "E": 90, "S": 180}, 10)
//	if err != nil {
//	    // duplicate labels or angles
//	}
//	for _, label := range rose.Ordered() {
//	    pt := rose.Point(label) // placement on the ring
//	}
package compass
