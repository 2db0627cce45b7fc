package flow

// Scale maps values linearly from an observed input range to an output
// range, typically [minValue,maxValue] → [minEdgeWidth,maxEdgeWidth].
type Scale struct {
	MinIn  float64
	MaxIn  float64
	MinOut float64
	MaxOut float64
}

// NewScale builds a linear scale from the observed input range to the
// configured output range.
func NewScale(minIn, maxIn, minOut, maxOut float64) Scale {
	return Scale{MinIn: minIn, MaxIn: maxIn, MinOut: minOut, MaxOut: maxOut}
}

// Map converts a value to the output range. The endpoints map exactly:
// MinIn→MinOut and MaxIn→MaxOut, monotonic in between. When the input
// range is degenerate (all observed values equal) every value maps to
// MinOut; the divide is never performed.
func (s Scale) Map(v float64) float64 {
	if s.MaxIn == s.MinIn {
		return s.MinOut
	}
	return s.MinOut + (v-s.MinIn)*(s.MaxOut-s.MinOut)/(s.MaxIn-s.MinIn)
}

// Normalize converts a value to [0,1] within the input range, used for
// sampling continuous colormaps. The degenerate range maps to 0.
func (s Scale) Normalize(v float64) float64 {
	if s.MaxIn == s.MinIn {
		return 0
	}
	return (v - s.MinIn) / (s.MaxIn - s.MinIn)
}
