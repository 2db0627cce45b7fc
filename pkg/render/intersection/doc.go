// Package intersection builds origin-destination traffic-flow diagrams
// for a single road intersection: approach directions arranged on a
// compass ring, curved directional edges sized by flow volume, and
// annotated roadside geometry.
//
// A [Diagram] is constructed once from a style configuration; its
// direction geometry (ring points, cartesian angles, node colors) is
// precomputed and reused across [Diagram.Plot] calls. Plot itself is a
// pure function of (configuration, direction map, flow matrix) issuing
// draw commands against a [render.Canvas]. Plot keeps no state between
// calls, so one Diagram can serve many matrices.
//
//	d, err := intersection.New(style.Default())
//	if err != nil {
//	    return err
//	}
//	canvas := sink.NewSVG(sink.WithSize(640))
//	if err := d.Plot(canvas, flow.Matrix{
//	    {From: "N", To: "E", Value: 500},
//	    {From: "E", To: "W", Value: 300},
//	    {From: "S", To: "N", Value: 400},
//	}); err != nil {
//	    return err
//	}
//	svg := canvas.Bytes()
package intersection
