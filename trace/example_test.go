package trace_test

import (
	"fmt"

	"github.com/katalvlaran/odefield/expr"
	"github.com/katalvlaran/odefield/plane"
	"github.com/katalvlaran/odefield/trace"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTrace
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Trace dy/dx = y through (0, 1): the solution is e^x, which crosses
//	the whole viewport, so both branches end by leaving it through a
//	vertical edge.
//
// Options:
//   - StepAuto (default): dx = viewport width / 1000, halved near trouble.
//
// Use case:
//
//	Click-to-trace in a direction-field plotter: the user picks a seed,
//	the engine returns the polyline plus one termination reason per side.
func ExampleTrace() {
	tree, _ := expr.Parse("y")
	vp := plane.Viewport{XMin: -3, XMax: 3, YMin: -5, YMax: 5}

	opts := trace.DefaultOptions()
	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, vp, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("backward:", curve.Backward.Reason)
	fmt.Println("forward:", curve.Forward.Reason)
	// Output:
	// backward: left-viewport
	// forward: left-viewport
}
