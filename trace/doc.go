// Package trace integrates a solution curve of dy/dx = f(x, y) through a
// seed point, forward and backward in x, until each branch leaves the
// viewport, reaches a singularity, or hits the step ceiling.
//
// 🚀 How tracing works
//
//	Both branches run the same state machine with the step sign flipped:
//
//	  Stepping ──(x or y leaves the view)──▶ TermLeftViewport
//	      │ ╲──(domain error / near-vertical slope, after
//	      │     bisection localizes the break point)──▶ TermSingularity
//	      │ ╲──(step ceiling)──▶ TermMaxSteps
//	      ╰───(opts.Ctx canceled)──▶ TermCanceled
//
//	Each accepted step advances x by a classical fourth-order Runge–Kutta
//	step. In automatic mode the step starts at viewport-width/AutoSteps
//	and is halved while rejected: a step is refused when a stage fails,
//	the landing slope is near-vertical, a steep slope flips sign across
//	it (a pole crossing onto another solution branch), the slope jumps
//	too fast, or it climbs more than a fraction of the viewport height
//	in one stride. The refined step is carried into the following steps
//	and regrows gradually, so a vertical tangent is approached step by
//	step rather than overshot from the base step. A manual dx bypasses
//	the refinement but never the rejection checks or the bisection.
//
// ✨ Guarantees:
//   - Determinism: identical (tree, seed, viewport, options) always yield
//     an identical polyline; no randomness, no global state.
//   - Within a branch, x-coordinates are strictly monotonic; the final
//     polyline is the reversed backward branch joined to the forward
//     branch around the shared seed.
//   - A singularity endpoint is always on the evaluable side of the break:
//     bisection narrows the last step, never extends it.
//
// ⚙️ Usage:
//
//	opts := trace.DefaultOptions()
//	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, vp, &opts)
//	// curve.Forward.Reason, curve.Backward.Reason tell why each side ended.
package trace
