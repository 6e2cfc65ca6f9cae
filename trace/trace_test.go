package trace_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/odefield/expr"
	"github.com/katalvlaran/odefield/plane"
	"github.com/katalvlaran/odefield/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square2 = plane.Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

// mustParse is a test helper around expr.Parse.
func mustParse(t testing.TB, text string) *expr.Tree {
	t.Helper()
	tree, err := expr.Parse(text)
	require.NoError(t, err, "Parse(%q)", text)

	return tree
}

// TestTrace_Validation covers the argument sentinels.
func TestTrace_Validation(t *testing.T) {
	tree := mustParse(t, "x")
	opts := trace.DefaultOptions()

	_, err := trace.Trace(nil, plane.Point{}, square2, &opts)
	assert.ErrorIs(t, err, trace.ErrNilTree)

	_, err = trace.Trace(tree, plane.Point{}, plane.Viewport{XMin: 1, XMax: 0, YMin: 0, YMax: 1}, &opts)
	assert.ErrorIs(t, err, plane.ErrBadViewport)

	manual := trace.DefaultOptions()
	manual.Mode = trace.StepManual // DX left zero
	_, err = trace.Trace(tree, plane.Point{}, square2, &manual)
	assert.ErrorIs(t, err, trace.ErrBadStep)
}

// TestTrace_Determinism: identical inputs must produce identical
// polylines, point for point.
func TestTrace_Determinism(t *testing.T) {
	tree := mustParse(t, "sin(x*y) + x/2")
	seed := plane.Point{X: 0.3, Y: -0.7}
	opts := trace.DefaultOptions()

	a, err := trace.Trace(tree, seed, square2, &opts)
	require.NoError(t, err)
	b, err := trace.Trace(tree, seed, square2, &opts)
	require.NoError(t, err)

	require.Equal(t, len(a.Points), len(b.Points))
	assert.Equal(t, a.Points, b.Points, "byte-identical polylines")
	assert.Equal(t, a.Forward.Reason, b.Forward.Reason)
	assert.Equal(t, a.Backward.Reason, b.Backward.Reason)
}

// TestTrace_LinearSolution: y' = y traced from (0,1) follows e^x inside
// the viewport and leaves through the right edge.
func TestTrace_LinearSolution(t *testing.T) {
	tree := mustParse(t, "y")
	vp := plane.Viewport{XMin: -1, XMax: 1, YMin: -10, YMax: 10}
	opts := trace.DefaultOptions()

	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, vp, &opts)
	require.NoError(t, err)

	assert.Equal(t, trace.TermLeftViewport, curve.Forward.Reason)
	assert.Equal(t, trace.TermLeftViewport, curve.Backward.Reason)

	for _, p := range curve.Points {
		if p.X < vp.XMin || p.X > vp.XMax {
			continue // final overshoot past the edge
		}
		assert.InDelta(t, math.Exp(p.X), p.Y, 1e-6, "e^x at x=%g", p.X)
	}
}

// TestTrace_CircleRoundTrip: y' = -x/y from (0,1) approximates the upper
// unit semicircle; both branches end at vertical tangents near x = ±1.
func TestTrace_CircleRoundTrip(t *testing.T) {
	tree := mustParse(t, "-x/y")
	opts := trace.DefaultOptions()

	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, square2, &opts)
	require.NoError(t, err)

	assert.Equal(t, trace.TermSingularity, curve.Forward.Reason)
	assert.Equal(t, trace.TermSingularity, curve.Backward.Reason)

	for _, p := range curve.Points {
		r := math.Hypot(p.X, p.Y)
		assert.InDelta(t, 1.0, r, 2e-2, "radius at (%g,%g)", p.X, p.Y)
		assert.GreaterOrEqual(t, p.Y, 0.0, "upper semicircle only")
	}

	last := curve.Forward.Points[len(curve.Forward.Points)-1]
	first := curve.Backward.Points[len(curve.Backward.Points)-1]
	assert.InDelta(t, 1.0, last.X, 5e-2, "forward branch reaches x≈1")
	assert.InDelta(t, -1.0, first.X, 5e-2, "backward branch reaches x≈-1")
}

// TestTrace_SingularityLocalization: y' = 1/x traced forward from x=-1
// must stop at the pole, with the endpoint short of x=0, never past it.
func TestTrace_SingularityLocalization(t *testing.T) {
	tree := mustParse(t, "1/x")
	opts := trace.DefaultOptions()

	curve, err := trace.Trace(tree, plane.Point{X: -1, Y: 0}, square2, &opts)
	require.NoError(t, err)

	require.Equal(t, trace.TermSingularity, curve.Forward.Reason)
	for _, p := range curve.Forward.Points {
		assert.Negative(t, p.X, "no point may land beyond the pole at x=0")
	}
	last := curve.Forward.Points[len(curve.Forward.Points)-1]
	assert.Greater(t, last.X, -1e-4, "endpoint must be localized near the pole")
}

// TestTrace_NearTangentSeed: seeding -x/y just short of the vertical
// tangent must still end in a localized singularity, not hop over the
// pole onto a larger solution circle and wander off.
func TestTrace_NearTangentSeed(t *testing.T) {
	tree := mustParse(t, "-x/y")
	opts := trace.DefaultOptions()
	seed := plane.Point{X: 0.999, Y: math.Sqrt(1 - 0.999*0.999)}

	curve, err := trace.Trace(tree, seed, square2, &opts)
	require.NoError(t, err)

	assert.Equal(t, trace.TermSingularity, curve.Forward.Reason)
	for _, p := range curve.Points {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 2e-2,
			"every point stays on the unit circle")
	}
}

// TestTrace_BranchMonotonicity: x is strictly increasing along the
// forward branch, strictly decreasing along the backward branch, and the
// stitched polyline is ordered left to right.
func TestTrace_BranchMonotonicity(t *testing.T) {
	tree := mustParse(t, "cos(3*x) - y/4")
	opts := trace.DefaultOptions()

	curve, err := trace.Trace(tree, plane.Point{X: 0.1, Y: 0.2}, square2, &opts)
	require.NoError(t, err)

	for i := 1; i < len(curve.Forward.Points); i++ {
		assert.Greater(t, curve.Forward.Points[i].X, curve.Forward.Points[i-1].X)
	}
	for i := 1; i < len(curve.Backward.Points); i++ {
		assert.Less(t, curve.Backward.Points[i].X, curve.Backward.Points[i-1].X)
	}
	for i := 1; i < len(curve.Points); i++ {
		assert.Greater(t, curve.Points[i].X, curve.Points[i-1].X, "stitched order")
	}

	// The seed appears exactly once in the stitched polyline.
	seedCount := 0
	for _, p := range curve.Points {
		if p == (plane.Point{X: 0.1, Y: 0.2}) {
			seedCount++
		}
	}
	assert.Equal(t, 1, seedCount)
}

// TestTrace_DegeneratePointCurve: a seed inside an undefined region
// yields the single-point curve with singularity reasons on both sides.
func TestTrace_DegeneratePointCurve(t *testing.T) {
	tree := mustParse(t, "1/x")
	opts := trace.DefaultOptions()

	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 0}, square2, &opts)
	require.NoError(t, err)

	assert.Equal(t, []plane.Point{{X: 0, Y: 0}}, curve.Points)
	assert.Equal(t, trace.TermSingularity, curve.Forward.Reason)
	assert.Equal(t, trace.TermSingularity, curve.Backward.Reason)
	assert.Zero(t, curve.Forward.Steps)
	assert.Zero(t, curve.Backward.Steps)
}

// TestTrace_MaxSteps: the step ceiling terminates a branch that would
// otherwise keep going, and is distinguishable from a clean exit.
func TestTrace_MaxSteps(t *testing.T) {
	tree := mustParse(t, "0")
	opts := trace.DefaultOptions()
	opts.MaxSteps = 10

	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 0}, square2, &opts)
	require.NoError(t, err)

	assert.Equal(t, trace.TermMaxSteps, curve.Forward.Reason)
	assert.Equal(t, trace.TermMaxSteps, curve.Backward.Reason)
	assert.Equal(t, 10, curve.Forward.Steps)
}

// TestTrace_ManualStep: a manual dx is honored exactly and bypasses
// adaptive refinement.
func TestTrace_ManualStep(t *testing.T) {
	tree := mustParse(t, "y")
	vp := plane.Viewport{XMin: -1, XMax: 1, YMin: -10, YMax: 10}
	opts := trace.DefaultOptions()
	opts.Mode = trace.StepManual
	opts.DX = 0.25

	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, vp, &opts)
	require.NoError(t, err)

	for i := 1; i < len(curve.Forward.Points); i++ {
		dx := curve.Forward.Points[i].X - curve.Forward.Points[i-1].X
		assert.InDelta(t, 0.25, dx, 1e-12, "manual step size")
	}
}

// TestTrace_Cancellation: a canceled context returns the partial curve
// and the context error; both branches report TermCanceled.
func TestTrace_Cancellation(t *testing.T) {
	tree := mustParse(t, "x+y")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := trace.DefaultOptions()
	opts.Ctx = ctx

	curve, err := trace.Trace(tree, plane.Point{X: 0, Y: 0}, square2, &opts)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, curve, "partial result must still be returned")
	assert.Equal(t, trace.TermCanceled, curve.Forward.Reason)
	assert.Equal(t, trace.TermCanceled, curve.Backward.Reason)
	assert.Equal(t, []plane.Point{{X: 0, Y: 0}}, curve.Points)
}

// TestTermReason_String covers the diagnostic rendering.
func TestTermReason_String(t *testing.T) {
	assert.Equal(t, "left-viewport", trace.TermLeftViewport.String())
	assert.Equal(t, "singularity-detected", trace.TermSingularity.String())
	assert.Equal(t, "max-steps-reached", trace.TermMaxSteps.String())
	assert.Equal(t, "canceled", trace.TermCanceled.String())
	assert.Equal(t, "unknown", trace.TermReason(99).String())
}
