package trace

import (
	"math"

	"github.com/katalvlaran/odefield/eval"
	"github.com/katalvlaran/odefield/expr"
	"github.com/katalvlaran/odefield/plane"
)

// Trace — solution-curve tracing through a seed point
//
// Description:
//
//	Trace integrates dy/dx = f(x, y) through seed in both x-directions
//	and returns the combined polyline. Forward and backward are
//	independent runs of the same branch machine with the step sign
//	flipped; their point sequences are concatenated (backward reversed)
//	around the seed, which appears exactly once.
//
// Steps (per branch):
//  1. Check cancellation, viewport bounds, and the step ceiling (O(1)).
//  2. Evaluate the slope at the current point; a domain error or a
//     near-vertical slope terminates the branch as a singularity.
//  3. Advance with a classical RK4 step. A trial step is rejected when a
//     stage fails, the landing slope reaches NearVertical, the slope
//     flips sign while steeper than SingularSlope (a pole crossing),
//     (StepAuto) the slope jumps by more than SlopeJump relative change,
//     or (StepAuto, inside the y-range) |Δy| exceeds MaxRise of the
//     viewport height.
//  4. StepAuto halves a rejected step down to baseDX/2^MaxHalvings. An
//     accepted refined step is carried forward and regrows one doubling
//     per accepted step, so the integrator creeps up to a singularity
//     instead of repeatedly lunging at it with the base step.
//  5. A step rejected at the smallest size has a singularity inside it:
//     bisect the step interval BisectIters times against the same
//     acceptance predicate, append the last acceptable endpoint, and
//     terminate the branch.
//
// Errors:
//
//	ErrNilTree, plane.ErrBadViewport, ErrBadStep for invalid arguments;
//	the context error (with a partial curve) on cancellation. Domain
//	failures never surface as errors: they become TermSingularity.
//
// Complexity:
//
//	Time: O(steps · tree nodes), steps ≤ MaxSteps per branch.
//	Memory: the output polyline.
func Trace(tree *expr.Tree, seed plane.Point, vp plane.Viewport, opts *Options) (*Curve, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.normalize(); err != nil {
		return nil, err
	}

	backward := traceBranch(tree, seed, vp, &o, -1)
	forward := traceBranch(tree, seed, vp, &o, +1)

	// Stitch: reversed backward tail + forward (seed shared once).
	pts := make([]plane.Point, 0, len(backward.Points)+len(forward.Points)-1)
	for i := len(backward.Points) - 1; i >= 1; i-- {
		pts = append(pts, backward.Points[i])
	}
	pts = append(pts, forward.Points...)

	curve := &Curve{Points: pts, Backward: backward, Forward: forward}
	if err := o.Ctx.Err(); err != nil {
		return curve, err
	}

	return curve, nil
}

// traceBranch runs the branch state machine in one x-direction.
// dir is +1 (forward) or -1 (backward).
func traceBranch(tree *expr.Tree, seed plane.Point, vp plane.Viewport, o *Options, dir float64) Branch {
	br := Branch{Points: []plane.Point{seed}}

	baseDX := o.DX
	if o.Mode == StepAuto {
		baseDX = vp.Width() / float64(o.AutoSteps)
	}
	yCut := o.YMarginScreens * vp.Height()

	st := &stepper{
		tree:    tree,
		o:       o,
		dir:     dir,
		minDX:   math.Ldexp(baseDX, -o.MaxHalvings),
		maxRise: o.MaxRise * vp.Height(),
		yLo:     vp.YMin,
		yHi:     vp.YMax,
	}

	cur := seed
	dx := baseDX
	for {
		if o.Ctx.Err() != nil {
			br.Reason = TermCanceled

			return br
		}
		if !vp.ContainsX(cur.X) || cur.Y < vp.YMin-yCut || cur.Y > vp.YMax+yCut {
			br.Reason = TermLeftViewport

			return br
		}
		if br.Steps >= o.MaxSteps {
			br.Reason = TermMaxSteps

			return br
		}

		f0, err := eval.Evaluate(tree, cur.X, cur.Y)
		if err != nil || math.Abs(f0) >= o.NearVertical {
			// Singular at the current point itself (only possible at the
			// seed or at a vertical tangent): nothing left to localize.
			br.Reason = TermSingularity

			return br
		}

		next, used, ok := st.advance(cur, f0, dx)
		if !ok {
			// Even the smallest step crossed a failure: localize it and
			// finish on the evaluable side.
			if end, found := st.bisect(cur, f0, used); found {
				br.Points = append(br.Points, end)
			}
			br.Reason = TermSingularity

			return br
		}

		// Carry the refined step, recovering one doubling at a time.
		dx = used
		if o.Mode == StepAuto && dx < baseDX {
			dx = math.Min(2*dx, baseDX)
		}

		cur = next
		br.Steps++
		br.Points = append(br.Points, cur)
	}
}

// stepper holds the per-branch stepping state: the viewport-derived rise
// cap and refinement floor, and the fixed direction sign.
type stepper struct {
	tree     *expr.Tree
	o        *Options
	dir      float64
	minDX    float64
	maxRise  float64
	yLo, yHi float64
}

// advance attempts one accepted integration step from cur, starting at
// startDX. In StepAuto mode a rejected step is halved down to the minDX
// floor; the returned dx is the size actually accepted (or the smallest
// size tried, when ok is false — a singularity hides within it).
// StepManual never refines and is rejected only by outright failure,
// a near-vertical landing, or a pole crossing.
func (s *stepper) advance(cur plane.Point, f0, startDX float64) (plane.Point, float64, bool) {
	dx := startDX
	for {
		cand, ok := s.accept(cur, f0, s.dir*dx)
		if ok {
			return cand, dx, true
		}

		if s.o.Mode == StepAuto && dx/2 >= s.minDX {
			dx /= 2

			continue
		}

		return plane.Point{}, dx, false
	}
}

// accept takes one trial RK4 step of signed size h and applies the
// acceptance criteria. Bisection reuses the same predicate, so a
// localized endpoint is always an acceptable point.
func (s *stepper) accept(cur plane.Point, f0, h float64) (plane.Point, bool) {
	cand, err := rk4Step(s.tree, cur, h)
	if err != nil {
		return plane.Point{}, false
	}
	f1, err := eval.Evaluate(s.tree, cand.X, cand.Y)
	if err != nil || math.Abs(f1) >= s.o.NearVertical {
		return plane.Point{}, false
	}

	// A steep slope flipping sign across one step means the step hopped
	// over a pole onto a different solution branch. Smooth extrema flip
	// sign too, but at gentle slopes below SingularSlope.
	if (f0 < 0) != (f1 < 0) &&
		math.Max(math.Abs(f0), math.Abs(f1)) >= s.o.SingularSlope {
		return plane.Point{}, false
	}

	if s.o.Mode == StepAuto {
		if math.Abs(f1-f0) > s.o.SlopeJump*(1+math.Abs(f0)) {
			return plane.Point{}, false
		}
		// Inside the visible band, cap the vertical travel of one step;
		// off screen large strides are allowed to save steps.
		if cur.Y >= s.yLo && cur.Y <= s.yHi &&
			math.Abs(cand.Y-cur.Y) > s.maxRise {
			return plane.Point{}, false
		}
	}

	return cand, true
}

// rk4Step advances one classical Runge–Kutta step of signed size h.
// Any stage that hits a domain error aborts the step; a non-finite
// result is reported as overflow.
func rk4Step(tree *expr.Tree, p plane.Point, h float64) (plane.Point, error) {
	k1, err := eval.Evaluate(tree, p.X, p.Y)
	if err != nil {
		return plane.Point{}, err
	}
	k2, err := eval.Evaluate(tree, p.X+h/2, p.Y+h/2*k1)
	if err != nil {
		return plane.Point{}, err
	}
	k3, err := eval.Evaluate(tree, p.X+h/2, p.Y+h/2*k2)
	if err != nil {
		return plane.Point{}, err
	}
	k4, err := eval.Evaluate(tree, p.X+h, p.Y+h*k3)
	if err != nil {
		return plane.Point{}, err
	}

	y := p.Y + h/6*(k1+2*k2+2*k3+k4)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return plane.Point{}, eval.ErrOverflow
	}

	return plane.Point{X: p.X + h, Y: y}, nil
}

// bisect localizes the break point inside the failed step
// (cur.X, cur.X + dir·failDX]. The step size is bisected BisectIters
// times against the step-acceptance predicate, so the returned endpoint
// always lies strictly on the acceptable side of the singularity. found
// is false when even an infinitesimal step fails (the singularity sits
// at cur itself).
func (s *stepper) bisect(cur plane.Point, f0, failDX float64) (plane.Point, bool) {
	lo, hi := 0.0, failDX
	var end plane.Point
	found := false

	for i := 0; i < s.o.BisectIters; i++ {
		mid := (lo + hi) / 2
		if mid == lo || mid == hi { // float resolution exhausted
			break
		}
		if cand, ok := s.accept(cur, f0, s.dir*mid); ok {
			lo, end, found = mid, cand, true
		} else {
			hi = mid
		}
	}

	return end, found
}
