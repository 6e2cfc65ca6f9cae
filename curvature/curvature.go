package curvature

import (
	"math"

	"github.com/katalvlaran/odefield/eval"
	"github.com/katalvlaran/odefield/expr"
	"github.com/katalvlaran/odefield/field"
	"github.com/katalvlaran/odefield/plane"
)

// Polyline — geometric curvature along a traced curve
//
// Description:
//
//	Polyline returns one curvature value per input point, 1:1 aligned.
//	An interior point gets the signed tangent-angle change between its
//	nearest defined neighbors divided by the mean arc length walked
//	through it; that discrete ratio converges to κ = dθ/ds as the points
//	densify. Endpoints, points with non-finite coordinates, and points
//	glued to a coincident neighbor get NaN.
//
// Steps:
//  1. Fill the result with NaN.
//  2. For each point with finite coordinates, scan left and right past
//     any NaN points to the nearest defined neighbors p and n.
//  3. With a = cur−p and b = n−cur, the value is
//     wrap(atan2(b) − atan2(a)) / ((|a| + |b|) / 2),
//     the turn angle over the half-chords meeting at cur.
//
// Complexity: O(len(pts)) amortized; the NaN scans never revisit a
// point more than twice.
func Polyline(pts []plane.Point) []float64 {
	out := make([]float64, len(pts))
	for i := range out {
		out[i] = math.NaN()
	}

	for i := range pts {
		if !finitePoint(pts[i]) {
			continue
		}

		p, okP := adjacent(pts, i, -1)
		n, okN := adjacent(pts, i, +1)
		if !okP || !okN {
			continue
		}

		ax, ay := pts[i].X-p.X, pts[i].Y-p.Y
		bx, by := n.X-pts[i].X, n.Y-pts[i].Y
		la, lb := math.Hypot(ax, ay), math.Hypot(bx, by)
		if la == 0 || lb == 0 {
			continue
		}

		out[i] = wrapAngle(math.Atan2(by, bx)-math.Atan2(ay, ax)) / ((la + lb) / 2)
	}

	return out
}

// adjacent walks from index i in direction dir (±1) and returns the
// nearest point with finite coordinates, skipping NaN entries.
func adjacent(pts []plane.Point, i, dir int) (plane.Point, bool) {
	for j := i + dir; j >= 0 && j < len(pts); j += dir {
		if finitePoint(pts[j]) {
			return pts[j], true
		}
	}

	return plane.Point{}, false
}

// wrapAngle maps a to the principal range (-π, π].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}

	return a
}

func finitePoint(p plane.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// At — analytic-style curvature at a single point
//
// Description:
//
//	At estimates κ = y″ / (1 + y′²)^(3/2) at (x, y), where y′ = f(x, y)
//	and y″ is a centered difference of f taken one DX step along the
//	solution direction (dx, dx·y′) either way. A domain error is retried
//	at (x, y+FixDY), then at (x+FixDX, y): the loci where f is singular
//	tend to be exactly the grid-friendly lines users sample on, and a
//	sub-pixel nudge recovers the value next to them. Only when all three
//	attempts fail does the last domain error come back.
//
// Coordinates within DX of an integer are snapped to it first, so that
// the difference points straddling an axis singularity hit it
// symmetrically instead of by float residue.
func At(tree *expr.Tree, x, y float64, opts *Options) (float64, error) {
	if tree == nil {
		return math.NaN(), ErrNilTree
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.normalize(); err != nil {
		return math.NaN(), err
	}

	if math.Abs(x-math.Trunc(x)) < o.DX {
		x = math.Trunc(x)
	}
	if math.Abs(y-math.Trunc(y)) < o.DX {
		y = math.Trunc(y)
	}

	k, err := kappa(tree, x, y, o.DX)
	if err == nil {
		return k, nil
	}
	if k, err2 := kappa(tree, x, y+o.FixDY, o.DX); err2 == nil {
		return k, nil
	}
	if k, err2 := kappa(tree, x+o.FixDX, y, o.DX); err2 == nil {
		return k, nil
	}

	return math.NaN(), err
}

// kappa is one un-retried estimate: three evaluations of f and the
// closed-form curvature of a graph.
func kappa(tree *expr.Tree, x, y, dx float64) (float64, error) {
	dy, err := eval.Evaluate(tree, x, y)
	if err != nil {
		return math.NaN(), err
	}

	ahead, err := eval.Evaluate(tree, x+dx, y+dx*dy)
	if err != nil {
		return math.NaN(), err
	}
	behind, err := eval.Evaluate(tree, x-dx, y-dx*dy)
	if err != nil {
		return math.NaN(), err
	}

	d2y := (ahead - behind) / (2 * dx)
	k := d2y / math.Pow(1+dy*dy, 1.5)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return math.NaN(), eval.ErrOverflow
	}

	return k, nil
}

// Grid — per-sample curvature for a direction-field grid
//
// Description:
//
//	Grid runs At at the center of every defined sample of g and returns
//	the values aligned with g.Cells. Undefined and vertical samples,
//	and samples where the whole retry ladder fails, get NaN; the caller
//	feeds the slice to Normalize and then to its color map.
//
// Cancellation: opts.Ctx is checked once per grid row; a canceled
// context returns the slice filled so far (the rest NaN) together with
// the context error.
func Grid(tree *expr.Tree, g *field.Grid, opts *Options) ([]float64, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.normalize(); err != nil {
		return nil, err
	}

	out := make([]float64, len(g.Cells))
	for i := range out {
		out[i] = math.NaN()
	}

	for i, s := range g.Cells {
		if g.Cols > 0 && i%g.Cols == 0 {
			if err := o.Ctx.Err(); err != nil {
				return out, err
			}
		}
		if s.Kind != field.SampleDefined {
			continue
		}
		if k, err := At(tree, s.Center.X, s.Center.Y, &o); err == nil {
			out[i] = k
		}
	}

	return out, nil
}

// Normalize — map curvature magnitudes onto a [0, 1] color scale
//
// Description:
//
//	Normalize divides |κ| by the largest defined magnitude and clips to
//	[0, 1], keeping NaN entries NaN. One guard: when a handful of values
//	(at most max(1, len/1000)) share a maximum more than twice the next
//	magnitude, that maximum is almost certainly a near-pole fluke, and
//	the next magnitude becomes the scale ceiling instead, so the fluke
//	saturates rather than washing every other color out. A runner-up of
//	zero (or none at all) cannot scale anything, so the maximum stays
//	the ceiling in that case.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))

	maxV, second := math.Inf(-1), math.Inf(-1)
	numMax := 0
	defined := 0
	for _, v := range values {
		if !IsDefined(v) {
			continue
		}
		defined++
		a := math.Abs(v)
		switch {
		case a > maxV:
			second = maxV
			maxV = a
			numMax = 1
		case a == maxV:
			numMax++
		case a > second:
			second = a
		}
	}

	ceiling := maxV
	limit := max(1, defined/1000)
	if numMax <= limit && maxV > 2*second {
		ceiling = second
	}
	if ceiling <= 0 {
		ceiling = maxV
	}

	for i, v := range values {
		switch {
		case !IsDefined(v):
			out[i] = math.NaN()
		case ceiling == 0:
			out[i] = 0
		default:
			out[i] = math.Min(math.Abs(v)/ceiling, 1)
		}
	}

	return out
}
