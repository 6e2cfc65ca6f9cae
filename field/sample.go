package field

import (
	"math"

	"github.com/katalvlaran/odefield/eval"
	"github.com/katalvlaran/odefield/expr"
	"github.com/katalvlaran/odefield/plane"
)

// Sample — direction-field grid sampling
//
// Description:
//
//	Sample evaluates the slope equation at every point of a rows×cols
//	grid spanning the viewport (endpoints inclusive) and produces one
//	oriented segment, vertical marker, or undefined marker per point.
//
// Steps:
//  1. Validate tree, viewport, grid shape; normalize options (O(1)).
//  2. Derive the fixed display length: ArrowLength × viewport diagonal.
//  3. For each row (bottom-up), check opts.Ctx, then for each column:
//     a. v, err := eval.Evaluate(tree, x, y).
//     b. domain error → SampleUndefined.
//     c. |v| ≥ VerticalSlope → SampleVertical, Dir = (0, length).
//     d. otherwise → SampleDefined, Dir = (1, v) scaled to length.
//  4. On cancellation return the partially filled grid plus ctx error;
//     unfilled cells keep the zero value, which is SampleUndefined.
//
// Complexity:
//
//	Time:   O(rows·cols) evaluations.
//	Memory: one []Cell allocation of rows·cols.
func Sample(tree *expr.Tree, vp plane.Viewport, rows, cols int, opts *Options) (*Grid, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, ErrBadGrid
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.normalize(); err != nil {
		return nil, err
	}

	length := o.ArrowLength * vp.Diagonal()
	grid := &Grid{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}

	for r := 0; r < rows; r++ {
		if err := o.Ctx.Err(); err != nil {
			return grid, err
		}

		y := gridCoord(vp.YMin, vp.YMax, r, rows)
		for c := 0; c < cols; c++ {
			x := gridCoord(vp.XMin, vp.XMax, c, cols)
			grid.Cells[r*cols+c] = sampleAt(tree, x, y, length, o.VerticalSlope)
		}
	}

	return grid, nil
}

// gridCoord places index i of n samples on [lo, hi]: endpoints inclusive
// for n > 1, the midpoint for n == 1.
func gridCoord(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return (lo + hi) / 2
	}

	return lo + (hi-lo)*float64(i)/float64(n-1)
}

// sampleAt classifies a single grid point.
func sampleAt(tree *expr.Tree, x, y, length, verticalSlope float64) Cell {
	center := plane.Point{X: x, Y: y}

	v, err := eval.Evaluate(tree, x, y)
	if err != nil {
		// Overflow and every other domain failure leave the point blank.
		return Cell{Center: center, Kind: SampleUndefined}
	}

	if math.Abs(v) >= verticalSlope {
		return Cell{
			Center: center,
			Dir:    plane.Vector{DX: 0, DY: length},
			Kind:   SampleVertical,
		}
	}

	return Cell{
		Center: center,
		Dir:    plane.Vector{DX: 1, DY: v}.Scaled(length),
		Kind:   SampleDefined,
	}
}
