// Package field defines grid sample types, options, and sentinel errors
// for direction-field sampling.
package field

import (
	"context"
	"errors"

	"github.com/katalvlaran/odefield/plane"
)

// Sentinel errors for field sampling.
var (
	// ErrNilTree indicates a nil expression tree was passed to Sample.
	ErrNilTree = errors.New("field: expression tree is nil")

	// ErrBadGrid indicates a non-positive row or column count.
	ErrBadGrid = errors.New("field: rows and cols must be positive")

	// ErrBadArrowLength indicates a non-positive ArrowLength option.
	ErrBadArrowLength = errors.New("field: ArrowLength must be positive")
)

// SampleKind classifies one grid point. The zero value is
// SampleUndefined so a partially filled grid (after cancellation) is
// safe to hand to a renderer as-is.
type SampleKind int

const (
	// SampleUndefined marks a point where the slope has no real value;
	// the renderer draws nothing there.
	SampleUndefined SampleKind = iota

	// SampleDefined marks a point with a finite slope and a direction
	// vector of fixed display length.
	SampleDefined

	// SampleVertical marks a point whose slope magnitude exceeded the
	// vertical ceiling; the segment is drawn exactly vertical.
	SampleVertical
)

// Cell is one oriented segment of the direction field. Center is the
// segment midpoint; Dir is the full segment vector (the renderer draws
// from Center - Dir/2 to Center + Dir/2).
type Cell struct {
	Center plane.Point
	Dir    plane.Vector
	Kind   SampleKind
}

// Grid is a row-major rows×cols field of cells. Row 0 lies at the
// bottom of the viewport (YMin), column 0 at the left (XMin).
type Grid struct {
	Rows, Cols int
	Cells      []Cell
}

// At returns the cell at row r, column c. Bounds are the caller's
// responsibility, as with any dense matrix accessor.
func (g *Grid) At(r, c int) Cell {
	return g.Cells[r*g.Cols+c]
}

// Options configures field sampling.
//
//   - ArrowLength  — segment display length as a fraction of the viewport
//     diagonal. Default 0.035 keeps arrows readable at typical densities.
//   - VerticalSlope — slope magnitude at or above which a segment is drawn
//     exactly vertical instead of normalized. Default 1e12.
//   - Ctx — cooperative cancellation; checked once per grid row.
type Options struct {
	ArrowLength   float64
	VerticalSlope float64
	Ctx           context.Context
}

// DefaultOptions returns the sampling defaults described on Options.
func DefaultOptions() Options {
	return Options{
		ArrowLength:   0.035,
		VerticalSlope: 1e12,
		Ctx:           context.Background(),
	}
}

// normalize fills zero-valued fields with defaults and validates the rest.
func (o *Options) normalize() error {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.ArrowLength == 0 {
		o.ArrowLength = 0.035
	}
	if o.ArrowLength < 0 {
		return ErrBadArrowLength
	}
	if o.VerticalSlope <= 0 {
		o.VerticalSlope = 1e12
	}

	return nil
}
