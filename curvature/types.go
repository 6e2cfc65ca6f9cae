// Package curvature defines options and sentinel errors for curvature
// estimation over traced polylines and field grids.
package curvature

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/odefield/plane"
)

// Sentinel errors for curvature estimation.
var (
	// ErrNilTree indicates a nil expression tree was passed to At or Grid.
	ErrNilTree = errors.New("curvature: expression tree is nil")

	// ErrNilGrid indicates a nil field grid was passed to Grid.
	ErrNilGrid = errors.New("curvature: field grid is nil")

	// ErrBadStep indicates a negative DX, FixDX or FixDY option.
	ErrBadStep = errors.New("curvature: difference steps must be positive")
)

const (
	// defaultDX is the centered-difference step for At. Small enough that
	// the first-order difference of f tracks f' to rendering precision.
	defaultDX = 1e-7

	// defaultFix is the fallback offset used to nudge a point off a
	// domain-error locus (an axis, a pole line) before giving up.
	defaultFix = 0.002
)

// Options configures analytic-style curvature estimation.
//
//   - DX — step of the centered difference that approximates y'' along
//     the solution direction. Default 1e-7.
//   - FixDX, FixDY — offsets for the domain-error retry ladder: a failed
//     estimate at (x, y) is retried at (x, y+FixDY), then (x+FixDX, y).
//     Default 0.002; see OptionsFor for viewport-scaled values.
//   - Ctx — cooperative cancellation; checked once per grid row in Grid.
type Options struct {
	DX    float64
	FixDX float64
	FixDY float64
	Ctx   context.Context
}

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		DX:    defaultDX,
		FixDX: defaultFix,
		FixDY: defaultFix,
		Ctx:   context.Background(),
	}
}

// OptionsFor returns defaults with the retry offsets scaled to the
// viewport, so the nudge stays visually negligible on any zoom level:
// max(0.002, extent/1000) per axis.
func OptionsFor(vp plane.Viewport) Options {
	o := DefaultOptions()
	o.FixDX = math.Max(defaultFix, vp.Width()/1000)
	o.FixDY = math.Max(defaultFix, vp.Height()/1000)

	return o
}

// normalize fills zero-valued fields with defaults and validates the rest.
func (o *Options) normalize() error {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.DX == 0 {
		o.DX = defaultDX
	}
	if o.FixDX == 0 {
		o.FixDX = defaultFix
	}
	if o.FixDY == 0 {
		o.FixDY = defaultFix
	}
	if o.DX < 0 || o.FixDX < 0 || o.FixDY < 0 {
		return ErrBadStep
	}

	return nil
}

// IsDefined reports whether v is a usable curvature value. Undefined
// entries (boundary points, domain errors, canceled grid cells) are NaN.
func IsDefined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
