// Package trace defines curve/branch result types, step policy options,
// and sentinel errors for solution-curve tracing.
package trace

import (
	"context"
	"errors"

	"github.com/katalvlaran/odefield/plane"
)

// Sentinel errors for tracing.
var (
	// ErrNilTree indicates a nil expression tree was passed to Trace.
	ErrNilTree = errors.New("trace: expression tree is nil")

	// ErrBadStep indicates StepManual mode without a positive DX.
	ErrBadStep = errors.New("trace: manual dx must be positive")
)

// TermReason explains why a branch stopped. These are completion states,
// not errors: MaxSteps is a safety valve and Singularity is ordinary data
// for the renderer.
type TermReason int

const (
	// TermLeftViewport: the branch ran off the visible x-range, or past
	// the y-margin band around the visible y-range.
	TermLeftViewport TermReason = iota

	// TermSingularity: a domain error or near-vertical slope was
	// localized by bisection; the branch ends just before it.
	TermSingularity

	// TermMaxSteps: the hard step ceiling was reached.
	TermMaxSteps

	// TermCanceled: opts.Ctx was canceled mid-branch; the branch holds
	// the points produced so far.
	TermCanceled
)

// String renders the reason for diagnostics.
func (r TermReason) String() string {
	switch r {
	case TermLeftViewport:
		return "left-viewport"
	case TermSingularity:
		return "singularity-detected"
	case TermMaxSteps:
		return "max-steps-reached"
	case TermCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Branch is one half of a traced curve. Points always starts at the seed;
// Steps counts accepted integration steps (len(Points)-1 unless a
// bisection endpoint was appended).
type Branch struct {
	Points []plane.Point
	Reason TermReason
	Steps  int
}

// Curve is a full traced solution curve. Points is the renderer-ready
// polyline: the backward branch reversed, then the forward branch, with
// the seed appearing exactly once. A curve whose branches both stepped
// zero times is the degenerate point curve (Points == [seed]).
type Curve struct {
	Points   []plane.Point
	Backward Branch
	Forward  Branch
}

// StepMode selects how the integration step is sized.
type StepMode int

const (
	// StepAuto derives dx from the viewport width and refines it near
	// rapid slope change.
	StepAuto StepMode = iota

	// StepManual uses the caller-supplied DX with no refinement.
	StepManual
)

// Options configures tracing.
//
//   - Mode / DX        — step policy; DX is required positive for StepManual.
//   - AutoSteps        — StepAuto target step count across the viewport
//     width (dx = Width/AutoSteps). Default 1000.
//   - MaxSteps         — hard per-branch step ceiling. Default 100000.
//   - NearVertical     — slope magnitude treated as a vertical tangent and
//     therefore a singularity. Default 1e6.
//   - SingularSlope    — slope magnitude from which a sign flip across a
//     step is treated as a pole crossing rather than a smooth extremum,
//     and the step is rejected. Default 60.
//   - SlopeJump        — relative slope change between consecutive steps
//     that triggers halving in StepAuto. Default 1.
//   - MaxRise          — largest |Δy| one StepAuto step may take while the
//     current point is inside the visible y-range, as a fraction of the
//     viewport height. Default 0.1.
//   - MaxHalvings      — bound on refinement of the step below the base
//     step. Default 12 (dx shrinks at most 4096×). A refined step is
//     carried into subsequent steps and regrows one doubling per accepted
//     step, so a singularity is approached instead of overshot.
//   - BisectIters      — bisection iterations used to localize a
//     singularity inside the final step. Default 48.
//   - YMarginScreens   — how many viewport heights the curve may run past
//     the y-range before the branch is cut (it may come back). Default 20.
//   - Ctx              — cooperative cancellation; checked every step.
type Options struct {
	Mode           StepMode
	DX             float64
	AutoSteps      int
	MaxSteps       int
	NearVertical   float64
	SingularSlope  float64
	SlopeJump      float64
	MaxRise        float64
	MaxHalvings    int
	BisectIters    int
	YMarginScreens float64
	Ctx            context.Context
}

// DefaultOptions returns the tracing defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Mode:           StepAuto,
		AutoSteps:      1000,
		MaxSteps:       100000,
		NearVertical:   1e6,
		SingularSlope:  60,
		SlopeJump:      1,
		MaxRise:        0.1,
		MaxHalvings:    12,
		BisectIters:    48,
		YMarginScreens: 20,
		Ctx:            context.Background(),
	}
}

// normalize fills zero-valued fields with defaults and validates the rest.
func (o *Options) normalize() error {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Mode == StepManual && o.DX <= 0 {
		return ErrBadStep
	}
	if o.AutoSteps <= 0 {
		o.AutoSteps = 1000
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 100000
	}
	if o.NearVertical <= 0 {
		o.NearVertical = 1e6
	}
	if o.SingularSlope <= 0 {
		o.SingularSlope = 60
	}
	if o.SlopeJump <= 0 {
		o.SlopeJump = 1
	}
	if o.MaxRise <= 0 {
		o.MaxRise = 0.1
	}
	if o.MaxHalvings <= 0 {
		o.MaxHalvings = 12
	}
	if o.BisectIters <= 0 {
		o.BisectIters = 48
	}
	if o.YMarginScreens <= 0 {
		o.YMarginScreens = 20
	}

	return nil
}
