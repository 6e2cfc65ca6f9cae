// Package plane defines core value types and sentinel errors shared by the
// field sampler and the curve tracer.
package plane

import (
	"errors"
	"math"
)

// ErrBadViewport indicates a viewport with inverted or degenerate bounds.
var ErrBadViewport = errors.New("plane: viewport requires XMin < XMax and YMin < YMax")

// Point is a position in the xy-plane.
type Point struct {
	X, Y float64
}

// Vector is a displacement in the xy-plane.
type Vector struct {
	DX, DY float64
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Scaled returns v resized to the given length, preserving direction.
// A zero vector is returned unchanged.
func (v Vector) Scaled(length float64) Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return Vector{DX: v.DX * length / n, DY: v.DY * length / n}
}

// ScaledToX returns v resized so that |DX| equals dx, preserving direction.
// A vector with DX == 0 is returned unchanged.
func (v Vector) ScaledToX(dx float64) Vector {
	ax := math.Abs(v.DX)
	if ax == 0 {
		return v
	}

	return Vector{DX: v.DX * dx / ax, DY: v.DY * dx / ax}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Viewport is the axis-aligned visible rectangle of the plane.
// It is transient: created per redraw, never retained by the engine.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Validate returns ErrBadViewport unless XMin < XMax and YMin < YMax
// and all bounds are finite.
func (vp Viewport) Validate() error {
	for _, b := range [4]float64{vp.XMin, vp.XMax, vp.YMin, vp.YMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return ErrBadViewport
		}
	}
	if vp.XMin >= vp.XMax || vp.YMin >= vp.YMax {
		return ErrBadViewport
	}

	return nil
}

// Width returns the x-span of the viewport.
func (vp Viewport) Width() float64 { return vp.XMax - vp.XMin }

// Height returns the y-span of the viewport.
func (vp Viewport) Height() float64 { return vp.YMax - vp.YMin }

// Diagonal returns the length of the viewport diagonal. Display-relative
// sizes (arrow length, segment length) are expressed as fractions of it.
func (vp Viewport) Diagonal() float64 {
	return math.Hypot(vp.Width(), vp.Height())
}

// ContainsX reports whether x lies within the viewport x-range (inclusive).
func (vp Viewport) ContainsX(x float64) bool {
	return vp.XMin <= x && x <= vp.XMax
}

// ContainsY reports whether y lies within the viewport y-range (inclusive).
func (vp Viewport) ContainsY(y float64) bool {
	return vp.YMin <= y && y <= vp.YMax
}

// Contains reports whether p lies within the viewport (inclusive).
func (vp Viewport) Contains(p Point) bool {
	return vp.ContainsX(p.X) && vp.ContainsY(p.Y)
}
