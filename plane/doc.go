// Package plane provides the shared planar geometry primitives used by the
// odefield engine: points, direction vectors, and axis-aligned viewports.
//
// Everything here is a plain value type. A Viewport is supplied fresh per
// render request and never retained by the engine; Points and Vectors are
// copied freely. No type in this package carries hidden state, so values
// may be shared across concurrent sampler and tracer invocations.
//
// Conventions:
//   - A Vector stores a displacement (DX, DY); direction-field segments are
//     Vectors scaled to a fixed display length.
//   - Viewport bounds are half-open in neither axis: Contains reports true
//     on the boundary, matching how the renderer clips.
//
// Validation:
//
//	vp := plane.Viewport{XMin: -2, XMax: 2, YMin: -1, YMax: 1}
//	if err := vp.Validate(); err != nil {
//	    // ErrBadViewport: degenerate or inverted bounds
//	}
package plane
