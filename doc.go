// Package odefield is an in-memory engine for drawing and exploring
// direction fields of first-order ordinary differential equations
// dy/dx = f(x, y) — from equation text to colored, traceable geometry.
//
// 🚀 What is odefield?
//
//	A pure-Go numerical core that brings together:
//		• Expression parsing: strict grammar, whitelisted functions,
//		  a character position on every syntax error
//		• Evaluation: tagged domain errors instead of NaN surprises
//		• Field sampling: one oriented segment per grid point, uniform
//		  display length across pan and zoom
//		• Curve tracing: adaptive RK4 in both x-directions with bisection
//		  localization of singularities
//		• Curvature coloring: geometric and analytic estimators plus a
//		  color-scale normalizer
//
// ✨ Why choose odefield?
//
//   - Deterministic – identical inputs give byte-identical polylines
//   - Failure-honest – poles and domain holes become data, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Cancelable – grids and traces stop cooperatively mid-computation
//
// Everything is organized under five subpackages:
//
//	plane/     — points, vectors, viewports (the shared geometry)
//	expr/      — equation text → immutable expression tree
//	eval/      — tree + (x, y) → value or tagged domain error
//	field/     — viewport grid → oriented segments / undefined markers
//	trace/     — seed point → polyline with per-branch termination reasons
//	curvature/ — polylines and grids → curvature values and color indices
//
// Quick ASCII example, dy/dx = -x/y over [-1,1]²:
//
//	    ─ ─ ╲ ╲ ╲
//	    ─ ─ ╲ ╲ ╲
//	    · · · · ·
//	    ─ ─ ╱ ╱ ╱
//	    ─ ─ ╱ ╱ ╱
//
// The dotted row is y = 0, where the slope divides by zero and the
// sampler marks every point undefined; tracing from (0, 1) recovers the
// upper unit semicircle and stops at its vertical tangents.
//
// See each subpackage's doc.go for policies, options and complexity
// notes, and examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/odefield
package odefield
