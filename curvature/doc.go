// Package curvature estimates how sharply solution curves of
// dy/dx = f(x, y) bend, so a renderer can color arrows and polylines by
// local curvature instead of drawing them flat.
//
// 🚀 Two estimators, one scale:
//
//   - Polyline — purely geometric: at each interior point of a traced
//     curve, the change in tangent angle between its neighbors divided by
//     the arc length walked between them. No equation needed; works on
//     any ordered point sequence.
//
//   - At / Grid — analytic-style: κ = y″ / (1 + y′²)^(3/2), with y′ taken
//     straight from f and y″ from a centered difference of f along the
//     solution direction. Grid evaluates At once per defined field
//     sample, emitting NaN for undefined and vertical cells.
//
// ✨ Robustness:
//   - Undefined values are NaN, never an error mid-slice: one bad point
//     must not poison the colors of its neighbors. Polyline skips NaN
//     neighbors and reaches for the next defined one.
//   - At retries a failed estimate slightly off the offending point
//     ((x, y+FixDY), then (x+FixDX, y)) before reporting the domain
//     error, since curvature loci of interest often hug the very axes
//     where f is singular.
//   - Normalize maps magnitudes onto [0, 1] for a color scale, discarding
//     a lone extreme maximum that is far likelier a division-by-zero
//     fluke than a real feature.
//
// ⚙️ Usage:
//
//	opts := curvature.OptionsFor(vp)
//	ks, err := curvature.Grid(tree, grid, &opts)
//	colors := curvature.Normalize(ks)
//
// All estimators are pure functions of their inputs; Grid is
// cooperatively cancellable through opts.Ctx and returns the partially
// filled slice (trailing NaN) together with the context error.
package curvature
