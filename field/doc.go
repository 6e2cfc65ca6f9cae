// Package field samples a slope equation over a viewport grid and turns
// each grid point into an oriented segment for the renderer.
//
// 🚀 What is a direction field?
//
//	For dy/dx = f(x, y), the direction field draws at every grid point a
//	short segment with slope f(x, y). Watching the segments is often
//	enough to see the whole family of solution curves before tracing any.
//
// ✨ Sampling policy:
//   - A defined slope yields the direction (1, f(x, y)) resized to a fixed
//     display length (a fraction of the viewport diagonal), so arrows stay
//     visually uniform across pan and zoom.
//   - A finite slope above the VerticalSlope ceiling yields an exactly
//     vertical segment instead of a numerically wild one.
//   - A domain error (division by zero, sqrt of a negative, overflow, ...)
//     marks the point SampleUndefined; the renderer skips it.
//
// ⚙️ Usage:
//
//	opts := field.DefaultOptions()
//	grid, err := field.Sample(tree, vp, 40, 60, &opts)
//
// Sampling is O(rows·cols), recomputed from scratch per redraw, and
// cooperatively cancellable through opts.Ctx: a canceled context returns
// the partially filled grid together with the context error so a
// superseded viewport never races a fresh one onto the display.
package field
