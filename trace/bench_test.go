package trace_test

import (
	"testing"

	"github.com/katalvlaran/odefield/plane"
	"github.com/katalvlaran/odefield/trace"
)

// BenchmarkTrace_Smooth measures a full two-branch trace of a smooth
// equation crossing the whole viewport.
func BenchmarkTrace_Smooth(b *testing.B) {
	tree := mustParse(b, "sin(x) - y/3")
	vp := plane.Viewport{XMin: -10, XMax: 10, YMin: -5, YMax: 5}
	opts := trace.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, vp, &opts); err != nil {
			b.Fatalf("Trace failed: %v", err)
		}
	}
}

// BenchmarkTrace_NearSingular measures the adaptive-refinement overhead
// when both branches end on vertical tangents.
func BenchmarkTrace_NearSingular(b *testing.B) {
	tree := mustParse(b, "-x/y")
	vp := plane.Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
	opts := trace.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trace.Trace(tree, plane.Point{X: 0, Y: 1}, vp, &opts); err != nil {
			b.Fatalf("Trace failed: %v", err)
		}
	}
}
