package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon || math.IsNaN(d) {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertFinite(t *testing.T, v Vec3) {
	t.Helper()
	if v.IsNaN() || v.IsInf() {
		t.Fatalf("got non-finite vector %s", v)
	}
}

// square is the example used throughout the tests: four corners of the unit
// square in the z=0 plane.
var square = []Point{
	Pt(0, 0, 0),
	Pt(1, 0, 0),
	Pt(1, 1, 0),
	Pt(0, 1, 0),
}

// helix returns n points on a helix, which exercises all three axes.
func helix(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		th := float64(i) * 0.7
		pts[i] = Pt(math.Cos(th), math.Sin(th), 0.25*float64(i))
	}
	return pts
}
