package spline

import "testing"

var catmullRomSegment = CatmullRom{Pt(-1, 0, 2), Pt(0, 0, 0), Pt(1, 2, 1), Pt(3, 1, -1)}

// weights returns the Catmull-Rom basis functions at u.
func weights(u float64) [4]float64 {
	u2, u3 := u*u, u*u*u
	return [4]float64{
		0.5 * (-u + 2*u2 - u3),
		0.5 * (2 - 5*u2 + 3*u3),
		0.5 * (u + 4*u2 - 3*u3),
		0.5 * (-u2 + u3),
	}
}

func TestCatmullRomEval(t *testing.T) {
	c := catmullRomSegment
	if p := c.Eval(0); p != c.P1 {
		t.Errorf("got %s at u=0, want exactly %s", p, c.P1)
	}
	assertNear(t, c.Eval(1), c.P2, 1e-12)

	for i := range 21 {
		u := float64(i) / 20
		w := weights(u)
		var want Vec3
		for j, p := range []Point{c.P0, c.P1, c.P2, c.P3} {
			want = want.Add(Vec3(p).Mul(w[j]))
		}
		assertNear(t, c.Eval(u), Point(want), 1e-12)
	}
}

func TestCatmullRomDeriv(t *testing.T) {
	c := catmullRomSegment
	const delta = 1e-6
	for i := range 11 {
		u := float64(i) / 10
		approx := c.Eval(u + delta).Sub(c.Eval(u)).Mul(1 / delta)
		if l := c.Deriv(u).Sub(approx).Hypot(); l >= delta*20 {
			t.Errorf("u=%v: got difference of %g", u, l)
		}
	}
	// The tangent at each end is half the chord between its neighbors.
	assertNear(t, Point(c.Deriv(0)), Point(c.P2.Sub(c.P0).Mul(0.5)), 1e-12)
	assertNear(t, Point(c.Deriv(1)), Point(c.P3.Sub(c.P1).Mul(0.5)), 1e-12)
}

func TestCatmullRomCubicBez(t *testing.T) {
	c := catmullRomSegment
	b := c.CubicBez()
	if b.P0 != c.Start() || b.P3 != c.End() {
		t.Errorf("got end points %s and %s, want %s and %s", b.P0, b.P3, c.Start(), c.End())
	}
	for i := range 21 {
		u := float64(i) / 20
		assertNear(t, b.Eval(u), c.Eval(u), 1e-12)
		assertNear(t, Point(b.Deriv(u)), Point(c.Deriv(u)), 1e-12)
	}
}
