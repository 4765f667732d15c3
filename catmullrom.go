package spline

// CatmullRom is a single segment of a uniform Catmull-Rom spline. The segment
// runs from P1 to P2; P0 and P3 only shape the tangents at those points.
type CatmullRom struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// coefficients returns the polynomial coefficients of the segment, scaled by
// 2, in increasing order.
func (c CatmullRom) coefficients() (Vec3, Vec3, Vec3, Vec3) {
	p0, p1, p2, p3 := Vec3(c.P0), Vec3(c.P1), Vec3(c.P2), Vec3(c.P3)
	a := p1.Mul(2)
	b := p2.Sub(p0)
	cc := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3)
	return a, b, cc, d
}

// Eval evaluates the segment at u ∈ [0, 1]:
//
//	P(u) = ½ [2P₁ + (P₂-P₀)u + (2P₀-5P₁+4P₂-P₃)u² + (3P₁-P₀-3P₂+P₃)u³]
func (c CatmullRom) Eval(u float64) Point {
	a, b, cc, d := c.coefficients()
	v := a.Add(b.Add(cc.Add(d.Mul(u)).Mul(u)).Mul(u))
	return Point(v.Mul(0.5))
}

// Deriv returns the derivative of the segment with respect to u.
func (c CatmullRom) Deriv(u float64) Vec3 {
	_, b, cc, d := c.coefficients()
	v := b.Add(cc.Mul(2).Add(d.Mul(3 * u)).Mul(u))
	return v.Mul(0.5)
}

// CubicBez returns the cubic Bézier that exactly represents the segment.
func (c CatmullRom) CubicBez() CubicBez {
	return CubicBez{
		P0: c.P1,
		P1: c.P1.Translate(c.P2.Sub(c.P0).Mul(1.0 / 6.0)),
		P2: c.P2.Translate(c.P3.Sub(c.P1).Mul(1.0 / 6.0).Negate()),
		P3: c.P2,
	}
}

func (c CatmullRom) Start() Point { return c.P1 }
func (c CatmullRom) End() Point   { return c.P2 }
