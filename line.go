package spline

import "math"

// Line represents a line segment between two points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter at which the line has the given arc
// length. A line of zero length has a parameter of 0 everywhere.
func (l Line) SolveForArclen(arclen float64, accuracy float64) float64 {
	if l.isDegenerate(0) {
		return 0
	}
	return arclen / l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the point on the line
// closest to it, as well as that point's parameter.
func (l Line) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) BoundingBox() Box {
	return NewBoxFromPoints(l.P0, l.P1)
}

// Direction returns the unit direction of the line, or the zero vector if the
// line has zero length.
func (l Line) Direction() Vec3 {
	return l.P1.Sub(l.P0).NormalizeOrZero()
}

// isDegenerate reports whether the line is shorter than epsilon.
func (l Line) isDegenerate(epsilon float64) bool {
	return l.P1.Sub(l.P0).Hypot2() <= epsilon*epsilon || math.IsNaN(l.Length())
}
