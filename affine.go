package spline

import (
	"math"
)

// Affine describes a 3D affine transform via coefficients.
//
// If the coefficients are (n0, ..., n11), then the resulting transformation
// represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	| 0  0  0  1   |
//
// That is, the coefficients are stored column by column, the last column being
// the translation. The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	// We represent Affine as a struct instead of an array because structs
	// benefit from SROA.

	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
	0, 0, 0,
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scale(x, y, z float64) Affine {
	return Affine{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
		0, 0, 0,
	}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		v.X, v.Y, v.Z,
	}
}

// Rotate creates an affine transform representing a rotation of th radians
// about axis, following the right-hand rule. The axis doesn't have to be
// normalized, but it must not be the zero vector.
func Rotate(axis Vec3, th float64) Affine {
	a := axis.Normalize()
	sin, cos := math.Sincos(th)
	k := 1 - cos
	return Affine{
		cos + a.X*a.X*k, a.Y*a.X*k + a.Z*sin, a.Z*a.X*k - a.Y*sin,
		a.X*a.Y*k - a.Z*sin, cos + a.Y*a.Y*k, a.Z*a.Y*k + a.X*sin,
		a.X*a.Z*k + a.Y*sin, a.Y*a.Z*k - a.X*sin, cos + a.Z*a.Z*k,
		0, 0, 0,
	}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2,
		aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8,
		aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

// apply applies only the linear part of the transform, which is what vectors
// are subject to.
func (aff Affine) apply(v Vec3) Vec3 {
	return Vec3{
		X: aff.N0*v.X + aff.N3*v.Y + aff.N6*v.Z,
		Y: aff.N1*v.X + aff.N4*v.Y + aff.N7*v.Z,
		Z: aff.N2*v.X + aff.N5*v.Y + aff.N8*v.Z,
	}
}

func (aff Affine) Mul(o Affine) Affine {
	c0 := aff.apply(Vec(o.N0, o.N1, o.N2))
	c1 := aff.apply(Vec(o.N3, o.N4, o.N5))
	c2 := aff.apply(Vec(o.N6, o.N7, o.N8))
	c3 := Vec3(Point{o.N9, o.N10, o.N11}.Transform(aff))
	return Affine{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
		c3.X, c3.Y, c3.Z,
	}
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// ThenRotate creates aff followed by a rotation of th about axis.
//
// Equivalent to "Rotate(axis, th) * aff"
func (aff Affine) ThenRotate(axis Vec3, th float64) Affine {
	return Rotate(axis, th).Mul(aff)
}

// Determinant computes the determinant of the linear part of the transform.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1.0 / aff.Determinant()
	inv := Affine{
		N0: (aff.N4*aff.N8 - aff.N7*aff.N5) * invDet,
		N1: (aff.N7*aff.N2 - aff.N1*aff.N8) * invDet,
		N2: (aff.N1*aff.N5 - aff.N4*aff.N2) * invDet,
		N3: (aff.N6*aff.N5 - aff.N3*aff.N8) * invDet,
		N4: (aff.N0*aff.N8 - aff.N6*aff.N2) * invDet,
		N5: (aff.N3*aff.N2 - aff.N0*aff.N5) * invDet,
		N6: (aff.N3*aff.N7 - aff.N6*aff.N4) * invDet,
		N7: (aff.N6*aff.N1 - aff.N0*aff.N7) * invDet,
		N8: (aff.N0*aff.N4 - aff.N3*aff.N1) * invDet,
	}
	t := inv.apply(Vec(aff.N9, aff.N10, aff.N11)).Negate()
	inv.N9, inv.N10, inv.N11 = t.X, t.Y, t.Z
	return inv
}

// IsFinite reports whether all the coefficients are finite.
func (aff Affine) IsFinite() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return false
		}
	}
	return true
}
