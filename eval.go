package spline

import "math"

// degenerateEpsilon is the length below which derivatives and segments are
// considered to have no direction.
const degenerateEpsilon = 1e-12

// clampParam clamps t to [0, 1]. NaN is mapped to 0.
func clampParam(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// locate maps the curve parameter t ∈ [0, 1] to a segment index and the
// parameter within that segment. t = 1 maps to the end of the last segment.
func locate(segs int, t float64) (int, float64) {
	x := t * float64(segs)
	i := int(math.Floor(x))
	if i >= segs {
		return segs - 1, 1
	}
	return i, x - float64(i)
}

// EvalPoint evaluates the spline formed by pts at t. t is clamped to [0, 1].
//
// It returns an [*InsufficientControlPointsError] if pts isn't a valid spline
// of the scheme.
func EvalPoint(pts []Point, s Scheme, t float64) (Point, error) {
	if err := s.Validate(len(pts)); err != nil {
		return Point{}, err
	}
	return evalPoint(pts, s, t), nil
}

// evalPoint is EvalPoint for control points that are known to be valid.
func evalPoint(pts []Point, s Scheme, t float64) Point {
	i, u := locate(s.NumSegments(len(pts)), clampParam(t))
	return s.segment(pts, i).Eval(u)
}

// EvalTangent returns the unit tangent of the spline formed by pts at t. t is
// clamped to [0, 1].
//
// Where the derivative vanishes, the tangent falls back to the end direction
// of the queried segment, then to that of the nearest segment that has a
// direction. If the whole spline collapses to a point, the zero vector is
// returned. The result is never NaN for finite control points.
func EvalTangent(pts []Point, s Scheme, t float64) (Vec3, error) {
	v, _, err := evalTangent(pts, s, t)
	return v, err
}

// evalTangent is like EvalTangent but also reports whether a fallback
// direction had to be used.
func evalTangent(pts []Point, s Scheme, t float64) (Vec3, *DegenerateSegmentWarning, error) {
	if err := s.Validate(len(pts)); err != nil {
		return Vec3{}, nil, err
	}
	t = clampParam(t)
	segs := s.NumSegments(len(pts))
	i, u := locate(segs, t)
	seg := s.segment(pts, i)
	if d := seg.Deriv(u); d.Hypot2() > degenerateEpsilon*degenerateEpsilon && !d.IsInf() {
		return d.Normalize(), nil, nil
	}

	w := &DegenerateSegmentWarning{Segment: i, T: t, Fallback: -1}
	if dir, ok := segmentDirection(seg, u >= 0.5); ok {
		w.Fallback = i
		return dir, w, nil
	}
	// Search outwards. At equal distance, the following segment wins. We use
	// the end of each neighbor that is closest to the queried segment.
	for k := 1; k < segs; k++ {
		if j := i + k; j < segs {
			if dir, ok := segmentDirection(s.segment(pts, j), false); ok {
				w.Fallback = j
				return dir, w, nil
			}
		}
		if j := i - k; j >= 0 {
			if dir, ok := segmentDirection(s.segment(pts, j), true); ok {
				w.Fallback = j
				return dir, w, nil
			}
		}
	}
	return Vec3{}, w, nil
}

// segmentDirection returns the unit tangent at the start or end of a segment,
// using [CubicBez.Tangents] so that coincident handles are skipped over. It
// returns false if the segment collapses to a single point.
func segmentDirection(seg segment, atEnd bool) (Vec3, bool) {
	c := seg.CubicBez()
	if c.isPoint(degenerateEpsilon) {
		return Vec3{}, false
	}
	d0, d1 := c.Tangents()
	d := d0
	if atEnd {
		d = d1
	}
	d = d.NormalizeOrZero()
	return d, d != Vec3{}
}

// Close returns the control points of the closed curve through pts. It is
// meant to be used before evaluation; evaluation itself only knows open
// curves.
//
// For Catmull-Rom splines, the first point is appended, adding a segment from
// the last point back to the first. Because the end segments use clamped
// neighbors, the tangent isn't continuous at the seam.
//
// For Bézier splines, a closing segment is appended whose handles mirror the
// last and first handles, so the seam is G1 continuous. The result still has
// 3n+1 points.
//
// If pts isn't a valid spline of the scheme, or its last point already
// coincides with its first, pts is returned unmodified.
func Close(pts []Point, s Scheme) []Point {
	n := len(pts)
	if s.Validate(n) != nil || pts[0] == pts[n-1] {
		return pts
	}
	out := make([]Point, n, n+3)
	copy(out, pts)
	first, last := pts[0], pts[n-1]
	switch s {
	case BezierScheme:
		out = append(out,
			last.Translate(last.Sub(pts[n-2])),
			first.Translate(first.Sub(pts[1])),
			first,
		)
	default:
		out = append(out, first)
	}
	return out
}
