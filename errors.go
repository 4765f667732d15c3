package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientControlPoints is matched by every
	// [*InsufficientControlPointsError] when using [errors.Is].
	ErrInsufficientControlPoints = errors.New("insufficient control points")
	ErrIndexOutOfRange           = errors.New("control point index out of range")
	ErrInvalidResolution         = errors.New("resolution must be at least 2")
)

// InsufficientControlPointsError is returned when a spline is evaluated with
// fewer control points than its scheme needs, or, for Bézier splines, with a
// number of points that doesn't form whole segments.
type InsufficientControlPointsError struct {
	Scheme Scheme
	Have   int
}

// Need returns the smallest valid number of control points that is at least
// Have.
func (err *InsufficientControlPointsError) Need() int {
	n := max(err.Have, err.Scheme.MinPoints())
	if err.Scheme == BezierScheme {
		for (n-1)%3 != 0 {
			n++
		}
	}
	return n
}

func (err *InsufficientControlPointsError) Error() string {
	if err.Scheme == BezierScheme && err.Have >= err.Scheme.MinPoints() {
		return fmt.Sprintf("%s spline needs 3n+1 control points, have %d", err.Scheme, err.Have)
	}
	return fmt.Sprintf("%s spline needs at least %d control points, have %d",
		err.Scheme, err.Scheme.MinPoints(), err.Have)
}

func (err *InsufficientControlPointsError) Is(target error) bool {
	return target == ErrInsufficientControlPoints
}

// DegenerateSegmentWarning describes a tangent query that hit a segment whose
// derivative vanishes, typically because consecutive control points coincide.
// It is not an error; the tangent is still defined, by falling back to the
// direction of a nearby segment.
type DegenerateSegmentWarning struct {
	// Segment is the index of the segment that was queried.
	Segment int
	// T is the clamped curve parameter of the query.
	T float64
	// Fallback is the index of the segment whose direction was used instead,
	// or -1 if the whole curve is degenerate and the zero vector was returned.
	Fallback int
}

func (w DegenerateSegmentWarning) Error() string {
	if w.Fallback < 0 {
		return fmt.Sprintf("degenerate tangent at t=%g in segment %d: curve has no direction", w.T, w.Segment)
	}
	return fmt.Sprintf("degenerate tangent at t=%g in segment %d: using direction of segment %d", w.T, w.Segment, w.Fallback)
}
