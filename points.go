package spline

import (
	"fmt"
	"iter"
	"slices"
)

// ControlPoints is an ordered, mutable sequence of control points. The order
// of the points defines the direction in which the curve is traversed.
//
// Every mutation increments the version reported by [ControlPoints.Version],
// which is how splines referencing the control points notice changes. The
// zero value is an empty sequence, ready to use.
type ControlPoints struct {
	pts     []Point
	version uint64
}

// NewControlPoints returns control points initialized with a copy of pts.
func NewControlPoints(pts ...Point) *ControlPoints {
	return &ControlPoints{pts: slices.Clone(pts)}
}

func (cp *ControlPoints) changed() {
	cp.version++
}

// Version returns a counter that changes every time the control points are
// modified.
func (cp *ControlPoints) Version() uint64 {
	return cp.version
}

func (cp *ControlPoints) Len() int {
	return len(cp.pts)
}

// At returns the i-th control point. It panics if i is out of range.
func (cp *ControlPoints) At(i int) Point {
	return cp.pts[i]
}

// Points returns a copy of the control points.
func (cp *ControlPoints) Points() []Point {
	return slices.Clone(cp.pts)
}

// All returns an iterator over the indices and control points.
func (cp *ControlPoints) All() iter.Seq2[int, Point] {
	return slices.All(cp.pts)
}

// Append adds points to the end of the sequence.
func (cp *ControlPoints) Append(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	cp.pts = append(cp.pts, pts...)
	cp.changed()
}

// Insert inserts pt at index i, shifting subsequent points. i may equal Len,
// which appends.
func (cp *ControlPoints) Insert(i int, pt Point) error {
	if i < 0 || i > len(cp.pts) {
		return cp.rangeError(i)
	}
	cp.pts = slices.Insert(cp.pts, i, pt)
	cp.changed()
	return nil
}

// RemoveAt removes the point at index i.
func (cp *ControlPoints) RemoveAt(i int) error {
	if i < 0 || i >= len(cp.pts) {
		return cp.rangeError(i)
	}
	cp.pts = slices.Delete(cp.pts, i, i+1)
	cp.changed()
	return nil
}

// Set replaces the point at index i.
func (cp *ControlPoints) Set(i int, pt Point) error {
	if i < 0 || i >= len(cp.pts) {
		return cp.rangeError(i)
	}
	if cp.pts[i] == pt {
		return nil
	}
	cp.pts[i] = pt
	cp.changed()
	return nil
}

// Transform applies aff to all points.
func (cp *ControlPoints) Transform(aff Affine) {
	for i, pt := range cp.pts {
		cp.pts[i] = pt.Transform(aff)
	}
	cp.changed()
}

func (cp *ControlPoints) rangeError(i int) error {
	return fmt.Errorf("index %d with %d control points: %w", i, len(cp.pts), ErrIndexOutOfRange)
}
