package spline

import (
	"fmt"
	"slices"
	"sort"
)

// Sample is a point on a spline, together with its curve parameter and its
// approximate distance from the start of the spline.
type Sample struct {
	T    float64
	Pos  Point
	Dist float64
}

// ArcLengthTable maps distances along a spline to curve parameters.
//
// The curve parameter t isn't proportional to the distance travelled along
// the curve. The table samples the spline at evenly spaced parameters and
// accumulates the lengths of the chords between samples, which approximates
// the arc length from below. Queries interpolate linearly between samples.
//
// A table is immutable. It holds a copy of the control points it was built
// from and has to be rebuilt when they change.
type ArcLengthTable struct {
	pts     []Point
	scheme  Scheme
	samples []Sample
}

// NewArcLengthTable samples the spline formed by pts at resolution evenly
// spaced parameters, including both end points.
func NewArcLengthTable(pts []Point, s Scheme, resolution int) (*ArcLengthTable, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("arc length table with resolution %d: %w", resolution, ErrInvalidResolution)
	}
	if err := s.Validate(len(pts)); err != nil {
		return nil, err
	}
	tab := &ArcLengthTable{
		pts:     slices.Clone(pts),
		scheme:  s,
		samples: make([]Sample, resolution),
	}
	var dist float64
	for i := range tab.samples {
		t := float64(i) / float64(resolution-1)
		p := tab.eval(t)
		if i > 0 {
			dist += p.Distance(tab.samples[i-1].Pos)
		}
		tab.samples[i] = Sample{T: t, Pos: p, Dist: dist}
	}
	return tab, nil
}

func (tab *ArcLengthTable) eval(t float64) Point {
	return evalPoint(tab.pts, tab.scheme, t)
}

// Resolution returns the number of samples in the table.
func (tab *ArcLengthTable) Resolution() int {
	return len(tab.samples)
}

// Length returns the approximate length of the spline.
func (tab *ArcLengthTable) Length() float64 {
	return tab.samples[len(tab.samples)-1].Dist
}

// Samples returns a copy of the samples. Their distances are non-decreasing.
func (tab *ArcLengthTable) Samples() []Sample {
	return slices.Clone(tab.samples)
}

// ParamAtDistance returns the curve parameter of the point at distance d from
// the start of the spline. d is clamped to [0, Length].
func (tab *ArcLengthTable) ParamAtDistance(d float64) float64 {
	if !(d > 0) {
		return 0
	}
	if d >= tab.Length() {
		return 1
	}
	// samples[0].Dist is 0 and d is positive, so i ≥ 1.
	i := sort.Search(len(tab.samples), func(i int) bool {
		return tab.samples[i].Dist >= d
	})
	lo, hi := tab.samples[i-1], tab.samples[i]
	span := hi.Dist - lo.Dist
	if span <= 0 {
		return lo.T
	}
	return lo.T + (hi.T-lo.T)*((d-lo.Dist)/span)
}

// DistanceAtParam returns the approximate distance from the start of the
// spline to the point at curve parameter t. It is the inverse of
// [ArcLengthTable.ParamAtDistance]. t is clamped to [0, 1].
func (tab *ArcLengthTable) DistanceAtParam(t float64) float64 {
	// The samples are evenly spaced in t, so locating a sample works like
	// locating a segment.
	i, u := locate(len(tab.samples)-1, clampParam(t))
	lo, hi := tab.samples[i], tab.samples[i+1]
	return lo.Dist + (hi.Dist-lo.Dist)*u
}

// PositionAtDistance returns the point at distance d from the start of the
// spline. d is clamped to [0, Length]. The point is computed by evaluating the
// spline, not by interpolating between samples.
func (tab *ArcLengthTable) PositionAtDistance(d float64) Point {
	return tab.eval(tab.ParamAtDistance(d))
}
