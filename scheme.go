package spline

import (
	"fmt"
	"strings"
)

// Scheme selects the basis functions used to interpolate control points.
type Scheme int

const (
	// CatmullRomScheme interpolates every control point using uniform
	// Catmull-Rom segments. Each pair of consecutive control points is joined
	// by one segment.
	CatmullRomScheme Scheme = iota
	// BezierScheme treats control points as a chain of cubic Bézier segments
	// of the form [P₀, C₀, C₁, P₁, C₂, C₃, P₂, ...], in which consecutive
	// segments share their end points.
	BezierScheme
)

func (s Scheme) String() string {
	switch s {
	case CatmullRomScheme:
		return "catmull-rom"
	case BezierScheme:
		return "bezier"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme parses the name of a scheme, as returned by [Scheme.String].
// Matching is case insensitive, and "catmullrom" is accepted as well.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "catmull-rom", "catmullrom", "catmull_rom":
		return CatmullRomScheme, nil
	case "bezier", "bézier":
		return BezierScheme, nil
	default:
		return 0, fmt.Errorf("unknown interpolation scheme %q", name)
	}
}

func (s Scheme) MarshalText() ([]byte, error) {
	switch s {
	case CatmullRomScheme, BezierScheme:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown interpolation scheme %d", int(s))
	}
}

func (s *Scheme) UnmarshalText(b []byte) error {
	v, err := ParseScheme(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MinPoints returns the minimum number of control points needed to evaluate
// a spline of this scheme.
func (s Scheme) MinPoints() int {
	return 4
}

// Validate checks that n control points form a valid spline of this scheme.
func (s Scheme) Validate(n int) error {
	if n < s.MinPoints() || (s == BezierScheme && (n-1)%3 != 0) {
		return &InsufficientControlPointsError{Scheme: s, Have: n}
	}
	return nil
}

// NumSegments returns the number of segments formed by n control points. It
// doesn't validate n.
func (s Scheme) NumSegments(n int) int {
	if n < 2 {
		return 0
	}
	switch s {
	case BezierScheme:
		return (n - 1) / 3
	default:
		return n - 1
	}
}

// segment is a single cubic piece of a spline, parametrized over [0, 1].
type segment interface {
	Eval(u float64) Point
	Deriv(u float64) Vec3
	CubicBez() CubicBez
}

var _ segment = CatmullRom{}
var _ segment = bezSegment{}

// bezSegment adapts [CubicBez] to segment.
type bezSegment struct{ c CubicBez }

func (b bezSegment) Eval(u float64) Point { return b.c.Eval(u) }
func (b bezSegment) Deriv(u float64) Vec3 { return b.c.Deriv(u) }
func (b bezSegment) CubicBez() CubicBez   { return b.c }

// segment returns segment i of the spline formed by pts. For Catmull-Rom
// splines, the missing neighbors of the first and last segments are clamped
// to the end points, i.e. P₋₁ = P₀ and Pₙ = Pₙ₋₁. This is the usual convention
// for open curves. It changes the curvature of the end segments compared to
// extrapolated neighbors.
func (s Scheme) segment(pts []Point, i int) segment {
	switch s {
	case BezierScheme:
		return bezSegment{CubicBez{pts[3*i], pts[3*i+1], pts[3*i+2], pts[3*i+3]}}
	default:
		n := len(pts)
		return CatmullRom{
			P0: pts[max(i-1, 0)],
			P1: pts[i],
			P2: pts[i+1],
			P3: pts[min(i+2, n-1)],
		}
	}
}
