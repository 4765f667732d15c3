package spline

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func newSpline(t *testing.T, pts []Point, opts Options) (*Spline, *ControlPoints) {
	t.Helper()
	cp := NewControlPoints(pts...)
	s, err := New(cp, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s, cp
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, Options{Resolution: 1}); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("got %v, want ErrInvalidResolution", err)
	}
	if _, err := New(nil, Options{Scheme: Scheme(9)}); err == nil {
		t.Error("expected error for unknown scheme")
	}
	s, err := New(nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Point(0.5); !errors.Is(err, ErrInsufficientControlPoints) {
		t.Errorf("got %v, want ErrInsufficientControlPoints", err)
	}
	if s.NumSegments() != 0 {
		t.Errorf("got %d segments for an empty spline", s.NumSegments())
	}
	if s.Resolution() != DefaultResolution {
		t.Errorf("got resolution %d, want %d", s.Resolution(), DefaultResolution)
	}
	if err := s.SetResolution(1); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("got %v, want ErrInvalidResolution", err)
	}
	if err := s.SetScheme(Scheme(-1)); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestSplineQueries(t *testing.T) {
	s, _ := newSpline(t, square, Options{})
	p, err := s.Point(0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, p, Pt(1.125, 0.5, 0), 1e-12)
	v, err := s.Tangent(0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, Point(v), Pt(0, 1, 0), 1e-12)

	l, err := s.Length()
	if err != nil {
		t.Fatal(err)
	}
	start, err := s.PositionAtDistance(0)
	if err != nil {
		t.Fatal(err)
	}
	end, err := s.PositionAtDistance(l)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, square[0], start)
	assertNear(t, end, square[3], 1e-12)

	ts, err := s.ParamAtDistance(l / 2)
	if err != nil {
		t.Fatal(err)
	}
	d, err := s.DistanceAtParam(ts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-l/2) > 1e-9 {
		t.Errorf("got distance %v, want %v", d, l/2)
	}
}

func TestSplineTableReuse(t *testing.T) {
	s, cp := newSpline(t, helix(7), Options{})
	tab1, err := s.ArcLengthTable()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.PositionAtDistance(1); err != nil {
		t.Fatal(err)
	}
	tab2, err := s.ArcLengthTable()
	if err != nil {
		t.Fatal(err)
	}
	if tab1 != tab2 {
		t.Error("table was rebuilt without changes")
	}

	cp.Append(Pt(0, 0, 5))
	tab3, err := s.ArcLengthTable()
	if err != nil {
		t.Fatal(err)
	}
	if tab3 == tab2 {
		t.Error("table wasn't rebuilt after modifying control points")
	}
	if tab3.Length() <= tab2.Length() {
		t.Errorf("appending a point didn't make the curve longer: %v <= %v", tab3.Length(), tab2.Length())
	}

	if err := s.SetResolution(100); err != nil {
		t.Fatal(err)
	}
	tab4, err := s.ArcLengthTable()
	if err != nil {
		t.Fatal(err)
	}
	if tab4.Resolution() != 100 {
		t.Errorf("got resolution %d, want 100", tab4.Resolution())
	}

	// Setting the same value doesn't invalidate anything.
	if err := s.SetResolution(100); err != nil {
		t.Fatal(err)
	}
	s.SetClosed(false)
	if tab5, _ := s.ArcLengthTable(); tab5 != tab4 {
		t.Error("table was rebuilt without changes")
	}
}

func TestSplineClosed(t *testing.T) {
	for _, tt := range []struct {
		scheme Scheme
		pts    []Point
	}{
		{CatmullRomScheme, square},
		{BezierScheme, helix(7)},
	} {
		s, cp := newSpline(t, tt.pts, Options{Scheme: tt.scheme, Closed: true})
		start, err := s.Point(0)
		if err != nil {
			t.Fatal(err)
		}
		end, err := s.Point(1)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, start, end, 1e-12)
		if want := tt.scheme.NumSegments(len(tt.pts)) + 1; s.NumSegments() != want {
			t.Errorf("%s: got %d segments, want %d", tt.scheme, s.NumSegments(), want)
		}
		// The caller's control points are unaffected.
		diff(t, tt.pts, cp.Points())

		s.SetClosed(false)
		if end, _ := s.Point(1); end != tt.pts[len(tt.pts)-1] && end.Distance(tt.pts[len(tt.pts)-1]) > 1e-12 {
			t.Errorf("%s: open curve ends at %s", tt.scheme, end)
		}
	}
}

func TestSplineDegenerateReporting(t *testing.T) {
	p := Pt(1, 1, 1)
	pts := []Point{p, p, p, p}

	var got []DegenerateSegmentWarning
	s, _ := newSpline(t, pts, Options{
		OnDegenerate: func(w DegenerateSegmentWarning) { got = append(got, w) },
	})
	v, err := s.Tangent(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec3{}, v)
	diff(t, []DegenerateSegmentWarning{{Segment: 1, T: 0.5, Fallback: -1}}, got)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, _ = newSpline(t, pts, Options{Logger: logger})
	if _, err := s.Tangent(0.5); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "degenerate spline tangent") || !strings.Contains(out, "fallback=-1") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestSplineSegments(t *testing.T) {
	s, _ := newSpline(t, helix(8), Options{})
	var segs []CubicBez
	for c := range s.Segments() {
		segs = append(segs, c)
	}
	if len(segs) != 7 {
		t.Fatalf("got %d segments, want 7", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i-1].End() != segs[i].Start() {
			t.Errorf("segment %d ends at %s, segment %d starts at %s", i-1, segs[i-1].End(), i, segs[i].Start())
		}
	}
	for i := range 71 {
		ts := float64(i) / 70
		p, err := s.Point(ts)
		if err != nil {
			t.Fatal(err)
		}
		seg, u := locate(len(segs), ts)
		assertNear(t, segs[seg].Eval(u), p, 1e-12)
	}

	// Stopping early
	n := 0
	for range s.Segments() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated over %d segments", n)
	}
}

func TestSplineBoundingBox(t *testing.T) {
	s, _ := newSpline(t, square, Options{})
	bbox, err := s.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	grown := bbox.Inflate(1e-9)
	for i := range 201 {
		p, err := s.Point(float64(i) / 200)
		if err != nil {
			t.Fatal(err)
		}
		if !grown.Contains(p) {
			t.Errorf("bounding box %v doesn't contain %s", bbox, p)
		}
	}
	// The curve bulges out of the square along x.
	if bbox.X1 <= 1 {
		t.Errorf("got bounding box %v, expected it to extend beyond x=1", bbox)
	}
	if bbox.Z0 != 0 || bbox.Z1 != 0 {
		t.Errorf("got bounding box %v, expected it to be flat", bbox)
	}
}

func TestSplineNearest(t *testing.T) {
	s, _ := newSpline(t, helix(7), Options{})
	for _, want := range []float64{0, 0.1, 0.45, 0.9, 1} {
		p, err := s.Point(want)
		if err != nil {
			t.Fatal(err)
		}
		distSq, got, err := s.Nearest(p, 1e-9)
		if err != nil {
			t.Fatal(err)
		}
		if distSq > 1e-12 || math.Abs(got-want) > 1e-6 {
			t.Errorf("Nearest(%s) = (%v, %v), want (0, %v)", p, distSq, got, want)
		}
	}
}

func TestSplineArclen(t *testing.T) {
	s, _ := newSpline(t, straight, Options{Scheme: BezierScheme})
	l, err := s.Arclen(1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l-3) > 1e-9 {
		t.Errorf("got arclen %v, want 3", l)
	}
	if err := s.ControlPoints().RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Arclen(1e-9); !errors.Is(err, ErrInsufficientControlPoints) {
		t.Errorf("got %v, want ErrInsufficientControlPoints", err)
	}
}

func TestSplineParamAtArclen(t *testing.T) {
	s, _ := newSpline(t, helix(7), Options{Resolution: 2000})
	total, err := s.Arclen(1e-9)
	if err != nil {
		t.Fatal(err)
	}
	for _, frac := range []float64{-0.5, 0, 0.2, 0.5, 0.77, 1, 1.5} {
		got, err := s.ParamAtArclen(frac*total, 1e-9)
		if err != nil {
			t.Fatal(err)
		}
		want, err := s.ParamAtDistance(frac * total)
		if err != nil {
			t.Fatal(err)
		}
		// The table underestimates lengths slightly.
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("at %v of the length: got %v, table says %v", frac, got, want)
		}
	}
}

func BenchmarkSplineTangent(b *testing.B) {
	cp := NewControlPoints(helix(100)...)
	s, err := New(cp, Options{})
	if err != nil {
		b.Fatal(err)
	}
	for i := range b.N {
		s.Tangent(float64(i%1000) / 1000)
	}
}
