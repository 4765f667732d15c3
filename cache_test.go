package spline

import (
	"errors"
	"testing"
)

func TestCurveCacheRefresh(t *testing.T) {
	cp := NewControlPoints(helix(7)...)
	s, err := New(cp, Options{Resolution: 16})
	if err != nil {
		t.Fatal(err)
	}
	c := s.Cache()
	if !c.Dirty() || c.Points() != nil {
		t.Fatal("new cache should be dirty and empty")
	}
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	if c.Dirty() {
		t.Error("cache is dirty after refresh")
	}
	pts := c.Points()
	if len(pts) != 16 {
		t.Fatalf("got %d points, want 16", len(pts))
	}
	start, _ := s.Point(0)
	end, _ := s.Point(1)
	diff(t, start, pts[0])
	diff(t, end, pts[15])

	// Refreshing a clean cache does nothing.
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	if again := c.Points(); &again[0] != &pts[0] {
		t.Error("clean cache was recomputed")
	}
}

func TestCurveCacheInvalidation(t *testing.T) {
	cp := NewControlPoints(helix(7)...)
	s, err := New(cp, Options{})
	if err != nil {
		t.Fatal(err)
	}
	c := s.Cache()
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	old := c.Points()

	if err := cp.Set(0, Pt(5, 5, 5)); err != nil {
		t.Fatal(err)
	}
	if !c.Dirty() {
		t.Fatal("cache isn't dirty after modifying control points")
	}
	// Stale data is kept until the next refresh.
	diff(t, old, c.Points())
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(5, 5, 5), c.Points()[0])

	if err := s.SetScheme(BezierScheme); err != nil {
		t.Fatal(err)
	}
	if !c.Dirty() {
		t.Error("cache isn't dirty after changing the scheme")
	}
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetResolution(8); err != nil {
		t.Fatal(err)
	}
	if !c.Dirty() {
		t.Error("cache isn't dirty after changing the resolution")
	}
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	if n := len(c.Points()); n != 8 {
		t.Errorf("got %d points, want 8", n)
	}
}

func TestCurveCacheFailedRefresh(t *testing.T) {
	cp := NewControlPoints(square...)
	s, err := New(cp, Options{})
	if err != nil {
		t.Fatal(err)
	}
	c := s.Cache()
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	old := c.Points()

	if err := cp.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if err := c.Refresh(); !errors.Is(err, ErrInsufficientControlPoints) {
		t.Fatalf("got %v, want ErrInsufficientControlPoints", err)
	}
	if !c.Dirty() {
		t.Error("cache isn't dirty after failed refresh")
	}
	diff(t, old, c.Points())
}
