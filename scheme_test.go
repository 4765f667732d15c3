package spline

import (
	"errors"
	"testing"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in   string
		want Scheme
	}{
		{"catmull-rom", CatmullRomScheme},
		{"Catmull-Rom", CatmullRomScheme},
		{"catmullrom", CatmullRomScheme},
		{" bezier ", BezierScheme},
		{"Bézier", BezierScheme},
	}
	for _, tt := range tests {
		got, err := ParseScheme(tt.in)
		if err != nil {
			t.Errorf("ParseScheme(%q): %s", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScheme(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseScheme("b-spline"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestSchemeText(t *testing.T) {
	for _, s := range []Scheme{CatmullRomScheme, BezierScheme} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Scheme
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("got %s, want %s", got, s)
		}
	}
	if _, err := Scheme(7).MarshalText(); err == nil {
		t.Error("expected error for unknown scheme")
	}
	diff(t, "Scheme(7)", Scheme(7).String())
}

func TestSchemeValidate(t *testing.T) {
	tests := []struct {
		scheme Scheme
		n      int
		ok     bool
		segs   int
		need   int
	}{
		{CatmullRomScheme, 0, false, 0, 4},
		{CatmullRomScheme, 3, false, 2, 4},
		{CatmullRomScheme, 4, true, 3, 4},
		{CatmullRomScheme, 9, true, 8, 9},
		{BezierScheme, 1, false, 0, 4},
		{BezierScheme, 4, true, 1, 4},
		{BezierScheme, 5, false, 1, 7},
		{BezierScheme, 6, false, 1, 7},
		{BezierScheme, 7, true, 2, 7},
		{BezierScheme, 11, false, 3, 13},
	}
	for _, tt := range tests {
		err := tt.scheme.Validate(tt.n)
		if (err == nil) != tt.ok {
			t.Errorf("%s with %d points: got error %v, want ok=%t", tt.scheme, tt.n, err, tt.ok)
		}
		if got := tt.scheme.NumSegments(tt.n); got != tt.segs {
			t.Errorf("%s with %d points: got %d segments, want %d", tt.scheme, tt.n, got, tt.segs)
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrInsufficientControlPoints) {
			t.Errorf("%s is not ErrInsufficientControlPoints", err)
		}
		var ierr *InsufficientControlPointsError
		if !errors.As(err, &ierr) {
			t.Fatalf("got %T, want *InsufficientControlPointsError", err)
		}
		diff(t, tt.scheme, ierr.Scheme)
		diff(t, tt.n, ierr.Have)
		diff(t, tt.need, ierr.Need())
	}
}
