package spline

import (
	"fmt"
	"iter"
	"log/slog"
)

// DefaultResolution is the number of samples used by [ArcLengthTable] and
// [CurveCache] when [Options.Resolution] is zero.
const DefaultResolution = 32

// Options configures a [Spline].
type Options struct {
	// Scheme selects the interpolation scheme. The zero value is
	// [CatmullRomScheme].
	Scheme Scheme `toml:"scheme"`
	// Resolution is the number of samples taken for arc length queries and the
	// curve cache. Zero means [DefaultResolution]; other values must be at
	// least 2.
	Resolution int `toml:"resolution"`
	// Closed connects the last control point back to the first. See [Close].
	Closed bool `toml:"closed"`

	// Logger receives debug output, including degenerate tangent warnings
	// when OnDegenerate is nil. Defaults to [slog.Default].
	Logger *slog.Logger `toml:"-"`
	// OnDegenerate, if set, is called whenever a tangent query had to fall
	// back to a neighboring direction.
	OnDegenerate func(DegenerateSegmentWarning) `toml:"-"`
}

func (opts Options) resolution() int {
	if opts.Resolution == 0 {
		return DefaultResolution
	}
	return opts.Resolution
}

func checkResolution(n int) error {
	if n != 0 && n < 2 {
		return fmt.Errorf("resolution %d: %w", n, ErrInvalidResolution)
	}
	return nil
}

func checkScheme(s Scheme) error {
	switch s {
	case CatmullRomScheme, BezierScheme:
		return nil
	default:
		return fmt.Errorf("unknown interpolation scheme %d", int(s))
	}
}

// cacheKey identifies the state that derived data was computed from.
type cacheKey struct {
	points  uint64
	options uint64
}

// Spline is a curve through a set of control points. It answers point,
// tangent and distance queries and owns the caches needed for them.
//
// The control points are owned by the caller and may be modified at any time
// through the [*ControlPoints] passed to [New]; the spline notices changes on
// the next query. Derived data is rebuilt lazily, with the exception of the
// [CurveCache], which must be refreshed explicitly.
//
// A Spline must not be used from multiple goroutines concurrently, and its
// control points must not be modified concurrently with queries.
type Spline struct {
	cp          *ControlPoints
	opts        Options
	optsVersion uint64

	// control points after applying opts.Closed
	pts    []Point
	ptsKey cacheKey
	ptsOK  bool

	table    *ArcLengthTable
	tableKey cacheKey

	cache CurveCache
}

// New returns a spline through cp. A nil cp is treated as an empty set of
// control points.
func New(cp *ControlPoints, opts Options) (*Spline, error) {
	if cp == nil {
		cp = &ControlPoints{}
	}
	if err := checkScheme(opts.Scheme); err != nil {
		return nil, err
	}
	if err := checkResolution(opts.Resolution); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Spline{
		cp:   cp,
		opts: opts,
	}
	s.cache.src = s
	return s, nil
}

func (s *Spline) key() cacheKey {
	return cacheKey{points: s.cp.Version(), options: s.optsVersion}
}

func (s *Spline) optionsChanged() {
	s.optsVersion++
}

// ControlPoints returns the control points the spline was created with.
func (s *Spline) ControlPoints() *ControlPoints {
	return s.cp
}

// Options returns the spline's current options.
func (s *Spline) Options() Options {
	return s.opts
}

// Resolution returns the effective resolution.
func (s *Spline) Resolution() int {
	return s.opts.resolution()
}

// SetScheme changes the interpolation scheme, invalidating all caches.
func (s *Spline) SetScheme(scheme Scheme) error {
	if err := checkScheme(scheme); err != nil {
		return err
	}
	if scheme != s.opts.Scheme {
		s.opts.Scheme = scheme
		s.optionsChanged()
	}
	return nil
}

// SetResolution changes the resolution, invalidating all caches. Zero selects
// [DefaultResolution].
func (s *Spline) SetResolution(n int) error {
	if err := checkResolution(n); err != nil {
		return err
	}
	if n != s.opts.Resolution {
		s.opts.Resolution = n
		s.optionsChanged()
	}
	return nil
}

// SetClosed opens or closes the curve, invalidating all caches.
func (s *Spline) SetClosed(closed bool) {
	if closed != s.opts.Closed {
		s.opts.Closed = closed
		s.optionsChanged()
	}
}

// Cache returns the spline's curve cache.
func (s *Spline) Cache() *CurveCache {
	return &s.cache
}

// points returns the control points to evaluate, after validating them.
func (s *Spline) points() ([]Point, error) {
	if key := s.key(); !s.ptsOK || s.ptsKey != key {
		s.pts = s.cp.pts
		if s.opts.Closed {
			s.pts = Close(s.pts, s.opts.Scheme)
		}
		s.ptsKey = key
		s.ptsOK = true
	}
	if err := s.opts.Scheme.Validate(len(s.pts)); err != nil {
		return nil, err
	}
	return s.pts, nil
}

// Validate reports whether the spline can currently be evaluated.
func (s *Spline) Validate() error {
	_, err := s.points()
	return err
}

// NumSegments returns the number of segments, or 0 if the spline isn't
// valid.
func (s *Spline) NumSegments() int {
	pts, err := s.points()
	if err != nil {
		return 0
	}
	return s.opts.Scheme.NumSegments(len(pts))
}

// Point returns the point at curve parameter t, which is clamped to [0, 1].
func (s *Spline) Point(t float64) (Point, error) {
	pts, err := s.points()
	if err != nil {
		return Point{}, err
	}
	return evalPoint(pts, s.opts.Scheme, t), nil
}

// Tangent returns the unit tangent at curve parameter t, which is clamped to
// [0, 1]. See [EvalTangent] for the handling of degenerate segments.
func (s *Spline) Tangent(t float64) (Vec3, error) {
	pts, err := s.points()
	if err != nil {
		return Vec3{}, err
	}
	v, w, err := evalTangent(pts, s.opts.Scheme, t)
	if err != nil {
		return Vec3{}, err
	}
	if w != nil {
		s.warn(*w)
	}
	return v, nil
}

func (s *Spline) warn(w DegenerateSegmentWarning) {
	if s.opts.OnDegenerate != nil {
		s.opts.OnDegenerate(w)
		return
	}
	s.opts.Logger.Debug("degenerate spline tangent",
		slog.Int("segment", w.Segment),
		slog.Float64("t", w.T),
		slog.Int("fallback", w.Fallback))
}

// ArcLengthTable returns the arc length table for the current control points
// and options, building it if necessary.
func (s *Spline) ArcLengthTable() (*ArcLengthTable, error) {
	key := s.key()
	if s.table != nil && s.tableKey == key {
		return s.table, nil
	}
	pts, err := s.points()
	if err != nil {
		return nil, err
	}
	tab, err := NewArcLengthTable(pts, s.opts.Scheme, s.opts.resolution())
	if err != nil {
		return nil, err
	}
	s.table = tab
	s.tableKey = key
	s.opts.Logger.Debug("rebuilt arc length table",
		slog.String("scheme", s.opts.Scheme.String()),
		slog.Int("resolution", tab.Resolution()),
		slog.Float64("length", tab.Length()))
	return tab, nil
}

// Length returns the approximate length of the curve, as measured by the arc
// length table. See [Spline.Arclen] for a more accurate measurement.
func (s *Spline) Length() (float64, error) {
	tab, err := s.ArcLengthTable()
	if err != nil {
		return 0, err
	}
	return tab.Length(), nil
}

// PositionAtDistance returns the point at distance d along the curve. d is
// clamped to [0, Length].
func (s *Spline) PositionAtDistance(d float64) (Point, error) {
	tab, err := s.ArcLengthTable()
	if err != nil {
		return Point{}, err
	}
	return tab.PositionAtDistance(d), nil
}

// ParamAtDistance returns the curve parameter of the point at distance d
// along the curve. d is clamped to [0, Length].
func (s *Spline) ParamAtDistance(d float64) (float64, error) {
	tab, err := s.ArcLengthTable()
	if err != nil {
		return 0, err
	}
	return tab.ParamAtDistance(d), nil
}

// DistanceAtParam returns the distance along the curve of the point at curve
// parameter t. t is clamped to [0, 1].
func (s *Spline) DistanceAtParam(t float64) (float64, error) {
	tab, err := s.ArcLengthTable()
	if err != nil {
		return 0, err
	}
	return tab.DistanceAtParam(t), nil
}

// ParamAtArclen is like [Spline.ParamAtDistance], but measures distances
// using numerical integration instead of the arc length table. It is slower,
// and its result doesn't depend on the resolution.
func (s *Spline) ParamAtArclen(arclen, accuracy float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if !(arclen > 0) {
		return 0, nil
	}
	n := s.NumSegments()
	acc := accuracy / float64(n)
	i := 0
	for c := range s.Segments() {
		l := c.Arclen(acc)
		if arclen < l || i == n-1 {
			return (float64(i) + c.SolveForArclen(arclen, acc)) / float64(n), nil
		}
		arclen -= l
		i++
	}
	return 1, nil
}

// Segments returns an iterator over the segments of the curve, expressed as
// cubic Béziers. Catmull-Rom segments are converted exactly. If the spline
// isn't valid, the iterator yields nothing; use [Spline.Validate] to find out
// why.
func (s *Spline) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		pts, err := s.points()
		if err != nil {
			return
		}
		scheme := s.opts.Scheme
		for i := range scheme.NumSegments(len(pts)) {
			if !yield(scheme.segment(pts, i).CubicBez()) {
				return
			}
		}
	}
}

// Arclen returns the length of the curve, computed to the given accuracy
// using Legendre-Gauss quadrature on each segment.
func (s *Spline) Arclen(accuracy float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	n := float64(s.NumSegments())
	var sum float64
	for c := range s.Segments() {
		sum += c.Arclen(accuracy / n)
	}
	return sum, nil
}

// BoundingBox returns the smallest axis-aligned box enclosing the curve.
// Unlike the box of the control points, it is tight.
func (s *Spline) BoundingBox() (Box, error) {
	if err := s.Validate(); err != nil {
		return Box{}, err
	}
	var bbox Box
	first := true
	for c := range s.Segments() {
		if first {
			bbox = c.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(c.BoundingBox())
		}
	}
	return bbox, nil
}

// Nearest finds the point on the curve closest to pt. It returns the squared
// distance to that point and its curve parameter.
func (s *Spline) Nearest(pt Point, accuracy float64) (distSq, t float64, err error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	n := s.NumSegments()
	var best option[float64]
	i := 0
	for c := range s.Segments() {
		d, u := c.Nearest(pt, accuracy*float64(n))
		if !best.isSet || d < best.value {
			best.set(d)
			t = (float64(i) + u) / float64(n)
		}
		i++
	}
	return best.value, t, nil
}
