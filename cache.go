package spline

import "log/slog"

// CurveCache holds the most recently materialized samples of a [Spline], for
// consumers that need the whole curve at once, such as a renderer drawing it
// as a polyline.
//
// The cache is never refreshed implicitly. After the control points or
// options of the spline change, the cache is dirty and keeps returning the
// old samples until [CurveCache.Refresh] is called.
type CurveCache struct {
	src    *Spline
	points []Point
	key    cacheKey
	valid  bool
}

// Dirty reports whether the cached samples are out of date, or haven't been
// computed yet.
func (c *CurveCache) Dirty() bool {
	return !c.valid || c.key != c.src.key()
}

// Refresh recomputes the samples if the cache is dirty. It evaluates the
// spline at resolution evenly spaced parameters, including both end points.
//
// If the spline can't be evaluated, the error is returned and the previous
// samples are kept.
func (c *CurveCache) Refresh() error {
	if !c.Dirty() {
		return nil
	}
	key := c.src.key()
	pts, err := c.src.points()
	if err != nil {
		return err
	}
	scheme := c.src.opts.Scheme
	res := c.src.opts.resolution()
	out := make([]Point, res)
	for i := range out {
		out[i] = evalPoint(pts, scheme, float64(i)/float64(res-1))
	}
	c.points = out
	c.key = key
	c.valid = true
	c.src.opts.Logger.Debug("refreshed curve cache",
		slog.String("scheme", scheme.String()),
		slog.Int("resolution", res),
		slog.Uint64("version", key.points))
	return nil
}

// Points returns the samples computed by the last successful refresh, or nil
// if there hasn't been one. The returned slice must not be modified.
func (c *CurveCache) Points() []Point {
	return c.points
}
