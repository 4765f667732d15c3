// Package spline evaluates 3D curves interpolated from an ordered list of
// control points. It is meant to be the numerical core of spline editing
// tools: an editor or renderer queries points, tangents, and positions at a
// given distance along the curve, and draws the results however it likes.
//
// # Schemes
//
// Two interpolation schemes are supported, selected by [Scheme]:
//
//   - [CatmullRomScheme] passes through every control point. Consecutive
//     control points are joined by uniform Catmull-Rom segments (see
//     [CatmullRom]). The first and last segments use their end points in
//     place of the missing outer neighbors.
//   - [BezierScheme] interprets the control points as a chain of cubic Bézier
//     segments (see [CubicBez]) sharing end points, so it needs 3n+1 points.
//     The curve passes through every third point; the others are handles.
//
// Both schemes need at least four control points. Evaluating fewer, or a
// Bézier chain with dangling handles, results in an
// [*InsufficientControlPointsError].
//
// # Parameters and distances
//
// Curves are parametrized by t ∈ [0, 1], which is divided evenly among
// segments. Values outside that range are clamped. Because t isn't
// proportional to the distance travelled along the curve, [ArcLengthTable]
// approximates the arc length by sampling the curve, which allows looking up
// positions by distance.
//
// # Evaluation and caching
//
// [EvalPoint] and [EvalTangent] are pure functions of control points, scheme,
// and parameter. [Spline] wraps them for a caller-owned set of
// [ControlPoints], and owns the derived data: an [ArcLengthTable] rebuilt
// lazily when the control points or options change, and a [CurveCache] of
// sampled points that is only ever rebuilt on request.
//
// Closed curves are produced by [Close], which appends synthetic control
// points, rather than by a mode of the evaluator. [Options.Closed] applies it
// automatically.
//
// # Degenerate input
//
// Coincident control points can make the derivative of a segment vanish.
// Tangent queries never return NaN in that case; they fall back to the
// direction of the nearest segment that has one, and report a
// [DegenerateSegmentWarning]. A curve that collapses to a single point has the
// zero vector as its tangent.
//
// # Concurrency
//
// Nothing in this package does internal locking. A [Spline] and its
// [ControlPoints] must be used from a single goroutine at a time.
package spline
