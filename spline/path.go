package spline

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinerope"
	"github.com/npillmayer/splinerope/bezier"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

// Path is an editable sequence of cubic Bézier segments.
// Create one with New(…). The zero value is not a valid path.
//
// A path is not safe for concurrent mutation.
type Path struct {
	points []splinerope.Vec3 // anchors at i ≡ 0 (mod 3), guides in between
	closed bool              // does the last segment wrap around to z0 ?
	policy tangentPolicy     // strategy for keeping guides consistent
}

// New creates an open path of one segment, starting at origin and
// extending to the right. Its tangent policy is ExplicitMode, with both
// anchors set to Free.
func New(origin splinerope.Vec3) *Path {
	path := &Path{
		points: []splinerope.Vec3{
			origin,
			origin.Add(splinerope.Right.Scaled(0.5)).Add(splinerope.Up),
			origin.Add(splinerope.Right.Scaled(1.5)).Add(splinerope.Down),
			origin.Add(splinerope.Right.Scaled(2.0)),
		},
	}
	path.policy = newPolicy(ExplicitMode)
	path.policy.attach(path)
	return path
}

// N returns the number of control points (anchors and guides).
func (path *Path) N() int {
	return len(path.points)
}

// SegmentCount returns the number of cubic segments of a path.
func (path *Path) SegmentCount() int {
	return len(path.points) / 3
}

// IsClosed is a predicate: does the path wrap around?
func (path *Path) IsClosed() bool {
	return path.closed
}

// Point returns control point i.
func (path *Path) Point(i int) splinerope.Vec3 {
	path.checkIndex(i)
	return path.points[i]
}

// Points returns a copy of all control points.
func (path *Path) Points() []splinerope.Vec3 {
	pts := make([]splinerope.Vec3, len(path.points))
	copy(pts, path.points)
	return pts
}

// Policy returns the tangent policy in effect for path.
func (path *Path) Policy() Policy {
	return path.policy.kind()
}

// SetPolicy switches the tangent policy of a path. Switching to AutoSmooth
// re-derives all guides; switching to ExplicitMode starts with every
// anchor set to Free.
func (path *Path) SetPolicy(p Policy) {
	if path.policy.kind() == p {
		return
	}
	tracer().Debugf("path switches tangent policy from %s to %s", path.policy.kind(), p)
	path.policy = newPolicy(p)
	path.policy.attach(path)
}

// Segment returns the 4 control points of segment i. For the last
// segment of a closed path, the 4th point is z0.
func (path *Path) Segment(i int) bezier.Segment {
	if i < 0 || i >= path.SegmentCount() {
		panic(fmt.Sprintf("segment index %d out of range [0,%d)", i, path.SegmentCount()))
	}
	j := i * 3
	return bezier.Segment{
		path.points[j], path.points[j+1], path.points[j+2], path.points[path.wrap(j+3)],
	}
}

// At evaluates a path at t ∈ [0…1], where 0 is the start of the first
// segment and 1 is the end of the last one.
func (path *Path) At(t float64) splinerope.Vec3 {
	i, u := path.locate(t)
	return path.Segment(i).At(u)
}

// TangentAt returns the (unnormalized) derivative of the segment containing
// path position t ∈ [0…1].
func (path *Path) TangentAt(t float64) splinerope.Vec3 {
	i, u := path.locate(t)
	return path.Segment(i).Tangent(u)
}

// Map a global path position to a segment index and a local parameter.
func (path *Path) locate(t float64) (int, float64) {
	n := path.SegmentCount()
	if t >= 1 {
		return n - 1, 1
	}
	t = splinerope.Clamp01(t) * float64(n)
	i := int(t)
	return i, t - float64(i)
}

// --- Index arithmetic ------------------------------------------------------

// wrap maps an index onto [0…N) by circular arithmetic.
func (path *Path) wrap(i int) int {
	n := len(path.points)
	return (i%n + n) % n
}

// exists is a predicate: is there a point at index i? For closed paths
// every index exists, modulo N.
func (path *Path) exists(i int) bool {
	return path.closed || (i >= 0 && i < len(path.points))
}

// anchorCount is the number of distinct anchors.
func (path *Path) anchorCount() int {
	if path.closed {
		return path.SegmentCount()
	}
	return path.SegmentCount() + 1
}

// isEndpoint is a predicate: is anchor a the first or last anchor of an open path?
func (path *Path) isEndpoint(a int) bool {
	return !path.closed && (a == 0 || a == len(path.points)-1)
}

func (path *Path) checkIndex(i int) {
	if i < 0 || i >= len(path.points) {
		panic(fmt.Sprintf("point index %d out of range [0,%d)", i, len(path.points)))
	}
}

func (path *Path) checkAnchor(a int) {
	path.checkIndex(a)
	if a%3 != 0 {
		panic(fmt.Sprintf("point index %d does not denote an anchor", a))
	}
}
