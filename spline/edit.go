package spline

import (
	"slices"

	"github.com/npillmayer/splinerope"
)

// AddSegment extends a path by one segment, continuing straight to the
// right of the last anchor. The new anchor inherits the tangent mode of the
// former last anchor. For closed paths, the new segment is inserted before
// the closing segment, which then starts at the new anchor.
func (path *Path) AddSegment() {
	r := splinerope.Right
	var a int // the new anchor
	if !path.closed {
		last := path.points[len(path.points)-1]
		path.points = append(path.points, last.Add(r), last.Add(r.Scaled(2)), last.Add(r.Scaled(3)))
		a = len(path.points) - 1
	} else {
		l := len(path.points) - 3 // last anchor before wrapping around
		last := path.points[l]
		path.points = slices.Insert(path.points, l+1, last.Add(r), last.Add(r.Scaled(2)), last.Add(r.Scaled(3)))
		a = l + 3
		path.points[a+1] = path.points[a+1].Add(r.Scaled(3)) // closing guide follows the new anchor
	}
	tracer().Debugf("path appended segment ending at z%d = %s", a, path.points[a])
	path.policy.anchorAdded(path, a)
}

// DeleteSegment removes anchor a together with two of its guides, thus
// joining its neighbouring segments. The call is ignored if the path would
// shrink below its minimum size, which is 1 segment for open paths and 2
// segments for closed ones.
//
// It is a programming error to call DeleteSegment with an index not
// denoting an anchor.
func (path *Path) DeleteSegment(a int) {
	path.checkAnchor(a)
	n := path.SegmentCount()
	if !(n > 2 || !path.closed && n > 1) {
		tracer().Debugf("path has %d segments, refusing to delete z%d", n, a)
		return
	}
	k := a / 3
	switch {
	case a == 0:
		if path.closed {
			path.points[len(path.points)-1] = path.points[2]
		}
		path.points = slices.Delete(path.points, 0, 3)
	case a == len(path.points)-1 && !path.closed:
		path.points = slices.Delete(path.points, a-2, a+1)
	default:
		path.points = slices.Delete(path.points, a-1, a+2)
	}
	tracer().Debugf("path deleted anchor #%d, %d segments left", k, path.SegmentCount())
	path.policy.anchorRemoved(path, k)
}

// SetPoint moves control point i to p, respecting the tangent policy of
// the path:
//
// With policy ExplicitMode, moving an anchor moves its guides by the same
// offset. Moving any point enforces the tangent mode of its anchor.
//
// With policy AutoSmooth, moving an anchor re-derives the guides of the
// anchor and of its neighbours. Moving a guide turns the opposite guide
// to stay in line with it.
func (path *Path) SetPoint(i int, p splinerope.Vec3) {
	path.checkIndex(i)
	path.policy.movePoint(path, i, p)
}

// SetClosed opens or closes a path. Closing a path adds a segment from the
// last anchor back to z0, with guides reflected at the end anchors. Opening
// removes this segment again.
func (path *Path) SetClosed(closed bool) {
	if path.closed == closed {
		return
	}
	n := len(path.points)
	if closed {
		pts := path.points
		path.points = append(pts,
			pts[n-1].Scaled(2).Sub(pts[n-2]),
			pts[0].Scaled(2).Sub(pts[1]))
	} else {
		path.points = path.points[:n-2]
	}
	path.closed = closed
	tracer().Debugf("path closed = %v, %d segments", closed, path.SegmentCount())
	path.policy.closedToggled(path)
}

// Transform applies an affine transformation of the working plane to all
// control points. Z-coordinates are left unchanged.
//
// Affine maps keep collinearity and ratios of distances on a line, so
// Aligned and Mirrored anchors remain valid. Paths under policy AutoSmooth
// have their guides re-derived.
func (path *Path) Transform(m splinerope.AT) {
	for i, pt := range path.points {
		path.points[i] = m.TransformXY(pt)
	}
	if path.policy.kind() == AutoSmooth {
		path.AutoSetAllPoints()
	}
}
