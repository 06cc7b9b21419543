package spline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splinerope"
)

// TangentMode governs how the two guides of an anchor relate to each other.
type TangentMode uint8

// Tangent modes for anchors of paths with policy ExplicitMode.
const (
	Free     TangentMode = iota // guides move independently
	Aligned                     // guides are collinear through the anchor
	Mirrored                    // guides are collinear and equidistant
)

var modeNames = [...]string{"free", "aligned", "mirrored"}

func (m TangentMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("TangentMode(%d)", m)
}

// MarshalText implements encoding.TextMarshaler.
func (m TangentMode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: unknown tangent mode %d", ErrMalformedPath, m)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TangentMode) UnmarshalText(text []byte) error {
	for i, name := range modeNames {
		if strings.EqualFold(name, string(text)) {
			*m = TangentMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown tangent mode %q", ErrMalformedPath, text)
}

// Policy selects a strategy for keeping the guides of a path consistent
// when points are edited.
type Policy uint8

const (
	// ExplicitMode: every anchor has a TangentMode, enforced on edits.
	ExplicitMode Policy = iota
	// AutoSmooth: guides are derived from neighbouring anchors.
	AutoSmooth
)

var policyNames = [...]string{"explicit", "auto-smooth"}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if int(p) >= len(policyNames) {
		return nil, fmt.Errorf("%w: unknown tangent policy %d", ErrMalformedPath, p)
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	for i, name := range policyNames {
		if strings.EqualFold(name, string(text)) {
			*p = Policy(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown tangent policy %q", ErrMalformedPath, text)
}

// tangentPolicy is implemented by the strategies behind Policy. Structural
// changes of the point storage are done by Path, the policy is notified
// afterwards to re-establish its invariants.
type tangentPolicy interface {
	kind() Policy
	attach(path *Path)                              // policy becomes active for path
	movePoint(path *Path, i int, p splinerope.Vec3) // set point i to p
	anchorAdded(path *Path, a int)                  // a new segment ends at anchor a
	anchorRemoved(path *Path, k int)                // k-th anchor has been deleted
	closedToggled(path *Path)                       // topology has changed
}

func newPolicy(p Policy) tangentPolicy {
	switch p {
	case AutoSmooth:
		return autoSmooth{}
	case ExplicitMode:
		return &explicitModes{}
	}
	panic(fmt.Sprintf("unknown tangent policy %d", p))
}

// TangentMode returns the mode of the anchor owning point i. The second
// return value is false if the path is not under policy ExplicitMode.
func (path *Path) TangentMode(i int) (TangentMode, bool) {
	path.checkIndex(i)
	if e, ok := path.policy.(*explicitModes); ok {
		return e.modes[path.modeIndex(i)], true
	}
	return Free, false
}

// SetTangentMode sets the mode of the anchor owning point i and enforces it.
// Paths under policy AutoSmooth ignore the call.
func (path *Path) SetTangentMode(i int, mode TangentMode) {
	path.checkIndex(i)
	e, ok := path.policy.(*explicitModes)
	if !ok {
		tracer().Debugf("path is %s, ignoring tangent mode %s", path.policy.kind(), mode)
		return
	}
	e.modes[path.modeIndex(i)] = mode
	e.enforce(path, i)
}

// EnforceMode re-establishes the tangent mode of the anchor owning point i,
// treating i as the point just edited. Paths under policy AutoSmooth
// ignore the call.
func (path *Path) EnforceMode(i int) {
	path.checkIndex(i)
	if e, ok := path.policy.(*explicitModes); ok {
		e.enforce(path, i)
	}
}

// owner returns the (unwrapped) index of the anchor owning point i.
// Guides directly before an anchor belong to it, as do guides directly after.
func owner(i int) int {
	return (i + 1) / 3 * 3
}

func (path *Path) modeIndex(i int) int {
	return path.wrap(owner(i)) / 3
}

// --- Explicit tangent modes ------------------------------------------------

type explicitModes struct {
	modes []TangentMode // one per distinct anchor
}

func (e *explicitModes) kind() Policy { return ExplicitMode }

func (e *explicitModes) attach(path *Path) {
	e.modes = make([]TangentMode, path.anchorCount())
}

// Moving an anchor drags its guides along, so its tangents remain unchanged.
func (e *explicitModes) movePoint(path *Path, i int, p splinerope.Vec3) {
	pts := path.points
	if i%3 == 0 {
		delta := p.Sub(pts[i])
		if path.exists(i - 1) {
			j := path.wrap(i - 1)
			pts[j] = pts[j].Add(delta)
		}
		if path.exists(i + 1) {
			j := path.wrap(i + 1)
			pts[j] = pts[j].Add(delta)
		}
	}
	pts[i] = p
	e.enforce(path, i)
}

// enforce re-establishes the mode of the anchor owning point i.
// If i is at or before the anchor, the guide before the anchor is kept fixed
// and the guide after it is adjusted; otherwise it is the other way round.
func (e *explicitModes) enforce(path *Path, i int) {
	raw := owner(i)
	a := path.wrap(raw)
	mode := e.modes[a/3]
	if mode == Free || path.isEndpoint(a) {
		return
	}
	fixed, enforced := path.wrap(raw-1), path.wrap(raw+1)
	if i > raw {
		fixed, enforced = enforced, fixed
	}
	pts := path.points
	anchor := pts[a]
	tangent := anchor.Sub(pts[fixed])
	if mode == Aligned {
		tangent = tangent.Normalized().Scaled(anchor.Dist(pts[enforced]))
	}
	pts[enforced] = anchor.Add(tangent)
}

func (e *explicitModes) anchorAdded(path *Path, a int) {
	e.modes = append(e.modes, e.modes[len(e.modes)-1])
	e.enforce(path, a-3) // former end anchor got a second guide
	e.enforce(path, a)
	if path.closed {
		e.enforce(path, 0)
	}
}

func (e *explicitModes) anchorRemoved(path *Path, k int) {
	e.modes = append(e.modes[:k], e.modes[k+1:]...)
}

func (e *explicitModes) closedToggled(path *Path) {
	if path.closed {
		e.enforce(path, 0)
		e.enforce(path, path.N()-3)
	}
}

// --- Automatic smoothing ---------------------------------------------------

type autoSmooth struct{}

func (autoSmooth) kind() Policy { return AutoSmooth }

func (autoSmooth) attach(path *Path) {
	path.AutoSetAllPoints()
}

// Moving an anchor re-derives all guides around it. Moving a guide keeps
// the opposite guide on the other side of the anchor, at its distance.
func (autoSmooth) movePoint(path *Path, i int, p splinerope.Vec3) {
	pts := path.points
	pts[i] = p
	if i%3 == 0 {
		path.autoSetAffected(i)
		return
	}
	anchor, opposite := i-1, i-2
	if (i+1)%3 == 0 {
		anchor, opposite = i+1, i+2
	}
	if !path.exists(opposite) {
		return
	}
	z, o := pts[path.wrap(anchor)], path.wrap(opposite)
	dist := z.Dist(pts[o])
	pts[o] = z.Add(z.Sub(p).Normalized().Scaled(dist))
}

func (autoSmooth) anchorAdded(path *Path, a int) {
	path.autoSetAffected(a)
}

func (autoSmooth) anchorRemoved(path *Path, k int) {
	path.AutoSetAllPoints()
}

func (autoSmooth) closedToggled(path *Path) {
	if path.closed {
		path.AutoSetAnchorGuides(0)
		path.AutoSetAnchorGuides(path.N() - 3)
	} else {
		path.autoSetStartAndEnd()
	}
}

// AutoSetAnchorGuides places both guides of anchor a on a line through a,
// with the direction averaged from the directions to the neighbouring
// anchors. Each guide is set to half the distance to its respective
// neighbour. Anchors at the ends of an open path have one neighbour only.
func (path *Path) AutoSetAnchorGuides(a int) {
	path.checkAnchor(a)
	pts := path.points
	anchor := pts[a]
	var dir splinerope.Vec3
	var dist [2]float64
	if path.exists(a - 3) {
		offset := pts[path.wrap(a-3)].Sub(anchor)
		dir = dir.Add(offset.Normalized())
		dist[0] = offset.Length()
	}
	if path.exists(a + 3) {
		offset := pts[path.wrap(a+3)].Sub(anchor)
		dir = dir.Sub(offset.Normalized())
		dist[1] = -offset.Length()
	}
	dir = dir.Normalized()
	for k := 0; k < 2; k++ {
		g := a + k*2 - 1
		if path.exists(g) {
			pts[path.wrap(g)] = anchor.Add(dir.Scaled(dist[k] * 0.5))
		}
	}
}

// AutoSetAllPoints re-derives the guides of all anchors, as policy
// AutoSmooth would.
func (path *Path) AutoSetAllPoints() {
	for a := 0; a < path.N(); a += 3 {
		path.AutoSetAnchorGuides(a)
	}
	path.autoSetStartAndEnd()
}

// Re-derive guides of anchor a and its neighbour anchors.
func (path *Path) autoSetAffected(a int) {
	for i := a - 3; i <= a+3; i += 3 {
		if path.exists(i) {
			path.AutoSetAnchorGuides(path.wrap(i))
		}
	}
	path.autoSetStartAndEnd()
}

// Open paths have one guide at either end; it is placed half way between
// the endpoint and the following guide.
func (path *Path) autoSetStartAndEnd() {
	if path.closed {
		return
	}
	pts, n := path.points, len(path.points)
	pts[1] = pts[0].Add(pts[2]).Scaled(0.5)
	pts[n-2] = pts[n-1].Add(pts[n-3]).Scaled(0.5)
}
