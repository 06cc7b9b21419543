package ribbon

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinerope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var v = splinerope.V

func line(n int) []splinerope.Vec3 {
	pts := make([]splinerope.Vec3, n)
	for i := range pts {
		pts[i] = v(float64(i), 0, 0)
	}
	return pts
}

func TestCounts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for n := 1; n <= 5; n++ {
		open := MustBuild(line(n), 1, false)
		assert.Equal(t, 2*n, open.VertexCount(), "open, n=%d", n)
		assert.Equal(t, 2*n, len(open.UVs), "open, n=%d", n)
		closed := MustBuild(line(n), 1, true)
		assert.Equal(t, 2*n, closed.VertexCount(), "closed, n=%d", n)
		if n == 1 {
			assert.Equal(t, 0, open.TriangleCount())
			assert.Equal(t, 0, closed.TriangleCount())
			continue
		}
		assert.Equal(t, 2*(n-1), open.TriangleCount(), "open, n=%d", n)
		assert.Equal(t, 2*n, closed.TriangleCount(), "closed, n=%d", n)
	}
}

func TestStraightRibbon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, err := Build(line(3), 2, false)
	require.NoError(t, err)
	want := []splinerope.Vec3{
		v(0, 1, 0), v(0, -1, 0),
		v(1, 1, 0), v(1, -1, 0),
		v(2, 1, 0), v(2, -1, 0),
	}
	if d := cmp.Diff(want, m.Vertices, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("vertices differ (-want +got):\n%s", d)
	}
	assert.Equal(t, []uint32{0, 2, 1, 1, 2, 3, 2, 4, 3, 3, 4, 5}, m.Triangles)
	for i := 0; i < m.VertexCount(); i += 2 {
		assert.Equal(t, 0.0, m.UVs[i].X())
		assert.Equal(t, 1.0, m.UVs[i+1].X())
		assert.InDelta(t, float64(i/2)/2, m.UVs[i].Y(), 1e-12)
		assert.Equal(t, m.UVs[i].Y(), m.UVs[i+1].Y())
	}
}

func TestWidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	pts := []splinerope.Vec3{v(0, 0, 1), v(1, 1, 1), v(3, 1, 1), v(4, -2, 1)}
	m := MustBuild(pts, 0.5, false)
	for i, p := range pts {
		l, r := m.Vertices[2*i], m.Vertices[2*i+1]
		assert.InDelta(t, 0.5, l.Dist(r), 1e-9, "width at point #%d", i)
		mid := l.Lerp(r, 0.5)
		assert.InDelta(t, 0, mid.Dist(p), 1e-9, "center at point #%d", i)
		assert.Equal(t, p.Z, l.Z)
	}
}

func TestClosedWrapsAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := MustBuild(line(3), 1, true)
	last := m.Triangle(m.TriangleCount() - 1)
	assert.Equal(t, [3]uint32{5, 0, 1}, last)
	before := m.Triangle(m.TriangleCount() - 2)
	assert.Equal(t, [3]uint32{4, 0, 5}, before)
	for _, idx := range m.Triangles {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestSinglePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := MustBuild([]splinerope.Vec3{v(1, 2, 3)}, 1, false)
	assert.Equal(t, 2, m.VertexCount())
	assert.Equal(t, 0.0, m.UVs[0].Y())
	assert.Equal(t, 0.0, m.UVs[1].Y())
	assert.True(t, m.Vertices[0].Equal(v(1, 2.5, 3)), "left vertex is %s", m.Vertices[0])
}

func TestCoincidentPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := MustBuild([]splinerope.Vec3{v(1, 1, 0), v(1, 1, 0), v(1, 1, 0)}, 1, false)
	for i, vx := range m.Vertices {
		assert.False(t, vx.IsNaN(), "vertex #%d", i)
	}
	assert.True(t, m.Vertices[2].Equal(v(1, 1.5, 0)), "left vertex is %s", m.Vertices[2])
	// points straight up, followed by a duplicate: direction is kept
	m = MustBuild([]splinerope.Vec3{v(0, 0, 0), v(0, 1, 0), v(0, 1, 0), v(0, 1, 0)}, 2, false)
	assert.True(t, m.Vertices[6].Equal(v(-1, 1, 0)), "left vertex is %s", m.Vertices[6])
}

func TestInvalidArguments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Build(nil, 1, false)
	assert.True(t, errors.Is(err, ErrNoPoints))
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = Build(line(2), w, false)
		assert.True(t, errors.Is(err, ErrInvalidWidth), "width %g", w)
	}
	assert.Panics(t, func() { MustBuild(nil, 1, true) })
}

func TestFootprintOfStraightRibbon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	fp := MustBuild(line(5), 2, false).Footprint()
	require.False(t, fp.IsEmpty())
	lo, hi := fp.Bounds()
	assert.InDelta(t, 0, lo.X(), 1e-9)
	assert.InDelta(t, -1, lo.Y(), 1e-9)
	assert.InDelta(t, 4, hi.X(), 1e-9)
	assert.InDelta(t, 1, hi.Y(), 1e-9)
	assert.True(t, fp.Covers(2.5, 0.2))
	assert.True(t, fp.Covers(0.5, -0.9))
	assert.False(t, fp.Covers(2.5, 1.5))
	assert.False(t, fp.Covers(-0.5, 0))
}

func TestFootprintOfClosedRibbon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	square := []splinerope.Vec3{v(0, 0, 0), v(10, 0, 0), v(10, 10, 0), v(0, 10, 0)}
	fp := MustBuild(square, 2, true).Footprint()
	assert.GreaterOrEqual(t, fp.Contours(), 2)
	assert.True(t, fp.Covers(5, 0))
	assert.True(t, fp.Covers(10, 5))
	assert.False(t, fp.Covers(5, 5), "center of the ring is a hole")
	assert.False(t, fp.Covers(5, -3))
	lo, hi := fp.Bounds()
	d := math.Sqrt2 / 2
	assert.InDelta(t, -d, lo.X(), 1e-9)
	assert.InDelta(t, 10+d, hi.Y(), 1e-9)
}

func TestEmptyFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	fp := MustBuild(line(1), 1, false).Footprint()
	assert.True(t, fp.IsEmpty())
	lo, hi := fp.Bounds()
	assert.Equal(t, splinerope.Origin, lo)
	assert.Equal(t, splinerope.Origin, hi)
	assert.False(t, fp.Covers(0, 0))
}

func TestWriteOBJ(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, MustBuild(line(2), 2, false), "rope"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	count := map[string]int{}
	for _, l := range lines {
		count[strings.Fields(l)[0]]++
	}
	assert.Equal(t, 4, count["v"])
	assert.Equal(t, 4, count["vt"])
	assert.Equal(t, 2, count["f"])
	assert.Contains(t, lines, "o rope")
	assert.Contains(t, lines, "v 0 1 0")
	assert.Contains(t, lines, "vt 1 1")
	assert.Contains(t, lines, "f 1/1 3/3 2/2")
	assert.Contains(t, lines, "f 2/2 3/3 4/4")
}
