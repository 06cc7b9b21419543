package ribbon

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/splinerope"
)

// Footprint is the area covered by a ribbon mesh, projected onto the
// working plane. Closed ribbons result in a footprint with a hole.
type Footprint struct {
	polygon polyclip.Polygon
}

// Footprint unites the quads of m in the working plane. Quads without area
// are skipped.
func (m *Mesh) Footprint() Footprint {
	var fp polyclip.Polygon
	for t := 0; t+5 < len(m.Triangles); t += 6 {
		a, c, b, d := m.Triangles[t], m.Triangles[t+1], m.Triangles[t+2], m.Triangles[t+5]
		quad := polyclip.Contour{m.pt(a), m.pt(b), m.pt(d), m.pt(c)}
		if splinerope.Is0(signedArea(quad)) {
			continue
		}
		if fp == nil {
			fp = polyclip.Polygon{quad}
			continue
		}
		fp = fp.Construct(polyclip.UNION, polyclip.Polygon{quad})
	}
	tracer().Debugf("ribbon footprint has %d contours", len(fp))
	return Footprint{polygon: fp}
}

func (m *Mesh) pt(i uint32) polyclip.Point {
	v := m.Vertices[i]
	return polyclip.Point{X: v.X, Y: v.Y}
}

// Shoelace formula.
func signedArea(c polyclip.Contour) float64 {
	var a float64
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}

// IsEmpty is a predicate: does the footprint cover no area at all?
func (fp Footprint) IsEmpty() bool {
	return len(fp.polygon) == 0
}

// Contours returns the number of outlines of the footprint, including holes.
func (fp Footprint) Contours() int {
	return len(fp.polygon)
}

// Polygon returns a copy of the footprint outlines.
func (fp Footprint) Polygon() polyclip.Polygon {
	return fp.polygon.Clone()
}

// Bounds returns the lower left and upper right corner of the bounding box
// of the footprint. An empty footprint has zero bounds.
func (fp Footprint) Bounds() (splinerope.Pair, splinerope.Pair) {
	if fp.IsEmpty() {
		return splinerope.Origin, splinerope.Origin
	}
	bb := fp.polygon.BoundingBox()
	return splinerope.P(bb.Min.X, bb.Min.Y), splinerope.P(bb.Max.X, bb.Max.Y)
}

// Covers is a predicate: does the footprint contain point (x,y)? Holes
// are respected by counting the outlines around the point (even-odd rule).
func (fp Footprint) Covers(x, y float64) bool {
	p := polyclip.Point{X: x, Y: y}
	inside := false
	for _, c := range fp.polygon {
		if c.Contains(p) {
			inside = !inside
		}
	}
	return inside
}
