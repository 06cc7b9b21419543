/*
Package ribbon tessellates a ribbon of constant width along a sequence of
points.

The points are usually produced by package resample, evenly spaced along a
spline path. For every point two vertices are created, to the left and to
the right of the point, within the working plane (x,y) of the path.
Consecutive vertex pairs are joined by quads of two triangles each; closed
ribbons get an additional quad joining the last point to the first.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ribbon

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinerope"
)

// tracer writes to trace with key 'ribbon'
func tracer() tracing.Trace {
	return tracing.Select("ribbon")
}

var (
	// ErrNoPoints indicates an empty point sequence.
	ErrNoPoints = errors.New("ribbon needs at least one point")
	// ErrInvalidWidth indicates a width which is not a positive number.
	ErrInvalidWidth = errors.New("ribbon width must be a positive number")
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices  []splinerope.Vec3 // 2 per ribbon point: left, right
	UVs       []splinerope.Pair // texture coordinates, 1 per vertex
	Triangles []uint32          // 3 vertex indices per triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Triangles[3*i], m.Triangles[3*i+1], m.Triangles[3*i+2]}
}

// Build creates a ribbon mesh of the given width along points.
//
// The forward direction at a point is derived from its neighbours, wrapping
// around for closed ribbons. Where it cannot be determined, because
// neighbouring points coincide, the direction of the previous point is
// re-used (+x for the first point).
func Build(points []splinerope.Vec3, width float64, closed bool) (*Mesh, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	quads := 0
	if n > 1 {
		quads = n - 1
		if closed {
			quads = n
		}
	}
	m := &Mesh{
		Vertices:  make([]splinerope.Vec3, 2*n),
		UVs:       make([]splinerope.Pair, 2*n),
		Triangles: make([]uint32, 0, 6*quads),
	}
	nv := uint32(2 * n)
	half := width * 0.5
	forward := splinerope.P(1, 0)
	for i, pt := range points {
		var f splinerope.Vec3
		if i < n-1 || closed {
			f = f.Add(points[(i+1)%n].Sub(pt))
		}
		if i > 0 || closed {
			f = f.Add(pt.Sub(points[(i-1+n)%n]))
		}
		if xy := f.XY(); !splinerope.Is0(xy.Length()) {
			forward = xy.Unit()
		} else {
			tracer().Debugf("no forward direction at ribbon point #%d, keeping %s", i, forward)
		}
		left := splinerope.InPlane(forward.Rotated(math.Pi / 2)).Scaled(half)
		v := 2 * i
		m.Vertices[v] = pt.Add(left)
		m.Vertices[v+1] = pt.Sub(left)
		progress := 0.0
		if n > 1 {
			progress = float64(i) / float64(n-1)
		}
		m.UVs[v] = splinerope.P(0, progress)
		m.UVs[v+1] = splinerope.P(1, progress)
		if n > 1 && (i < n-1 || closed) {
			a, b := uint32(v), uint32(v+1)
			c, d := (a+2)%nv, (a+3)%nv
			m.Triangles = append(m.Triangles, a, c, b, b, c, d)
		}
	}
	tracer().Infof("ribbon of %d points: %d vertices, %d triangles", n, m.VertexCount(), m.TriangleCount())
	return m, nil
}

// MustBuild is like Build, but panics on invalid arguments.
func MustBuild(points []splinerope.Vec3, width float64, closed bool) *Mesh {
	m, err := Build(points, width, closed)
	if err != nil {
		panic(err)
	}
	return m
}
