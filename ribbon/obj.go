package ribbon

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes m in Wavefront OBJ format, as object name.
// Faces reference vertices and texture coordinates 1-based, as OBJ requires.
func WriteOBJ(w io.Writer, m *Mesh, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X(), uv.Y())
	}
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n",
			tri[0]+1, tri[0]+1, tri[1]+1, tri[1]+1, tri[2]+1, tri[2]+1)
	}
	return bw.Flush()
}
