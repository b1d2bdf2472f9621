package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/marching-squares/pkg/mesh"
)

// WriteOBJ writes m as a Wavefront OBJ object with positions, texture
// coordinates and triangular faces. Face indices are 1-based "v/vt" pairs.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# marching squares: %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	fmt.Fprintln(bw, "o grid")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for i := 0; i < m.TriangleCount(); i++ {
		t := m.Triangle(i)
		a, b, c := t[0]+1, t[1]+1, t[2]+1
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write OBJ: %w", err)
	}
	return nil
}
