package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/soypat/spring/mesh"
)

// WriteOBJ writes m as a Wavefront OBJ object with texture coordinates.
// Geometry and texture faces keep their own index spaces so seam
// vertices carry distinct texture coordinates.
func WriteOBJ(w io.Writer, name string, m mesh.Mesh) error {
	if m.Empty() {
		return errors.New("empty mesh")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range m.TexCoords {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for i, f := range m.Faces {
		tf := m.TexFaces[i]
		// OBJ indices are 1 based.
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n",
			f[0]+1, tf[0]+1, f[1]+1, tf[1]+1, f[2]+1, tf[2]+1)
	}
	return bw.Flush()
}
