// Package mesh assembles indexed triangle meshes with texture coordinates.
package mesh

import (
	"errors"
	"fmt"

	"github.com/soypat/spring/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrFaceIndex is returned by Assemble when a face references a vertex
// or texture coordinate that does not exist.
var ErrFaceIndex = errors.New("face index out of range")

// Face is a triangle given by three indices. Geometry faces index
// Mesh.Vertices and texture faces index Mesh.TexCoords.
type Face [3]int

// Extent is the size of the surface when unrolled onto the texture plane.
type Extent struct {
	Width  float64
	Height float64
}

// Mesh is an indexed triangle mesh. Faces[i] and TexFaces[i] describe the
// same triangle in geometry and texture space respectively.
type Mesh struct {
	Vertices  []r3.Vec
	TexCoords []r2.Vec
	Faces     []Face
	TexFaces  []Face
	Extent    Extent
	// Bounds is the axis aligned bounding box of Vertices.
	// It is the zero box for an empty mesh.
	Bounds r3.Box
}

// Assemble packages the buffers into a Mesh after checking every face
// index. The slices are retained, not copied.
func Assemble(vertices []r3.Vec, uvs []r2.Vec, faces, texFaces []Face, ext Extent) (Mesh, error) {
	if len(faces) != len(texFaces) {
		return Mesh{}, fmt.Errorf("got %d faces and %d texture faces", len(faces), len(texFaces))
	}
	if err := checkFaces(faces, len(vertices)); err != nil {
		return Mesh{}, fmt.Errorf("geometry: %w", err)
	}
	if err := checkFaces(texFaces, len(uvs)); err != nil {
		return Mesh{}, fmt.Errorf("texture: %w", err)
	}
	m := Mesh{
		Vertices:  vertices,
		TexCoords: uvs,
		Faces:     faces,
		TexFaces:  texFaces,
		Extent:    ext,
	}
	if len(vertices) > 0 {
		bb := d3.Box{Min: vertices[0], Max: vertices[0]}
		for _, v := range vertices[1:] {
			bb = bb.Include(v)
		}
		m.Bounds = r3.Box(bb)
	}
	return m, nil
}

func checkFaces(faces []Face, n int) error {
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d %v with %d points: %w", i, f, n, ErrFaceIndex)
			}
		}
	}
	return nil
}

// Empty reports whether the mesh has no faces.
func (m Mesh) Empty() bool { return len(m.Faces) == 0 }

// Triangle returns the vertex positions of the ith face.
func (m Mesh) Triangle(i int) [3]r3.Vec {
	f := m.Faces[i]
	return [3]r3.Vec{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// SurfaceArea returns the summed area of all faces.
func (m Mesh) SurfaceArea() float64 {
	var area float64
	for i := range m.Faces {
		t := m.Triangle(i)
		area += r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0])))
	}
	return area / 2
}

// Translate returns a copy of m with every vertex moved by v.
func (m Mesh) Translate(v r3.Vec) Mesh {
	moved := make([]r3.Vec, len(m.Vertices))
	for i, p := range m.Vertices {
		moved[i] = r3.Add(p, v)
	}
	m.Vertices = moved
	if len(moved) > 0 {
		m.Bounds = r3.Box(d3.Box(m.Bounds).Translate(v))
	}
	return m
}
