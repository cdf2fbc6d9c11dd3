package render

import (
	"io"

	"github.com/soypat/spring/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle. Vertices are wound counter-clockwise
// when viewed from outside the surface.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle following the
// right hand rule on its winding. Degenerate triangles return the zero vector.
func (t Triangle3) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0]))
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Degenerate returns true if the triangle is degenerate.
func (t Triangle3) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t.V[0], t.V[1])) <= tol ||
		r3.Norm(r3.Sub(t.V[1], t.V[2])) <= tol ||
		r3.Norm(r3.Sub(t.V[2], t.V[0])) <= tol
}

type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

type meshRenderer struct {
	m    mesh.Mesh
	next int
}

// NewMeshRenderer returns a Renderer that reads the faces of m in order.
func NewMeshRenderer(m mesh.Mesh) Renderer {
	return &meshRenderer{m: m}
}

// ReadTriangles writes the next faces of the mesh into dst and returns io.EOF
// once all faces have been read.
func (r *meshRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	for n < len(dst) && r.next < len(r.m.Faces) {
		dst[n] = Triangle3{V: r.m.Triangle(r.next)}
		n++
		r.next++
	}
	if r.next == len(r.m.Faces) {
		return n, io.EOF
	}
	return n, nil
}
