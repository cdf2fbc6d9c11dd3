package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/spring/internal/d3"
	"github.com/soypat/spring/mesh"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// unitSquare returns two triangles covering the unit square in the XY plane.
func unitSquare() ([]r3.Vec, []r2.Vec, []mesh.Face) {
	verts := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	uvs := []r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	faces := []mesh.Face{{0, 1, 2}, {2, 3, 0}}
	return verts, uvs, faces
}

func TestAssemble(t *testing.T) {
	verts, uvs, faces := unitSquare()
	m, err := mesh.Assemble(verts, uvs, faces, faces, mesh.Extent{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := r3.Box{Max: r3.Vec{X: 1, Y: 1}}
	if !d3.Box(m.Bounds).Equals(d3.Box(want), 0) {
		t.Errorf("got bounds %v, want %v", m.Bounds, want)
	}
	if math.Abs(m.SurfaceArea()-1) > 1e-12 {
		t.Errorf("got area %g, want 1", m.SurfaceArea())
	}
	if m.Empty() {
		t.Error("mesh reported empty")
	}
	if tri := m.Triangle(1); tri[0] != verts[2] || tri[1] != verts[3] || tri[2] != verts[0] {
		t.Errorf("unexpected triangle %v", tri)
	}
}

func TestAssembleErrors(t *testing.T) {
	verts, uvs, faces := unitSquare()
	_, err := mesh.Assemble(verts, uvs, faces, faces[:1], mesh.Extent{})
	if err == nil {
		t.Error("expected face count mismatch error")
	}
	_, err = mesh.Assemble(verts[:3], uvs, faces, faces, mesh.Extent{})
	if !errors.Is(err, mesh.ErrFaceIndex) {
		t.Errorf("expected ErrFaceIndex for geometry, got %v", err)
	}
	bad := []mesh.Face{{0, 1, 2}, {2, 3, -1}}
	_, err = mesh.Assemble(verts, uvs, faces, bad, mesh.Extent{})
	if !errors.Is(err, mesh.ErrFaceIndex) {
		t.Errorf("expected ErrFaceIndex for texture, got %v", err)
	}
}

func TestAssembleEmpty(t *testing.T) {
	m, err := mesh.Assemble(nil, nil, nil, nil, mesh.Extent{Width: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Empty() || m.Bounds != (r3.Box{}) || m.SurfaceArea() != 0 {
		t.Errorf("unexpected empty mesh %+v", m)
	}
	if got := m.Translate(r3.Vec{X: 1}); got.Bounds != (r3.Box{}) {
		t.Errorf("translated empty mesh has bounds %v", got.Bounds)
	}
}

func TestTranslate(t *testing.T) {
	verts, uvs, faces := unitSquare()
	m, err := mesh.Assemble(verts, uvs, faces, faces, mesh.Extent{})
	if err != nil {
		t.Fatal(err)
	}
	v := r3.Vec{X: 1, Y: 2, Z: 3}
	moved := m.Translate(v)
	for i := range verts {
		if moved.Vertices[i] != r3.Add(m.Vertices[i], v) {
			t.Errorf("vertex %d: got %v", i, moved.Vertices[i])
		}
	}
	if m.Vertices[0] != (r3.Vec{}) {
		t.Error("Translate modified the receiver")
	}
	if moved.Bounds.Min != v {
		t.Errorf("got bounds min %v, want %v", moved.Bounds.Min, v)
	}
}

func TestVertexIndex(t *testing.T) {
	verts := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, {X: 0.5, Y: 0.5, Z: 2}}
	idx := mesh.NewVertexIndex(verts)
	for i, v := range verts {
		got, d := idx.Nearest(r3.Add(v, r3.Vec{Z: 0.01}))
		if got != i || math.Abs(d-0.01) > 1e-12 {
			t.Errorf("vertex %d: nearest %d at %g", i, got, d)
		}
	}
	if n := idx.Coincident(verts, 1e-6); n != 0 {
		t.Errorf("got %d coincident vertices, want 0", n)
	}
	dup := append(verts, r3.Vec{X: 1, Y: 1})
	if n := mesh.NewVertexIndex(dup).Coincident(dup, 1e-6); n != 2 {
		t.Errorf("got %d coincident vertices, want 2", n)
	}
	got, d := mesh.NewVertexIndex(nil).Nearest(r3.Vec{})
	if got != -1 || !math.IsInf(d, 1) {
		t.Errorf("empty index returned %d, %g", got, d)
	}
}
