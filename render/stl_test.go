package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/spring"
	"github.com/soypat/spring/internal/d3"
	"github.com/soypat/spring/must"
	"github.com/soypat/spring/render"
	"github.com/soypat/spring/section"
	"gonum.org/v1/plot/cmpimg"
)

func testSpring() spring.Parameters {
	p := spring.DefaultParameters()
	p.LengthDivisions = 80
	p.WireDivisions = 12
	return p
}

func TestSTLCreateWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spring.stl")
	m := must.Generate(testSpring(), nil)
	err := render.CreateSTL(path, render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSTL(&b, nil); err == nil {
		t.Fatal("expected error writing empty model")
	}
}

func TestASCIISTLRoundTrip(t *testing.T) {
	const tol = 1e-3
	m := must.Generate(testSpring(), section.Polygon(4))
	model, err := render.RenderAll(render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteASCIISTL(&b, "square_spring", model)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "solid square_spring") {
		t.Fatalf("unexpected ASCII STL header %q", b.String()[:32])
	}
	name, got, err := render.ReadAnySTL(&b)
	if err != nil {
		t.Fatal(err)
	}
	if name != "square_spring" {
		t.Errorf("got solid name %q", name)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, wrote %d", len(got), len(model))
	}
	for i := range model {
		for j := range model[i].V {
			if !d3.EqualWithin(got[i].V[j], model[i].V[j], tol) {
				t.Fatalf("triangle %d vertex %d: got %v, want %v", i, j, got[i].V[j], model[i].V[j])
			}
		}
	}
}

func TestWriteOBJ(t *testing.T) {
	p := spring.DefaultParameters()
	p.LengthDivisions = 3
	p.WireDivisions = 4
	m := must.Generate(p, nil)
	var b bytes.Buffer
	err := render.WriteOBJ(&b, "spring", m)
	if err != nil {
		t.Fatal(err)
	}
	var nv, nvt, nf int
	for _, line := range strings.Split(b.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			nv++
		case strings.HasPrefix(line, "vt "):
			nvt++
		case strings.HasPrefix(line, "f "):
			nf++
		}
	}
	if nv != 4*4 {
		t.Errorf("got %d vertices, want %d", nv, 4*4)
	}
	// Texture grid keeps the seam row.
	if nvt != 5*4 {
		t.Errorf("got %d texture coordinates, want %d", nvt, 5*4)
	}
	if nf != 2*4*3 {
		t.Errorf("got %d faces, want %d", nf, 2*4*3)
	}
}

func TestPNGPreviewDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping rasterization in short mode")
	}
	dir := t.TempDir()
	m := must.Generate(testSpring(), nil)
	model, err := render.RenderAll(render.NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	view := render.DefaultView()
	view.Width, view.Height, view.Scale = 320, 180, 1
	png1 := filepath.Join(dir, "a.png")
	png2 := filepath.Join(dir, "b.png")
	for _, path := range []string{png1, png2} {
		if err := render.WritePNG(path, model, view); err != nil {
			t.Fatal(err)
		}
	}
	if !equalImages(t, png1, png2) {
		t.Error("preview of the same model differs between runs")
	}
}

func equalImages(t *testing.T, png1, png2 string) bool {
	b1, err := os.ReadFile(png1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(png2)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, 0)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}
