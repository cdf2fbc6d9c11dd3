package render

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/soypat/spring"
	"github.com/soypat/spring/internal/d3"
	"github.com/soypat/spring/must"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-5
	p := spring.DefaultParameters()
	p.LengthDivisions = 120
	p.WireDivisions = 16
	m := must.Generate(p, nil)
	size := r3.Norm(d3.Box(m.Bounds).Size())
	rtol := tol * size
	input, err := RenderAll(NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	if len(input) != len(m.Faces) {
		t.Fatalf("rendered %d triangles, mesh has %d faces", len(input), len(m.Faces))
	}
	var b bytes.Buffer
	err = WriteSTL(&b, input)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 84+stlTriangleSize*len(input) {
		t.Fatalf("unexpected STL size %d", b.Len())
	}
	output, err := readBinarySTL(&b)
	if err != nil && !errors.Is(err, errCalculatedNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		if got.Degenerate(1e-12) {
			t.Fatalf("triangle degenerate: %+v", got)
		}
		for i := range expect.V {
			if !d3.EqualWithin(got.V[i], expect.V[i], rtol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i], expect.V[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestMeshRendererChunks(t *testing.T) {
	p := spring.DefaultParameters()
	p.LengthDivisions = 10
	p.WireDivisions = 7
	m := must.Generate(p, nil)
	r := NewMeshRenderer(m)
	buf := make([]Triangle3, 3)
	var model []Triangle3
	var err error
	var nt int
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		model = append(model, buf[:nt]...)
	}
	if err != io.EOF {
		t.Fatal(err)
	}
	if len(model) != 2*10*7 {
		t.Fatalf("triangles lost. got %d. want %d", len(model), 2*10*7)
	}
	for i, tri := range model {
		if tri.V != m.Triangle(i) {
			t.Fatalf("triangle %d out of order", i)
		}
	}
}

func TestMeshRendererEmpty(t *testing.T) {
	p := spring.DefaultParameters()
	p.LengthCrop = p.LengthDivisions
	m := must.Generate(p, nil)
	n, err := NewMeshRenderer(m).ReadTriangles(make([]Triangle3, 1))
	if n != 0 || err != io.EOF {
		t.Fatalf("expected (0, EOF) from empty mesh, got (%d, %v)", n, err)
	}
}

func TestStlReaderSmallBuffer(t *testing.T) {
	p := spring.DefaultParameters()
	p.LengthDivisions = 4
	p.WireDivisions = 3
	m := must.Generate(p, nil)
	rd := &stlReader{r: NewMeshRenderer(m)}
	var out bytes.Buffer
	buf := make([]byte, 2*stlTriangleSize+7) // room for two triangles only.
	for {
		n, err := rd.Read(buf)
		out.Write(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if out.Len() != stlTriangleSize*len(m.Faces) {
		t.Fatalf("got %d bytes, want %d", out.Len(), stlTriangleSize*len(m.Faces))
	}
}
