package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteASCIISTL writes model to w as an ASCII STL solid with the given name.
func WriteASCIISTL(w io.Writer, name string, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	solid := stl.Solid{
		Name:      name,
		IsAscii:   true,
		Triangles: make([]stl.Triangle, len(model)),
	}
	for i, t := range model {
		solid.Triangles[i] = stl.Triangle{
			Normal:   stl.Vec3(to3F32(t.Normal())),
			Vertices: [3]stl.Vec3{stl.Vec3(to3F32(t.V[0])), stl.Vec3(to3F32(t.V[1])), stl.Vec3(to3F32(t.V[2]))},
		}
	}
	return solid.WriteAll(w)
}

// ReadAnySTL reads an ASCII or binary STL stream and returns its name
// and triangles.
func ReadAnySTL(r io.Reader) (name string, model []Triangle3, err error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", nil, err
		}
		rs = bytes.NewReader(data)
	}
	solid, err := stl.ReadAll(rs)
	if err != nil {
		return "", nil, err
	}
	model = make([]Triangle3, len(solid.Triangles))
	for i, t := range solid.Triangles {
		for j, v := range t.Vertices {
			model[i].V[j] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		}
	}
	return solid.Name, model, nil
}
