// Package texgrid lays a rectangular parameter grid onto the unit texture square.
package texgrid

import (
	"github.com/soypat/spring/mesh"
	"gonum.org/v1/gonum/spatial/r2"
)

// Grid returns (rows+1)*(cols+1) texture coordinates spanning [0,1]x[0,1]
// in row-major order, with U advancing along columns and V along rows,
// and the two triangles of every cell wound (p00,p10,p11), (p11,p01,p00).
// rows or cols below 1 yield no coordinates and no faces.
func Grid(rows, cols int) ([]r2.Vec, []mesh.Face) {
	if rows < 1 || cols < 1 {
		return nil, nil
	}
	uvs := make([]r2.Vec, 0, (rows+1)*(cols+1))
	for r := 0; r <= rows; r++ {
		v := float64(r) / float64(rows)
		for c := 0; c <= cols; c++ {
			uvs = append(uvs, r2.Vec{X: float64(c) / float64(cols), Y: v})
		}
	}
	return uvs, Faces(rows, cols, cols+1)
}

// Faces triangulates a rows by cols cell grid whose points are stored
// stride apart between rows.
func Faces(rows, cols, stride int) []mesh.Face {
	if rows < 1 || cols < 1 {
		return nil
	}
	faces := make([]mesh.Face, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p00 := r*stride + c
			p01 := p00 + 1
			p10 := p00 + stride
			p11 := p10 + 1
			faces = append(faces, mesh.Face{p00, p10, p11}, mesh.Face{p11, p01, p00})
		}
	}
	return faces
}
