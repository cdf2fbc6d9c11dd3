package spring

import (
	"math"

	"github.com/soypat/spring/mesh"
	"github.com/soypat/spring/texgrid"
)

// Extent returns the unrolled surface size of the spring: the helix
// parameter length along the sweep by the circumference of the wire.
func Extent(p Parameters) mesh.Extent {
	return mesh.Extent{
		Width:  math.Hypot(p.Pitch, p.MeanRadius) * p.Turns(),
		Height: tau * p.WireRadius,
	}
}

// Generate samples and triangulates the spring surface described by p.
// A nil section gives a circular wire. Parameters that crop away a whole
// grid axis produce an empty mesh and no error.
func Generate(p Parameters, section SectionFunc) (mesh.Mesh, error) {
	grid, err := Sample(p, section)
	if err != nil {
		return mesh.Mesh{}, err
	}
	faces := Stitch(p)
	uvs, texFaces := texgrid.Grid(p.WireDivisions-2*p.WireCrop, p.LengthDivisions-2*p.LengthCrop)
	return mesh.Assemble(grid.Points, uvs, faces, texFaces, Extent(p))
}
