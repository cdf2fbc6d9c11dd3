package spring

import (
	"github.com/soypat/spring/mesh"
	"github.com/soypat/spring/texgrid"
)

// Stitch triangulates the sampled grid of p, two triangles per cell.
// Closed tubes fold the last cell row back onto the first grid row so no
// face references the dropped duplicate row. Collapsed parameters return nil.
func Stitch(p Parameters) []mesh.Face {
	if p.Collapsed() {
		return nil
	}
	numDivLength := p.lengthCols()
	cells := p.WireDivisions - 2*p.WireCrop
	faces := texgrid.Faces(cells, p.LengthDivisions-2*p.LengthCrop, numDivLength)
	if !p.Wraps() {
		return faces
	}
	// Faces of the last cell row start at this index, two per cell.
	fold := p.WireDivisions * numDivLength
	first := 2 * (cells - 1) * (numDivLength - 1)
	for i := first; i < len(faces); i++ {
		f := &faces[i]
		for j := range f {
			if f[j] >= fold {
				f[j] -= fold
			}
		}
	}
	return faces
}
