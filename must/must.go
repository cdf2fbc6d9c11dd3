// Package must provides panicking variants of spring constructors for
// programs that treat bad parameters as a bug.
package must

import (
	"github.com/soypat/spring"
	"github.com/soypat/spring/mesh"
)

// Generate returns the mesh for p or panics.
func Generate(p spring.Parameters, section spring.SectionFunc) mesh.Mesh {
	m, err := spring.Generate(p, section)
	if err != nil {
		panic(err)
	}
	return m
}

// Spring returns a circular wire spring mesh with the default grid
// resolution and no offset.
func Spring(meanRadius, wireRadius, pitch, length float64) mesh.Mesh {
	p := spring.DefaultParameters()
	p.MeanRadius = meanRadius
	p.WireRadius = wireRadius
	p.Pitch = pitch
	p.Length = length
	p.Offset.Z = 0
	return Generate(p, nil)
}
