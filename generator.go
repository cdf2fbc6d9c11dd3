package spring

import (
	"github.com/soypat/spring/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Driver identifies which of Length and Pitch was last set directly.
type Driver uint8

const (
	DriverNone Driver = iota
	DriverLength
	DriverPitch
)

func (d Driver) String() string {
	switch d {
	case DriverLength:
		return "length"
	case DriverPitch:
		return "pitch"
	}
	return "none"
}

// Generator owns a set of spring parameters and the mesh built from them.
//
// Changes made before the first call to Build are only recorded. Once built,
// every change rebuilds the mesh synchronously. A change whose rebuild fails
// is discarded and the previous parameters and mesh are kept.
//
// Length and Pitch are coupled through the number of turns fixed at the
// first Build: setting Length recomputes Pitch and setting Pitch recomputes
// Length so that Pitch*Turns == Length.
//
// Generator is not safe for concurrent use.
type Generator struct {
	params  Parameters
	section SectionFunc
	turns   float64
	driver  Driver
	built   bool
	mesh    mesh.Mesh
}

// NewGenerator returns an unbuilt Generator. A nil section is circular.
func NewGenerator(p Parameters, section SectionFunc) *Generator {
	return &Generator{params: p, section: section}
}

// Build regenerates the mesh from the current parameters. The first
// successful Build fixes the turn count used to couple Length and Pitch.
func (g *Generator) Build() (mesh.Mesh, error) {
	if !g.built {
		g.turns = g.params.Turns()
	}
	m, err := Generate(g.params, g.section)
	if err != nil {
		return mesh.Mesh{}, err
	}
	g.mesh = m
	g.built = true
	return m, nil
}

// Built reports whether a mesh has been generated.
func (g *Generator) Built() bool { return g.built }

// Mesh returns the last generated mesh and whether one exists.
func (g *Generator) Mesh() (mesh.Mesh, bool) { return g.mesh, g.built }

// Parameters returns the current parameters.
func (g *Generator) Parameters() Parameters { return g.params }

// Turns returns the turn count coupling Length and Pitch. Before the first
// Build it is derived from the current parameters.
func (g *Generator) Turns() float64 {
	if !g.built {
		return g.params.Turns()
	}
	return g.turns
}

// Driver returns which of Length and Pitch was last set directly.
func (g *Generator) Driver() Driver { return g.driver }

// Update applies fn to a copy of the parameters and rebuilds once. If fn
// changes only one of Length or Pitch the other follows it. If it changes
// both the turn count is redefined as Length/Pitch.
func (g *Generator) Update(fn func(p *Parameters)) error {
	next := g.params
	fn(&next)
	lengthSet := next.Length != g.params.Length
	pitchSet := next.Pitch != g.params.Pitch
	switch {
	case lengthSet && pitchSet:
		return g.commit(next, DriverNone, true)
	case lengthSet:
		return g.commit(next, DriverLength, false)
	case pitchSet:
		return g.commit(next, DriverPitch, false)
	}
	return g.commit(next, DriverNone, false)
}

// commit stores next, coupling Length and Pitch when couple names one of
// them, and rebuilds if built. retune redefines the turn count from next.
func (g *Generator) commit(next Parameters, couple Driver, retune bool) error {
	driver := g.driver
	if couple != DriverNone {
		driver = couple
	}
	if !g.built {
		g.params, g.driver = next, driver
		return nil
	}
	turns := g.turns
	switch {
	case retune:
		turns = next.Turns()
	case couple == DriverLength:
		next.Pitch = next.Length / turns
	case couple == DriverPitch:
		next.Length = next.Pitch * turns
	}
	m, err := Generate(next, g.section)
	if err != nil {
		return err
	}
	g.params, g.driver, g.turns, g.mesh = next, driver, turns, m
	return nil
}

func (g *Generator) SetMeanRadius(v float64) error {
	next := g.params
	next.MeanRadius = v
	return g.commit(next, DriverNone, false)
}

func (g *Generator) SetWireRadius(v float64) error {
	next := g.params
	next.WireRadius = v
	return g.commit(next, DriverNone, false)
}

// SetLength sets the helix length. Once built Pitch follows as Length/Turns.
func (g *Generator) SetLength(v float64) error {
	next := g.params
	next.Length = v
	return g.commit(next, DriverLength, false)
}

// SetPitch sets the pitch. Once built Length follows as Pitch*Turns.
func (g *Generator) SetPitch(v float64) error {
	next := g.params
	next.Pitch = v
	return g.commit(next, DriverPitch, false)
}

func (g *Generator) SetLengthDivisions(n int) error {
	next := g.params
	next.LengthDivisions = n
	return g.commit(next, DriverNone, false)
}

func (g *Generator) SetWireDivisions(n int) error {
	next := g.params
	next.WireDivisions = n
	return g.commit(next, DriverNone, false)
}

func (g *Generator) SetLengthCrop(n int) error {
	next := g.params
	next.LengthCrop = n
	return g.commit(next, DriverNone, false)
}

func (g *Generator) SetWireCrop(n int) error {
	next := g.params
	next.WireCrop = n
	return g.commit(next, DriverNone, false)
}

// SetStartAngle sets the helix phase in radians.
func (g *Generator) SetStartAngle(radians float64) error {
	next := g.params
	next.StartAngle = radians
	return g.commit(next, DriverNone, false)
}

func (g *Generator) SetOffset(v r3.Vec) error {
	next := g.params
	next.Offset = v
	return g.commit(next, DriverNone, false)
}

// SetSection replaces the cross-section function and rebuilds if built.
func (g *Generator) SetSection(section SectionFunc) error {
	if !g.built {
		g.section = section
		return nil
	}
	m, err := Generate(g.params, section)
	if err != nil {
		return err
	}
	g.section, g.mesh = section, m
	return nil
}
