package spring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SectionFunc maps an angle around the wire, in radians, to a radial scale
// factor of the wire radius. It should be periodic with period 2π.
// A nil SectionFunc is a circular cross-section.
type SectionFunc func(angle float64) float64

func circular(float64) float64 { return 1 }

// Grid holds surface samples in row-major order. Rows run around the wire,
// columns along the helix.
type Grid struct {
	Points []r3.Vec
	Rows   int
	Cols   int
	// Wrapped is set when the last row connects back to the first.
	Wrapped bool
}

// At returns the point at the given row and column.
func (g Grid) At(row, col int) r3.Vec {
	return g.Points[row*g.Cols+col]
}

// helix holds the scalars shared by every sample of a generation.
type helix struct {
	R, a, h float64
	norm    float64
	turns   float64
	phase   float64
	offset  r3.Vec
}

func newHelix(p Parameters) helix {
	return helix{
		R:      p.MeanRadius,
		a:      p.WireRadius,
		h:      p.Pitch,
		norm:   math.Hypot(p.Pitch, p.MeanRadius),
		turns:  p.Turns(),
		phase:  p.StartAngle,
		offset: p.Offset,
	}
}

// point evaluates the tube surface where cdu and sdu are the cross-section
// cosine and sine already scaled by the section function and dt is the
// helix angle.
func (hx helix) point(cdu, sdu, dt float64) r3.Vec {
	sdt, cdt := math.Sincos(dt + hx.phase)
	return r3.Vec{
		X: hx.R*cdt - hx.a*cdt*cdu + hx.a*hx.h*sdt*sdu/hx.norm + hx.offset.X,
		Y: hx.R*sdt - hx.a*sdt*cdu - hx.a*hx.h*cdt*sdu/hx.norm + hx.offset.Y,
		Z: hx.h*dt + hx.a*hx.R*sdu/hx.norm + hx.offset.Z,
	}
}

// SurfacePoint returns the spring surface point at wire angle du and helix
// angle dt, both in radians. Parameters are not validated.
func SurfacePoint(p Parameters, section SectionFunc, du, dt float64) r3.Vec {
	if section == nil {
		section = circular
	}
	s := section(du)
	sdu, cdu := math.Sincos(du)
	return newHelix(p).point(s*cdu, s*sdu, dt)
}

// Sample evaluates the spring surface on the cropped parameter grid.
// Collapsed parameters yield an empty Grid.
func Sample(p Parameters, section SectionFunc) (Grid, error) {
	if err := p.Validate(); err != nil {
		return Grid{}, err
	}
	if p.Collapsed() {
		return Grid{Wrapped: p.Wraps()}, nil
	}
	if section == nil {
		section = circular
	}
	hx := newHelix(p)
	g := Grid{
		Rows:    p.wireRows(),
		Cols:    p.lengthCols(),
		Wrapped: p.Wraps(),
	}
	g.Points = make([]r3.Vec, 0, g.Rows*g.Cols)
	lastRow := p.WireDivisions - p.WireCrop
	if g.Wrapped {
		lastRow-- // row at 2π duplicates row 0.
	}
	for u := p.WireCrop; u <= lastRow; u++ {
		du := float64(u) * tau / float64(p.WireDivisions)
		s := section(du)
		if !finite(s) {
			return Grid{}, fmt.Errorf("angle %g: got %g: %w", du, s, ErrInvalidCrossSection)
		}
		sdu, cdu := math.Sincos(du)
		cdu *= s
		sdu *= s
		for t := p.LengthCrop; t <= p.LengthDivisions-p.LengthCrop; t++ {
			dt := float64(t) / float64(p.LengthDivisions) * hx.turns
			g.Points = append(g.Points, hx.point(cdu, sdu, dt))
		}
	}
	return g, nil
}
