package spring

import "gonum.org/v1/gonum/spatial/r3"

// Parameters defines a helical spring surface. A Parameters value is read once
// per generation and never modified by the generator functions.
type Parameters struct {
	MeanRadius float64 // helix centerline radius R
	WireRadius float64 // tube cross-section radius a
	Pitch      float64 // axial advance per full turn
	// Length is the unwound helix parameter length. Length/Pitch is the number
	// of turns.
	Length float64

	LengthDivisions int // grid divisions along the sweep
	WireDivisions   int // grid divisions around the tube
	// LengthCrop and WireCrop trim rows symmetrically from each end of
	// the corresponding grid axis. WireCrop > 0 leaves the tube open.
	LengthCrop int
	WireCrop   int

	StartAngle float64 // helix phase in radians
	Offset     r3.Vec  // translation applied to every vertex
}

// DefaultParameters returns a 20 turn spring of mean radius 10.
func DefaultParameters() Parameters {
	return Parameters{
		MeanRadius:      10,
		WireRadius:      0.2,
		Pitch:           5,
		Length:          100,
		LengthDivisions: 200,
		WireDivisions:   50,
		Offset:          r3.Vec{Z: 1},
	}
}

// Turns returns the number of helix revolutions, Length/Pitch.
func (p Parameters) Turns() float64 {
	return p.Length / p.Pitch
}

// Wraps reports whether the tube closes on itself around its cross-section.
func (p Parameters) Wraps() bool { return p.WireCrop == 0 }

// Collapsed reports whether cropping leaves less than one division on either
// grid axis. Collapsed parameters generate an empty mesh.
func (p Parameters) Collapsed() bool {
	return p.LengthDivisions-2*p.LengthCrop < 1 || p.WireDivisions-2*p.WireCrop < 1
}

// lengthCols is the number of samples per wire row after cropping.
func (p Parameters) lengthCols() int {
	return p.LengthDivisions + 1 - 2*p.LengthCrop
}

// wireRows is the number of emitted wire rows after cropping. The duplicate
// row at 2π is not emitted for closed tubes.
func (p Parameters) wireRows() int {
	if p.Wraps() {
		return p.WireDivisions
	}
	return p.WireDivisions + 1 - 2*p.WireCrop
}

// Validate returns an error wrapping ErrInvalidParameter if p
// cannot describe a spring.
func (p Parameters) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"MeanRadius", p.MeanRadius},
		{"WireRadius", p.WireRadius},
		{"Pitch", p.Pitch},
		{"Length", p.Length},
	}
	for _, f := range positive {
		if !finite(f.v) {
			return paramErr(f.name, f.v, "must be finite")
		}
		if f.v <= 0 {
			return paramErr(f.name, f.v, "must be positive")
		}
	}
	switch {
	case p.LengthDivisions < 1:
		return paramErr("LengthDivisions", float64(p.LengthDivisions), "must be at least 1")
	case p.WireDivisions < 1:
		return paramErr("WireDivisions", float64(p.WireDivisions), "must be at least 1")
	case p.LengthCrop < 0:
		return paramErr("LengthCrop", float64(p.LengthCrop), "must not be negative")
	case p.WireCrop < 0:
		return paramErr("WireCrop", float64(p.WireCrop), "must not be negative")
	case !finite(p.StartAngle):
		return paramErr("StartAngle", p.StartAngle, "must be finite")
	case !finite(p.Offset.X) || !finite(p.Offset.Y) || !finite(p.Offset.Z):
		return paramErr("Offset", r3.Norm(p.Offset), "must be finite")
	}
	return nil
}
