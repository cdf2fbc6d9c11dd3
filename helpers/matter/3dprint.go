package matter

import "github.com/soypat/spring"

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks less than PLA but strings more at wire-to-wire gaps.
	PETG = ViscousMaterial{shrink: 0.1e-2, pullShrink: .3}
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// ScaleParameters returns p with every length enlarged so the printed spring
// shrinks to the nominal dimensions. Divisions, crops, angle and
// offset are left untouched.
func (m ViscousMaterial) ScaleParameters(p spring.Parameters) spring.Parameters {
	scale := 1 / (1 - m.shrink)
	p.MeanRadius *= scale
	p.WireRadius *= scale
	p.Pitch *= scale
	p.Length *= scale
	return p
}

// InternalDimScale returns the dimension to model so that a hole or inner
// diameter prints at the real size.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// ByName returns the material with the given lower case name.
func ByName(name string) (ViscousMaterial, bool) {
	switch name {
	case "pla":
		return PLA, true
	case "petg":
		return PETG, true
	}
	return ViscousMaterial{}, false
}
