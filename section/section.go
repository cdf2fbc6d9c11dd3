// Package section provides wire cross-section shapes for spring generation.
// Every shape is a radial scale of the wire radius as a function of the
// angle around the wire.
package section

import (
	"math"

	"github.com/soypat/spring"
)

// Circle returns the unit circular cross-section.
func Circle() spring.SectionFunc {
	return func(float64) float64 { return 1 }
}

// Polygon returns the cross-section of a regular n sided polygon with its
// vertices on the unit circle and the first vertex at angle 0.
// n below 3 panics.
func Polygon(n int) spring.SectionFunc {
	if n < 3 {
		panic("polygon needs at least 3 sides")
	}
	half := math.Pi / float64(n)
	apothem := math.Cos(half)
	return func(angle float64) float64 {
		// angle from the bisector of the nearest side.
		a := math.Mod(angle, 2*half)
		if a < 0 {
			a += 2 * half
		}
		return apothem / math.Cos(a-half)
	}
}

// Lobed returns 1 + amplitude*cos(n*angle). amplitude must lie in [0,1).
func Lobed(n int, amplitude float64) spring.SectionFunc {
	if n < 1 {
		panic("lobed section needs at least 1 lobe")
	}
	if amplitude < 0 || amplitude >= 1 {
		panic("lobed amplitude must be in [0,1)")
	}
	return func(angle float64) float64 {
		return 1 + amplitude*math.Cos(float64(n)*angle)
	}
}

// Ellipse returns an elliptical cross-section with semi-axis 1 along the
// radial direction and ratio along the axial direction.
func Ellipse(ratio float64) spring.SectionFunc {
	if ratio <= 0 {
		panic("ellipse ratio must be positive")
	}
	return func(angle float64) float64 {
		s, c := math.Sincos(angle)
		return ratio / math.Sqrt(ratio*ratio*c*c+s*s)
	}
}

// Cached memoizes f at the wire grid angles k*2π/divisions. Angles off the
// grid are passed through to f.
func Cached(f spring.SectionFunc, divisions int) spring.SectionFunc {
	if divisions < 1 {
		panic("divisions must be at least 1")
	}
	gridAngle := func(k int) float64 {
		return float64(k) * (2 * math.Pi) / float64(divisions)
	}
	table := make([]float64, divisions+1)
	for k := range table {
		table[k] = f(gridAngle(k))
	}
	return func(angle float64) float64 {
		k := int(math.Round(angle * float64(divisions) / (2 * math.Pi)))
		if k >= 0 && k < len(table) && gridAngle(k) == angle {
			return table[k]
		}
		return f(angle)
	}
}
