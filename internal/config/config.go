// Package config handles springgen configuration loading and management.
package config

import (
	"fmt"

	"github.com/soypat/spring"
	"github.com/soypat/spring/helpers/matter"
	"github.com/soypat/spring/section"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config holds all generator settings.
type Config struct {
	Spring   SpringConfig   `yaml:"spring"`
	Section  SectionConfig  `yaml:"section"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Material MaterialConfig `yaml:"material"`
}

// SpringConfig holds the spring shape and grid resolution.
type SpringConfig struct {
	MeanRadius      float64    `yaml:"mean_radius"`
	WireRadius      float64    `yaml:"wire_radius"`
	Pitch           float64    `yaml:"pitch"`
	Length          float64    `yaml:"length"`
	LengthDivisions int        `yaml:"length_divisions"`
	WireDivisions   int        `yaml:"wire_divisions"`
	LengthCrop      int        `yaml:"length_crop"`
	WireCrop        int        `yaml:"wire_crop"`
	StartAngle      float64    `yaml:"start_angle"` // Degrees
	Offset          [3]float64 `yaml:"offset"`
}

// SectionConfig selects the wire cross-section.
type SectionConfig struct {
	Shape     string  `yaml:"shape"` // circle, polygon, lobed or ellipse
	Sides     int     `yaml:"sides"`
	Lobes     int     `yaml:"lobes"`
	Amplitude float64 `yaml:"amplitude"`
	Ratio     float64 `yaml:"ratio"`
}

// OutputConfig holds output file paths. Empty paths are skipped.
type OutputConfig struct {
	Name     string `yaml:"name"` // Solid name in ASCII STL and OBJ files
	STL      string `yaml:"stl"`
	ASCIISTL string `yaml:"ascii_stl"`
	OBJ      string `yaml:"obj"`
	PNG      string `yaml:"png"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MaterialConfig compensates printed springs for material shrinkage.
type MaterialConfig struct {
	Name string `yaml:"name"` // pla, petg or empty for none
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := spring.DefaultParameters()
	return &Config{
		Spring: SpringConfig{
			MeanRadius:      p.MeanRadius,
			WireRadius:      p.WireRadius,
			Pitch:           p.Pitch,
			Length:          p.Length,
			LengthDivisions: p.LengthDivisions,
			WireDivisions:   p.WireDivisions,
			Offset:          [3]float64{p.Offset.X, p.Offset.Y, p.Offset.Z},
		},
		Section: SectionConfig{
			Shape:     "circle",
			Sides:     4,
			Lobes:     3,
			Amplitude: 0.2,
			Ratio:     1,
		},
		Output: OutputConfig{
			Name: "spring",
			STL:  "spring.stl",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks settings that spring parameter validation does not cover.
func (c *Config) Validate() error {
	if _, err := c.SectionFunc(); err != nil {
		return err
	}
	if c.Material.Name != "" {
		if _, ok := matter.ByName(c.Material.Name); !ok {
			return fmt.Errorf("unknown material %q", c.Material.Name)
		}
	}
	return c.Parameters().Validate()
}

// Parameters returns the spring parameters, scaled for the configured
// material if any.
func (c *Config) Parameters() spring.Parameters {
	s := c.Spring
	p := spring.Parameters{
		MeanRadius:      s.MeanRadius,
		WireRadius:      s.WireRadius,
		Pitch:           s.Pitch,
		Length:          s.Length,
		LengthDivisions: s.LengthDivisions,
		WireDivisions:   s.WireDivisions,
		LengthCrop:      s.LengthCrop,
		WireCrop:        s.WireCrop,
		StartAngle:      spring.DtoR(s.StartAngle),
		Offset:          r3.Vec{X: s.Offset[0], Y: s.Offset[1], Z: s.Offset[2]},
	}
	if m, ok := matter.ByName(c.Material.Name); ok {
		p = m.ScaleParameters(p)
	}
	return p
}

// SectionFunc returns the configured cross-section memoized on the wire grid.
func (c *Config) SectionFunc() (spring.SectionFunc, error) {
	s := c.Section
	var f spring.SectionFunc
	switch s.Shape {
	case "", "circle":
		return nil, nil
	case "polygon":
		if s.Sides < 3 {
			return nil, fmt.Errorf("polygon section needs at least 3 sides, got %d", s.Sides)
		}
		f = section.Polygon(s.Sides)
	case "lobed":
		if s.Lobes < 1 || s.Amplitude < 0 || s.Amplitude >= 1 {
			return nil, fmt.Errorf("lobed section needs lobes >= 1 and amplitude in [0,1), got %d, %g", s.Lobes, s.Amplitude)
		}
		f = section.Lobed(s.Lobes, s.Amplitude)
	case "ellipse":
		if s.Ratio <= 0 {
			return nil, fmt.Errorf("ellipse section needs positive ratio, got %g", s.Ratio)
		}
		f = section.Ellipse(s.Ratio)
	default:
		return nil, fmt.Errorf("unknown section shape %q", s.Shape)
	}
	if c.Spring.WireDivisions < 1 {
		return f, nil
	}
	return section.Cached(f, c.Spring.WireDivisions), nil
}
