package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config alone.
type Flags struct {
	Config   string
	Debug    bool
	Turns    float64
	Length   float64
	Pitch    float64
	Section  string
	Material string
	STL      string
	OBJ      string
	PNG      string
}

// RegisterFlags defines the springgen flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.Float64Var(&f.Turns, "turns", 0, "Number of turns, sets length from pitch")
	fs.Float64Var(&f.Length, "length", 0, "Helix length")
	fs.Float64Var(&f.Pitch, "pitch", 0, "Axial advance per turn")
	fs.StringVar(&f.Section, "section", "", "Wire cross-section: circle, polygon, lobed or ellipse")
	fs.StringVar(&f.Material, "material", "", "Compensate shrinkage for material: pla or petg")
	fs.StringVar(&f.STL, "stl", "", "Binary STL output path")
	fs.StringVar(&f.OBJ, "obj", "", "Wavefront OBJ output path")
	fs.StringVar(&f.PNG, "png", "", "PNG preview output path")
	return f
}

// Apply applies flag overrides to cfg. Turns is applied after Length and
// Pitch so it keeps the resulting pitch.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Length > 0 {
		cfg.Spring.Length = f.Length
	}
	if f.Pitch > 0 {
		cfg.Spring.Pitch = f.Pitch
	}
	if f.Turns > 0 {
		cfg.Spring.Length = f.Turns * cfg.Spring.Pitch
	}
	if f.Section != "" {
		cfg.Section.Shape = f.Section
	}
	if f.Material != "" {
		cfg.Material.Name = f.Material
	}
	if f.STL != "" {
		cfg.Output.STL = f.STL
	}
	if f.OBJ != "" {
		cfg.Output.OBJ = f.OBJ
	}
	if f.PNG != "" {
		cfg.Output.PNG = f.PNG
	}
}
