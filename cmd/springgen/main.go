// Command springgen generates helical spring meshes and writes them as
// STL, OBJ or PNG previews.
//
//	springgen -config springgen.yaml -turns 8 -section polygon -png spring.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/soypat/spring"
	"github.com/soypat/spring/internal/config"
	"github.com/soypat/spring/internal/d3"
	"github.com/soypat/spring/internal/logger"
	"github.com/soypat/spring/mesh"
	"github.com/soypat/spring/render"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "springgen:", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("springgen", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	save := fs.String("save-config", "", "Write the resolved config to this path and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if *save != "" {
		logger.Info("saving config", zap.String("path", *save))
		return cfg.SaveTo(*save)
	}
	section, err := cfg.SectionFunc()
	if err != nil {
		return err
	}
	p := cfg.Parameters()
	if p.Collapsed() {
		logger.Warn("crop removes every face, mesh will be empty",
			zap.Int("lengthCrop", p.LengthCrop), zap.Int("wireCrop", p.WireCrop))
	}
	gen := spring.NewGenerator(p, section)
	m, err := gen.Build()
	if err != nil {
		return fmt.Errorf("generating spring: %w", err)
	}
	bounds := d3.Box(m.Bounds)
	logger.Info("spring generated",
		zap.Float64("turns", gen.Turns()),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Float64("area", m.SurfaceArea()),
		zap.Any("center", bounds.Center()),
		zap.Any("size", bounds.Size()),
		zap.String("material", cfg.Material.Name),
	)
	if m.Empty() {
		return nil
	}
	return writeOutputs(cfg.Output, m)
}

func writeOutputs(out config.OutputConfig, m mesh.Mesh) error {
	if out.STL != "" {
		if err := render.CreateSTL(out.STL, render.NewMeshRenderer(m)); err != nil {
			return fmt.Errorf("writing STL: %w", err)
		}
		logger.Info("wrote binary STL", zap.String("path", out.STL))
	}
	if out.OBJ != "" {
		if err := writeFile(out.OBJ, func(f *os.File) error { return render.WriteOBJ(f, out.Name, m) }); err != nil {
			return fmt.Errorf("writing OBJ: %w", err)
		}
		logger.Info("wrote OBJ", zap.String("path", out.OBJ))
	}
	if out.ASCIISTL == "" && out.PNG == "" {
		return nil
	}
	model, err := render.RenderAll(render.NewMeshRenderer(m))
	if err != nil {
		return err
	}
	if out.ASCIISTL != "" {
		if err := writeFile(out.ASCIISTL, func(f *os.File) error { return render.WriteASCIISTL(f, out.Name, model) }); err != nil {
			return fmt.Errorf("writing ASCII STL: %w", err)
		}
		logger.Info("wrote ASCII STL", zap.String("path", out.ASCIISTL))
	}
	if out.PNG != "" {
		if err := render.WritePNG(out.PNG, model, render.DefaultView()); err != nil {
			return fmt.Errorf("writing PNG: %w", err)
		}
		logger.Info("wrote preview", zap.String("path", out.PNG))
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
