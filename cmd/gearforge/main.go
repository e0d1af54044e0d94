// gearforge is a CLI utility for generating parametric 3-D gear meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gearforge/internal/config"
	"github.com/Faultbox/gearforge/internal/logger"
	"github.com/Faultbox/gearforge/internal/preview"
	"github.com/Faultbox/gearforge/pkg/formats"
	"github.com/Faultbox/gearforge/pkg/gear"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "preview":
		cmdPreview(args)
	case "info":
		cmdInfo(args)
	case "presets":
		cmdPresets()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gearforge - parametric 3-D gear mesh generator

Usage:
  gearforge <command> [options]

Commands:
  generate [options]     Generate a gear mesh file (OBJ or STL)
  preview [options]      Render a shaded preview image (PNG, WebP or TGA)
  info <file.obj>        Inspect a Wavefront OBJ file
  presets                List tooth and twist presets

Examples:
  gearforge generate -teeth 12 -inner 20 -outer 24 -thickness 4
  gearforge generate -twist helical -twist-rad 0.5 -format stl -o gear.stl
  gearforge preview -twist fishbone -o gear.webp
  gearforge info 12t_24r_4y.obj`)
}

// gearFlags binds the gear parameter flags shared by generate and preview.
type gearFlags struct {
	inner     *float64
	outer     *float64
	thickness *float64
	twistRad  *float64
	teeth     *int
	layers    *int
	samples   *int
	tooth     *string
	twist     *string
}

func addGearFlags(fs *flag.FlagSet) *gearFlags {
	return &gearFlags{
		inner:     fs.Float64("inner", 0, "Inner radius, to the tooth troughs"),
		outer:     fs.Float64("outer", 0, "Outer radius, to the tooth tips"),
		thickness: fs.Float64("thickness", 0, "Gear thickness"),
		twistRad:  fs.Float64("twist-rad", 0, "Total twist in radians for helical/fishbone"),
		teeth:     fs.Int("teeth", 0, "Number of teeth"),
		layers:    fs.Int("layers", 0, "Vertical layer count"),
		samples:   fs.Int("samples", 0, "Geometry samples per tooth"),
		tooth:     fs.String("tooth", "", "Tooth preset: "+strings.Join(gear.ToothPresetNames, ", ")),
		twist:     fs.String("twist", "", "Twist preset: "+strings.Join(gear.TwistPresetNames, ", ")),
	}
}

// apply copies only the flags the user actually set over the config values.
func (gf *gearFlags) apply(fs *flag.FlagSet, g *config.GearConfig) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inner":
			g.InnerRadius = *gf.inner
		case "outer":
			g.OuterRadius = *gf.outer
		case "thickness":
			g.Thickness = *gf.thickness
		case "twist-rad":
			g.TwistRadians = *gf.twistRad
		case "teeth":
			g.Teeth = *gf.teeth
		case "layers":
			g.Layers = *gf.layers
		case "samples":
			g.SamplesPerTooth = *gf.samples
		case "tooth":
			g.ToothPreset = *gf.tooth
		case "twist":
			g.TwistPreset = *gf.twist
		}
	})
}

// buildSpec resolves presets and assembles the kernel spec from config.
func buildSpec(g config.GearConfig) (*gear.Spec, error) {
	depth := g.OuterRadius - g.InnerRadius
	tooth, ok := gear.ToothPreset(g.ToothPreset, depth)
	if !ok {
		return nil, fmt.Errorf("unknown tooth preset %q (have: %s)", g.ToothPreset, strings.Join(gear.ToothPresetNames, ", "))
	}
	twist, ok := gear.TwistPreset(g.TwistPreset, g.TwistRadians, g.Layers)
	if !ok {
		return nil, fmt.Errorf("unknown twist preset %q (have: %s)", g.TwistPreset, strings.Join(gear.TwistPresetNames, ", "))
	}

	spec := &gear.Spec{
		InnerRadius:     g.InnerRadius,
		OuterRadius:     g.OuterRadius,
		Teeth:           g.Teeth,
		Thickness:       g.Thickness,
		Layers:          g.Layers,
		SamplesPerTooth: g.SamplesPerTooth,
		ToothShape:      tooth,
		Angle:           twist,
	}
	return spec, spec.Validate()
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	format := fs.String("format", "", "Output format: obj or stl")
	dir := fs.String("dir", "", "Output directory")
	out := fs.String("o", "", "Output file (default: auto-named in the output directory)")
	toStdout := fs.Bool("stdout", false, "Write the mesh to stdout instead of a file")
	gf := addGearFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(*configPath, config.Overrides{Debug: *debug, Format: *format, Dir: *dir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gf.apply(fs, &cfg.Gear)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	spec, err := buildSpec(cfg.Gear)
	if err != nil {
		logger.Fatal("invalid gear parameters", zap.Error(err))
	}

	logger.Info("generating gear",
		zap.Int("teeth", spec.Teeth),
		zap.Float64("inner_radius", spec.InnerRadius),
		zap.Float64("outer_radius", spec.OuterRadius),
		zap.Float64("thickness", spec.Thickness),
		zap.Int("layers", spec.Layers),
		zap.Int("points_per_ring", spec.PointsPerRing()),
	)

	m, err := gear.Generate(spec)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
	logger.Info("mesh assembled",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
	)

	encode := formats.EncodeOBJ
	ext := ".obj"
	if cfg.Output.Format == "stl" {
		encode = formats.EncodeSTL
		ext = ".stl"
	} else if cfg.Output.Format != "obj" {
		logger.Fatal("unknown output format", zap.String("format", cfg.Output.Format))
	}

	if *toStdout {
		if err := encode(os.Stdout, m, "gear"); err != nil {
			logger.Fatal("serialization failed", zap.Error(err))
		}
		return
	}

	path := *out
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, spec.DefaultFileName(ext))
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal("creating output file", zap.Error(err))
	}
	defer f.Close()
	if err := encode(f, m, "gear"); err != nil {
		logger.Fatal("serialization failed", zap.Error(err))
	}
	logger.Info("gear written", zap.String("path", path))
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	out := fs.String("o", "gear.png", "Output image (.png, .webp or .tga)")
	size := fs.Int("size", 0, "Image edge length in pixels")
	supersample := fs.Int("ss", 0, "Supersampling factor")
	gf := addGearFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(*configPath, config.Overrides{Debug: *debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gf.apply(fs, &cfg.Gear)
	if *size > 0 {
		cfg.Preview.Size = *size
	}
	if *supersample > 0 {
		cfg.Preview.Supersample = *supersample
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	spec, err := buildSpec(cfg.Gear)
	if err != nil {
		logger.Fatal("invalid gear parameters", zap.Error(err))
	}

	m, err := gear.Generate(spec)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}

	opt := preview.DefaultOptions()
	opt.Size = cfg.Preview.Size
	opt.Supersample = cfg.Preview.Supersample
	img := preview.Render(m, opt)

	if err := preview.Encode(*out, img); err != nil {
		logger.Fatal("writing preview", zap.Error(err))
	}
	logger.Info("preview written",
		zap.String("path", *out),
		zap.Int("size", cfg.Preview.Size),
		zap.Int("triangles", m.TriangleCount()),
	)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gearforge info <file.obj>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	m, err := formats.ParseOBJ(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	quads, tris := 0, 0
	for _, f := range m.Faces {
		switch len(f) {
		case 3:
			tris++
		case 4:
			quads++
		}
	}
	min, max := m.Bounds()

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", len(m.Vertices))
	fmt.Printf("Faces:     %d (%d triangles, %d quads)\n", len(m.Faces), tris, quads)
	fmt.Printf("Triangles: %d after fan-splitting\n", m.TriangleCount())
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) to (%.3f, %.3f, %.3f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)

	if err := m.Validate(); err != nil {
		fmt.Printf("Integrity: FAILED (%v)\n", err)
		os.Exit(1)
	}
	fmt.Println("Integrity: ok")
}

func cmdPresets() {
	fmt.Println(`Tooth presets:
  sine       Smooth sinusoidal tooth (default)
  vshape     Sawtooth with a sharp trough
  ashape     Sawtooth with a sharp tip
  halfsine   Undercut half-sinusoidal tooth

Twist presets:
  straight   No twist, plain spur gear (default)
  helical    Linear twist over the thickness, set total with -twist-rad
  fishbone   Twist folds back at mid-thickness, chevron teeth`)
}
