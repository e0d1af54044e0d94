// Package config handles gear generation configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Gear    GearConfig    `yaml:"gear"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// GearConfig holds the default gear parameters used when a flag is not
// given on the command line.
type GearConfig struct {
	InnerRadius     float64 `yaml:"inner_radius"` // radius to the tooth troughs
	OuterRadius     float64 `yaml:"outer_radius"` // radius to the tooth tips
	Teeth           int     `yaml:"teeth"`
	Thickness       float64 `yaml:"thickness"`
	Layers          int     `yaml:"layers"`
	SamplesPerTooth int     `yaml:"samples_per_tooth"`
	ToothPreset     string  `yaml:"tooth_preset"`  // sine, vshape, ashape, halfsine
	TwistPreset     string  `yaml:"twist_preset"`  // straight, helical, fishbone
	TwistRadians    float64 `yaml:"twist_radians"` // total twist for helical/fishbone
}

// OutputConfig holds serialization settings.
type OutputConfig struct {
	Format string `yaml:"format"` // obj or stl
	Dir    string `yaml:"dir"`
}

// PreviewConfig holds preview rendering settings.
type PreviewConfig struct {
	Size        int `yaml:"size"`
	Supersample int `yaml:"supersample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Gear: GearConfig{
			InnerRadius:     20,
			OuterRadius:     24,
			Teeth:           12,
			Thickness:       4,
			Layers:          8,
			SamplesPerTooth: 20,
			ToothPreset:     "sine",
			TwistPreset:     "straight",
			TwistRadians:    0.5,
		},
		Output: OutputConfig{
			Format: "obj",
			Dir:    ".",
		},
		Preview: PreviewConfig{
			Size:        512,
			Supersample: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Overrides holds CLI flag values that take priority over the config file.
// Zero values mean "not set".
type Overrides struct {
	Debug  bool
	Format string
	Dir    string
}

// Apply merges CLI overrides into the config.
func (c *Config) Apply(o Overrides) {
	if o.Debug {
		c.Logging.Level = "debug"
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.Dir != "" {
		c.Output.Dir = o.Dir
	}
}
