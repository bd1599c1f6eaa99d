// Package config provides configuration loading and access for the simulation.
//
// Only the host environment is configurable: window, world size, initial
// population and telemetry. The ecosystem's balance constants live in the
// systems package and are not settings.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
type WorldConfig struct {
	Width  float64 `yaml:"width"`  // World width in world units (0 = use screen width)
	Height float64 `yaml:"height"` // World height in world units (0 = use screen height)
}

// PopulationConfig holds population seeding parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	BookmarkHistorySize int `yaml:"bookmark_history_size"`
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// BookmarksConfig holds bookmark detection thresholds.
type BookmarksConfig struct {
	Crash     CrashConfig     `yaml:"crash"`
	Boom      BoomConfig      `yaml:"boom"`
	Cognition CognitionConfig `yaml:"cognition"`
}

// CrashConfig holds population crash detection parameters.
type CrashConfig struct {
	DropPercent float64 `yaml:"drop_percent"`
	MinDrop     int     `yaml:"min_drop"`
}

// BoomConfig holds population boom detection parameters.
type BoomConfig struct {
	Multiplier    float64 `yaml:"multiplier"`
	MinPopulation int     `yaml:"min_population"`
}

// CognitionConfig holds cognition emergence detection parameters.
type CognitionConfig struct {
	MinFraction float64 `yaml:"min_fraction"` // share of intelligent biots
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW32 float32 // Effective world width as float32
	WorldH32 float32 // Effective world height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.World.Width < 0 || c.World.Height < 0 {
		return fmt.Errorf("world size must not be negative, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Population.Initial < 0 {
		return fmt.Errorf("initial population must not be negative, got %d", c.Population.Initial)
	}
	if c.Telemetry.StatsWindow < 1 {
		return fmt.Errorf("stats window must be at least one tick, got %d", c.Telemetry.StatsWindow)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = float64(c.Screen.Width)
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = float64(c.Screen.Height)
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
