// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all simulation configuration parameters.
type Config struct {
	Seed       int64            `yaml:"seed"`
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Food       FoodConfig       `yaml:"food"`
	Population PopulationConfig `yaml:"population"`
	Day        DayConfig        `yaml:"day"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Observer   ObserverConfig   `yaml:"observer"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	CellSize  int    `yaml:"cell_size"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds the grid dimensions. The grid is always square.
type WorldConfig struct {
	GridSize int `yaml:"grid_size"`
}

// FoodConfig holds food field parameters.
type FoodConfig struct {
	Count int `yaml:"count"` // Units placed at the start of each day
}

// PopulationConfig holds population parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// DayConfig holds day cycle parameters.
type DayConfig struct {
	LengthTicks int `yaml:"length_ticks"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogDays        bool `yaml:"log_days"`
	PerfWindow     int  `yaml:"perf_window"`
	HallOfFameSize int  `yaml:"hall_of_fame_size"` // Longest-lived creatures kept per run
}

// ObserverConfig holds websocket observer parameters.
type ObserverConfig struct {
	Addr       string `yaml:"addr"`
	SendBuffer int    `yaml:"send_buffer"` // Frames queued per client before dropping
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Cells       int   // GridSize * GridSize
	WindowSize  int32 // GridSize * CellSize in pixels
	CellSize32  int32
	TicksPerDay int32
	DaySeconds  float64 // Wall-clock length of a day at TargetFPS
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

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the engine parameters. Food placement cannot terminate
// when more food is requested than the grid has cells, so that case is
// rejected here rather than discovered as a hang.
func (c *Config) Validate() error {
	if c.World.GridSize < 1 {
		return fmt.Errorf("%w: world.grid_size must be >= 1, got %d", ErrInvalid, c.World.GridSize)
	}
	if c.Food.Count < 0 {
		return fmt.Errorf("%w: food.count must be >= 0, got %d", ErrInvalid, c.Food.Count)
	}
	if cells := c.World.GridSize * c.World.GridSize; c.Food.Count > cells {
		return fmt.Errorf("%w: food.count %d exceeds %d grid cells", ErrInvalid, c.Food.Count, cells)
	}
	if c.Population.Initial < 0 {
		return fmt.Errorf("%w: population.initial must be >= 0, got %d", ErrInvalid, c.Population.Initial)
	}
	if c.Day.LengthTicks < 1 {
		return fmt.Errorf("%w: day.length_ticks must be >= 1, got %d", ErrInvalid, c.Day.LengthTicks)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Screen.CellSize < 1 {
		c.Screen.CellSize = 1
	}
	if c.Screen.TargetFPS < 1 {
		c.Screen.TargetFPS = 30
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = c.Day.LengthTicks
	}
	if c.Telemetry.HallOfFameSize < 1 {
		c.Telemetry.HallOfFameSize = 10
	}

	c.Derived.Cells = c.World.GridSize * c.World.GridSize
	c.Derived.CellSize32 = int32(c.Screen.CellSize)
	c.Derived.WindowSize = int32(c.World.GridSize * c.Screen.CellSize)
	c.Derived.TicksPerDay = int32(c.Day.LengthTicks)
	c.Derived.DaySeconds = float64(c.Day.LengthTicks) / float64(c.Screen.TargetFPS)
}

// Clone returns a deep copy. Derived values are recomputed.
func (c *Config) Clone() *Config {
	clone := *c
	clone.computeDerived()
	return &clone
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
