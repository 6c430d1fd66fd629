// Package config loads mazegen settings from defaults, an optional TOML file
// and MAZEGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/presets"
)

const (
	// DefaultFile is read from the working directory when no path is given.
	DefaultFile = "mazegen.toml"

	MinSize = 1
	MaxSize = 100

	DefaultSize  = 5
	DefaultScale = 8
	maxScale     = 64
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds generation and presentation settings.
type Config struct {
	Size   int    `toml:"size"`   // Cells per side
	Method string `toml:"method"` // Generation method name
	Seed   int64  `toml:"seed"`   // Random seed, 0 for a time-based seed
	Scale  int    `toml:"scale"`  // PNG pixels per maze pixel
	Theme  string `toml:"theme"`  // Viewer colour theme ID
	Preset string `toml:"preset"` // Optional preset ID applied before flags
	Debug  bool   `toml:"debug"`  // Route pixel maps to the debug plotter
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:   DefaultSize,
		Method: string(maze.DefaultMethod),
		Scale:  DefaultScale,
		Theme:  presets.DefaultThemeID,
	}
}

// Load layers defaults, the TOML file at path and the environment. An empty
// path reads DefaultFile if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from MAZEGEN_* variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("MAZEGEN_SIZE"); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MAZEGEN_SIZE must be an integer: %v", ErrInvalid, err)
		}
		c.Size = size
	}
	if v, ok := os.LookupEnv("MAZEGEN_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MAZEGEN_SEED must be an integer: %v", ErrInvalid, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("MAZEGEN_METHOD"); ok {
		c.Method = v
	}
	if v, ok := os.LookupEnv("MAZEGEN_THEME"); ok {
		c.Theme = v
	}
	if v, ok := os.LookupEnv("MAZEGEN_PRESET"); ok {
		c.Preset = v
	}
	return nil
}

// ApplyPreset copies the preset's size and method into c.
func (c *Config) ApplyPreset(p presets.PresetDef) {
	c.Size = p.Size
	c.Method = p.Method
}

// Validate checks ranges. Unknown method names are accepted; generation
// falls back to the default method for them.
func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalid, c.Size, MinSize, MaxSize)
	}
	if c.Scale < 1 || c.Scale > maxScale {
		return fmt.Errorf("%w: scale %d outside [1, %d]", ErrInvalid, c.Scale, maxScale)
	}
	return nil
}

// GenerationMethod returns the configured method.
func (c Config) GenerationMethod() maze.Method {
	return maze.Method(c.Method)
}
