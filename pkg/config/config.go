package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gomobius/pkg/mobius"
)

// ErrInvalidConfig is returned when a configuration file holds unusable values
var ErrInvalidConfig = errors.New("invalid configuration")

// Render styles understood by the render command
const (
	StyleCanvas = "canvas"
	StyleRaster = "raster"
)

// Config is the content of a gomobius TOML file
type Config struct {
	Strip  StripConfig  `toml:"strip"`
	Render RenderConfig `toml:"render"`
}

// StripConfig holds the strip parameters
type StripConfig struct {
	Radius     float64 `toml:"radius"`
	Width      float64 `toml:"width"`
	Resolution int     `toml:"resolution"`
}

// RenderConfig holds the output settings of the PNG renderers
type RenderConfig struct {
	Output    string  `toml:"output"`
	Style     string  `toml:"style"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Azimuth   float64 `toml:"azimuth"`   // degrees around the z axis
	Elevation float64 `toml:"elevation"` // degrees above the xy plane
	Title     string  `toml:"title"`
}

// Default returns the built-in configuration
func Default() Config {
	p := mobius.DefaultParams()
	return Config{
		Strip: StripConfig{
			Radius:     p.R,
			Width:      p.W,
			Resolution: p.N,
		},
		Render: RenderConfig{
			Output:    "mobius.png",
			Style:     StyleCanvas,
			Width:     1000,
			Height:    700,
			Azimuth:   -60,
			Elevation: 30,
			Title:     "Möbius Strip",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the
// file keep their default value; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Params converts the strip section to strip parameters
func (c Config) Params() mobius.Params {
	return mobius.Params{R: c.Strip.Radius, W: c.Strip.Width, N: c.Strip.Resolution}
}

// Validate checks both sections
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch c.Render.Style {
	case StyleCanvas, StyleRaster:
	default:
		return fmt.Errorf("%w: unknown render style %q (expected %s or %s)", ErrInvalidConfig, c.Render.Style, StyleCanvas, StyleRaster)
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	}
	if c.Render.Elevation < -90 || c.Render.Elevation > 90 {
		return fmt.Errorf("%w: elevation must be within [-90, 90], got %v", ErrInvalidConfig, c.Render.Elevation)
	}

	return nil
}
