// Package config holds the settings shared by the grid viewer and probe.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"gridsys/pkg/grid"
)

// Origin is the YAML form of a world-space point.
type Origin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Config controls grid construction and the surrounding tools.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	CellSize  float64 `yaml:"cell_size"`
	Origin    Origin  `yaml:"origin"`
	Converter string  `yaml:"converter"`
	Debug     bool    `yaml:"debug"`

	// Scale is the number of screen pixels per cell in the viewer.
	Scale int   `yaml:"scale"`
	TPS   int   `yaml:"tps"`
	Seed  int64 `yaml:"seed"`

	// Scatter is the number of random writes the probe performs.
	Scatter int `yaml:"scatter"`
	// ScatterRate is the number of random writes per second in the viewer.
	ScatterRate float64 `yaml:"scatter_rate"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     16,
		Height:    12,
		CellSize:  1,
		Converter: "vertical",
		Scale:     40,
		TPS:       60,
		Seed:      42,
		Scatter:   24,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads a YAML file on top of the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from a string map. Each field accepts its YAML
// key or its flag name.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := lookup(cfg, "width", "w"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := lookup(cfg, "height", "h"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := lookup(cfg, "cell_size", "cell"); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	origin := []struct {
		keys []string
		dst  *float64
	}{
		{[]string{"origin_x", "ox"}, &c.Origin.X},
		{[]string{"origin_y", "oy"}, &c.Origin.Y},
		{[]string{"origin_z", "oz"}, &c.Origin.Z},
	}
	for _, o := range origin {
		if v, ok := lookup(cfg, o.keys...); ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*o.dst = parsed
			}
		}
	}
	if v, ok := lookup(cfg, "converter"); ok {
		if _, err := grid.ConverterByName(v); err == nil {
			c.Converter = v
		}
	}
	if v, ok := lookup(cfg, "debug"); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Debug = parsed
		}
	}
	if v, ok := lookup(cfg, "scale"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := lookup(cfg, "tps"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := lookup(cfg, "seed"); ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := lookup(cfg, "scatter"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Scatter = parsed
		}
	}
	if v, ok := lookup(cfg, "scatter_rate", "scatter-rate"); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ScatterRate = parsed
		}
	}
	if v, ok := lookup(cfg, "log_level", "log-level"); ok {
		if _, err := zapcore.ParseLevel(v); err == nil {
			c.LogLevel = v
		}
	}
	if v, ok := lookup(cfg, "log_format", "log-format"); ok {
		if v == "console" || v == "json" {
			c.LogFormat = v
		}
	}
}

// lookup returns the value of the first key present in cfg.
func lookup(cfg map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := cfg[k]; ok {
			return v, true
		}
	}
	return "", false
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "world-space cell size")
	fs.Float64Var(&c.Origin.X, "ox", c.Origin.X, "origin x")
	fs.Float64Var(&c.Origin.Y, "oy", c.Origin.Y, "origin y")
	fs.Float64Var(&c.Origin.Z, "oz", c.Origin.Z, "origin z")
	fs.StringVar(&c.Converter, "converter", c.Converter, "coordinate converter: vertical or horizontal")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "draw grid lines and cell labels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random writes")
	fs.IntVar(&c.Scatter, "scatter", c.Scatter, "random writes performed by the probe")
	fs.Float64Var(&c.ScatterRate, "scatter-rate", c.ScatterRate, "random writes per second in the viewer")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log encoding: console or json")
}

// Validate rejects settings the tools cannot run with. The grid itself does
// not validate its dimensions.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %g must be positive", c.CellSize))
	}
	if _, err := grid.ConverterByName(c.Converter); err != nil {
		errs = append(errs, err)
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	return errors.Join(errs...)
}

// GridConfig translates c into grid construction parameters. An unknown
// converter name falls back to the grid default.
func (c Config) GridConfig(logger *zap.Logger, overlay grid.DebugOverlay) grid.Config {
	conv, _ := grid.ConverterByName(c.Converter)
	return grid.Config{
		Width:     c.Width,
		Height:    c.Height,
		CellSize:  c.CellSize,
		Origin:    grid.Vec3{X: c.Origin.X, Y: c.Origin.Y, Z: c.Origin.Z},
		Converter: conv,
		Debug:     c.Debug,
		Overlay:   overlay,
		Logger:    logger,
	}
}
