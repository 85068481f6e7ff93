package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"rtlife/internal/core"
	"rtlife/pkg/sims/life"
)

const (
	// PatternEmpty starts with a dead board.
	PatternEmpty = "empty"
	// PatternRandom fills the board with Density live cells.
	PatternRandom = "random"

	maxSize = 1024
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size    int     `json:"size"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
	Hz      int     `json:"hz"`
	Paused  bool    `json:"paused"`
	Rule    string  `json:"rule"`
	Pattern string  `json:"pattern"`
	Density float64 `json:"density"`
	Seed    int64   `json:"seed"`
	Workers int     `json:"workers"`
	Debug   bool    `json:"debug"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:    core.DefaultSize,
		Scale:   24,
		TPS:     60,
		Hz:      10,
		Rule:    "conway",
		Pattern: PatternRandom,
		Density: 0.3,
		Seed:    42,
		Workers: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "board edge length in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "presentation refresh rate; also the maximum simulation rate")
	fs.IntVar(&c.Hz, "hz", c.Hz, "initial simulation steps per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation, e.g. B36/S23")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial board: empty, random or a named pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per simulation step")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log achieved simulation rate")
	fs.StringVar(&c.File, "config", c.File, "JSON config file; explicit flags override it")
}

// LoadFile reads JSON settings from path over the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Parse builds a Config from command-line arguments. When -config names a
// file its values are loaded first and explicit flags are applied on top.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.File != "" {
		path := cfg.File
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cfg.Bind(fs)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cfg.File = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate clamps out-of-range numeric settings and rejects unusable ones.
func (c *Config) Validate() error {
	var errs []error
	if c.Size < 1 || c.Size > maxSize {
		errs = append(errs, fmt.Errorf("size %d out of range [1, %d]", c.Size, maxSize))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v out of range [0, 1]", c.Density))
	}
	if _, err := life.Lookup(c.Rule); err != nil {
		errs = append(errs, err)
	}
	if c.Pattern != PatternEmpty && c.Pattern != PatternRandom {
		if _, ok := life.Patterns()[c.Pattern]; !ok {
			errs = append(errs, fmt.Errorf("unknown pattern %q", c.Pattern))
		}
	}

	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.TPS < 1 {
		c.TPS = 60
	}
	c.Hz = clampHz(c.Hz, c.TPS)
	if c.Workers < 1 {
		c.Workers = 1
	}
	return errors.Join(errs...)
}

func clampHz(hz, limit int) int {
	if hz < 1 {
		return 1
	}
	if hz > limit {
		return limit
	}
	return hz
}
