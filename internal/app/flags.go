package app

import (
	"errors"
	"flag"
	"fmt"

	"isoline/internal/contour"
	"isoline/internal/edit"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	CellSize  int
	Levels    int
	Mode      string
	Policy    string
	Radius    float64
	Seed      int64
	Frequency float64
	TPS       int
	RepeatTPS int
}

// NewConfig returns a Config populated with sensible defaults: a 640x360
// window with a 20 pixel lattice.
func NewConfig() *Config {
	return &Config{
		Width:     32,
		Height:    18,
		CellSize:  20,
		Levels:    4,
		Mode:      contour.ModeBanded.String(),
		Policy:    edit.PolicyRadius.String(),
		Radius:    30,
		Seed:      777,
		Frequency: 3.5,
		TPS:       60,
		RepeatTPS: 8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Levels, "levels", c.Levels, "number of quantization levels")
	fs.StringVar(&c.Mode, "mode", c.Mode, "threshold divisor: single or banded")
	fs.StringVar(&c.Policy, "select", c.Policy, "selection policy: radius or rect")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "radius selection size in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed")
	fs.Float64Var(&c.Frequency, "freq", c.Frequency, "noise lattice cells across the field")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RepeatTPS, "repeat", c.RepeatTPS, "held-key adjustments per second")
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: grid must be at least 1x1 cells, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.Levels < 2:
		return fmt.Errorf("%w: need at least 2 levels, got %d", ErrInvalidConfig, c.Levels)
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius %g", ErrInvalidConfig, c.Radius)
	}
	if _, ok := contour.ParseMode(c.Mode); !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if _, ok := edit.ParsePolicy(c.Policy); !ok {
		return fmt.Errorf("%w: unknown selection policy %q", ErrInvalidConfig, c.Policy)
	}
	return nil
}

// ContourMode returns the parsed contour mode. Call Validate first.
func (c *Config) ContourMode() contour.Mode {
	m, _ := contour.ParseMode(c.Mode)
	return m
}

// SelectPolicy returns the parsed selection policy. Call Validate first.
func (c *Config) SelectPolicy() edit.Policy {
	p, _ := edit.ParsePolicy(c.Policy)
	return p
}
