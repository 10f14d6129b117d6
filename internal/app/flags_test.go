package app

import (
	"errors"
	"flag"
	"testing"

	"isoline/internal/contour"
	"isoline/internal/edit"
)

func TestDefaultsMatchSketch(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width*cfg.CellSize != 640 || cfg.Height*cfg.CellSize != 360 {
		t.Fatalf("default window %dx%d, want 640x360", cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)
	}
	if cfg.ContourMode() != contour.ModeBanded || cfg.SelectPolicy() != edit.PolicyRadius {
		t.Fatalf("unexpected default mode/policy %s/%s", cfg.Mode, cfg.Policy)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-levels", "6", "-select", "rect", "-mode", "single", "-seed", "3"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Levels != 6 || cfg.SelectPolicy() != edit.PolicyRect || cfg.ContourMode() != contour.ModeSingle || cfg.Seed != 3 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"width":  func(c *Config) { c.Width = 0 },
		"cell":   func(c *Config) { c.CellSize = 0 },
		"levels": func(c *Config) { c.Levels = 1 },
		"radius": func(c *Config) { c.Radius = 0 },
		"mode":   func(c *Config) { c.Mode = "smooth" },
		"policy": func(c *Config) { c.Policy = "lasso" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}
