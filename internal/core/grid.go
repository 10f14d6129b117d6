package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a grid point access outside [0,W]x[0,H].
var ErrOutOfBounds = errors.New("grid point out of bounds")

// ScalarGrid stores quantized levels on the (W+1)x(H+1) lattice of grid points
// that bound W x H cells. Values are row-major and always lie in [0, levels-1].
type ScalarGrid struct {
	W, H   int
	levels int
	data   []int
}

// NewScalarGrid allocates a zeroed grid of w x h cells quantized into levels steps.
func NewScalarGrid(w, h, levels int) *ScalarGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if levels < 2 {
		levels = 2
	}
	return &ScalarGrid{W: w, H: h, levels: levels, data: make([]int, (w+1)*(h+1))}
}

// Levels returns the number of quantization steps.
func (g *ScalarGrid) Levels() int { return g.levels }

// Size returns the cell dimensions.
func (g *ScalarGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Points returns the number of grid points.
func (g *ScalarGrid) Points() int { return len(g.data) }

// Index returns the linear slice index for grid point (x, y).
func (g *ScalarGrid) Index(x, y int) int { return y*(g.W+1) + x }

// InBounds reports whether (x, y) names a grid point.
func (g *ScalarGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= g.W && y <= g.H
}

// Clamp limits v to [0, levels-1].
func (g *ScalarGrid) Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > g.levels-1 {
		return g.levels - 1
	}
	return v
}

// Get returns the level stored at (x, y).
func (g *ScalarGrid) Get(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return g.data[g.Index(x, y)], nil
}

// At is Get without the bounds check, for loops that already iterate the lattice.
func (g *ScalarGrid) At(x, y int) int { return g.data[g.Index(x, y)] }

// Set clamps value into range and stores it at (x, y).
func (g *ScalarGrid) Set(x, y, value int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	g.data[g.Index(x, y)] = g.Clamp(value)
	return nil
}

// Adjust adds delta to the level at (x, y). Clamping happens after the addition.
func (g *ScalarGrid) Adjust(x, y, delta int) error {
	v, err := g.Get(x, y)
	if err != nil {
		return err
	}
	return g.Set(x, y, v+delta)
}

// Fill sets every grid point to the clamped value v.
func (g *ScalarGrid) Fill(v int) {
	v = g.Clamp(v)
	for i := range g.data {
		g.data[i] = v
	}
}

// Values returns a copy of the row-major point values.
func (g *ScalarGrid) Values() []int {
	return append([]int(nil), g.data...)
}
