// Package field turns a continuous noise function into a quantized ScalarGrid.
package field

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"isoline/internal/core"
)

// NoiseFunc returns a raw scalar at normalized coordinates (u, v) in [0,1]^2.
// Its range is unknown to the sampler.
type NoiseFunc func(u, v float64) float64

// Stats summarises one sampling pass.
type Stats struct {
	Min, Max float64
	// Degenerate is set when every raw sample was identical and the grid
	// was filled with the mid level instead.
	Degenerate bool
}

// Sample evaluates fn at every grid point of a w x h cell grid and quantizes the
// results into levels steps using the observed min/max of the samples.
func Sample(fn NoiseFunc, w, h, levels int) (*core.ScalarGrid, Stats) {
	grid := core.NewScalarGrid(w, h, levels)
	raw := Raw(fn, grid.W, grid.H)
	stats := Quantize(grid, raw)
	return grid, stats
}

// Raw samples fn over the (w+1)x(h+1) lattice in row-major order.
func Raw(fn NoiseFunc, w, h int) []float64 {
	raw := make([]float64, (w+1)*(h+1))
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			raw[y*(w+1)+x] = fn(float64(x)/float64(w), float64(y)/float64(h))
		}
	}
	return raw
}

// Quantize min-max normalizes raw and writes floor(n*levels), clamped, into grid.
// raw must be row-major with one sample per grid point.
func Quantize(grid *core.ScalarGrid, raw []float64) Stats {
	if len(raw) != grid.Points() {
		panic("field: raw sample count does not match grid")
	}
	levels := grid.Levels()
	stats := Stats{Min: floats.Min(raw), Max: floats.Max(raw)}
	span := stats.Max - stats.Min
	if span == 0 || math.IsNaN(span) {
		stats.Degenerate = true
		grid.Fill((levels - 1) / 2)
		return stats
	}
	for y := 0; y <= grid.H; y++ {
		for x := 0; x <= grid.W; x++ {
			n := (raw[grid.Index(x, y)] - stats.Min) / span
			// Set clamps n == 1 down to levels-1.
			_ = grid.Set(x, y, int(math.Floor(n*float64(levels))))
		}
	}
	return stats
}
