package field

import "github.com/aquilax/go-perlin"

// Perlin defaults: alpha=2, beta=2, n=3 give terrain-like noise.
const (
	defaultAlpha   = 2
	defaultBeta    = 2
	defaultOctaves = 3
)

// Perlin wraps a seeded coherent noise generator.
type Perlin struct {
	noise     *perlin.Perlin
	seed      int64
	frequency float64
}

// NewPerlin creates a generator whose unit square spans frequency noise lattice cells.
func NewPerlin(seed int64, frequency float64) *Perlin {
	if frequency <= 0 {
		frequency = 1
	}
	return &Perlin{
		noise:     perlin.NewPerlin(defaultAlpha, defaultBeta, defaultOctaves, seed),
		seed:      seed,
		frequency: frequency,
	}
}

// Noise returns the raw noise value at normalized coordinates.
func (p *Perlin) Noise(u, v float64) float64 {
	return p.noise.Noise2D(u*p.frequency, v*p.frequency)
}

// Func exposes Noise as a NoiseFunc.
func (p *Perlin) Func() NoiseFunc { return p.Noise }

// Seed returns the construction seed.
func (p *Perlin) Seed() int64 { return p.seed }
