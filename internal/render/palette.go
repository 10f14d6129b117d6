package render

import (
	"image/color"
	"math"
)

// LevelColor returns the opaque gray used for a grid point at level.
func LevelColor(level, levels int) color.RGBA {
	v := Intensity(level, levels)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

var thresholdStops = []struct {
	t   float64
	col color.RGBA
}{
	{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 255}},
	{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 255}},
	{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 255}},
	{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 255}},
	{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 255}},
}

// ThresholdColor picks the contour colour of threshold t among count
// thresholds, running from deep blue for the lowest to pale sand for the highest.
func ThresholdColor(t, count int) color.RGBA {
	if count <= 1 {
		return thresholdStops[len(thresholdStops)-1].col
	}
	pos := clamp01(float64(t) / float64(count-1))
	for i := 1; i < len(thresholdStops); i++ {
		curr := thresholdStops[i]
		if pos <= curr.t {
			prev := thresholdStops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (pos - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return thresholdStops[len(thresholdStops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
