package render

import (
	"image"
	"math"

	"isoline/internal/core"
)

// Intensity maps level to round(level*255/(levels-1)), clamped to [0,255].
func Intensity(level, levels int) uint8 {
	if levels < 2 {
		return 0
	}
	v := math.Round(float64(level) * 255 / float64(levels-1))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Export paints every grid point as a cellSize square centred on its pixel
// position and returns a (W*cellSize)x(H*cellSize) grayscale bitmap. Squares on
// the border are clipped.
func Export(g *core.ScalarGrid, cellSize int) *image.Gray {
	if cellSize <= 0 {
		cellSize = 1
	}
	img := image.NewGray(image.Rect(0, 0, g.W*cellSize, g.H*cellSize))
	bounds := img.Bounds()
	half := cellSize / 2
	for y := 0; y <= g.H; y++ {
		for x := 0; x <= g.W; x++ {
			sq := image.Rect(x*cellSize-half, y*cellSize-half, x*cellSize-half+cellSize, y*cellSize-half+cellSize).Intersect(bounds)
			fillGray(img, sq, Intensity(g.At(x, y), g.Levels()))
		}
	}
	return img
}

func fillGray(img *image.Gray, r image.Rectangle, v uint8) {
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := img.Pix[img.PixOffset(r.Min.X, py):img.PixOffset(r.Max.X, py)]
		for i := range row {
			row[i] = v
		}
	}
}
