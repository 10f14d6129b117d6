//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"isoline/internal/core"
)

// GridPainter uploads the exported bitmap of a grid into an ebiten image.
type GridPainter struct {
	w, h     int
	cellSize int
	img      *ebiten.Image
	buf      []byte
	tint     color.Color
}

// NewGridPainter allocates a painter for a grid of w x h cells.
func NewGridPainter(w, h, cellSize int, tint color.Color) *GridPainter {
	pw, ph := w*cellSize, h*cellSize
	gp := &GridPainter{w: w, h: h, cellSize: cellSize, buf: make([]byte, 4*pw*ph), tint: tint}
	gp.img = ebiten.NewImage(pw, ph)
	return gp
}

// Blit renders the grid's grayscale ramp and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.ScalarGrid) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	gray := Export(g, gp.cellSize)
	fillGrayRGBA(gp.buf, gray.Pix, gp.tint)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.cellSize, gp.h * gp.cellSize }
