//go:build ebiten

package ui

import (
	"image/color"

	"isoline/internal/contour"
	"isoline/internal/core"
	"isoline/internal/edit"
	"isoline/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dotRadius     = 5
	lineWidth     = 2
	selectedWidth = 1.5
)

var (
	dotOutline     = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	selectionColor = color.RGBA{R: 255, G: 120, B: 40, A: 220}
)

// Overlay draws grid dots, contour lines and the live selection.
type Overlay struct {
	cellSize  float32
	showDots  bool
	showLines bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(cellSize int) *Overlay {
	return &Overlay{cellSize: float32(cellSize), showDots: true, showLines: true}
}

// Update toggles layers: D for dots, C for contours.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDots = !o.showDots
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showLines = !o.showLines
	}
}

// Draw renders contours beneath dots, lowest threshold first.
func (o *Overlay) Draw(screen *ebiten.Image, g *core.ScalarGrid, lines []contour.Line, thresholds int, ed *edit.Editor) {
	if o.showLines {
		for _, l := range lines {
			col := render.ThresholdColor(l.Threshold, thresholds)
			vector.StrokeLine(screen,
				float32(l.A.X), float32(l.A.Y), float32(l.B.X), float32(l.B.Y),
				lineWidth, col, true)
		}
	}
	if o.showDots {
		o.drawDots(screen, g, ed)
	}
	o.drawSelection(screen, ed)
}

func (o *Overlay) drawDots(screen *ebiten.Image, g *core.ScalarGrid, ed *edit.Editor) {
	for y := 0; y <= g.H; y++ {
		for x := 0; x <= g.W; x++ {
			cx := float32(x) * o.cellSize
			cy := float32(y) * o.cellSize
			vector.DrawFilledCircle(screen, cx, cy, dotRadius+1, dotOutline, true)
			vector.DrawFilledCircle(screen, cx, cy, dotRadius, render.LevelColor(g.At(x, y), g.Levels()), true)
			if ed.Contains(core.GridPoint{X: x, Y: y}) {
				vector.StrokeCircle(screen, cx, cy, dotRadius+3, selectedWidth, selectionColor, true)
			}
		}
	}
}

func (o *Overlay) drawSelection(screen *ebiten.Image, ed *edit.Editor) {
	if !ed.Active() {
		return
	}
	p := ed.Pointer()
	switch ed.Policy() {
	case edit.PolicyRadius:
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(ed.Radius()), selectedWidth, selectionColor, true)
	case edit.PolicyRect:
		s := ed.Start()
		x, y := min(s.X, p.X), min(s.Y, p.Y)
		w, h := max(s.X, p.X)-x, max(s.Y, p.Y)-y
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), selectedWidth, selectionColor, true)
	}
}
