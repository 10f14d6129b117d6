//go:build ebiten

package ui

import (
	"image/color"

	"isoline/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudWidth      = 150
)

// HUD renders the parameter snapshot in the top-left corner.
type HUD struct {
	visible  bool
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Update stores the snapshot for this frame and toggles visibility on H.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.snapshot = snapshot
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := h.snapshot.Lines()
	if len(lines) == 0 {
		return
	}
	height := float32(2*hudPadding + len(lines)*hudLineHeight)
	vector.DrawFilledRect(screen, 0, 0, hudWidth, height, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, basicfont.Face7x13, hudPadding, y, color.White)
	}
}
