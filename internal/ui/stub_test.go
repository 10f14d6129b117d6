//go:build !ebiten

package ui

import (
	"testing"

	"isoline/internal/core"
)

func TestHeadlessPlaceholders(t *testing.T) {
	if NewHUD() != nil {
		t.Fatal("headless HUD must be nil")
	}
	var h *HUD
	h.Update(core.ParameterSnapshot{})
	h.Draw(nil)

	o := NewOverlay(20)
	if o == nil {
		t.Fatal("headless overlay must not be nil")
	}
	o.Update()
	o.Draw(nil, nil, nil, 0, nil)
}
