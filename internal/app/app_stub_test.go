//go:build !ebiten

package app

import "testing"

func TestHeadlessGameRequiresEbitenTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New must panic without the ebiten tag")
		}
	}()
	New(nil, 20)
}

func TestHeadlessGamePlaceholders(t *testing.T) {
	var g Game
	if err := g.Update(); err == nil {
		t.Fatal("Update must report the missing build tag")
	}
	if w, h := g.Layout(640, 360); w != 0 || h != 0 {
		t.Fatalf("Layout = %dx%d, want 0x0", w, h)
	}
}
