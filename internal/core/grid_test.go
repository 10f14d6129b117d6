package core

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestNewScalarGridAllocatesPoints(t *testing.T) {
	g := NewScalarGrid(3, 2, 4)
	if g.Points() != 12 {
		t.Fatalf("points = %d, want 12", g.Points())
	}
	if g.Levels() != 4 {
		t.Fatalf("levels = %d, want 4", g.Levels())
	}
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 3; x++ {
			if v, err := g.Get(x, y); err != nil || v != 0 {
				t.Fatalf("Get(%d,%d) = %d, %v", x, y, v, err)
			}
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g := NewScalarGrid(3, 2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := g.Adjust(p[0], p[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Adjust(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if _, err := g.Get(3, 2); err != nil {
		t.Fatalf("far corner must be addressable: %v", err)
	}
}

func TestSetClamps(t *testing.T) {
	g := NewScalarGrid(2, 2, 5)
	_ = g.Set(1, 1, 99)
	if v := g.At(1, 1); v != 4 {
		t.Fatalf("Set above range stored %d, want 4", v)
	}
	_ = g.Set(1, 1, -7)
	if v := g.At(1, 1); v != 0 {
		t.Fatalf("Set below range stored %d, want 0", v)
	}
}

func TestAdjustClampsAfterAddition(t *testing.T) {
	g := NewScalarGrid(1, 1, 3)
	_ = g.Set(0, 0, 2)
	_ = g.Adjust(0, 0, 5)
	_ = g.Adjust(0, 0, -1)
	if v := g.At(0, 0); v != 1 {
		t.Fatalf("value = %d, want 1 (clamped to 2 then decremented)", v)
	}
}

func TestAdjustSequencesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	g := NewScalarGrid(4, 3, 4)
	for i := 0; i < 2000; i++ {
		x := rng.IntN(5)
		y := rng.IntN(4)
		delta := 1
		if rng.IntN(2) == 0 {
			delta = -1
		}
		if err := g.Adjust(x, y, delta); err != nil {
			t.Fatalf("adjust: %v", err)
		}
		for _, v := range g.Values() {
			if v < 0 || v > 3 {
				t.Fatalf("step %d: value %d escaped [0,3]", i, v)
			}
		}
	}
}

func TestFillAndValuesCopy(t *testing.T) {
	g := NewScalarGrid(2, 1, 3)
	g.Fill(10)
	vals := g.Values()
	for _, v := range vals {
		if v != 2 {
			t.Fatalf("Fill stored %d, want clamped 2", v)
		}
	}
	vals[0] = 0
	if g.At(0, 0) != 2 {
		t.Fatal("Values must return a copy")
	}
}

func TestNewScalarGridNormalizesDimensions(t *testing.T) {
	g := NewScalarGrid(0, -3, 1)
	if g.W != 1 || g.H != 1 || g.Levels() != 2 {
		t.Fatalf("got %dx%d levels=%d, want 1x1 levels=2", g.W, g.H, g.Levels())
	}
}
