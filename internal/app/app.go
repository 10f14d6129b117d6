//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"isoline/internal/render"
	"isoline/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
}

// New constructs a Game for the provided session.
func New(s *Session, cellSize int) *Game {
	g := s.Grid()
	return &Game{
		session: s,
		painter: render.NewGridPainter(g.W, g.H, cellSize, color.RGBA{R: 110, G: 110, B: 120, A: 255}),
		overlay: ui.NewOverlay(cellSize),
		hud:     ui.NewHUD(),
	}
}

// Update polls input and advances the session by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.session.Save(); err != nil {
			log.Printf("save failed: %v", err)
		} else {
			log.Printf("saved %s", render.OutputPath)
		}
	}

	g.overlay.Update()

	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	g.session.Step(Input{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Wheel:        wheel,
		RaiseHeld:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		LowerHeld:    ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Now:          time.Now(),
	})

	g.hud.Update(g.session.Parameters())
	return nil
}

// Draw renders the grid background, contours, dots and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	s := g.session
	g.painter.Blit(screen, s.Grid())
	g.overlay.Draw(screen, s.Grid(), s.Lines(), len(s.Thresholds()), s.Editor())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
