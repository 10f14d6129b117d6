//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"isoline/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("isoline: %v", err)
	}
	if stats := session.Stats(); stats.Degenerate {
		log.Printf("flat field (all samples %.4f), using mid level", stats.Min)
	}

	game := app.New(session, cfg.CellSize)

	ebiten.SetWindowTitle("isoline")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
