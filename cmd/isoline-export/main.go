package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"isoline/internal/app"
	"isoline/internal/contour"
	"isoline/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("isoline-export: %v", err)
	}

	stats := session.Stats()
	if stats.Degenerate {
		log.Printf("flat field (all samples %.4f), using mid level", stats.Min)
	}
	fmt.Printf("field %dx%d cells, %d levels, raw range [%.4f, %.4f]\n",
		cfg.Width, cfg.Height, cfg.Levels, stats.Min, stats.Max)

	counts := contour.CountByThreshold(session.Lines())
	thresholds := make([]int, 0, len(counts))
	for t := range counts {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)
	for _, t := range thresholds {
		fmt.Printf("threshold %d: %d segments\n", t, counts[t])
	}

	if err := session.Save(); err != nil {
		log.Fatalf("isoline-export: %v", err)
	}
	log.Printf("saved %s", render.OutputPath)
}
