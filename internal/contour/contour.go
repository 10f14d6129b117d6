// Package contour extracts marching-squares isolines from a ScalarGrid.
package contour

import (
	"math"

	"isoline/internal/core"
)

// Mode selects the divisor of the corner classification.
type Mode int

const (
	// ModeSingle divides by levels.
	ModeSingle Mode = iota
	// ModeBanded divides by levels-1.
	ModeBanded
)

// String returns the flag name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeBanded:
		return "banded"
	default:
		return "unknown"
	}
}

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "single":
		return ModeSingle, true
	case "banded":
		return ModeBanded, true
	}
	return 0, false
}

// Line is a world-space segment tagged with the threshold that produced it.
type Line struct {
	Threshold int
	core.Segment
}

// Contourer extracts segments for a list of thresholds. The zero value uses
// ModeSingle with unit cells.
type Contourer struct {
	Mode     Mode
	CellSize float64
}

// Thresholds returns the meaningful thresholds 0..levels-2 in ascending order.
func Thresholds(levels int) []int {
	if levels < 2 {
		return nil
	}
	out := make([]int, levels-1)
	for i := range out {
		out[i] = i
	}
	return out
}

func (c Contourer) divisor(levels int) float64 {
	if c.Mode == ModeBanded {
		return float64(levels - 1)
	}
	return float64(levels)
}

func (c Contourer) cellSize() float64 {
	if c.CellSize <= 0 {
		return 1
	}
	return c.CellSize
}

// above classifies v as ceil((v-t)/divisor) clipped to {0,1}.
func above(v, t int, divisor float64) int {
	a := math.Ceil(float64(v-t) / divisor)
	if a <= 0 {
		return 0
	}
	return 1
}

func validCell(g *core.ScalarGrid, cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.W && cy < g.H
}

// CaseIndex classifies the corners of cell (cx, cy) against threshold t.
// Cells outside [0,W)x[0,H) classify as case 0.
func (c Contourer) CaseIndex(g *core.ScalarGrid, cx, cy, t int) int {
	if !validCell(g, cx, cy) {
		return 0
	}
	d := c.divisor(g.Levels())
	return weightTopLeft*above(g.At(cx, cy), t, d) +
		weightTopRight*above(g.At(cx+1, cy), t, d) +
		weightBottomRight*above(g.At(cx+1, cy+1), t, d) +
		weightBottomLeft*above(g.At(cx, cy+1), t, d)
}

// Cell returns the world-space segments of cell (cx, cy) for threshold t, or
// nil when the cell is outside the grid.
func (c Contourer) Cell(g *core.ScalarGrid, cx, cy, t int) []core.Segment {
	if !validCell(g, cx, cy) {
		return nil
	}
	local := table[c.CaseIndex(g, cx, cy, t)]
	if len(local) == 0 {
		return nil
	}
	out := make([]core.Segment, len(local))
	offset := core.Vec{X: float64(cx), Y: float64(cy)}
	for i, s := range local {
		out[i] = s.Translate(offset).Scale(c.cellSize())
	}
	return out
}

// Contour walks every cell once per threshold, in the order given, and returns
// the tagged segments. Output depends only on grid contents and thresholds.
func (c Contourer) Contour(g *core.ScalarGrid, thresholds []int) []Line {
	var lines []Line
	for _, t := range thresholds {
		for cy := 0; cy < g.H; cy++ {
			for cx := 0; cx < g.W; cx++ {
				for _, s := range c.Cell(g, cx, cy, t) {
					lines = append(lines, Line{Threshold: t, Segment: s})
				}
			}
		}
	}
	return lines
}

// CountByThreshold tallies lines per threshold.
func CountByThreshold(lines []Line) map[int]int {
	counts := make(map[int]int)
	for _, l := range lines {
		counts[l.Threshold]++
	}
	return counts
}
