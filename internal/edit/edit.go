// Package edit turns pointer gestures into grid point selections and applies
// level adjustments to them.
package edit

import (
	"math"
	"sort"

	"isoline/internal/core"
)

// Policy decides how a gesture maps to selected grid points.
type Policy int

const (
	// PolicyRadius accumulates every point that comes within Radius of the pointer.
	PolicyRadius Policy = iota
	// PolicyRect selects the rectangle between the gesture start and the pointer.
	PolicyRect
)

// String returns the flag name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyRadius:
		return "radius"
	case PolicyRect:
		return "rect"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a flag value to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "radius":
		return PolicyRadius, true
	case "rect":
		return PolicyRect, true
	}
	return 0, false
}

// ScreenToGrid maps a screen position to fractional grid coordinates.
func ScreenToGrid(pos core.Vec, cellSize float64) core.Vec {
	return pos.Scale(1 / cellSize)
}

// GridToWorld returns the world position of grid point p.
func GridToWorld(p core.GridPoint, cellSize float64) core.Vec {
	return core.Vec{X: float64(p.X) * cellSize, Y: float64(p.Y) * cellSize}
}

// Editor owns the selection state of one gesture at a time. Positions are in
// world space, where one cell spans CellSize units.
type Editor struct {
	grid     *core.ScalarGrid
	policy   Policy
	cellSize float64
	radius   float64

	active   bool
	start    core.Vec
	pointer  core.Vec
	selected map[core.GridPoint]struct{}
}

// New creates an editor for grid. radius is ignored by PolicyRect.
func New(grid *core.ScalarGrid, policy Policy, cellSize, radius float64) *Editor {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Editor{
		grid:     grid,
		policy:   policy,
		cellSize: cellSize,
		radius:   radius,
		selected: make(map[core.GridPoint]struct{}),
	}
}

// Policy returns the active selection policy.
func (e *Editor) Policy() Policy { return e.policy }

// Radius returns the world-space selection radius.
func (e *Editor) Radius() float64 { return e.radius }

// Active reports whether a gesture is in progress.
func (e *Editor) Active() bool { return e.active }

// Start returns the world position where the current gesture began.
func (e *Editor) Start() core.Vec { return e.start }

// Pointer returns the last pointer position seen by the editor.
func (e *Editor) Pointer() core.Vec { return e.pointer }

// Begin starts a new gesture at pos, discarding any previous selection.
func (e *Editor) Begin(pos core.Vec) {
	e.active = true
	e.start = pos
	clear(e.selected)
	e.Update(pos)
}

// Update moves the pointer and refreshes the selection.
func (e *Editor) Update(pos core.Vec) {
	if !e.active {
		return
	}
	e.pointer = pos
	switch e.policy {
	case PolicyRadius:
		e.accumulateRadius(pos)
	case PolicyRect:
		clear(e.selected)
		e.selectRect(e.start, pos)
	}
}

// End finishes the gesture. Radius selections do not outlive their gesture.
func (e *Editor) End() {
	e.active = false
	if e.policy == PolicyRadius {
		clear(e.selected)
	}
}

// Adjust adds direction to every selected point and returns how many points
// were visited. Without an active gesture it does nothing.
func (e *Editor) Adjust(direction int) int {
	if !e.active || len(e.selected) == 0 {
		return 0
	}
	for p := range e.selected {
		// Selected points are always in bounds.
		_ = e.grid.Adjust(p.X, p.Y, direction)
	}
	return len(e.selected)
}

// Len returns the number of selected points.
func (e *Editor) Len() int { return len(e.selected) }

// Contains reports whether p is selected.
func (e *Editor) Contains(p core.GridPoint) bool {
	_, ok := e.selected[p]
	return ok
}

// Selected returns the selected points ordered by row, then column.
func (e *Editor) Selected() []core.GridPoint {
	out := make([]core.GridPoint, 0, len(e.selected))
	for p := range e.selected {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (e *Editor) accumulateRadius(pos core.Vec) {
	if e.radius < 0 {
		return
	}
	g := ScreenToGrid(pos, e.cellSize)
	reach := e.radius / e.cellSize
	x0 := clampInt(int(math.Floor(g.X-reach)), 0, e.grid.W)
	x1 := clampInt(int(math.Ceil(g.X+reach)), 0, e.grid.W)
	y0 := clampInt(int(math.Floor(g.Y-reach)), 0, e.grid.H)
	y1 := clampInt(int(math.Ceil(g.Y+reach)), 0, e.grid.H)
	r2 := e.radius * e.radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := core.GridPoint{X: x, Y: y}
			w := GridToWorld(p, e.cellSize)
			dx := w.X - pos.X
			dy := w.Y - pos.Y
			if dx*dx+dy*dy <= r2 {
				e.selected[p] = struct{}{}
			}
		}
	}
}

// selectRect selects the grid points whose world position lies inside the
// rectangle spanned by a and b, edges included. The result may be empty.
func (e *Editor) selectRect(a, b core.Vec) {
	lo := ScreenToGrid(core.Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y)}, e.cellSize)
	hi := ScreenToGrid(core.Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y)}, e.cellSize)
	x0 := max(int(math.Ceil(lo.X)), 0)
	x1 := min(int(math.Floor(hi.X)), e.grid.W)
	y0 := max(int(math.Ceil(lo.Y)), 0)
	y1 := min(int(math.Floor(hi.Y)), e.grid.H)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			e.selected[core.GridPoint{X: x, Y: y}] = struct{}{}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
