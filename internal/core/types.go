package core

// Size describes the cell dimensions of a grid.
type Size struct {
	W int
	H int
}

// GridPoint identifies one lattice point.
type GridPoint struct {
	X, Y int
}

// Vec is a 2D position in grid-local, cell-local or world space.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Segment is a straight line piece between two points.
type Segment struct {
	A, B Vec
}

// Translate offsets both endpoints by d.
func (s Segment) Translate(d Vec) Segment { return Segment{A: s.A.Add(d), B: s.B.Add(d)} }

// Scale multiplies both endpoints by f.
func (s Segment) Scale(f float64) Segment { return Segment{A: s.A.Scale(f), B: s.B.Scale(f)} }
