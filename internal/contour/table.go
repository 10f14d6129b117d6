package contour

import "isoline/internal/core"

// Edge midpoints of the unit cell. Y grows downwards.
var (
	top    = core.Vec{X: 0.5, Y: 0}
	right  = core.Vec{X: 1, Y: 0.5}
	bottom = core.Vec{X: 0.5, Y: 1}
	left   = core.Vec{X: 0, Y: 0.5}
)

// Corner weights of a case index.
const (
	weightTopLeft     = 8
	weightTopRight    = 4
	weightBottomRight = 2
	weightBottomLeft  = 1
)

// table maps a case index to its cell-local segments. The saddle cases 5 and 10
// both cut off the top-left and bottom-right corners.
var table = [16][]core.Segment{
	0:  nil,
	1:  {{A: left, B: bottom}},
	2:  {{A: bottom, B: right}},
	3:  {{A: left, B: right}},
	4:  {{A: top, B: right}},
	5:  {{A: left, B: top}, {A: bottom, B: right}},
	6:  {{A: top, B: bottom}},
	7:  {{A: left, B: top}},
	8:  {{A: left, B: top}},
	9:  {{A: top, B: bottom}},
	10: {{A: left, B: top}, {A: bottom, B: right}},
	11: {{A: top, B: right}},
	12: {{A: left, B: right}},
	13: {{A: bottom, B: right}},
	14: {{A: left, B: bottom}},
	15: nil,
}

// Table returns a copy of the cell-local segments for case index i.
func Table(i int) []core.Segment {
	if i < 0 || i >= len(table) {
		return nil
	}
	return append([]core.Segment(nil), table[i]...)
}
