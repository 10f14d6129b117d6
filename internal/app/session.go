package app

import (
	"fmt"
	"image"
	"time"

	"isoline/internal/contour"
	"isoline/internal/core"
	"isoline/internal/edit"
	"isoline/internal/field"
	"isoline/internal/render"
)

// Input is one frame's worth of polled pointer and keyboard state.
type Input struct {
	X, Y         int
	JustPressed  bool
	Pressed      bool
	JustReleased bool
	// Wheel is the vertical scroll offset; positive raises levels.
	Wheel float64
	// RaiseHeld and LowerHeld repeat adjustments at the configured rate.
	RaiseHeld bool
	LowerHeld bool
	Now       time.Time
}

// Session owns the grid and the editor and runs the frame step
// input -> edit -> contour. It is not safe for concurrent use.
type Session struct {
	cfg        *Config
	grid       *core.ScalarGrid
	stats      field.Stats
	editor     *edit.Editor
	contourer  contour.Contourer
	thresholds []int
	lines      []contour.Line
	repeat     *core.FixedStep
	holding    bool
}

// NewSession samples the configured Perlin field and prepares the editor.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	noise := field.NewPerlin(cfg.Seed, cfg.Frequency)
	grid, stats := field.Sample(noise.Func(), cfg.Width, cfg.Height, cfg.Levels)
	return NewSessionWithGrid(cfg, grid, stats), nil
}

// NewSessionWithGrid wires an existing grid into a session.
func NewSessionWithGrid(cfg *Config, grid *core.ScalarGrid, stats field.Stats) *Session {
	cell := float64(cfg.CellSize)
	s := &Session{
		cfg:        cfg,
		grid:       grid,
		stats:      stats,
		editor:     edit.New(grid, cfg.SelectPolicy(), cell, cfg.Radius),
		contourer:  contour.Contourer{Mode: cfg.ContourMode(), CellSize: cell},
		thresholds: contour.Thresholds(grid.Levels()),
		repeat:     core.NewFixedStep(cfg.RepeatTPS),
	}
	s.lines = s.contourer.Contour(s.grid, s.thresholds)
	return s
}

// Grid returns the edited grid.
func (s *Session) Grid() *core.ScalarGrid { return s.grid }

// Editor returns the selection editor.
func (s *Session) Editor() *edit.Editor { return s.editor }

// Stats returns the sampling statistics of the initial field.
func (s *Session) Stats() field.Stats { return s.stats }

// Thresholds returns the thresholds contoured every frame.
func (s *Session) Thresholds() []int { return s.thresholds }

// Lines returns the segments computed by the last Step.
func (s *Session) Lines() []contour.Line { return s.lines }

// Step applies one frame of input and recomputes the contours.
func (s *Session) Step(in Input) {
	pos := core.Vec{X: float64(in.X), Y: float64(in.Y)}
	switch {
	case in.JustPressed:
		s.editor.Begin(pos)
	case in.Pressed:
		s.editor.Update(pos)
	}

	if in.Wheel > 0 {
		s.editor.Adjust(1)
	} else if in.Wheel < 0 {
		s.editor.Adjust(-1)
	}

	if in.RaiseHeld != in.LowerHeld {
		if !s.holding {
			s.repeat.Reset()
			s.holding = true
		}
		if s.repeat.ShouldStepAt(in.Now) {
			if in.RaiseHeld {
				s.editor.Adjust(1)
			} else {
				s.editor.Adjust(-1)
			}
		}
	} else {
		s.holding = false
	}

	if in.JustReleased {
		s.editor.End()
	}

	s.lines = s.contourer.Contour(s.grid, s.thresholds)
}

// Export renders the current grid as the persisted bitmap.
func (s *Session) Export() *image.Gray {
	return render.Export(s.grid, s.cfg.CellSize)
}

// Save writes the exported bitmap to render.OutputPath.
func (s *Session) Save() error {
	return render.SavePNG(render.OutputPath, s.Export())
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Field", Params: []core.Parameter{
			{Key: "size", Label: "Cells", Value: fmt.Sprintf("%dx%d", s.grid.W, s.grid.H)},
			{Key: "levels", Label: "Levels", Value: fmt.Sprint(s.grid.Levels())},
			{Key: "mode", Label: "Mode", Value: s.contourer.Mode.String()},
			{Key: "segments", Label: "Segments", Value: fmt.Sprint(len(s.lines))},
		}},
		{Name: "Selection", Params: []core.Parameter{
			{Key: "policy", Label: "Policy", Value: s.editor.Policy().String()},
			{Key: "active", Label: "Active", Value: fmt.Sprint(s.editor.Active())},
			{Key: "points", Label: "Points", Value: fmt.Sprint(s.editor.Len())},
		}},
	}}
}
