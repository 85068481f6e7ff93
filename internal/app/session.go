package app

import (
	"context"

	"rtlife/internal/core"
	"rtlife/internal/rate"
	"rtlife/internal/sim"
	pkgcore "rtlife/pkg/core"
	"rtlife/pkg/sims/life"
)

const keyHz = "hz"

// Session owns the shared grid and rate controller and exposes the
// operations a front end needs. Front ends run on their own goroutine and
// talk to the simulation only through the grid and the controller.
type Session struct {
	cfg    Config
	grid   *core.Grid
	rate   *rate.Controller
	engine *sim.Engine
	loop   *sim.Loop
}

// NewSession wires a grid, controller, engine and loop from cfg and seeds the
// board. cfg should already be validated.
func NewSession(cfg Config) (*Session, error) {
	rule, err := life.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}
	s.grid = core.NewGrid(cfg.Size)
	s.rate = rate.New(rate.Rate{Hz: clampHz(cfg.Hz, cfg.TPS), Paused: cfg.Paused})
	s.engine = sim.NewEngine(s.grid, rule, cfg.Workers)
	s.loop = sim.NewLoop(s.engine, s.rate)
	s.loop.Debug = cfg.Debug
	s.Reset(cfg.Seed)
	return s, nil
}

// Run drives the simulation loop until ctx is done.
func (s *Session) Run(ctx context.Context) error { return s.loop.Run(ctx) }

// Size returns the board edge length.
func (s *Session) Size() int { return s.grid.Size() }

// Scale returns the configured pixel scale.
func (s *Session) Scale() int { return s.cfg.Scale }

// RefreshRate returns the presentation refresh rate.
func (s *Session) RefreshRate() int { return s.cfg.TPS }

// Rate returns the latest published rate.
func (s *Session) Rate() rate.Rate { return s.rate.Latest() }

// Generation returns the number of completed simulation steps.
func (s *Session) Generation() uint64 { return s.engine.Generation() }

// Frame reads the current board into dst; see core.Grid.Snapshot.
func (s *Session) Frame(dst []uint32) []uint32 { return s.grid.Snapshot(dst) }

// Alive reports whether a cell is alive.
func (s *Session) Alive(row, col int) bool { return s.grid.Get(row, col) }

// SetRate publishes a simulation rate clamped to [1, refresh rate].
func (s *Session) SetRate(hz int) bool {
	return s.rate.SetRate(clampHz(hz, s.cfg.TPS))
}

// Faster increases the simulation rate by one step.
func (s *Session) Faster() bool { return s.SetRate(s.rate.Latest().Hz + 1) }

// Slower decreases the simulation rate by one step.
func (s *Session) Slower() bool { return s.SetRate(s.rate.Latest().Hz - 1) }

// SetPaused publishes the pause flag.
func (s *Session) SetPaused(paused bool) bool { return s.rate.SetPaused(paused) }

// TogglePause flips the pause flag.
func (s *Session) TogglePause() bool { return s.rate.SetPaused(!s.rate.Latest().Paused) }

// Clear kills every cell.
func (s *Session) Clear() { s.grid.Clear() }

// Paint sets a cell alive.
func (s *Session) Paint(row, col int) { s.grid.Set(row, col) }

// Write sets a cell to the given state.
func (s *Session) Write(row, col int, alive bool) { s.grid.Write(row, col, alive) }

// Flip toggles a cell.
func (s *Session) Flip(row, col int) { s.grid.Toggle(row, col) }

// CellAt maps a cursor position in scaled pixels to a cell.
func CellAt(px, py, scale int) (row, col int, ok bool) {
	if px < 0 || py < 0 || scale <= 0 {
		return 0, 0, false
	}
	return py / scale, px / scale, true
}

// PaintAt sets alive the cell under a cursor position in scaled pixels.
func (s *Session) PaintAt(px, py, scale int) {
	if row, col, ok := CellAt(px, py, scale); ok {
		s.grid.Set(row, col)
	}
}

// Reset clears the board and seeds it according to the configured pattern.
func (s *Session) Reset(seed int64) {
	s.grid.Clear()
	n := s.grid.Size()
	switch s.cfg.Pattern {
	case PatternEmpty:
	case PatternRandom:
		pkgcore.FillRandom(pkgcore.NewRNG(seed), s.grid, n, s.cfg.Density)
	default:
		p, ok := life.Patterns()[s.cfg.Pattern]
		if !ok {
			return
		}
		h, w := p.Bounds()
		p.Stamp(s.grid, n, (n-h)/2, (n-w)/2)
	}
}

// Reseed resets the board with the configured seed.
func (s *Session) Reseed() { s.Reset(s.cfg.Seed) }

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	r := s.rate.Latest()
	return core.ParameterSnapshot{Params: []core.Parameter{
		core.IntParam(keyHz, "Rate (Hz)", r.Hz),
		core.BoolParam("paused", "Paused", r.Paused),
		core.Uint64Param("generation", "Generation", s.engine.Generation()),
		core.IntParam("population", "Population", s.grid.Population()),
		core.TextParam("rule", "Rule", s.engine.Rule().String()),
		core.IntParam("size", "Size", s.grid.Size()),
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyHz, Label: "Rate (Hz)", Step: 1, Min: 1, Max: s.cfg.TPS},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case keyHz:
		return s.SetRate(value)
	}
	return false
}
