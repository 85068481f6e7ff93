package app

import (
	"context"
	"slices"
	"testing"
	"time"
)

func newTestSession(t *testing.T, mutate func(*Config)) *Session {
	t.Helper()
	cfg := NewConfig()
	cfg.Size = 8
	cfg.TPS = 30
	cfg.Hz = 10
	cfg.Pattern = PatternEmpty
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	s, err := NewSession(*cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestRateClampedToRefreshRate(t *testing.T) {
	s := newTestSession(t, nil)
	s.SetRate(29)
	s.Faster()
	s.Faster()
	if got := s.Rate().Hz; got != 30 {
		t.Fatalf("Hz = %d, want clamp to 30", got)
	}
	s.SetRate(2)
	s.Slower()
	s.Slower()
	s.Slower()
	if got := s.Rate().Hz; got != 1 {
		t.Fatalf("Hz = %d, want clamp to 1", got)
	}
	if !s.SetIntParameter("hz", 7) || s.Rate().Hz != 7 {
		t.Fatalf("SetIntParameter(hz, 7) left Hz at %d", s.Rate().Hz)
	}
	if s.SetIntParameter("size", 3) {
		t.Fatal("SetIntParameter accepted a read-only key")
	}
}

func TestTogglePause(t *testing.T) {
	s := newTestSession(t, nil)
	s.TogglePause()
	if !s.Rate().Paused {
		t.Fatal("TogglePause did not pause")
	}
	s.TogglePause()
	if s.Rate().Paused {
		t.Fatal("second TogglePause did not resume")
	}
}

func TestEditsApplyDirectly(t *testing.T) {
	s := newTestSession(t, nil)
	s.Paint(1, 2)
	s.Flip(3, 3)
	s.PaintAt(5*s.Scale()+1, 6*s.Scale()+2, s.Scale())
	s.PaintAt(-1, 10, s.Scale())

	for _, c := range [][2]int{{1, 2}, {3, 3}, {6, 5}} {
		if !s.Alive(c[0], c[1]) {
			t.Fatalf("cell (%d,%d) not alive after edit", c[0], c[1])
		}
	}
	if got := s.grid.Population(); got != 3 {
		t.Fatalf("population = %d, want 3", got)
	}

	s.Clear()
	if got := s.grid.Population(); got != 0 {
		t.Fatalf("population after Clear = %d", got)
	}
}

func TestCellAt(t *testing.T) {
	if _, _, ok := CellAt(-1, 0, 4); ok {
		t.Fatal("negative x mapped to a cell")
	}
	if _, _, ok := CellAt(3, 3, 0); ok {
		t.Fatal("zero scale mapped to a cell")
	}
	row, col, ok := CellAt(9, 17, 4)
	if !ok || row != 4 || col != 2 {
		t.Fatalf("CellAt(9,17,4) = %d,%d,%v, want 4,2,true", row, col, ok)
	}
}

func TestResetPatterns(t *testing.T) {
	a := newTestSession(t, func(c *Config) { c.Pattern = PatternRandom; c.Density = 0.5; c.Seed = 7 })
	b := newTestSession(t, func(c *Config) { c.Pattern = PatternRandom; c.Density = 0.5; c.Seed = 7 })
	if !slices.Equal(a.Frame(nil), b.Frame(nil)) {
		t.Fatal("random pattern not deterministic for equal seeds")
	}
	if a.grid.Population() == 0 {
		t.Fatal("random pattern produced an empty board")
	}

	g := newTestSession(t, func(c *Config) { c.Pattern = "glider" })
	if got := g.grid.Population(); got != 5 {
		t.Fatalf("glider population = %d, want 5", got)
	}
	// 8x8 board, 3x3 glider centred at origin (2,2).
	if !g.Alive(2, 3) || !g.Alive(4, 4) {
		t.Fatal("glider not centred on the board")
	}
}

func TestParametersSnapshot(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.Paused = true })
	s.Paint(0, 0)
	snap := s.Parameters()
	for key, want := range map[string]string{
		"hz":         "10",
		"paused":     "true",
		"generation": "0",
		"population": "1",
		"rule":       "B3/S23",
		"size":       "8",
	} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %q = %q (present %v), want %q", key, p.Value, ok, want)
		}
	}
	ctrls := s.ParameterControls()
	if len(ctrls) != 1 || ctrls[0].Max != 30 {
		t.Fatalf("ParameterControls() = %+v", ctrls)
	}
}

func TestSessionRunAdvancesAndCloses(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.Hz = 30; c.Pattern = "blinker" })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for s.Generation() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("session did not advance")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	if s.SetPaused(true) {
		t.Fatal("SetPaused succeeded after the simulation loop exited")
	}
}
