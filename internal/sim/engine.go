// Package sim advances a shared core.Grid one generation at a time and paces
// those steps against a rate.Controller.
package sim

import (
	"sync/atomic"

	"rtlife/internal/core"
	"rtlife/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// Engine computes generations in place on a shared grid. Each step reads a
// private snapshot of the previous generation and writes changed cells
// straight back, so concurrent readers may observe a partially advanced
// board. Step must not be called concurrently with itself.
type Engine struct {
	grid    *core.Grid
	rule    life.Rule
	workers int
	prev    []uint32
	gen     atomic.Uint64
}

// NewEngine returns an engine for grid using rule. workers > 1 splits each
// step into row bands evaluated in parallel.
func NewEngine(grid *core.Grid, rule life.Rule, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	if workers > grid.Size() {
		workers = grid.Size()
	}
	return &Engine{
		grid:    grid,
		rule:    rule,
		workers: workers,
		prev:    make([]uint32, grid.Len()),
	}
}

// Rule returns the rule applied on each step.
func (e *Engine) Rule() life.Rule { return e.rule }

// Generation returns the number of completed steps.
func (e *Engine) Generation() uint64 { return e.gen.Load() }

// Step advances the grid by one generation.
func (e *Engine) Step() {
	e.prev = e.grid.Snapshot(e.prev)
	n := e.grid.Size()
	if e.workers == 1 {
		e.stepRows(0, n)
		e.gen.Add(1)
		return
	}

	var eg errgroup.Group
	band := (n + e.workers - 1) / e.workers
	for lo := 0; lo < n; lo += band {
		lo, hi := lo, min(lo+band, n)
		eg.Go(func() error {
			e.stepRows(lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
	e.gen.Add(1)
}

func (e *Engine) stepRows(lo, hi int) {
	n := e.grid.Size()
	for row := lo; row < hi; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			alive := e.prev[idx] != core.Dead
			next := e.rule.Next(alive, life.Neighbors(e.prev, n, row, col))
			if next != alive {
				e.grid.Store(idx, next)
			}
		}
	}
}
