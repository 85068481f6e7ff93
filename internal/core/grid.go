package core

import "sync/atomic"

// Grid stores an N×N board of atomic cells in row-major order. Every cell
// holds either Dead or Alive. Reads and writes are per cell with no grid-wide
// lock, so a bulk read may mix cells from two generations but never observes
// a partially written cell.
type Grid struct {
	n     int
	cells []atomic.Uint32
}

// NewGrid allocates an n×n grid with every cell dead.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, cells: make([]atomic.Uint32, n*n)}
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.n }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear index for (row, col) and whether it is in range.
func (g *Grid) Index(row, col int) (int, bool) {
	if row < 0 || col < 0 || row >= g.n || col >= g.n {
		return 0, false
	}
	return row*g.n + col, true
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.n + g.n) % g.n
	col = (col%g.n + g.n) % g.n
	return row, col
}

// Get reports whether the cell is alive. Out-of-range cells read as dead.
func (g *Grid) Get(row, col int) bool {
	i, ok := g.Index(row, col)
	if !ok {
		return false
	}
	return g.cells[i].Load() != Dead
}

// Set marks the cell alive.
func (g *Grid) Set(row, col int) { g.Write(row, col, true) }

// Unset marks the cell dead.
func (g *Grid) Unset(row, col int) { g.Write(row, col, false) }

// Write stores the cell state. Out-of-range coordinates are ignored.
func (g *Grid) Write(row, col int, alive bool) {
	if i, ok := g.Index(row, col); ok {
		g.cells[i].Store(Value(alive))
	}
}

// Toggle flips the cell state. Out-of-range coordinates are ignored.
func (g *Grid) Toggle(row, col int) {
	i, ok := g.Index(row, col)
	if !ok {
		return
	}
	c := &g.cells[i]
	for {
		old := c.Load()
		if c.CompareAndSwap(old, ^old) {
			return
		}
	}
}

// Load returns the raw value of the cell at linear index i.
func (g *Grid) Load(i int) uint32 { return g.cells[i].Load() }

// Store writes the cell at linear index i.
func (g *Grid) Store(i int, alive bool) { g.cells[i].Store(Value(alive)) }

// Snapshot copies the current cell values into dst, growing it if needed, and
// returns the filled slice. Cells are read one at a time; the result is an
// eventually consistent view suitable as a frame buffer.
func (g *Grid) Snapshot(dst []uint32) []uint32 {
	if cap(dst) < len(g.cells) {
		dst = make([]uint32, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i := range g.cells {
		dst[i] = g.cells[i].Load()
	}
	return dst
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Store(Dead)
	}
}

// Population counts live cells in a single relaxed pass.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Load() != Dead {
			n++
		}
	}
	return n
}
