package life

import "sort"

// CellWriter accepts single cell writes.
type CellWriter interface {
	Write(row, col int, alive bool)
}

// Pattern is a set of live cells given as (row, col) offsets from its origin.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
	// Blinker is a period-2 oscillator, horizontal phase.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}}
	// Block is a still life.
	Block = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// RPentomino is a methuselah that settles after 1103 generations on an
	// unbounded plane.
	RPentomino = Pattern{Name: "rpentomino", Cells: [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}}
)

var patterns = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Glider, Blinker, Block, RPentomino} {
		patterns[p.Name] = p
	}
}

// Patterns exposes the registry of named patterns.
func Patterns() map[string]Pattern { return patterns }

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the height and width of the pattern's bounding box.
func (p Pattern) Bounds() (h, w int) {
	for _, c := range p.Cells {
		if c[0]+1 > h {
			h = c[0] + 1
		}
		if c[1]+1 > w {
			w = c[1] + 1
		}
	}
	return h, w
}

// Stamp writes the pattern's live cells with its origin at (row, col) on an
// n×n board, wrapping at the edges. Cells not in the pattern are untouched.
func (p Pattern) Stamp(dst CellWriter, n, row, col int) {
	if n <= 0 {
		return
	}
	for _, c := range p.Cells {
		r := ((row+c[0])%n + n) % n
		cc := ((col+c[1])%n + n) % n
		dst.Write(r, cc, true)
	}
}
