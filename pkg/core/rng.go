package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// CellWriter accepts single cell writes.
type CellWriter interface {
	Write(row, col int, alive bool)
}

// FillRandom writes every cell of an n×n board, each alive with the given
// probability.
func FillRandom(r *RNG, dst CellWriter, n int, density float64) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst.Write(row, col, r.Chance(density))
		}
	}
}
