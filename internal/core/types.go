package core

import "math"

const (
	// Dead is the stored value of a dead cell.
	Dead uint32 = 0
	// Alive is the stored value of a live cell. All bits are set so a frame
	// can be used directly as a pixel buffer.
	Alive uint32 = math.MaxUint32

	// DefaultSize is the default board edge length.
	DefaultSize = 32
)

// Value converts a boolean state into a stored cell value.
func Value(alive bool) uint32 {
	if alive {
		return Alive
	}
	return Dead
}
