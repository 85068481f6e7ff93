// Package life holds the pure pieces of Life-like automata: rules, neighbor
// counting over a square toroidal frame, and seed patterns.
package life

import (
	"fmt"
	"strings"
)

// Rule is a Life-like totalistic rule. Bit k of Birth (Survive) is set when a
// dead (live) cell with k live neighbors is alive in the next generation.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Next returns the next state of a cell given its live neighbor count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for k := 0; k <= 8; k++ {
		if r.Birth&(1<<k) != 0 {
			b.WriteByte(byte('0' + k))
		}
	}
	b.WriteString("/S")
	for k := 0; k <= 8; k++ {
		if r.Survive&(1<<k) != 0 {
			b.WriteByte(byte('0' + k))
		}
	}
	return b.String()
}

// ParseRule parses B/S notation such as "B3/S23" (case-insensitive).
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	var r Rule
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("rule %q: empty section", s)
		}
		var mask *uint16
		switch part[0] {
		case 'B':
			mask = &r.Birth
		case 'S':
			mask = &r.Survive
		default:
			return Rule{}, fmt.Errorf("rule %q: unknown section %q", s, part)
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return Rule{}, fmt.Errorf("rule %q: bad neighbor count %q", s, ch)
			}
			*mask |= 1 << (ch - '0')
		}
	}
	return r, nil
}

// Neighbors counts the live cells in the Moore neighborhood of (row, col) on
// an n×n frame, wrapping at the edges. Any non-zero value counts as alive.
func Neighbors(cells []uint32, n, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + n) % n
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + n) % n
			if cells[r*n+c] != 0 {
				count++
			}
		}
	}
	return count
}
