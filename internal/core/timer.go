package core

import "time"

// Pacer spaces simulation steps so they begin no closer than 1/hz apart. It
// does not try to catch up on missed deadlines.
type Pacer struct {
	last time.Time
	now  func() time.Time
}

// NewPacer constructs a Pacer using the wall clock.
func NewPacer() *Pacer {
	return &Pacer{now: time.Now}
}

// Interval returns the minimum spacing between steps at the given rate.
func Interval(hz int) time.Duration {
	if hz <= 0 {
		hz = 1
	}
	return time.Second / time.Duration(hz)
}

// Remaining reports how long to wait before the next step may begin. It is
// zero before the first Mark and never negative.
func (p *Pacer) Remaining(hz int) time.Duration {
	if p.last.IsZero() {
		return 0
	}
	left := Interval(hz) - p.now().Sub(p.last)
	if left < 0 {
		return 0
	}
	return left
}

// Mark records that a step is starting now.
func (p *Pacer) Mark() {
	p.last = p.now()
}
