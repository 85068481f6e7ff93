// Package rate carries the desired simulation frequency and pause flag from
// the presentation loop to the simulation loop. It is a single slot: readers
// always see the most recent value and intermediate writes are never queued.
package rate

import "sync/atomic"

// MinHz is the lowest accepted simulation frequency.
const MinHz = 1

// Rate is a snapshot of the controller state.
type Rate struct {
	Hz     int
	Paused bool
	// Version increases on every accepted write.
	Version uint64
}

// Controller is a last-write-wins channel for Rate values.
type Controller struct {
	hz      atomic.Int64
	paused  atomic.Bool
	version atomic.Uint64
	closed  atomic.Bool
	changed chan struct{}
}

// New returns a controller holding initial until the first write.
func New(initial Rate) *Controller {
	c := &Controller{changed: make(chan struct{}, 1)}
	c.hz.Store(int64(clamp(initial.Hz)))
	c.paused.Store(initial.Paused)
	return c
}

func clamp(hz int) int {
	if hz < MinHz {
		return MinHz
	}
	return hz
}

// SetRate publishes a new target frequency, clamped to MinHz. It reports false
// once the reader has closed the controller.
func (c *Controller) SetRate(hz int) bool {
	if c.closed.Load() {
		return false
	}
	c.hz.Store(int64(clamp(hz)))
	c.publish()
	return true
}

// SetPaused publishes a new pause flag. It reports false once the reader has
// closed the controller.
func (c *Controller) SetPaused(paused bool) bool {
	if c.closed.Load() {
		return false
	}
	c.paused.Store(paused)
	c.publish()
	return true
}

func (c *Controller) publish() {
	c.version.Add(1)
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

// Latest returns the most recently written values.
func (c *Controller) Latest() Rate {
	return Rate{
		Hz:      int(c.hz.Load()),
		Paused:  c.paused.Load(),
		Version: c.version.Load(),
	}
}

// Changed is signalled after writes. Several writes between two receives
// coalesce into one signal; callers should re-read Latest after waking.
func (c *Controller) Changed() <-chan struct{} { return c.changed }

// Close marks the reading side as gone. Subsequent writes are no-ops.
func (c *Controller) Close() { c.closed.Store(true) }

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed.Load() }
