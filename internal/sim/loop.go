package sim

import (
	"context"
	"log"
	"time"

	"rtlife/internal/core"
	"rtlife/internal/rate"
)

// Stepper advances a simulation by one generation.
type Stepper interface {
	Step()
}

// Loop drives a Stepper at the rate published on a rate.Controller.
type Loop struct {
	sim   Stepper
	rate  *rate.Controller
	pacer *core.Pacer

	// Debug enables a once-per-second log line with the achieved step rate.
	Debug bool
}

// NewLoop constructs a Loop. The loop is the controller's only reader and
// closes it when Run returns.
func NewLoop(sim Stepper, ctrl *rate.Controller) *Loop {
	return &Loop{sim: sim, rate: ctrl, pacer: core.NewPacer()}
}

// Run steps the simulation until ctx is done. While paused it sleeps until the
// controller signals a change.
func (l *Loop) Run(ctx context.Context) error {
	defer l.rate.Close()

	var (
		steps      int
		statsStart = time.Now()
	)
	for {
		cur := l.rate.Latest()
		if cur.Paused {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.rate.Changed():
			}
			continue
		}

		if wait := l.pacer.Remaining(cur.Hz); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-l.rate.Changed():
				timer.Stop()
				continue
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		l.pacer.Mark()
		l.sim.Step()

		if l.Debug {
			steps++
			if elapsed := time.Since(statsStart); elapsed >= time.Second {
				log.Printf("sim: %.1f steps/s (target %d Hz)", float64(steps)/elapsed.Seconds(), cur.Hz)
				steps = 0
				statsStart = time.Now()
			}
		}
	}
}
