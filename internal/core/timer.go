package core

import (
	"context"
	"time"
)

// DefaultInterval is the delay between simulation ticks.
const DefaultInterval = 200 * time.Millisecond

// Pacer suspends the simulation loop for a fixed interval between ticks.
type Pacer struct {
	step time.Duration
}

// NewPacer constructs a Pacer with the given interval. Non-positive values
// fall back to DefaultInterval.
func NewPacer(step time.Duration) *Pacer {
	if step <= 0 {
		step = DefaultInterval
	}
	return &Pacer{step: step}
}

// Interval returns the configured delay.
func (p *Pacer) Interval() time.Duration { return p.step }

// TPS returns the whole tick rate nearest to the interval, at least 1.
// Intervals that do not divide one second evenly are rounded; see Exact.
func (p *Pacer) TPS() int {
	tps := int((time.Second + p.step/2) / p.step)
	if tps < 1 {
		return 1
	}
	return tps
}

// Exact reports whether TPS reproduces the interval without rounding.
func (p *Pacer) Exact() bool {
	return time.Second%p.step == 0
}

// Wait blocks for one interval. It returns ctx.Err() if the context is done
// first.
func (p *Pacer) Wait(ctx context.Context) error {
	t := time.NewTimer(p.step)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
