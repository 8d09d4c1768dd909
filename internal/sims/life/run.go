package life

import (
	"context"
	"errors"
	"fmt"

	"termlife/internal/core"
)

// Renderer draws one generation.
type Renderer interface {
	Render(g *core.Grid) error
}

// Waiter suspends the loop between ticks. *core.Pacer implements it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Run drives sim until ctx is done: render the current generation, compute
// the next one, swap, then wait. Cancellation is a normal exit and returns
// nil; a renderer failure stops the loop and is returned.
func Run(ctx context.Context, sim *Life, r Renderer, w Waiter) error {
	for {
		if err := r.Render(sim.Current()); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		sim.Step()
		if err := w.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}
