package life

import (
	"context"
	"errors"
	"testing"
	"time"

	"termlife/internal/core"
)

type recordingRenderer struct {
	frames []*core.Grid
	snaps  []*core.Grid
	stopAt int
	cancel context.CancelFunc
	err    error
}

func (r *recordingRenderer) Render(g *core.Grid) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, g)
	r.snaps = append(r.snaps, core.CloneGrid(g))
	if len(r.frames) == r.stopAt {
		r.cancel()
	}
	return nil
}

type noWait struct{}

func (noWait) Wait(ctx context.Context) error { return ctx.Err() }

func TestRunRendersThenSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Pattern = 3, 3, "blinker"
	sim := New(cfg)
	sim.ResetFrom(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &recordingRenderer{stopAt: 3, cancel: cancel}

	if err := Run(ctx, sim, r, noWait{}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(r.frames) != 3 {
		t.Fatalf("rendered %d frames, expected 3", len(r.frames))
	}

	assertGrid(t, r.snaps[0], "...", "xxx", "...")
	assertGrid(t, r.snaps[1], ".x.", ".x.", ".x.")
	assertGrid(t, r.snaps[2], "...", "xxx", "...")

	// The two physical buffers alternate.
	if r.frames[0] != r.frames[2] || r.frames[0] == r.frames[1] {
		t.Fatal("frames did not alternate between the two buffers")
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	sim := New(DefaultConfig())
	boom := errors.New("broken pipe")
	err := Run(context.Background(), sim, &recordingRenderer{err: boom}, noWait{})
	if !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, expected wrapped %v", err, boom)
	}
}

func TestRunStopsOnDeadline(t *testing.T) {
	sim := New(DefaultConfig())
	sim.Reset(1)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	r := &recordingRenderer{cancel: func() {}}
	if err := Run(ctx, sim, r, core.NewPacer(5*time.Millisecond)); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(r.frames) == 0 {
		t.Fatal("no frames rendered before the deadline")
	}
}
