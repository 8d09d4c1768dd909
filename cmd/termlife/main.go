package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/app"
	"termlife/internal/core"
	"termlife/internal/render"
	"termlife/internal/sims/life"
)

func main() {
	// Restore the terminal before reporting a crash so the trace is readable.
	defer func() {
		if r := recover(); r != nil {
			render.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\ntermlife crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "termlife: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "termlife: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	if f := app.SetupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	seed := cfg.ResolveSeed()
	sim := life.New(cfg.Life())
	sim.Reset(seed)
	pacer := core.NewPacer(cfg.Interval)
	log.Printf("seeded %dx%d board: seed=%d density=%.2f pattern=%q population=%d interval=%v",
		cfg.Width, cfg.Height, seed, cfg.Density, cfg.Pattern, sim.Current().Population(), pacer.Interval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Backend {
	case app.BackendTcell:
		return runTcell(ctx, cfg, sim, pacer)
	default:
		return runANSI(ctx, cfg, sim, pacer)
	}
}

func runANSI(ctx context.Context, cfg *app.Config, sim *life.Life, pacer *core.Pacer) error {
	size := sim.Size()
	if err := render.CheckTerminal(int(os.Stdout.Fd()), cfg.Origin(), size); err != nil {
		log.Printf("warning: %v", err)
	}

	r := render.NewText(os.Stdout, cfg.Origin())
	if err := r.DrawFrame(size); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	err := life.Run(ctx, sim, r, pacer)
	if ferr := r.Finish(size); err == nil {
		err = ferr
	}
	log.Printf("stopped: err=%v", err)
	return err
}

func runTcell(ctx context.Context, cfg *app.Config, sim *life.Life, pacer *core.Pacer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := render.NewTcell(screen, cfg.Origin())
	r.WatchInterrupt(ctx, cancel)
	r.DrawFrame(sim.Size())
	err = life.Run(ctx, sim, r, pacer)
	log.Printf("stopped: err=%v", err)
	return err
}
