//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"termlife/internal/app"
	"termlife/internal/core"
	"termlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	sim := life.New(cfg.Life())
	sim.Reset(cfg.ResolveSeed())

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("termlife — " + sim.Name())
	pacer := core.NewPacer(cfg.Interval)
	if !pacer.Exact() {
		log.Printf("ebiten ticks at whole rates: running %d generations per second instead of one every %v",
			pacer.TPS(), pacer.Interval())
	}
	ebiten.SetTPS(pacer.TPS())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
