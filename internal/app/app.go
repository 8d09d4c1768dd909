//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"termlife/internal/render"
	"termlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game adapts the Life simulation to the ebiten.Game interface. ebiten calls
// Update at the configured TPS, so each Update is one generation.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale int
	first bool
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, scale int) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		first:    true,
	}
}

// Update advances the simulation. The seeded board is shown for one frame
// before the first step, matching the terminal loop.
func (g *Game) Update() error {
	if g.first {
		g.first = false
		return nil
	}
	g.sim.Step()
	return nil
}

// Draw renders the current generation and the live-cell count.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.sim.Current()
	g.painter.Blit(screen, cur, g.onColor, g.offColor, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("alive: %d", cur.Population()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
