package life

import (
	"termlife/internal/core"
)

// Life runs Conway's Game of Life on a board with a fixed Dead border.
//
// It owns exactly two grids of the same size. buf[cur] is the generation
// being shown; Step writes the other one and flips cur, so no cell data is
// copied between ticks.
type Life struct {
	cfg Config
	buf [2]*core.Grid
	cur int
}

// New returns a Life simulation with every cell Dead. It panics if cfg does
// not validate.
func New(cfg Config) *Life {
	if err := cfg.Validate(); err != nil {
		panic("life: " + err.Error())
	}
	first := core.NewGrid(cfg.Width, cfg.Height)
	return &Life{cfg: cfg, buf: [2]*core.Grid{first, core.CloneGrid(first)}}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Current returns the grid holding the present generation.
func (l *Life) Current() *core.Grid { return l.buf[l.cur] }

// Reset reseeds the board deterministically from seed.
func (l *Life) Reset(seed int64) {
	l.ResetFrom(core.NewRNG(seed))
}

// ResetFrom reseeds the board using src for the random fill. With a
// configured pattern src is not consulted.
func (l *Life) ResetFrom(src core.Source) {
	g := l.buf[l.cur]
	if p, ok := LookupPattern(l.cfg.Pattern); ok {
		p.PlaceCentered(g)
	} else {
		core.FillRandom(src, g, l.cfg.Density)
	}
	next := l.buf[1-l.cur]
	copy(next.Cells(), g.Cells())
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Transition(l.buf[l.cur], l.buf[1-l.cur])
	l.cur ^= 1
}
