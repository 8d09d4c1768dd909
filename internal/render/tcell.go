package render

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/core"
)

// Tcell draws the board into a tcell screen using the same layout as Text.
type Tcell struct {
	screen tcell.Screen
	origin core.Point
	style  tcell.Style
}

// NewTcell wraps an initialised screen. origin is 1-based like Text.
func NewTcell(screen tcell.Screen, origin core.Point) *Tcell {
	return &Tcell{screen: screen, origin: origin, style: tcell.StyleDefault}
}

// DrawFrame clears the screen and draws the box around the board. It only
// writes tcell's cell buffer, so there is nothing to fail.
func (t *Tcell) DrawFrame(size core.Size) {
	tl, br := Frame(t.origin, size)
	s := t.screen
	s.Clear()
	for y := tl.Y + 1; y < br.Y; y++ {
		t.put(tl.X, y, '│')
		t.put(br.X, y, '│')
	}
	for x := tl.X + 1; x < br.X; x++ {
		t.put(x, tl.Y, '─')
		t.put(x, br.Y, '─')
	}
	t.put(tl.X, tl.Y, '┌')
	t.put(br.X, tl.Y, '┐')
	t.put(tl.X, br.Y, '└')
	t.put(br.X, br.Y, '┘')
	s.Show()
}

// Render draws one generation. Every cell takes two columns, the glyph and
// an untouched spacer.
func (t *Tcell) Render(g *core.Grid) error {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := rune(DeadGlyph)
			if g.At(x, y) == core.Alive {
				r = AliveGlyph
			}
			t.put(t.origin.X+2*x, t.origin.Y+y, r)
		}
	}
	t.screen.Show()
	return nil
}

// put converts 1-based terminal coordinates to tcell's 0-based ones.
func (t *Tcell) put(x, y int, r rune) {
	t.screen.SetContent(x-1, y-1, r, nil, t.style)
}

// WatchInterrupt polls screen events until ctx is done and calls cancel on
// Ctrl-C or Escape. tcell puts the terminal in raw mode, so these keys no
// longer raise SIGINT.
func (t *Tcell) WatchInterrupt(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
					cancel()
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}
