package render

import (
	"bufio"
	"io"

	"termlife/internal/core"
)

const (
	// AliveGlyph marks a live cell.
	AliveGlyph = 'x'
	// DeadGlyph marks a dead cell.
	DeadGlyph = '`'
)

// DefaultOrigin is the 1-based column/row of the top-left cell.
var DefaultOrigin = core.Point{X: 2, Y: 2}

// Text draws the board as plain glyphs into an ANSI terminal stream. Every
// row is placed with an explicit cursor jump and every glyph is followed by
// a one-column cursor advance, so a board of width w spans 2*w columns.
type Text struct {
	w      *bufio.Writer
	origin core.Point
}

// NewText returns a renderer writing to out with the top-left cell at origin.
func NewText(out io.Writer, origin core.Point) *Text {
	return &Text{w: bufio.NewWriter(out), origin: origin}
}

// Frame returns the 1-based corners of the box that encloses a board of the
// given size.
func Frame(origin core.Point, size core.Size) (topLeft, bottomRight core.Point) {
	topLeft = core.Point{X: origin.X - 1, Y: origin.Y - 1}
	bottomRight = core.Point{X: origin.X + 2*size.W, Y: origin.Y + size.H}
	return topLeft, bottomRight
}

// DrawFrame clears the screen and draws the box around a board of the given
// size. It is drawn once; Render only touches the cells inside.
func (t *Text) DrawFrame(size core.Size) error {
	tl, br := Frame(t.origin, size)
	w := t.w
	w.Write(csiClear)
	for y := tl.Y + 1; y < br.Y; y++ {
		writeGoto(w, tl.X, y)
		w.WriteString("│")
		writeGoto(w, br.X, y)
		w.WriteString("│")
	}
	for x := tl.X + 1; x < br.X; x++ {
		writeGoto(w, x, tl.Y)
		w.WriteString("─")
		writeGoto(w, x, br.Y)
		w.WriteString("─")
	}
	writeGoto(w, tl.X, tl.Y)
	w.WriteString("┌")
	writeGoto(w, br.X, tl.Y)
	w.WriteString("┐")
	writeGoto(w, tl.X, br.Y)
	w.WriteString("└")
	writeGoto(w, br.X, br.Y)
	w.WriteString("┘")
	w.WriteByte('\n')
	return w.Flush()
}

// Render draws one generation and flushes it.
func (t *Text) Render(g *core.Grid) error {
	w := t.w
	for y := 0; y < g.Height(); y++ {
		writeGoto(w, t.origin.X, t.origin.Y+y)
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == core.Alive {
				w.WriteByte(AliveGlyph)
			} else {
				w.WriteByte(DeadGlyph)
			}
			w.Write(csiCursorRight1)
		}
	}
	return w.Flush()
}

// Finish parks the cursor on the line below the box so the shell prompt
// does not overwrite the last frame.
func (t *Text) Finish(size core.Size) error {
	_, br := Frame(t.origin, size)
	writeGoto(t.w, 1, br.Y+1)
	t.w.Write(csiSGR0)
	return t.w.Flush()
}
