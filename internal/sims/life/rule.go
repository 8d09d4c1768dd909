package life

import (
	"fmt"

	"termlife/internal/core"
)

// LiveNeighbors counts the Alive cells among the eight neighbours of (x, y).
// Neighbours off the grid count as Dead.
func LiveNeighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(x+dx, y+dy) == core.Alive {
				n++
			}
		}
	}
	return n
}

// Next applies the B3/S23 rule to one cell.
func Next(c core.Cell, neighbors int) core.Cell {
	if c == core.Alive {
		if neighbors == 2 || neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
	if neighbors == 3 {
		return core.Alive
	}
	return core.Dead
}

// Transition writes the next generation of cur into out. It reads only cur
// and overwrites every cell of out. Grids of different sizes panic.
func Transition(cur, out *core.Grid) {
	if cur.Width() != out.Width() || cur.Height() != out.Height() {
		panic(fmt.Sprintf("life: input and output grid sizes differ (%dx%d vs %dx%d)",
			cur.Width(), cur.Height(), out.Width(), out.Height()))
	}
	w, h := cur.Width(), cur.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, Next(cur.At(x, y), LiveNeighbors(cur, x, y)))
		}
	}
}
