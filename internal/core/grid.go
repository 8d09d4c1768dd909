package core

import (
	"fmt"
	"math"
)

// Cell is the state of a single grid coordinate.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead Cell = 0
	// Alive marks a live cell.
	Alive Cell = 1
)

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c == Alive }

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a fixed-size 2D grid of cells in row-major order. Coordinates
// outside the grid read as Dead.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid with every cell Dead. Both dimensions must be
// positive and w*h must fit in an int.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	if h > math.MaxInt/w {
		panic(fmt.Sprintf("core: grid size %dx%d overflows", w, h))
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// CloneGrid returns a grid with the dimensions and contents of src backed by
// its own storage.
func CloneGrid(src *Grid) *Grid {
	g := &Grid{w: src.w, h: src.h, cells: make([]Cell, len(src.cells))}
	copy(g.cells, src.cells)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice. Callers must not change its length.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y), or Dead when the coordinate is off the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Dead
	}
	return g.cells[g.Index(x, y)]
}

// Set overwrites the cell at (x, y). The coordinate must be on the grid.
func (g *Grid) Set(x, y int, v Cell) {
	if !g.In(x, y) {
		panic(fmt.Sprintf("core: Set(%d, %d) outside %dx%d grid", x, y, g.w, g.h))
	}
	g.cells[g.Index(x, y)] = v
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear sets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
