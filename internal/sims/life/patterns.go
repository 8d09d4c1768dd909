package life

import (
	"sort"
	"strings"

	"termlife/internal/core"
)

// Pattern is a small named seed shape. Rows use 'x' for Alive and '.' for Dead.
type Pattern struct {
	Name string
	W, H int
	rows []string
}

func newPattern(name string, rows ...string) Pattern {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return Pattern{Name: name, W: w, H: len(rows), rows: rows}
}

var patterns = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{
		newPattern("blinker", "xxx"),
		newPattern("block", "xx", "xx"),
		newPattern("glider", ".x.", "..x", "xxx"),
		newPattern("rpentomino", ".xx", "xx.", ".x."),
		newPattern("toad", ".xxx", "xxx."),
		newPattern("beacon", "xx..", "xx..", "..xx", "..xx"),
	} {
		patterns[p.Name] = p
	}
}

// LookupPattern finds a pattern by case-insensitive name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// PatternNames lists the known pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for n := range patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Place writes the pattern's live cells with its top-left corner at (x, y).
// Cells that would land off the grid are skipped.
func (p Pattern) Place(g *core.Grid, x, y int) {
	for dy, row := range p.rows {
		for dx, ch := range row {
			if ch != 'x' || !g.In(x+dx, y+dy) {
				continue
			}
			g.Set(x+dx, y+dy, core.Alive)
		}
	}
}

// PlaceCentered clears g and places the pattern in its middle.
func (p Pattern) PlaceCentered(g *core.Grid) {
	g.Clear()
	p.Place(g, (g.Width()-p.W)/2, (g.Height()-p.H)/2)
}
