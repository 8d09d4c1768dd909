package life

import (
	"strings"
	"testing"

	"termlife/internal/core"
)

// gridFrom builds a grid from rows of 'x' (alive) and '.' (dead).
func gridFrom(rows ...string) *core.Grid {
	g := core.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == 'x' {
				g.Set(x, y, core.Alive)
			}
		}
	}
	return g
}

func dump(g *core.Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == core.Alive {
				b.WriteByte('x')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func assertGrid(t *testing.T, got *core.Grid, rows ...string) {
	t.Helper()
	want := gridFrom(rows...)
	if !got.Equal(want) {
		t.Fatalf("grid mismatch\n got:\n%s want:\n%s", dump(got), dump(want))
	}
}

func TestNextRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Next(core.Alive, n); got.Alive() != wantAlive {
			t.Fatalf("alive with %d neighbours -> %v", n, got)
		}
		wantBorn := n == 3
		if got := Next(core.Dead, n); got.Alive() != wantBorn {
			t.Fatalf("dead with %d neighbours -> %v", n, got)
		}
	}
}

func TestLiveNeighborsAtBorder(t *testing.T) {
	g := gridFrom(
		"xxx",
		"xxx",
		"xxx",
	)
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 3},
		{1, 0, 5},
		{1, 1, 8},
		{2, 2, 3},
		{-1, -1, 1},
		{3, 1, 3},
	}
	for _, tc := range cases {
		if got := LiveNeighbors(g, tc.x, tc.y); got != tc.want {
			t.Fatalf("LiveNeighbors(%d,%d)=%d, expected %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTransitionAllDead(t *testing.T) {
	cur := gridFrom("...", "...", "...")
	out := core.NewGrid(3, 3)
	Transition(cur, out)
	assertGrid(t, out, "...", "...", "...")
}

func TestTransitionSingleCellDies(t *testing.T) {
	cur := gridFrom("...", ".x.", "...")
	out := core.NewGrid(3, 3)
	Transition(cur, out)
	assertGrid(t, out, "...", "...", "...")
}

func TestTransitionBlinker(t *testing.T) {
	a := gridFrom("...", "xxx", "...")
	b := core.NewGrid(3, 3)

	Transition(a, b)
	assertGrid(t, b, ".x.", ".x.", ".x.")

	Transition(b, a)
	assertGrid(t, a, "...", "xxx", "...")
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	cur := gridFrom(
		"x..x.",
		".xx..",
		"..x.x",
		"x...x",
	)
	before := core.CloneGrid(cur)

	// Fill the output with garbage so stale contents would show up.
	out := core.NewGrid(5, 4)
	for i := range out.Cells() {
		out.Cells()[i] = core.Alive
	}

	Transition(cur, out)
	if !cur.Equal(before) {
		t.Fatalf("input changed\n got:\n%s want:\n%s", dump(cur), dump(before))
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			want := Next(before.At(x, y), LiveNeighbors(before, x, y))
			if out.At(x, y) != want {
				t.Fatalf("cell (%d,%d)=%v, expected %v", x, y, out.At(x, y), want)
			}
		}
	}
}

func TestTransitionIsNotInPlace(t *testing.T) {
	// Updated in place, the top corners would already be dead when the
	// centre is counted and it would never be born.
	cur := gridFrom(
		"x.x",
		"...",
		".x.",
	)
	out := core.NewGrid(3, 3)
	Transition(cur, out)
	assertGrid(t, out, "...", ".x.", "...")
}

func TestTransitionSizeMismatchPanics(t *testing.T) {
	cases := []struct {
		name     string
		cur, out *core.Grid
	}{
		{"width", core.NewGrid(3, 3), core.NewGrid(4, 3)},
		{"height", core.NewGrid(3, 3), core.NewGrid(3, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Transition did not panic")
				}
				if msg, _ := r.(string); !strings.Contains(msg, "sizes differ") {
					t.Fatalf("unexpected panic %v", r)
				}
			}()
			Transition(tc.cur, tc.out)
		})
	}
}
