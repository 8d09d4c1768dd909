package render

import (
	"errors"
	"fmt"

	"golang.org/x/term"

	"termlife/internal/core"
)

// ErrNotTerminal is returned by CheckTerminal when the descriptor is not a TTY.
var ErrNotTerminal = errors.New("output is not a terminal")

// CheckTerminal reports whether fd is a terminal large enough to show the
// framed board. The board is still drawn when this fails; callers log it.
func CheckTerminal(fd int, origin core.Point, size core.Size) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	return checkFits(cols, rows, origin, size)
}

func checkFits(cols, rows int, origin core.Point, size core.Size) error {
	_, br := Frame(origin, size)
	if cols < br.X || rows < br.Y {
		return fmt.Errorf("terminal is %dx%d, board needs %dx%d", cols, rows, br.X, br.Y)
	}
	return nil
}
