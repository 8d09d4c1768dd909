package life

import (
	"fmt"

	"termlife/internal/core"
)

// MaxSide bounds each board dimension.
const MaxSide = 4096

// Config controls the board dimensions and how it is seeded.
type Config struct {
	Width  int
	Height int

	// Density is the chance a cell starts Alive under random seeding.
	Density float64

	// Pattern, when set, replaces random seeding with a named shape centred
	// on an empty board.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 40, Density: core.DefaultDensity}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Width > MaxSide || c.Height > MaxSide {
		return fmt.Errorf("board size %dx%d exceeds %dx%d", c.Width, c.Height, MaxSide, MaxSide)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", c.Density)
	}
	if c.Pattern != "" {
		p, ok := LookupPattern(c.Pattern)
		if !ok {
			return fmt.Errorf("unknown pattern %q (known: %v)", c.Pattern, PatternNames())
		}
		if p.W > c.Width || p.H > c.Height {
			return fmt.Errorf("pattern %q (%dx%d) does not fit a %dx%d board", c.Pattern, p.W, p.H, c.Width, c.Height)
		}
	}
	return nil
}
