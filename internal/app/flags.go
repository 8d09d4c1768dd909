package app

import (
	"flag"
	"fmt"
	"time"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

// Backends accepted by -backend.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Backend  string
	Width    int
	Height   int
	Density  float64
	Interval time.Duration
	Seed     int64
	OffsetX  int
	OffsetY  int
	Pattern  string
	Scale    int
	Debug    bool
}

// NewConfig returns a Config populated with the fixed defaults: a 40x40
// board, 20% live cells, 200ms ticks, drawn from column 2, row 2.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Backend:  BackendANSI,
		Width:    def.Width,
		Height:   def.Height,
		Density:  def.Density,
		Interval: core.DefaultInterval,
		OffsetX:  2,
		OffsetY:  2,
		Scale:    8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "terminal backend: ansi or tcell")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "chance a cell starts alive")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.OffsetX, "offset-x", c.OffsetX, "1-based column of the first cell")
	fs.IntVar(&c.OffsetY, "offset-y", c.OffsetY, "1-based row of the first cell")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, fmt.Sprintf("seed with a named pattern instead of noise %v", life.PatternNames()))
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (GUI build)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a log to "+logDir+"/"+logFileName)
}

// Validate checks the values that flag parsing alone cannot.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval %v must be positive", c.Interval)
	}
	if c.OffsetX < 2 || c.OffsetY < 2 {
		return fmt.Errorf("offset (%d,%d) leaves no room for the frame; both must be at least 2", c.OffsetX, c.OffsetY)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	return c.Life().Validate()
}

// Life returns the simulation part of the configuration.
func (c *Config) Life() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Density: c.Density, Pattern: c.Pattern}
}

// Origin returns the terminal position of the top-left cell.
func (c *Config) Origin() core.Point { return core.Point{X: c.OffsetX, Y: c.OffsetY} }

// ResolveSeed replaces a zero seed with one taken from the clock and returns it.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = core.TimeSeed()
	}
	return c.Seed
}
