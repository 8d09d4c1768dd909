package core

import (
	"math/rand/v2"
	"time"
)

// DefaultDensity is the probability that a randomly seeded cell starts Alive.
const DefaultDensity = 0.2

// Source is the randomness a grid fill draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// TimeSeed returns a seed derived from the wall clock, used when no seed is
// configured.
func TimeSeed() int64 { return time.Now().UnixNano() }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillRandom sets each cell of g Alive independently with probability p and
// Dead otherwise.
func FillRandom(src Source, g *Grid, p float64) {
	for i := range g.cells {
		if src.Float64() < p {
			g.cells[i] = Alive
			continue
		}
		g.cells[i] = Dead
	}
}
