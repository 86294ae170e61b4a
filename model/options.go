package model

import (
	"math/rand/v2"
	"time"
)

// Option configures a Grid at construction
type Option func(*Grid)

// WithSeed gives the grid a deterministic random source
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		g.rng = newRand(seed)
	}
}

// WithRand hands the grid a caller-owned random source
func WithRand(r *rand.Rand) Option {
	return func(g *Grid) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithParallel splits the next generation computation across row bands
func WithParallel(enabled bool) Option {
	return func(g *Grid) {
		g.parallel = enabled
	}
}

// WithBounded restricts the next generation computation to the live region
func WithBounded(enabled bool) Option {
	return func(g *Grid) {
		g.bounded = enabled
	}
}

// WithoutSeeding leaves every cell dead after construction
func WithoutSeeding() Option {
	return func(g *Grid) {
		g.skipSeed = true
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
