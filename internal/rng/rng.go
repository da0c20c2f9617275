// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package rng provides the concrete uniform random source used to
// drive one walker's Monte Carlo trials. Each walker owns its own
// instance; none is shared, so there is no process-wide random state.
package rng

import "math/rand"

// Source wraps a *rand.Rand so it satisfies lattice.Source without
// exposing the rest of math/rand's surface to the sampler core.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed. Two
// Sources built from the same seed produce identical trial sequences,
// which the burn-in convergence test (S5) relies on for reproducible
// seeds.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform random value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Intn returns a uniform random value in [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}
