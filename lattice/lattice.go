// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package lattice defines the external collaborators the WL sampler
// core depends on but does not implement itself: the 4-D atomic
// configuration, its energy evaluator, the site sampler, and the
// pair-swap primitive. A minimal in-memory implementation is provided
// so the core can be exercised and tested without a real alloy model.
package lattice

// Site is a 4-D lattice site index.
type Site struct {
	I, J, K, L int
}

// Configuration is a 4-D lattice of species identifiers, stored as a
// contiguous row-major block. It is owned privately by one walker and
// mutated in place by PairSwap; no Configuration is ever aliased
// between walkers.
type Configuration struct {
	NI, NJ, NK, NL int
	Species        []int
}

// NewConfiguration allocates a zeroed configuration with the given
// extents.
func NewConfiguration(ni, nj, nk, nl int) *Configuration {
	return &Configuration{
		NI: ni, NJ: nj, NK: nk, NL: nl,
		Species: make([]int, ni*nj*nk*nl),
	}
}

func (c *Configuration) index(s Site) int {
	return ((s.I*c.NJ+s.J)*c.NK+s.K)*c.NL + s.L
}

// At returns the species identifier at a site.
func (c *Configuration) At(s Site) int {
	return c.Species[c.index(s)]
}

// Set assigns the species identifier at a site.
func (c *Configuration) Set(s Site, species int) {
	c.Species[c.index(s)] = species
}

// Clone returns a deep, unaliased copy of the configuration.
func (c *Configuration) Clone() *Configuration {
	species := make([]int, len(c.Species))
	copy(species, c.Species)
	return &Configuration{NI: c.NI, NJ: c.NJ, NK: c.NK, NL: c.NL, Species: species}
}

// PairSwap exchanges the species identifiers at two sites. It is its
// own inverse: applying it twice with the same sites restores the
// configuration to bitwise identity, which the sweep kernel relies on
// to roll back rejected and out-of-window trials.
func PairSwap(config *Configuration, a, b Site) {
	ia, ib := config.index(a), config.index(b)
	config.Species[ia], config.Species[ib] = config.Species[ib], config.Species[ia]
}

// Source is the uniform random source the core draws site indices and
// accept/reject decisions from. It is threaded explicitly through
// every call site rather than held as process-wide state.
type Source interface {
	// Float64 returns a uniform random value in [0, 1).
	Float64() float64
}

// Shells holds precomputed neighbor-shell information consumed by a
// Setup's energy evaluator. Its internal layout is private to the
// Setup implementation that built it.
type Shells struct {
	data any
}

// NewShells wraps arbitrary neighbor-shell data produced by a Setup
// implementation.
func NewShells(data any) *Shells {
	return &Shells{data: data}
}

// Data returns the wrapped neighbor-shell payload.
func (s *Shells) Data() any {
	return s.data
}

// Setup is the lattice model: it knows how to build an initial
// configuration, evaluate its total energy, and draw uniformly
// distributed site indices. Concrete implementations (a specific
// alloy Hamiltonian, a test fixture) satisfy this interface; the WL
// sampler core never inspects a Setup's internals.
type Setup interface {
	// FullEnergy returns the total lattice energy of config, in the
	// same units as the bin edges. shells is the value LatticeShells
	// returned for this configuration's lattice extents; it is passed
	// back in on every call so the evaluator never has to rebuild
	// neighbor-shell data itself. Must be deterministic for a given
	// configuration.
	FullEnergy(config *Configuration, shells *Shells) float64

	// RandomSite returns a uniformly distributed valid 4-D site index.
	RandomSite(rng Source) Site

	// InitialSetup fills config with a valid initial species
	// arrangement.
	InitialSetup(config *Configuration, rng Source) error

	// LatticeShells precomputes neighbor shells consumed by
	// FullEnergy. Called once after InitialSetup.
	LatticeShells(config *Configuration) (*Shells, error)

	// NAtoms returns the number of atoms (sites) in one
	// configuration, used to size a sweep batch and burn-in budget.
	NAtoms() int

	// NewConfiguration allocates an empty configuration with this
	// Setup's lattice extents, ready for InitialSetup to fill.
	NewConfiguration() *Configuration
}
