// Copyright 2017, Kerby Shedden and the Muscato contributors.

package lattice

// ToyPairSetup is a minimal Setup used by the test suite and by
// cmd/wldos in place of a real alloy Hamiltonian. Its energy is the
// sum, over every site and its next neighbor along the I axis
// (periodic), of the interaction constant for their two species.
// It exists only so the burn-in driver and sweep kernel can be
// exercised deterministically; it makes no physical claims.
type ToyPairSetup struct {
	NI, NJ, NK, NL int
	NSpecies       int
	// Interaction[a][b] is the pairwise energy contribution of
	// neighboring species a and b.
	Interaction [][]float64
}

// NewToyPairSetup builds a fixture with a simple, deterministic
// interaction matrix: Interaction[a][b] = float64(a-b) * float64(a-b),
// so identical neighbors contribute zero and dissimilar ones
// contribute more as their species indices diverge.
func NewToyPairSetup(ni, nj, nk, nl, nspecies int) *ToyPairSetup {
	m := make([][]float64, nspecies)
	for a := range m {
		m[a] = make([]float64, nspecies)
		for b := range m[a] {
			d := float64(a - b)
			m[a][b] = d * d
		}
	}
	return &ToyPairSetup{NI: ni, NJ: nj, NK: nk, NL: nl, NSpecies: nspecies, Interaction: m}
}

func (s *ToyPairSetup) NAtoms() int {
	return s.NI * s.NJ * s.NK * s.NL
}

func (s *ToyPairSetup) NewConfiguration() *Configuration {
	return NewConfiguration(s.NI, s.NJ, s.NK, s.NL)
}

// FullEnergy ignores shells: the toy fixture's neighbor relation (the
// next site along the I axis) is cheap enough to recompute inline and
// needs no precomputed shell data.
func (s *ToyPairSetup) FullEnergy(config *Configuration, shells *Shells) float64 {
	var e float64
	for i := 0; i < s.NI; i++ {
		ni := (i + 1) % s.NI
		for j := 0; j < s.NJ; j++ {
			for k := 0; k < s.NK; k++ {
				for l := 0; l < s.NL; l++ {
					a := config.At(Site{I: i, J: j, K: k, L: l})
					b := config.At(Site{I: ni, J: j, K: k, L: l})
					e += s.Interaction[a][b]
				}
			}
		}
	}
	return e
}

func (s *ToyPairSetup) RandomSite(rng Source) Site {
	return Site{
		I: int(rng.Float64() * float64(s.NI)),
		J: int(rng.Float64() * float64(s.NJ)),
		K: int(rng.Float64() * float64(s.NK)),
		L: int(rng.Float64() * float64(s.NL)),
	}
}

func (s *ToyPairSetup) InitialSetup(config *Configuration, rng Source) error {
	for i := range config.Species {
		config.Species[i] = int(rng.Float64() * float64(s.NSpecies))
	}
	return nil
}

func (s *ToyPairSetup) LatticeShells(config *Configuration) (*Shells, error) {
	return NewShells(nil), nil
}
