// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"testing"

	"github.com/kshedden/wldos/internal/rng"
	"github.com/kshedden/wldos/lattice"
	"github.com/kshedden/wldos/partition"
)

// TestBurnInConvergence checks a scaled-down version of S5: across
// many seeds, burn-in always finds its way into the window within
// 10*NAtoms trials.
func TestBurnInConvergence(t *testing.T) {
	setup := lattice.NewToyPairSetup(4, 1, 1, 1, 3)
	nAtoms := setup.NAtoms()
	// Interaction[a][b] = (a-b)^2 for species in {0,1,2}, so a single
	// neighbor pair contributes at most 4 and the 4-site ring's total
	// energy lies in [0, 16]. The window covers the middle half of
	// that range, reachable from any starting configuration by
	// greedy descent toward the midpoint.
	window := partition.Window{Lo: 2, Hi: 3}
	edges := []float64{0, 4, 8, 12, 16}

	const seeds = 200
	for seed := 0; seed < seeds; seed++ {
		source := rng.New(int64(seed))
		w := NewWalker(0, 0, window, 4, edges, setup, source, 1.0)

		config := setup.NewConfiguration()
		if err := setup.InitialSetup(config, source); err != nil {
			t.Fatalf("seed %d: InitialSetup failed: %v", seed, err)
		}
		shells, err := setup.LatticeShells(config)
		if err != nil {
			t.Fatalf("seed %d: LatticeShells failed: %v", seed, err)
		}
		w.SetConfig(config, shells)

		minE, maxE := edges[window.Lo-1], edges[window.Hi]
		trials := BurnIn(w, minE, maxE, 10*nAtoms)

		if w.Energy <= minE || w.Energy >= maxE {
			t.Fatalf("seed %d: burn-in did not converge within %d trials (used %d), energy=%v window=[%v,%v]",
				seed, 10*nAtoms, trials, w.Energy, minE, maxE)
		}
	}
}

func TestBurnInNoOpWhenAlreadyInWindow(t *testing.T) {
	setup := lattice.NewToyPairSetup(4, 1, 1, 1, 2)
	window := partition.Window{Lo: 1, Hi: 4}
	edges := []float64{0, 1, 2, 3, 4}
	source := rng.New(1)
	w := NewWalker(0, 0, window, 4, edges, setup, source, 1.0)
	config := setup.NewConfiguration()
	shells, err := setup.LatticeShells(config)
	if err != nil {
		t.Fatalf("LatticeShells failed: %v", err)
	}
	w.SetConfig(config, shells)
	w.Energy = 2

	trials := BurnIn(w, 1, 3, 1000)
	if trials != 0 {
		t.Errorf("BurnIn performed %d trials when already in window, want 0", trials)
	}
}
