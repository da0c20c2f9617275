// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"math"

	"github.com/kshedden/wldos/lattice"
	"github.com/kshedden/wldos/partition"
)

// Sweep executes one batch of mcSweeps*nAtoms biased species-exchange
// trials for w, updating its local histogram and log-DoS view in
// place. It returns the number of trials accepted as a new
// configuration (diagnostic only; the walk's in-window accounting
// happens regardless of acceptance, per the undo-and-account-at-ibin
// rule below).
func Sweep(w *Walker, mcSweeps int) int {
	nAtoms := w.Setup.NAtoms()
	accepted := 0

	for t := 0; t < mcSweeps*nAtoms; t++ {
		a := w.Setup.RandomSite(w.RNG)
		b := w.Setup.RandomSite(w.RNG)

		ibin := partition.BinIndex(w.Energy, w.Edges, w.Bins)

		if w.Config.At(a) == w.Config.At(b) {
			// Same species: swap is a no-op for energy, but still
			// counts as a rejection at the current bin.
			w.recordVisit(ibin)
			continue
		}

		lattice.PairSwap(w.Config, a, b)
		newEnergy := w.Setup.FullEnergy(w.Config, w.Shells)
		jbin := partition.BinIndex(newEnergy, w.Edges, w.Bins)

		if !w.InWindow(jbin) {
			// Out-of-window trial: undo, no histogram/DoS update.
			lattice.PairSwap(w.Config, a, b)
			continue
		}

		p := math.Exp(w.logDosAt(ibin) - w.logDosAt(jbin))
		if p > 1 {
			p = 1
		}
		accept := w.RNG.Float64() < p

		if accept {
			w.Energy = newEnergy
			accepted++
		} else {
			lattice.PairSwap(w.Config, a, b)
			jbin = ibin
		}

		w.recordVisit(jbin)
	}

	return accepted
}

// logDosAt returns the walker's current log-DoS estimate for a global
// bin index (1-based), treating indices outside the walker's window
// (which can appear transiently as ibin before a trial moves in) as
// the value held in the shared view; the view always carries an entry
// for every global bin.
func (w *Walker) logDosAt(bin int) float64 {
	if bin < 1 || bin > w.Bins {
		// Should not occur: ibin is always the bin of the walker's
		// own current energy, which by construction lies in-window.
		return 0
	}
	return w.LogDos[bin-1]
}

// recordVisit increments the local histogram and log-DoS entry for a
// global bin index known to lie inside the walker's window.
func (w *Walker) recordVisit(bin int) {
	w.Hist[w.histIndex(bin)]++
	w.LogDos[bin-1] += w.F
	if w.Visited != nil {
		w.Visited.Mark(bin)
	}
}
