// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import "github.com/kshedden/wldos/lattice"

// escapeProbability is the fixed small chance burn-in accepts an
// otherwise-rejected move, so a walker does not stall in a local
// energy minimum on the way into its window.
const escapeProbability = 0.001

// BurnIn drifts w's configuration into [minE, maxE] before WL
// accounting begins. It repeatedly proposes species-exchange trials,
// accepting moves that reduce the distance between the current energy
// and the window midpoint; with a small fixed probability it also
// accepts a move that does not. It terminates the first time the
// current energy lies strictly inside the window, and has no
// histogram or DoS side effects. maxTrials bounds the search (the
// caller is expected to pass a generous multiple of NAtoms; S5
// requires termination within 10x NAtoms trials with probability 1,
// so a much larger bound here is a safety net, not a tuning knob).
func BurnIn(w *Walker, minE, maxE float64, maxTrials int) int {
	mid := (minE + maxE) / 2

	if w.Energy > minE && w.Energy < maxE {
		return 0
	}

	for trial := 1; trial <= maxTrials; trial++ {
		a := w.Setup.RandomSite(w.RNG)
		b := w.Setup.RandomSite(w.RNG)

		if w.Config.At(a) == w.Config.At(b) {
			continue
		}

		dBefore := distance(w.Energy, mid)

		lattice.PairSwap(w.Config, a, b)
		newEnergy := w.Setup.FullEnergy(w.Config, w.Shells)
		dAfter := distance(newEnergy, mid)

		accept := dAfter < dBefore
		if !accept && w.RNG.Float64() < escapeProbability {
			accept = true
		}

		if accept {
			w.Energy = newEnergy
		} else {
			lattice.PairSwap(w.Config, a, b)
		}

		if w.Energy > minE && w.Energy < maxE {
			return trial
		}
	}

	return maxTrials
}

func distance(e, mid float64) float64 {
	d := e - mid
	if d < 0 {
		d = -d
	}
	return d
}
