// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

// RebaseMode selects how a walker's log-DoS is normalized before
// intra-window averaging. The historical source subtracted the
// minimum positive entry and then took ABS(x * merge(0,1, x<0)), whose
// net effect is abs(x): non-negative entries pass through, negative
// ones are folded to their magnitude. Whether that fold is intentional
// (treat negative log-DoS as a magnitude) or an artifact (negatives
// should just be zeroed) was never resolved in the source, so both are
// offered here.
type RebaseMode string

const (
	// RebaseAbs reproduces the historical net abs(x) behavior.
	RebaseAbs RebaseMode = "abs"
	// RebaseZero clamps negative rebased entries to zero instead.
	RebaseZero RebaseMode = "zero"
)

// seedThreshold is the histogram count every bin must exceed before
// the first reset can latch and before any refinement check fires.
const seedThreshold = 10

// Flatness returns min(Hist) / mean(Hist). An empty histogram (all
// zero) has flatness 0, which can never exceed a caller-supplied
// tolerance in (0, 1).
func (w *Walker) Flatness() float64 {
	if len(w.Hist) == 0 {
		return 0
	}
	min := w.Hist[0]
	var sum float64
	for _, h := range w.Hist {
		if h < min {
			min = h
		}
		sum += h
	}
	mean := sum / float64(len(w.Hist))
	if mean == 0 {
		return 0
	}
	return min / mean
}

func (w *Walker) minHist() float64 {
	if len(w.Hist) == 0 {
		return 0
	}
	min := w.Hist[0]
	for _, h := range w.Hist[1:] {
		if h < min {
			min = h
		}
	}
	return min
}

// ShouldRefine implements the flatness controller's seeding and
// refinement checks. It is a predicate: it mutates state only for the
// seeding reset (the initial exploration is discarded silently, with
// no diagnostic value), never for a genuine refinement event. A caller
// that gets true back should snapshot Hist for diagnostics if it needs
// to, then call Refine to commit the histogram reset and f-halving.
func (w *Walker) ShouldRefine(flatnessTolerance float64) bool {
	if !w.firstReset {
		if w.minHist() > seedThreshold {
			w.firstReset = true
			w.resetHistogram()
		}
		return false
	}

	return w.Flatness() > flatnessTolerance && w.minHist() > seedThreshold
}

// Refine commits a refinement event: the local histogram is zeroed
// and f is halved. Called once ShouldRefine has reported true, after
// the caller has captured whatever it needs from the pre-reset
// histogram.
func (w *Walker) Refine() {
	w.resetHistogram()
	if w.Visited != nil {
		w.Visited.Reset()
	}
	w.F /= 2
}

// Rebase normalizes w's log-DoS in place before intra-window
// averaging: it subtracts the minimum strictly-positive entry from
// every entry, then resolves the resulting negatives per mode.
func (w *Walker) Rebase(mode RebaseMode) {
	var minPositive float64
	found := false
	for _, v := range w.LogDos {
		if v > 0 && (!found || v < minPositive) {
			minPositive = v
			found = true
		}
	}
	if !found {
		return
	}

	for i, v := range w.LogDos {
		x := v - minPositive
		if x < 0 {
			switch mode {
			case RebaseZero:
				x = 0
			default:
				x = -x
			}
		}
		w.LogDos[i] = x
	}
}
