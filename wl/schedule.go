// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import "math"

// NumRefinements returns the number of times f must be halved starting
// from wlF before it falls to or below tolerance. The schedule is
// fully determined by these two values: f, f/2, f/4, ..., so every
// walker and the orchestrator can precompute how many refinement
// rounds a run will perform without reference to runtime flatness
// dynamics (those dynamics only decide how long each round takes, not
// how many rounds there are).
func NumRefinements(wlF, tolerance float64) int {
	if wlF <= tolerance {
		return 0
	}
	return int(math.Ceil(math.Log2(wlF / tolerance)))
}
