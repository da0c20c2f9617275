// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package partition divides a global bin index range into
// overlapping windows, and maps energies onto bin indices.
package partition

import (
	"math"

	"github.com/kshedden/wldos/wlerrors"
)

// Window is the inclusive global bin index range assigned to one
// window of walkers.
type Window struct {
	Lo, Hi int
}

// WindowIndices splits the 1-based bin range [1, bins] into numWindows
// contiguous windows. Each window extends overlap bins past its share
// on either side, so adjacent windows share 2*overlap bins.
//
// lo_i = max((i-1)*floor(bins/numWindows) + 1 - overlap, 1)
// hi_i = min(i*floor(bins/numWindows) + overlap, bins)
func WindowIndices(bins, numWindows, overlap int) ([]Window, error) {
	if numWindows < 1 {
		return nil, wlerrors.NewConfigError("num_windows must be at least 1, got %d", numWindows)
	}
	if bins < numWindows {
		return nil, wlerrors.NewConfigError("bins (%d) must be at least num_windows (%d)", bins, numWindows)
	}
	if overlap < 1 {
		return nil, wlerrors.NewConfigError("bin_overlap must be at least 1, got %d", overlap)
	}

	width := bins / numWindows
	if overlap >= width {
		return nil, wlerrors.NewConfigError("bin_overlap (%d) must be less than floor(bins/num_windows) (%d)", overlap, width)
	}

	windows := make([]Window, numWindows)
	for i := 1; i <= numWindows; i++ {
		lo := (i-1)*width + 1 - overlap
		if lo < 1 {
			lo = 1
		}
		hi := i*width + overlap
		if hi > bins {
			hi = bins
		}
		windows[i-1] = Window{Lo: lo, Hi: hi}
	}

	return windows, nil
}

// DivideRange is a reserved alternative partitioning strategy kept for
// parity with the source, which invoked it twice on a setup path that
// then unconditionally aborted; its intended role there was never
// resolved, so it is not wired into the live partition. It splits
// [1, n] into k contiguous, non-overlapping chunks of as-equal-as-possible
// size, with any remainder distributed to the first chunks.
func DivideRange(n, k int) ([]Window, error) {
	if k < 1 {
		return nil, wlerrors.NewConfigError("divide_range requires k >= 1, got %d", k)
	}
	if n < k {
		return nil, wlerrors.NewConfigError("divide_range requires n (%d) >= k (%d)", n, k)
	}

	base := n / k
	rem := n % k

	windows := make([]Window, k)
	lo := 1
	for i := 0; i < k; i++ {
		size := base
		if i < rem {
			size++
		}
		hi := lo + size - 1
		windows[i] = Window{Lo: lo, Hi: hi}
		lo = hi + 1
	}

	return windows, nil
}

// BinIndex maps energy e onto a 1-based global bin index given bins
// edges (length bins+1). Energies outside [edges[0], edges[bins]] map
// outside [1, bins]; callers treat such indices as out-of-window
// rejections rather than errors.
func BinIndex(e float64, edges []float64, bins int) int {
	lo := edges[0]
	hi := edges[bins]
	frac := (e - lo) / (hi - lo)
	return int(math.Floor(frac*float64(bins))) + 1
}
