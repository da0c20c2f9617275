// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"github.com/kshedden/wldos/partition"
	"github.com/kshedden/wldos/wlerrors"
)

// Stitch splices a window's averaged log-DoS (received, a full-length
// global-bin array with meaningful entries only in [window.Lo,
// window.Hi]) onto the running global buffer. global must already
// hold the first window's DoS in positions [1, window.Hi] of whatever
// windows preceded this one; Stitch only ever writes positions
// [window.Lo+overlap, window.Hi].
//
// The overlap region [window.Lo, window.Lo+overlap) stays owned by the
// earlier window: Stitch computes the mean difference between the
// running global curve and the incoming window over that region,
// counting only positions where both values exceed
// tolerance*minValFactor, and shifts the rest of the incoming window
// by that mean so its overlap matches the running curve. If no
// position in the overlap qualifies, the shift is undefined and Stitch
// returns a *wlerrors.StitchError instead of producing NaN.
func Stitch(global, received []float64, window partition.Window, overlap int, tolerance float64) error {
	minVal := tolerance * minValFactor

	var sum float64
	count := 0
	for j := 0; j < overlap; j++ {
		idx := window.Lo + j
		g := global[idx-1]
		r := received[idx-1]
		if g > minVal && r > minVal {
			sum += g - r
			count++
		}
	}

	if count == 0 {
		return wlerrors.NewStitchError(window.Lo, "overlap of %d bins starting at %d has no positions where both estimates exceed %g", overlap, window.Lo, minVal)
	}
	scale := sum / float64(count)

	for j := window.Lo + overlap; j <= window.Hi; j++ {
		global[j-1] = received[j-1] + scale
	}

	return nil
}

// minValFactor scales tolerance down to the minimum log-DoS magnitude
// the stitcher considers meaningful when choosing overlap positions.
const minValFactor = 1e-1
