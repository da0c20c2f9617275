// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"math"
	"testing"

	"github.com/kshedden/wldos/partition"
)

// TestStitchS4 reproduces the two-window stitch scenario exactly.
func TestStitchS4(t *testing.T) {
	bins := 10
	global := make([]float64, bins)
	received := make([]float64, bins)

	for i, v := range []float64{1, 2, 3, 4, 5} {
		global[i] = v
	}
	for i, v := range []float64{10, 11, 12, 13, 14, 15, 16} {
		received[3+i] = v
	}

	window := partition.Window{Lo: 4, Hi: 10}
	if err := Stitch(global, received, window, 2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for i, v := range want {
		if math.Abs(global[i]-v) > 1e-9 {
			t.Errorf("global[%d] = %v, want %v", i, global[i], v)
		}
	}
}

// TestStitchContinuity checks property 6: after stitching, the mean
// difference between the stitched global values and the received
// values (pre-shift) over the overlap equals the applied scale, and
// the overlap positions themselves are left untouched (owned by the
// earlier window).
func TestStitchContinuity(t *testing.T) {
	bins := 10
	global := make([]float64, bins)
	received := make([]float64, bins)
	for i := range global {
		global[i] = float64(i + 1)
	}
	for i := 3; i < bins; i++ {
		received[i] = float64(i+1) + 9
	}

	window := partition.Window{Lo: 4, Hi: 10}
	beforeOverlap := append([]float64(nil), global[3:5]...)

	if err := Stitch(global, received, window, 2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The scale applied to the rest of the window, read back from the
	// first stitched position, must equal the mean overlap difference.
	scale := global[5] - received[5]
	var meanDiff float64
	for i, v := range beforeOverlap {
		meanDiff += v - received[3+i]
	}
	meanDiff /= float64(len(beforeOverlap))
	if math.Abs(meanDiff-scale) > 1e-9 {
		t.Errorf("mean overlap difference = %v, want applied scale %v", meanDiff, scale)
	}

	for i, v := range beforeOverlap {
		if global[3+i] != v {
			t.Errorf("overlap position %d changed: got %v, want %v", 3+i, global[3+i], v)
		}
	}
}

func TestStitchErrorWhenOverlapUnqualified(t *testing.T) {
	bins := 4
	global := make([]float64, bins)
	received := make([]float64, bins)
	window := partition.Window{Lo: 1, Hi: 4}

	err := Stitch(global, received, window, 2, 1)
	if err == nil {
		t.Fatal("expected a StitchError when no overlap position qualifies")
	}
}
