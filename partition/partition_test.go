// Copyright 2017, Kerby Shedden and the Muscato contributors.

package partition

import "testing"

func TestWindowIndicesS1(t *testing.T) {
	windows, err := WindowIndices(12, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Window{{1, 5}, {4, 9}, {8, 12}}
	if len(windows) != len(want) {
		t.Fatalf("got %d windows, want %d", len(windows), len(want))
	}
	for i, w := range want {
		if windows[i] != w {
			t.Errorf("window %d: got %+v, want %+v", i, windows[i], w)
		}
	}
}

// TestWindowIndicesCoverage checks property 1: every bin in [1, bins]
// is covered by at least one window, and every interior boundary bin
// is covered by exactly two.
func TestWindowIndicesCoverage(t *testing.T) {
	bins, numWindows, overlap := 12, 3, 1
	windows, err := WindowIndices(bins, numWindows, overlap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := make([]int, bins+1)
	for _, w := range windows {
		for b := w.Lo; b <= w.Hi; b++ {
			count[b]++
		}
	}
	for b := 1; b <= bins; b++ {
		if count[b] == 0 {
			t.Errorf("bin %d is not covered by any window", b)
		}
	}
	// Every bin inside an overlap region must be covered by exactly
	// two windows.
	for i := 0; i < len(windows)-1; i++ {
		for b := windows[i+1].Lo; b <= windows[i].Hi; b++ {
			if count[b] != 2 {
				t.Errorf("overlap bin %d covered %d times, want 2", b, count[b])
			}
		}
	}
}

func TestWindowIndicesRejectsBadConfig(t *testing.T) {
	if _, err := WindowIndices(12, 0, 1); err == nil {
		t.Error("expected error for num_windows < 1")
	}
	if _, err := WindowIndices(2, 3, 1); err == nil {
		t.Error("expected error for bins < num_windows")
	}
	if _, err := WindowIndices(12, 3, 4); err == nil {
		t.Error("expected error for overlap >= window width")
	}
}

func TestBinIndexS2(t *testing.T) {
	edges := []float64{0, 1, 2, 3, 4}
	if got := BinIndex(0.5, edges, 4); got != 1 {
		t.Errorf("bin_index(0.5) = %d, want 1", got)
	}
	if got := BinIndex(3.999, edges, 4); got != 4 {
		t.Errorf("bin_index(3.999) = %d, want 4", got)
	}
}

// TestBinIndexRoundTrip checks property 2: for every bin edge, a value
// just above the edge maps onto the bin starting at that edge.
func TestBinIndexRoundTrip(t *testing.T) {
	edges := []float64{0, 1, 2, 3, 4, 5, 6}
	bins := len(edges) - 1
	eps := 1e-9
	for i := 0; i < bins; i++ {
		got := BinIndex(edges[i]+eps, edges, bins)
		if got != i+1 {
			t.Errorf("bin_index(edge[%d]+eps) = %d, want %d", i, got, i+1)
		}
	}
}

func TestDivideRange(t *testing.T) {
	windows, err := DivideRange(10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Window{{1, 4}, {5, 7}, {8, 10}}
	for i, w := range want {
		if windows[i] != w {
			t.Errorf("chunk %d: got %+v, want %+v", i, windows[i], w)
		}
	}
}
