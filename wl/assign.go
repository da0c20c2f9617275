// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import "github.com/kshedden/wldos/wlerrors"

// Assignment maps num_proc ranks onto num_windows windows of N_w =
// num_proc/num_windows walkers each: rank r belongs to window r/N_w,
// and every window's root is the lowest rank it contains. Window 0
// always contains the global root (rank 0), which is why window 0's
// contribution never needs to travel over the transport: the global
// root is also its root.
type Assignment struct {
	NumProc    int
	NumWindows int
	PerWindow  int
}

// NewAssignment validates num_proc and num_windows against the W x N_w
// = num_proc invariant and returns an Assignment, or a *wlerrors.ConfigError
// if the invariant cannot be satisfied.
func NewAssignment(numProc, numWindows int) (Assignment, error) {
	if numWindows < 1 {
		return Assignment{}, wlerrors.NewConfigError("num_windows must be at least 1, got %d", numWindows)
	}
	if numProc%numWindows != 0 {
		return Assignment{}, wlerrors.NewConfigError("num_proc (%d) is not divisible by num_windows (%d)", numProc, numWindows)
	}
	return Assignment{NumProc: numProc, NumWindows: numWindows, PerWindow: numProc / numWindows}, nil
}

// WindowOf returns the window index (0-based) rank belongs to.
func (a Assignment) WindowOf(rank int) int {
	return rank / a.PerWindow
}

// RanksOf returns every rank belonging to window w (0-based), in
// ascending order; the first element is that window's root.
func (a Assignment) RanksOf(w int) []int {
	ranks := make([]int, a.PerWindow)
	base := w * a.PerWindow
	for i := range ranks {
		ranks[i] = base + i
	}
	return ranks
}

// RootOf returns the root rank of window w (0-based).
func (a Assignment) RootOf(w int) int {
	return w * a.PerWindow
}
