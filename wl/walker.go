// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package wl implements the Wang-Landau sampling engine: the per-walker
// biased sweep, the burn-in drift into a window, the flatness and
// refinement schedule, and the intra-window/inter-window collective
// reductions that turn per-walker log-DoS estimates into one global
// curve.
package wl

import (
	"github.com/kshedden/wldos/lattice"
	"github.com/kshedden/wldos/partition"
)

// Walker is one independent random walker: a private configuration, a
// view of the global log-DoS, and the local histogram it accumulates
// while sampling inside its assigned window.
type Walker struct {
	Rank     int
	WindowID int
	Window   partition.Window

	Setup  lattice.Setup
	RNG    lattice.Source
	Config *lattice.Configuration
	Shells *lattice.Shells

	Bins  int
	Edges []float64

	// LogDos[i] is this walker's running log g(E) estimate for
	// global bin i+1. Updated only for bins inside Window by this
	// walker's own sweeps, but holds a value for every global bin
	// because refinement broadcasts the averaged window estimate
	// into the same slice.
	LogDos []float64

	// Hist[j] counts visits to global bin Window.Lo+j during the
	// current refinement round. Reset to zero at every refinement.
	Hist []float64

	F float64

	// firstReset latches true the first time the seeding histogram
	// threshold is crossed; until then no flatness check fires.
	firstReset bool

	// Energy is the walker's current total lattice energy, tracked
	// alongside Config so the sweep kernel and burn-in driver evaluate
	// FullEnergy only for the proposed configuration of each trial.
	Energy float64

	// Fingerprint and Visited are diagnostic-only companions to the
	// histogram; neither participates in the flatness criterion.
	// Both are nil until the orchestrator installs them.
	Fingerprint *ConfigFingerprint
	Visited     *VisitedBins
}

// NewWalker allocates a walker assigned to window w, with a private
// configuration built from setup.
func NewWalker(rank, windowID int, w partition.Window, bins int, edges []float64, setup lattice.Setup, rng lattice.Source, initialF float64) *Walker {
	return &Walker{
		Rank:     rank,
		WindowID: windowID,
		Window:   w,
		Setup:    setup,
		RNG:      rng,
		Bins:     bins,
		Edges:    edges,
		LogDos:   make([]float64, bins),
		Hist:     make([]float64, w.Hi-w.Lo+1),
		F:        initialF,
	}
}

// SetConfig installs the walker's private lattice configuration and
// its precomputed neighbor shells, then records its initial energy.
func (w *Walker) SetConfig(config *lattice.Configuration, shells *lattice.Shells) {
	w.Config = config
	w.Shells = shells
	w.Energy = w.Setup.FullEnergy(config, shells)
}

// histIndex converts a global bin index (1-based) inside the walker's
// window into a Hist slice offset.
func (w *Walker) histIndex(bin int) int {
	return bin - w.Window.Lo
}

// InWindow reports whether a global bin index lies inside the
// walker's assigned window.
func (w *Walker) InWindow(bin int) bool {
	return bin >= w.Window.Lo && bin <= w.Window.Hi
}

// resetHistogram zeroes the local histogram. Called at every
// refinement event; the very next sweep batch starts from zero
// counts, satisfying the reset-atomicity property.
func (w *Walker) resetHistogram() {
	for i := range w.Hist {
		w.Hist[i] = 0
	}
}
