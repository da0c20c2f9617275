// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

// Writer persists a 1-D array of reals to a named path. status lets an
// implementation distinguish a fresh file from a superseding rewrite
// (both are idempotent with respect to the final DoS: every write
// supersedes the one before it). The sampler core writes three files
// per refinement event: wl_dos_bins.dat (the B+1 bin edges),
// wl_dos.dat (the stitched global log-DoS, B reals), and wl_hist.dat
// (a diagnostic per-refinement histogram snapshot, B reals).
type Writer interface {
	WriteArray1D(path, status string, array []float64) error
}
