// Copyright 2017, Kerby Shedden and the Muscato contributors.

package utils

import (
	"encoding/json"
	"os"
)

// Config holds every option a run recognizes, whether supplied via a
// JSON config file or overridden on the command line.
type Config struct {

	// Number of energy bins spanning [EnergyMin, EnergyMax].
	Bins int

	// The lower and upper edges of the global energy range.
	EnergyMin float64
	EnergyMax float64

	// The number of overlapping windows the energy range is divided
	// into.
	NumWindows int

	// The number of bins each window extends past its share on either
	// side; adjacent windows share 2*BinOverlap bins.
	BinOverlap int

	// The number of walker processes. Must be a multiple of
	// NumWindows; NumProc/NumWindows walkers are assigned to each
	// window.
	NumProc int

	// The number of sweeps (NAtoms exchange trials each) attempted
	// between each flatness check.
	McSweeps int

	// The initial Wang-Landau refinement factor.
	WlF float64

	// The refinement factor value below which sampling stops.
	Tolerance float64

	// The histogram flatness threshold (min/mean count) required to
	// trigger a refinement.
	Flatness float64

	// Either "abs" or "zero", selecting how negative log-DoS entries
	// are resolved during rebasing. See wl.RebaseMode.
	RebaseMode string

	// Nominal sampling temperature, used only to log beta=1/T at
	// startup; the sampler core itself is temperature-independent.
	T float64

	// Multiple of NAtoms allowed as a burn-in trial budget before a
	// walker gives up drifting into its window.
	BurnInBudget int

	// Seed for the base random source; each rank's source is seeded
	// with BaseRandSeed+rank.
	BaseRandSeed int64

	// The base directory for the run log. By default the log is
	// written to wl_logs/<run-id>/wl.log in the local directory, where
	// the run id is a generated UUID.
	LogDir string

	// If true, a CPU profile is captured for the run and written
	// into LogDir.
	Profile bool

	// The directory where DoS and histogram output files are
	// written.
	OutDir string

	// The 4-D lattice extents and species count passed to the
	// bundled toy pair-interaction Setup fixture.
	NI, NJ, NK, NL int
	NSpecies       int
}

// ReadConfig loads a Config from a JSON file, panicking if the file
// cannot be opened or parsed.
func ReadConfig(filename string) *Config {
	fid, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer fid.Close()
	dec := json.NewDecoder(fid)
	config := new(Config)
	err = dec.Decode(config)
	if err != nil {
		panic(err)
	}

	return config
}
