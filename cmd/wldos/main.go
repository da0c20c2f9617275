// Copyright 2017, Kerby Shedden and the Muscato contributors.
//
// wldos runs a parallel Wang-Landau density-of-states sampler over a
// multi-component lattice alloy.
//
// A run is configured from a JSON config file, command-line flags, or
// both; flags override individual fields loaded from the file. A
// typical invocation using flags is:
//
// wldos --Bins=200 --EnergyMin=-50 --EnergyMax=50 --NumWindows=4 --BinOverlap=5
//
//	--NumProc=16 --McSweeps=1 --WlF=2 --Tolerance=1e-8 --Flatness=0.8
//
// To use a JSON config file:
//
// wldos --ConfigFileName=config.json
//
// Output (wl_dos_bins.dat, wl_dos.dat, wl_hist.dat) is written to
// OutDir/<run-id>; run logs go to LogDir/<run-id>/wl.log.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/kshedden/wldos/lattice"
	"github.com/kshedden/wldos/utils"
	"github.com/kshedden/wldos/wl"
	"github.com/kshedden/wldos/wlerrors"
)

var (
	configFilePath string
	config         *utils.Config
	logger         *log.Logger
)

func handleArgs() {
	ConfigFileName := flag.String("ConfigFileName", "", "JSON file containing configuration parameters")
	Bins := flag.Int("Bins", 0, "Number of energy bins")
	EnergyMin := flag.Float64("EnergyMin", 0, "Lower edge of the global energy range")
	EnergyMax := flag.Float64("EnergyMax", 0, "Upper edge of the global energy range")
	NumWindows := flag.Int("NumWindows", 0, "Number of overlapping energy windows")
	BinOverlap := flag.Int("BinOverlap", 0, "Number of bins each window extends past its share on either side")
	NumProc := flag.Int("NumProc", 0, "Number of walker goroutines")
	McSweeps := flag.Int("McSweeps", 0, "Number of sweeps per flatness check")
	WlF := flag.Float64("WlF", 0, "Initial refinement factor")
	Tolerance := flag.Float64("Tolerance", 0, "Refinement factor termination threshold")
	Flatness := flag.Float64("Flatness", 0, "Histogram flatness ratio required to trigger refinement")
	RebaseMode := flag.String("RebaseMode", "", "'abs' or 'zero'")
	T := flag.Float64("T", 0, "Nominal sampling temperature (diagnostic only)")
	BurnInBudget := flag.Int("BurnInBudget", 0, "Multiple of NAtoms allowed as a burn-in trial budget")
	BaseRandSeed := flag.Int64("BaseRandSeed", 0, "Seed for rank 0's random source")
	LogDir := flag.String("LogDir", "", "Base directory for per-run logs")
	OutDir := flag.String("OutDir", "", "Directory for DoS and histogram output files")
	Profile := flag.Bool("Profile", false, "Capture a CPU profile for the run")
	NI := flag.Int("NI", 0, "Lattice extent along the I axis")
	NJ := flag.Int("NJ", 0, "Lattice extent along the J axis")
	NK := flag.Int("NK", 0, "Lattice extent along the K axis")
	NL := flag.Int("NL", 0, "Lattice extent along the L axis")
	NSpecies := flag.Int("NSpecies", 0, "Number of distinct species")

	flag.Parse()

	if *ConfigFileName != "" {
		config = utils.ReadConfig(*ConfigFileName)
	} else {
		config = new(utils.Config)
	}

	if *Bins != 0 {
		config.Bins = *Bins
	}
	if *EnergyMin != 0 {
		config.EnergyMin = *EnergyMin
	}
	if *EnergyMax != 0 {
		config.EnergyMax = *EnergyMax
	}
	if *NumWindows != 0 {
		config.NumWindows = *NumWindows
	}
	if *BinOverlap != 0 {
		config.BinOverlap = *BinOverlap
	}
	if *NumProc != 0 {
		config.NumProc = *NumProc
	}
	if *McSweeps != 0 {
		config.McSweeps = *McSweeps
	}
	if *WlF != 0 {
		config.WlF = *WlF
	}
	if *Tolerance != 0 {
		config.Tolerance = *Tolerance
	}
	if *Flatness != 0 {
		config.Flatness = *Flatness
	}
	if *RebaseMode != "" {
		config.RebaseMode = *RebaseMode
	}
	if *T != 0 {
		config.T = *T
	}
	if *BurnInBudget != 0 {
		config.BurnInBudget = *BurnInBudget
	}
	if *BaseRandSeed != 0 {
		config.BaseRandSeed = *BaseRandSeed
	}
	if *LogDir != "" {
		config.LogDir = *LogDir
	}
	if *OutDir != "" {
		config.OutDir = *OutDir
	}
	if *Profile {
		config.Profile = true
	}
	if *NI != 0 {
		config.NI = *NI
	}
	if *NJ != 0 {
		config.NJ = *NJ
	}
	if *NK != 0 {
		config.NK = *NK
	}
	if *NL != 0 {
		config.NL = *NL
	}
	if *NSpecies != 0 {
		config.NSpecies = *NSpecies
	}

	if config.NI == 0 {
		config.NI = config.Bins
	}
	if config.NJ == 0 {
		config.NJ = 1
	}
	if config.NK == 0 {
		config.NK = 1
	}
	if config.NL == 0 {
		config.NL = 1
	}
	if config.NSpecies == 0 {
		config.NSpecies = 2
	}

	if config.LogDir == "" {
		config.LogDir = "wl_logs"
	}
	if config.OutDir == "" {
		config.OutDir = "wl_out"
	}
	if config.McSweeps == 0 {
		config.McSweeps = 1
	}
	if config.RebaseMode == "" {
		config.RebaseMode = string(wl.RebaseAbs)
	}
	if config.BurnInBudget == 0 {
		config.BurnInBudget = 10
	}
}

// checkConfig validates the loaded configuration and returns a
// *wlerrors.ConfigError describing the first problem found, or nil.
func checkConfig() error {
	if config.NumProc == 0 || config.NumWindows == 0 {
		return wlerrors.NewConfigError("NumProc and NumWindows must both be set")
	}
	if config.NumProc%config.NumWindows != 0 {
		return wlerrors.NewConfigError("NumProc (%d) must be a multiple of NumWindows (%d)", config.NumProc, config.NumWindows)
	}
	if config.Bins < config.NumWindows {
		return wlerrors.NewConfigError("Bins (%d) must be at least NumWindows (%d)", config.Bins, config.NumWindows)
	}
	if config.WlF <= 1 {
		return wlerrors.NewConfigError("WlF must be greater than 1, got %g", config.WlF)
	}
	if config.Tolerance <= 0 {
		return wlerrors.NewConfigError("Tolerance must be positive, got %g", config.Tolerance)
	}
	if config.Flatness <= 0 || config.Flatness >= 1 {
		return wlerrors.NewConfigError("Flatness must be in (0, 1), got %g", config.Flatness)
	}
	return nil
}

func makeRunDirs(runID string) {
	config.LogDir = path.Join(config.LogDir, runID)
	if err := os.MkdirAll(config.LogDir, os.ModePerm); err != nil {
		panic(err)
	}
	config.OutDir = path.Join(config.OutDir, runID)
	if err := os.MkdirAll(config.OutDir, os.ModePerm); err != nil {
		panic(err)
	}
}

// saveConfig records the fully-resolved configuration (JSON file
// values merged with flag overrides) next to the run's log file, so a
// run can always be reproduced from its own log directory.
func saveConfig(filePath string) error {
	fid, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer fid.Close()
	enc := json.NewEncoder(fid)
	enc.SetIndent("", "  ")
	return enc.Encode(config)
}

func setupLog() {
	logname := path.Join(config.LogDir, "wl.log")
	fid, err := os.Create(logname)
	if err != nil {
		panic(err)
	}
	logger = log.New(fid, "", log.Ltime)
}

func buildEdges() []float64 {
	edges := make([]float64, config.Bins+1)
	width := (config.EnergyMax - config.EnergyMin) / float64(config.Bins)
	for i := range edges {
		edges[i] = config.EnergyMin + float64(i)*width
	}
	return edges
}

func main() {
	handleArgs()

	if err := checkConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n\nrun 'wldos --help' for more information.\n\n", err)
		os.Exit(0)
	}

	xuid, err := uuid.NewUUID()
	if err != nil {
		panic(err)
	}
	runID := xuid.String()
	makeRunDirs(runID)
	setupLog()

	configFilePath = path.Join(config.LogDir, "config.json")
	if err := saveConfig(configFilePath); err != nil {
		logger.Fatalf("failed to record config: %v", err)
	}

	if config.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(config.LogDir)).Stop()
	}

	writer, err := wl.NewFileWriter(config.OutDir)
	if err != nil {
		logger.Fatalf("failed to create output writer: %v", err)
	}

	setup := lattice.NewToyPairSetup(config.NI, config.NJ, config.NK, config.NL, config.NSpecies)

	runCfg := wl.RunConfig{
		NumProc:      config.NumProc,
		NumWindows:   config.NumWindows,
		BinOverlap:   config.BinOverlap,
		Bins:         config.Bins,
		Edges:        buildEdges(),
		McSweeps:     config.McSweeps,
		WlF:          config.WlF,
		Tolerance:    config.Tolerance,
		Flatness:     config.Flatness,
		RebaseMode:   wl.RebaseMode(config.RebaseMode),
		BurnInBudget: config.BurnInBudget,
		BaseRandSeed: config.BaseRandSeed,
	}

	logger.Printf("starting run %s: bins=%d windows=%d proc=%d", runID, config.Bins, config.NumWindows, config.NumProc)
	if config.T != 0 {
		logger.Printf("nominal temperature T=%g, beta=1/T=%g (diagnostic only, not used by the sampler)", config.T, 1/config.T)
	}

	if err := wl.Run(context.Background(), runCfg, setup, writer, logger, os.Stdout); err != nil {
		logger.Printf("run failed: %v", err)
		os.Exit(1)
	}

	logger.Printf("run %s complete, config recorded at %s", runID, configFilePath)
}
