// Copyright 2017, Kerby Shedden and the Muscato contributors.

package utils

import (
	"encoding/json"
	"os"
	"path"
	"testing"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	fname := path.Join(dir, "config.json")

	want := &Config{
		Bins:       100,
		EnergyMin:  -10,
		EnergyMax:  10,
		NumWindows: 4,
		BinOverlap: 3,
		NumProc:    8,
		McSweeps:   2,
		WlF:        1.0,
		Tolerance:  1e-8,
		Flatness:   0.8,
		RebaseMode: "abs",
	}

	fid, err := os.Create(fname)
	if err != nil {
		t.Fatalf("could not create fixture: %v", err)
	}
	if err := json.NewEncoder(fid).Encode(want); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}
	fid.Close()

	got := ReadConfig(fname)
	if *got != *want {
		t.Fatalf("ReadConfig() = %+v, want %+v", *got, *want)
	}
}

// TestOverridePrecedence checks property 7: a flag-supplied field
// always overrides the same field loaded from a JSON config file,
// following the same "zero value means not provided" convention
// cmd/wldos's handleArgs uses for every flag.
func TestOverridePrecedence(t *testing.T) {
	dir := t.TempDir()
	fname := path.Join(dir, "config.json")
	fileConfig := &Config{Bins: 100, NumWindows: 2}

	fid, err := os.Create(fname)
	if err != nil {
		t.Fatalf("could not create fixture: %v", err)
	}
	if err := json.NewEncoder(fid).Encode(fileConfig); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}
	fid.Close()

	config := ReadConfig(fname)

	flagBins := 200     // simulates a user-supplied --Bins=200
	flagWindows := 0     // simulates an absent --NumWindows flag

	if flagBins != 0 {
		config.Bins = flagBins
	}
	if flagWindows != 0 {
		config.NumWindows = flagWindows
	}

	if config.Bins != 200 {
		t.Errorf("Bins = %d, want 200 (flag should override file value)", config.Bins)
	}
	if config.NumWindows != 2 {
		t.Errorf("NumWindows = %d, want 2 (file value should survive an absent flag)", config.NumWindows)
	}
}
