// Copyright 2017, Kerby Shedden and the Muscato contributors.
//
// wldos_archive packages one refinement's checkpoint files (the DoS,
// histogram, and bin-edge arrays, plus the tail of the run log) into
// a single compressed archive named by run ID and refinement index.
// It is a post-hoc convenience invoked by hand when a checkpoint needs
// to ship off-box; it is never called from the sampling loop itself.
//
// wldos_archive <out-dir> <log-dir> <run-id> <refinement-index>
package main

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/scipipe/scipipe"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: wldos_archive <out-dir> <log-dir> <run-id> <refinement-index>")
		os.Exit(1)
	}

	outDir := os.Args[1]
	logDir := os.Args[2]
	runID := os.Args[3]
	refinement := os.Args[4]

	bundleDir := path.Join(outDir, runID)
	logPath := path.Join(logDir, runID, "wl.log")
	archiveName := fmt.Sprintf("%s_refinement_%s.tar.gz", runID, refinement)

	wf := scipipe.NewWorkflow("archive", 4)

	// Tail the run log so the bundle carries recent progress lines
	// without the whole (potentially large) history.
	lt := wf.NewProc("lt", fmt.Sprintf("tail -n 200 %s > {os:tail}", logPath))
	lt.SetPathStatic("tail", path.Join(bundleDir, "wl_log_tail.txt"))

	// Bundle the checkpoint files and the log tail into a tarball;
	// the tail's output port makes tp wait for lt to finish writing.
	tarCmd := fmt.Sprintf("tar -cf {os:tar} %s/wl_dos_bins.dat %s/wl_dos.dat %s/wl_hist.dat {i:intail}", bundleDir, bundleDir, bundleDir)
	tp := wf.NewProc("tp", tarCmd)
	tp.SetPathStatic("tar", path.Join(bundleDir, archiveName+".tar"))

	// Compress the tarball.
	gz := wf.NewProc("gz", "gzip -c {i:in} > {os:archive}")
	gz.SetPathStatic("archive", path.Join(bundleDir, archiveName))

	tp.In("intail").Connect(lt.Out("tail"))
	gz.In("in").Connect(tp.Out("tar"))

	wf.AddProcs(lt, tp, gz)
	wf.SetDriver(gz)
	wf.Run()

	log.Printf("wrote checkpoint archive %s", path.Join(bundleDir, archiveName))
}
