// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kshedden/wldos/internal/rng"
	"github.com/kshedden/wldos/lattice"
	"github.com/kshedden/wldos/partition"
	"github.com/kshedden/wldos/transport"
)

// RunConfig collects the parameters the orchestrator needs for one
// run; it is the WL-specific subset of a loaded utils.Config.
type RunConfig struct {
	NumProc       int
	NumWindows    int
	BinOverlap    int
	Bins          int
	Edges         []float64
	McSweeps      int
	WlF           float64
	Tolerance     float64
	Flatness      float64
	RebaseMode    RebaseMode
	BurnInBudget  int // multiple of NAtoms allowed before burn-in gives up
	BaseRandSeed  int64
}

// windowReport is what a window's root sends to the global root after
// each refinement: the averaged log-DoS view (length Bins, meaningful
// only inside the window), a histogram snapshot placed at the same
// global positions (diagnostic only), the reporting walker's flatness
// at the moment of refinement, and this window's min/max per-round
// wall-clock time.
type windowReport struct {
	LogDos   []float64
	Hist     []float64
	Flatness float64
	MinTime  float64
	MaxTime  float64
}

// tag bases keep each window's traffic, and each kind of traffic,
// on disjoint (src,dst,tag) channels.
const (
	tagIntraBase  = 1000
	tagTimingBase = 2000
	tagInterBase  = 3000
)

func tagIntra(window int) int  { return tagIntraBase + window }
func tagTiming(window int) int { return tagTimingBase + window }
func tagInter(window int) int  { return tagInterBase + window }

// Run executes one complete WL sampling run to completion: it
// allocates walkers across windows, drives each one through burn-in
// and the sweep/refine loop, and on the global root assembles and
// writes the stitched global DoS after every refinement. It returns
// the first error reported by any rank (a *wlerrors.ConfigError,
// *wlerrors.StitchError, or *wlerrors.TransportError), at which point
// every other rank's goroutine is canceled via the run's errgroup.
// progress receives one line per refinement (f, flatness, min/max
// wall time) in addition to the same line going to logger.
func Run(ctx context.Context, cfg RunConfig, setup lattice.Setup, writer Writer, logger *log.Logger, progress io.Writer) error {
	assignment, err := NewAssignment(cfg.NumProc, cfg.NumWindows)
	if err != nil {
		return err
	}
	windows, err := partition.WindowIndices(cfg.Bins, cfg.NumWindows, cfg.BinOverlap)
	if err != nil {
		return err
	}

	rounds := NumRefinements(cfg.WlF, cfg.Tolerance)
	views := transport.NewHub(cfg.NumProc)

	g, gctx := errgroup.WithContext(ctx)
	window0Reports := make(chan windowReport, 1)

	for rank := 0; rank < cfg.NumProc; rank++ {
		rank := rank
		g.Go(func() error {
			return runWalker(gctx, rank, assignment, windows, views[rank], setup, cfg, window0Reports, logger)
		})
	}

	g.Go(func() error {
		return stitchLoop(gctx, assignment, windows, views[0], cfg, rounds, window0Reports, writer, logger, progress)
	})

	return g.Wait()
}

// runWalker is the per-rank body every walker goroutine executes:
// allocate, burn in, then repeat sweep-until-flat / reduce / report
// for as many rounds as the f schedule requires.
func runWalker(ctx context.Context, rank int, assignment Assignment, windows []partition.Window, t transport.Transport, setup lattice.Setup, cfg RunConfig, window0Reports chan<- windowReport, logger *log.Logger) error {
	windowID := assignment.WindowOf(rank)
	window := windows[windowID]

	source := rng.New(cfg.BaseRandSeed + int64(rank))
	walker := NewWalker(rank, windowID, window, cfg.Bins, cfg.Edges, setup, source, cfg.WlF)
	walker.Fingerprint = NewConfigFingerprint(cfg.BaseRandSeed + int64(rank))
	walker.Visited = NewVisitedBins(cfg.Bins)

	config := setup.NewConfiguration()
	if err := setup.InitialSetup(config, source); err != nil {
		return err
	}
	shells, err := setup.LatticeShells(config)
	if err != nil {
		return err
	}
	walker.SetConfig(config, shells)

	minE := cfg.Edges[window.Lo-1]
	maxE := cfg.Edges[window.Hi]
	BurnIn(walker, minE, maxE, cfg.BurnInBudget*setup.NAtoms())

	t.Barrier()

	windowRanks := assignment.RanksOf(windowID)
	rounds := NumRefinements(cfg.WlF, cfg.Tolerance)

	for round := 0; round < rounds; round++ {
		start := time.Now()
		for {
			Sweep(walker, cfg.McSweeps)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if walker.ShouldRefine(cfg.Flatness) {
				break
			}
		}
		elapsed := time.Since(start).Seconds()

		histSnapshot := make([]float64, cfg.Bins)
		for j, h := range walker.Hist {
			histSnapshot[window.Lo-1+j] = h
		}
		flatness := walker.Flatness()

		logger.Printf("rank %d window %d round %d: fingerprint=%08x bins_visited=%d/%d", rank, windowID, round, walker.Fingerprint.Sum(walker.Config.Species), walker.Visited.Count(), window.Hi-window.Lo+1)

		walker.Refine()
		walker.Rebase(cfg.RebaseMode)

		if err := IntraWindowReduce(t, windowRanks, walker.LogDos, tagIntra(windowID)); err != nil {
			return err
		}
		minT, maxT, err := GatherMinMax(t, windowRanks, elapsed, tagTiming(windowID))
		if err != nil {
			return err
		}

		if rank != WindowRoot(windowRanks) {
			continue
		}

		report := windowReport{
			LogDos:   append([]float64(nil), walker.LogDos...),
			Hist:     histSnapshot,
			Flatness: flatness,
			MinTime:  minT,
			MaxTime:  maxT,
		}

		if windowID == 0 {
			window0Reports <- report
			continue
		}

		if err := t.Send(report.LogDos, 0, tagInter(windowID)); err != nil {
			return err
		}
		if err := t.Send(report.Hist, 0, tagInter(windowID)+reportHistOffset); err != nil {
			return err
		}
		if err := t.Send([]float64{report.Flatness, report.MinTime, report.MaxTime}, 0, tagInter(windowID)+reportTimeOffset); err != nil {
			return err
		}
	}

	return nil
}

// reportHistOffset and reportTimeOffset separate a window report's
// three payloads onto disjoint tags, each still namespaced by window
// via tagInter.
const (
	reportHistOffset = 100000
	reportTimeOffset = 200000
)

// stitchLoop runs on the global root only: for every round, it waits
// for window 0's own report (handed off in-process, since the global
// root is window 0's root and needs no transport hop to talk to
// itself), then receives every other window's report over the
// transport, stitches them onto the running global buffer in window
// order, and writes the three output files.
func stitchLoop(ctx context.Context, assignment Assignment, windows []partition.Window, t transport.Transport, cfg RunConfig, rounds int, window0Reports <-chan windowReport, writer Writer, logger *log.Logger, progress io.Writer) error {
	global := make([]float64, cfg.Bins)
	globalHist := make([]float64, cfg.Bins)

	if err := writer.WriteArray1D("wl_dos_bins.dat", "initial", cfg.Edges); err != nil {
		return err
	}

	for round := 0; round < rounds; round++ {
		var w0 windowReport
		select {
		case w0 = <-window0Reports:
		case <-ctx.Done():
			return ctx.Err()
		}

		w := windows[0]
		copy(global[w.Lo-1:w.Hi], w0.LogDos[w.Lo-1:w.Hi])
		copy(globalHist[w.Lo-1:w.Hi], w0.Hist[w.Lo-1:w.Hi])
		minT, maxT := w0.MinTime, w0.MaxTime
		minFlatness := w0.Flatness

		for windowID := 1; windowID < assignment.NumWindows; windowID++ {
			root := assignment.RootOf(windowID)

			logDos := make([]float64, cfg.Bins)
			if err := t.Recv(logDos, root, tagInter(windowID)); err != nil {
				return err
			}
			hist := make([]float64, cfg.Bins)
			if err := t.Recv(hist, root, tagInter(windowID)+reportHistOffset); err != nil {
				return err
			}
			times := make([]float64, 3)
			if err := t.Recv(times, root, tagInter(windowID)+reportTimeOffset); err != nil {
				return err
			}

			if err := Stitch(global, logDos, windows[windowID], cfg.BinOverlap, cfg.Tolerance); err != nil {
				return err
			}
			win := windows[windowID]
			copy(globalHist[win.Lo-1:win.Hi], hist[win.Lo-1:win.Hi])

			flatness, winMinT, winMaxT := times[0], times[1], times[2]
			if flatness < minFlatness {
				minFlatness = flatness
			}
			if winMinT < minT {
				minT = winMinT
			}
			if winMaxT > maxT {
				maxT = winMaxT
			}
		}

		f := cfg.WlF / math.Pow(2, float64(round+1))

		if err := writer.WriteArray1D("wl_dos.dat", "refinement", global); err != nil {
			return err
		}
		if err := writer.WriteArray1D("wl_hist.dat", "refinement", globalHist); err != nil {
			return err
		}

		line := fmt.Sprintf("refinement %d/%d: f=%g flatness=%.4f min_time=%.3fs max_time=%.3fs", round+1, rounds, f, minFlatness, minT, maxT)
		logger.Print(line)
		if progress != nil {
			fmt.Fprintln(progress, line)
		}
	}

	return nil
}
