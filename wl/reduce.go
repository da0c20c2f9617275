// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import "github.com/kshedden/wldos/transport"

// WindowRoot returns the lowest rank belonging to windowRanks, which
// acts as the gather/scatter root for that window's intra-window
// reduction.
func WindowRoot(windowRanks []int) int {
	root := windowRanks[0]
	for _, r := range windowRanks[1:] {
		if r < root {
			root = r
		}
	}
	return root
}

// IntraWindowReduce averages logDos across every walker in
// windowRanks and leaves the result in logDos on every one of them.
// Sends and receives are tagged by tag (the caller supplies a tag
// unique to this window and reuses it every round), so the reducer
// never crosses window boundaries; successive rounds' messages between
// the same two ranks arrive in order. It is a two-phase gather/scatter: non-root
// walkers send to the root, the root averages, then the root
// broadcasts the mean back.
func IntraWindowReduce(t transport.Transport, windowRanks []int, logDos []float64, tag int) error {
	root := WindowRoot(windowRanks)
	rank := t.Rank()
	n := len(windowRanks)
	bins := len(logDos)

	if rank == root {
		sum := make([]float64, bins)
		copy(sum, logDos)

		recv := make([]float64, bins)
		for _, r := range windowRanks {
			if r == root {
				continue
			}
			if err := t.Recv(recv, r, tag); err != nil {
				return err
			}
			for i := range sum {
				sum[i] += recv[i]
			}
		}

		for i := range sum {
			sum[i] /= float64(n)
		}
		copy(logDos, sum)

		for _, r := range windowRanks {
			if r == root {
				continue
			}
			if err := t.Send(logDos, r, tag); err != nil {
				return err
			}
		}
		return nil
	}

	if err := t.Send(logDos, root, tag); err != nil {
		return err
	}
	return t.Recv(logDos, root, tag)
}

// GatherMinMax collects one float64 per rank in windowRanks (value, as
// measured by the caller on its own rank) to the window root and
// returns the min and max across the whole window. Non-root callers
// get back (0, 0, nil) since only the root needs the aggregate for
// progress reporting. It shares no traffic with IntraWindowReduce:
// callers must supply a distinct tag.
func GatherMinMax(t transport.Transport, windowRanks []int, value float64, tag int) (min, max float64, err error) {
	root := WindowRoot(windowRanks)
	rank := t.Rank()

	if rank != root {
		if err := t.Send([]float64{value}, root, tag); err != nil {
			return 0, 0, err
		}
		return 0, 0, nil
	}

	min, max = value, value
	buf := make([]float64, 1)
	for _, r := range windowRanks {
		if r == root {
			continue
		}
		if err := t.Recv(buf, r, tag); err != nil {
			return 0, 0, err
		}
		if buf[0] < min {
			min = buf[0]
		}
		if buf[0] > max {
			max = buf[0]
		}
	}
	return min, max, nil
}
