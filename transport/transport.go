// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package transport abstracts the rank/size/send/recv/barrier
// substrate the sampler's collective operations ride on. The sampler
// core never depends on a concrete transport; it only calls through
// this interface, so a distributed implementation (MPI, gRPC) can
// replace the in-process one here without touching the sampler.
package transport

import "github.com/kshedden/wldos/wlerrors"

// Transport is the messaging substrate one rank uses to participate
// in the sampler's collective operations. Message tags uniquely
// identify (window id, phase) pairs; a Recv posted with tag T matches
// only a Send with tag T from the expected source rank, so concurrent
// traffic belonging to different windows never interleaves.
type Transport interface {
	// Size is the total number of ranks in the run.
	Size() int

	// Rank is this transport's own rank, in [0, Size()).
	Rank() int

	// Send posts buf to dst under tag. It may return before the
	// matching Recv has consumed the message; buf may be reused once
	// Send returns.
	Send(buf []float64, dst, tag int) error

	// Recv fills buf from src under tag. Blocks until a matching Send
	// arrives. len(buf) must equal the sender's buffer length.
	Recv(buf []float64, src, tag int) error

	// Barrier blocks until every rank has called Barrier.
	Barrier()
}

// errTransport wraps a lower-level cause as a *wlerrors.TransportError
// tagged with the operation that failed.
func errTransport(op string, cause error) error {
	return wlerrors.NewTransportError(op, cause)
}
