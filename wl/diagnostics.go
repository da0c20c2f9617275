// Copyright 2017, Kerby Shedden and the Muscato contributors.

package wl

import (
	"encoding/binary"
	"math/rand"

	"github.com/chmduquesne/rollinghash"
	"github.com/chmduquesne/rollinghash/buzhash32"
	"github.com/golang-collections/go-datastructures/bitarray"
)

// newFingerprintTable builds the buzhash byte table behind one walker's
// configuration fingerprint. A single table is enough here: a Bloom
// filter needs several independent hashes to control its
// false-positive rate, but the fingerprint is a diagnostic value
// logged for humans, not a set membership test.
func newFingerprintTable(seed int64) [256]uint32 {
	r := rand.New(rand.NewSource(seed))
	var table [256]uint32
	seen := make(map[uint32]bool, 256)
	for i := range table {
		for {
			x := uint32(r.Int63())
			if !seen[x] {
				table[i] = x
				seen[x] = true
				break
			}
		}
	}
	return table
}

// ConfigFingerprint computes a cheap rolling hash over a configuration's
// species array, logged periodically so duplicate or stuck
// configurations are visible in the run log without paying for a full
// configuration dump.
type ConfigFingerprint struct {
	hash rollinghash.Hash32
	buf  []byte
}

// NewConfigFingerprint builds a fingerprinter seeded for one rank, so
// every walker's rolling-hash table is independent.
func NewConfigFingerprint(rank int64) *ConfigFingerprint {
	table := newFingerprintTable(rank)
	return &ConfigFingerprint{hash: buzhash32.NewFromUint32Array(table)}
}

// Sum reports the fingerprint of species, a walker's current
// configuration's species array.
func (f *ConfigFingerprint) Sum(species []int) uint32 {
	if cap(f.buf) < len(species)*4 {
		f.buf = make([]byte, len(species)*4)
	}
	f.buf = f.buf[:len(species)*4]
	for i, s := range species {
		binary.LittleEndian.PutUint32(f.buf[i*4:], uint32(s))
	}
	f.hash.Reset()
	f.hash.Write(f.buf)
	return f.hash.Sum32()
}

// VisitedBins is a compact "bins ever visited during this refinement
// round" bitset, kept purely for diagnostic coverage reporting
// alongside the local histogram; it plays no role in the flatness
// criterion itself.
type VisitedBins struct {
	bits bitarray.BitArray
}

// NewVisitedBins allocates a bitset sized for bins global energy bins.
func NewVisitedBins(bins int) *VisitedBins {
	return &VisitedBins{bits: bitarray.NewBitArray(uint64(bins))}
}

// Mark records a visit to global bin (1-based).
func (v *VisitedBins) Mark(bin int) {
	v.bits.SetBit(uint64(bin - 1))
}

// Reset clears every bit, called alongside the local histogram reset
// at each refinement.
func (v *VisitedBins) Reset() {
	v.bits.Reset()
}

// Count returns the number of bins marked visited.
func (v *VisitedBins) Count() int {
	return len(v.bits.ToNums())
}
