// Copyright 2013 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package bloom implements Bloom filters.
package bloom

import (
	"fmt"

	"github.com/shaledb/shale/internal/base"
)

// hash implements a hashing algorithm similar to the Murmur hash. It is
// the same hash used by the original block-based table format, so filters
// built by either implementation are interchangeable.
func hash(b []byte) uint32 {
	const (
		seed = 0xbc9f1d34
		m    = 0xc6a4a793
	)
	h := uint32(seed) ^ (uint32(len(b)) * m)
	for ; len(b) >= 4; b = b[4:] {
		h += uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		h *= m
		h ^= h >> 16
	}
	switch len(b) {
	case 3:
		h += uint32(b[2]) << 16
		fallthrough
	case 2:
		h += uint32(b[1]) << 8
		fallthrough
	case 1:
		h += uint32(b[0])
		h *= m
		h ^= h >> 24
	}
	return h
}

// FilterPolicy implements the base.FilterPolicy interface from the internal
// base package. The integer value gives the number of bits used per key.
//
// The policy name does not encode the bits per key: filters built with
// different bit counts remain readable by a policy of the same name.
type FilterPolicy int

var _ base.FilterPolicy = FilterPolicy(0)

// Name implements the base.FilterPolicy interface.
func (p FilterPolicy) Name() string {
	return "shale.BuiltinBloomFilter"
}

// String implements fmt.Stringer, describing the policy and its sizing for
// diagnostic output.
func (p FilterPolicy) String() string {
	return fmt.Sprintf("%s: %d bits per key", p.Name(), int(p))
}

// BitsPerKey returns the number of filter bits used per key.
func (p FilterPolicy) BitsPerKey() int { return int(p) }

// MayContain implements the base.FilterPolicy interface.
func (p FilterPolicy) MayContain(filter, key []byte) bool {
	if len(filter) < 2 {
		return false
	}
	n := len(filter) - 1
	nBits := uint32(n * 8)
	k := filter[n]
	if k > 30 {
		// Reserved for potentially new encodings. Treat as a match.
		return true
	}
	h := hash(key)
	delta := h>>17 | h<<15
	for j := uint8(0); j < k; j++ {
		bitPos := h % nBits
		if filter[bitPos/8]&(1<<(bitPos%8)) == 0 {
			return false
		}
		h += delta
	}
	return true
}

// NewWriter implements the base.FilterPolicy interface.
func (p FilterPolicy) NewWriter() base.FilterWriter {
	w := &filterWriter{
		bitsPerKey: int(p),
		numProbes:  uint8(int(p) * 69 / 100), // ~ bitsPerKey * ln(2)
	}
	if w.numProbes < 1 {
		w.numProbes = 1
	}
	if w.numProbes > 30 {
		w.numProbes = 30
	}
	return w
}

type filterWriter struct {
	bitsPerKey int
	numProbes  uint8
	hashes     []uint32
}

var _ base.FilterWriter = (*filterWriter)(nil)

// AddKey implements the base.FilterWriter interface.
func (w *filterWriter) AddKey(key []byte) {
	w.hashes = append(w.hashes, hash(key))
}

// Finish implements the base.FilterWriter interface.
func (w *filterWriter) Finish(buf []byte) []byte {
	// For small n, a tiny filter would have a very high false positive
	// rate. Enforce a minimum length.
	nBits := len(w.hashes) * w.bitsPerKey
	if nBits < 64 {
		nBits = 64
	}
	nBytes := (nBits + 7) / 8
	nBits = nBytes * 8

	start := len(buf)
	buf = append(buf, make([]byte, nBytes+1)...)
	filter := buf[start:]
	for _, h := range w.hashes {
		delta := h>>17 | h<<15
		for j := uint8(0); j < w.numProbes; j++ {
			bitPos := h % uint32(nBits)
			filter[bitPos/8] |= 1 << (bitPos % 8)
			h += delta
		}
	}
	filter[nBytes] = w.numProbes
	w.hashes = w.hashes[:0]
	return buf
}
