// Copyright 2013 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// FilterWriter accumulates the keys added to a single table filter block and
// serializes the filter when the block is finished.
type FilterWriter interface {
	// AddKey adds a key to the current filter block.
	AddKey(key []byte)

	// Finish appends the serialized filter to buf and returns the result.
	Finish(buf []byte) []byte
}

// FilterPolicy defines a filter algorithm (such as a Bloom filter) that can
// reduce disk reads for point lookups.
//
// The name of the policy is stored alongside each filter block; a filter is
// only consulted at read time if the policy configured on the options has
// the same name as the policy that built it.
type FilterPolicy interface {
	// Name returns the self-describing name of the policy.
	Name() string

	// MayContain reports whether the filter created by this policy may
	// contain key. False positives are possible; false negatives are not.
	MayContain(filter, key []byte) bool

	// NewWriter creates a writer for a new filter block.
	NewWriter() FilterWriter
}
