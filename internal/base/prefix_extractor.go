// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import "fmt"

// PrefixExtractor derives a prefix from a user key. Prefixes are used for
// prefix-based indexing and filtering: keys sharing a prefix can be located
// through a hash index or excluded through a prefix bloom filter without
// consulting the full ordered structures.
type PrefixExtractor interface {
	// Name returns the self-describing name of the extractor, used for
	// diagnostics only.
	Name() string

	// Transform returns the prefix of key. The result must be a prefix of
	// the input slice and may alias it.
	Transform(key []byte) []byte

	// InDomain reports whether key is eligible for prefix extraction. Keys
	// outside the domain are never handed to Transform.
	InDomain(key []byte) bool
}

type noopTransform struct{}

func (noopTransform) Name() string                { return "shale.Noop" }
func (noopTransform) Transform(key []byte) []byte { return key }
func (noopTransform) InDomain(key []byte) bool    { return true }

// NewNoopTransform returns a PrefixExtractor that treats the entire key as
// the prefix.
func NewNoopTransform() PrefixExtractor { return noopTransform{} }

type fixedPrefixTransform int

func (t fixedPrefixTransform) Name() string {
	return fmt.Sprintf("shale.FixedPrefix.%d", int(t))
}

func (t fixedPrefixTransform) Transform(key []byte) []byte { return key[:int(t)] }

func (t fixedPrefixTransform) InDomain(key []byte) bool { return len(key) >= int(t) }

// NewFixedPrefixTransform returns a PrefixExtractor that uses the first n
// bytes of a key as the prefix. Keys shorter than n bytes are outside the
// extractor's domain.
func NewFixedPrefixTransform(n int) PrefixExtractor { return fixedPrefixTransform(n) }
