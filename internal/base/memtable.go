// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// MemTableFactory constructs the in-memory mutable structure that absorbs
// writes before they are flushed to persistent storage. The configuration
// layer requires a non-nil factory at every construction path; the engine
// invokes it once per memtable rotation.
type MemTableFactory interface {
	// Name returns the self-describing name of the factory, used for
	// diagnostics only.
	Name() string
}

type skipListFactory struct{}

func (skipListFactory) Name() string { return "SkipListFactory" }

// NewSkipListFactory returns the default memtable factory, backed by a
// concurrent skiplist.
func NewSkipListFactory() MemTableFactory { return skipListFactory{} }
