// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// CompactionFilter allows an application to modify or drop key/value pairs
// while they are being rewritten by a background compaction. The filter is
// invoked once for each live key/value pair in the compaction input.
//
// A CompactionFilter installed directly on the options is shared by all
// compactions of the column family and must be safe for concurrent use. If
// per-compaction state is needed, install a CompactionFilterFactory instead.
type CompactionFilter interface {
	// Name returns the self-describing name of the filter, used for
	// diagnostics only.
	Name() string

	// Filter is called for the key/value pair at the given compaction output
	// level. Returning remove=true drops the pair. Returning a non-nil
	// newValue with remove=false replaces the value.
	Filter(level int, key, value []byte) (remove bool, newValue []byte)
}

// CompactionFilterFactory constructs a fresh CompactionFilter for each
// compaction, allowing the filter to carry per-compaction state.
type CompactionFilterFactory interface {
	// Name returns the self-describing name of the factory, used for
	// diagnostics only.
	Name() string

	// NewCompactionFilter returns a filter to be used for a single
	// compaction run.
	NewCompactionFilter() CompactionFilter
}
