// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// TableFactory constructs the readers and writers for the on-disk table
// format of a column family. The configuration layer requires a non-nil
// factory; the default is the block-based format.
type TableFactory interface {
	// Name returns the self-describing name of the table format, used for
	// diagnostics and format identification.
	Name() string

	// GetPrintableOptions returns a human-readable, multi-line rendering of
	// the factory's own configuration for inclusion in a diagnostic dump.
	GetPrintableOptions() string
}

// TablePropertiesCollectorFactory constructs per-table collectors that
// accumulate user-defined properties while a table is written. A new
// collector is created for each table and lives for the duration of writing
// that table.
type TablePropertiesCollectorFactory interface {
	// Name returns the self-describing name of the factory, used for
	// diagnostics only.
	Name() string
}
