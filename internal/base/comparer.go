// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import "bytes"

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b. An empty slice must be 'less than' any non-empty
// slice.
type Compare func(a, b []byte) int

// Comparer defines a total ordering over the space of []byte keys: a 'less
// than' relationship. The same comparison algorithm must be used for reads
// and writes over the lifetime of the database.
type Comparer struct {
	Compare Compare

	// Name is the name of the comparer.
	//
	// The engine stores the comparer name on disk, and opening a database
	// with a different comparer from the one it was created with will result
	// in an error.
	Name string
}

// DefaultComparer is the default implementation of the Comparer interface.
// It uses the natural ordering, consistent with bytes.Compare.
var DefaultComparer = &Comparer{
	Compare: bytes.Compare,
	Name:    "leveldb.BytewiseComparator",
}
