// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// Merge merges oldValue and newValue for key, and returns the merged value.
// The merge operation must be associative. Examples of merge operators are
// integer addition, list append, and string concatenation.
type Merge func(key, oldValue, newValue []byte) []byte

// Merger defines an associative merge operation. The merge operation merges
// two or more values written for a single key. It is invoked when a merged
// value is encountered during a read, either during a compaction or during
// iteration.
type Merger struct {
	Merge Merge

	// Name is the name of the merger.
	//
	// The engine stores the merger name on disk, and opening a database with
	// a different merger from the one it was created with will result in an
	// error.
	Name string
}

// DefaultMerger concatenates the two values to merge.
var DefaultMerger = &Merger{
	Merge: func(key, oldValue, newValue []byte) []byte {
		buf := make([]byte, 0, len(oldValue)+len(newValue))
		return append(append(buf, oldValue...), newValue...)
	},
	Name: "shale.concatenate",
}
