// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// Snapshot is a handle to a consistent, read-only view of the database as of
// a particular sequence number. Snapshots are created and released by the
// engine; a ReadOptions only borrows the reference, and the caller must keep
// the snapshot alive for the duration of the read.
type Snapshot interface {
	// SequenceNumber returns the sequence number the snapshot was taken at.
	SequenceNumber() uint64
}
