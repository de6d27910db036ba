// Copyright 2019 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// RateLimiter bounds the rate at which the engine writes to storage during
// flushes and compactions. A single limiter may be shared across databases
// to enforce a process-wide budget.
type RateLimiter interface {
	// SetBytesPerSecond adjusts the write budget.
	SetBytesPerSecond(n int64)

	// BytesPerSecond returns the current write budget.
	BytesPerSecond() int64
}

// SSTFileManager tracks the table files of one or more databases, enforcing
// space limits and pacing deletions.
type SSTFileManager interface {
	// TotalSize returns the total size of all tracked files in bytes.
	TotalSize() uint64
}

// WriteBufferManager enforces a memory budget across the memtables of one or
// more databases.
type WriteBufferManager interface {
	// BufferSize returns the configured budget in bytes. A budget of zero
	// disables enforcement.
	BufferSize() uint64

	// MemoryUsage returns the current memtable memory usage in bytes.
	MemoryUsage() uint64
}

// EventListener receives callbacks for significant engine events such as
// flush and compaction completion.
type EventListener interface {
	// Name returns the self-describing name of the listener, used for
	// diagnostics only.
	Name() string
}

// WALFilter inspects and optionally rewrites write-ahead-log records during
// recovery.
type WALFilter interface {
	// Name returns the self-describing name of the filter, used for
	// diagnostics only.
	Name() string
}
