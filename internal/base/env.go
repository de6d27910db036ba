// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import (
	"fmt"
	"sync/atomic"
)

// Priority identifies one of the execution environment's background thread
// pools. Compactions run in the low-priority pool, flushes in the
// high-priority pool.
type Priority int8

const (
	// LowPriority is the pool that runs compactions.
	LowPriority Priority = iota
	// HighPriority is the pool that runs flushes.
	HighPriority
)

// String implements fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case LowPriority:
		return "low"
	case HighPriority:
		return "high"
	default:
		return fmt.Sprintf("unknown_%d", int(p))
	}
}

// Env abstracts the execution environment the engine runs in. The
// configuration layer uses only the thread-pool sizing capability; all other
// environment interactions (file I/O, clocks) belong to the engine.
//
// Resizing a pool is fire-and-forget: the environment applies the new size
// asynchronously and the call never blocks.
type Env interface {
	// SetBackgroundThreads resizes the given background thread pool to n
	// threads.
	SetBackgroundThreads(n int, pri Priority)

	// BackgroundThreads returns the configured size of the given pool.
	BackgroundThreads(pri Priority) int
}

type defaultEnv struct {
	lowThreads  atomic.Int64
	highThreads atomic.Int64
}

var defaultEnvInstance = func() *defaultEnv {
	e := &defaultEnv{}
	e.lowThreads.Store(1)
	e.highThreads.Store(1)
	return e
}()

// DefaultEnv returns the process-wide default execution environment. The
// same instance is shared by every database opened in the process, matching
// the sharing of its underlying thread pools.
func DefaultEnv() Env { return defaultEnvInstance }

func (e *defaultEnv) SetBackgroundThreads(n int, pri Priority) {
	if pri == HighPriority {
		e.highThreads.Store(int64(n))
		return
	}
	e.lowThreads.Store(int64(n))
}

func (e *defaultEnv) BackgroundThreads(pri Priority) int {
	if pri == HighPriority {
		return int(e.highThreads.Load())
	}
	return int(e.lowThreads.Load())
}

func (e *defaultEnv) String() string { return "shale.DefaultEnv" }
