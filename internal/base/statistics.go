// Copyright 2019 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

// Statistics receives event counters from the engine. Implementations must
// be safe for concurrent use; the engine records ticks from every background
// thread.
type Statistics interface {
	// Name returns the self-describing name of the statistics sink, used
	// for diagnostics only.
	Name() string

	// RecordTick adds count to the named ticker.
	RecordTick(ticker string, count uint64)
}
