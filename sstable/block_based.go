// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package sstable holds the configuration of the on-disk table formats. Only
// the block-based format is currently defined; the table readers and writers
// themselves live with the engine.
package sstable

import (
	"bytes"
	"fmt"

	"github.com/shaledb/shale/internal/base"
	"github.com/shaledb/shale/internal/cache"
)

// IndexType configures how the index block of a block-based table locates
// data blocks.
type IndexType int8

const (
	// BinarySearchIndex is a space-efficient index format searched with
	// binary search over the ordered block boundaries.
	BinarySearchIndex IndexType = iota

	// HashSearchIndex locates blocks through a hash of the key prefix. It
	// requires a prefix extractor on the column family and speeds up point
	// lookups at the cost of a larger index.
	HashSearchIndex

	// TwoLevelIndex partitions the index itself into blocks, reducing the
	// memory held per open table for very large tables.
	TwoLevelIndex
)

// String implements fmt.Stringer.
func (t IndexType) String() string {
	switch t {
	case BinarySearchIndex:
		return "binary_search"
	case HashSearchIndex:
		return "hash_search"
	case TwoLevelIndex:
		return "two_level"
	default:
		return fmt.Sprintf("unknown_%d", int(t))
	}
}

// BlockBasedTableOptions holds the configuration of the block-based table
// format.
type BlockBasedTableOptions struct {
	// IndexType selects the index format for new tables.
	//
	// The default value is BinarySearchIndex.
	IndexType IndexType

	// FilterPolicy, if non-nil, configures a per-block filter (such as a
	// Bloom filter) consulted before reading data blocks on point lookups.
	//
	// The default value is nil (no filter).
	FilterPolicy base.FilterPolicy

	// WholeKeyFiltering adds the entire key, not only its prefix, to the
	// filter.
	//
	// The default value is true.
	WholeKeyFiltering bool

	// BlockCache caches uncompressed data blocks. The cache is shared, not
	// copied, when the options are copied.
	//
	// The default value is nil (no cache).
	BlockCache *cache.Cache

	// BlockSize is the target uncompressed size in bytes of each data
	// block.
	//
	// The default value is 4096.
	BlockSize int

	// BlockSizeDeviation closes a block early when it is within this
	// percentage of BlockSize and the next entry would overflow the target.
	//
	// The default value is 10.
	BlockSizeDeviation int

	// BlockRestartInterval is the number of keys between restart points for
	// delta encoding of keys.
	//
	// The default value is 16.
	BlockRestartInterval int

	// CacheIndexAndFilterBlocks places index and filter blocks in the block
	// cache, bounding their memory through the cache's capacity rather than
	// the open-table count.
	//
	// The default value is false.
	CacheIndexAndFilterBlocks bool

	// PinL0FilterAndIndexBlocksInCache pins the index and filter blocks of
	// level-0 tables in the cache. Only meaningful when
	// CacheIndexAndFilterBlocks is true.
	//
	// The default value is false.
	PinL0FilterAndIndexBlocksInCache bool
}

// DefaultBlockBasedTableOptions returns the catalog defaults for the
// block-based format.
func DefaultBlockBasedTableOptions() BlockBasedTableOptions {
	return BlockBasedTableOptions{
		IndexType:            BinarySearchIndex,
		WholeKeyFiltering:    true,
		BlockSize:            4096,
		BlockSizeDeviation:   10,
		BlockRestartInterval: 16,
	}
}

// EnsureDefaults fills unset fields with their catalog defaults.
func (o *BlockBasedTableOptions) EnsureDefaults() {
	if o.BlockSize <= 0 {
		o.BlockSize = 4096
	}
	if o.BlockSizeDeviation <= 0 {
		o.BlockSizeDeviation = 10
	}
	if o.BlockRestartInterval <= 0 {
		o.BlockRestartInterval = 16
	}
}

// BlockBasedTableFactory is the base.TableFactory for the block-based
// format.
type BlockBasedTableFactory struct {
	opts BlockBasedTableOptions
}

var _ base.TableFactory = (*BlockBasedTableFactory)(nil)

// NewBlockBasedTableFactory creates a factory for the block-based table
// format with the given options. Unset numeric fields are filled with their
// defaults.
func NewBlockBasedTableFactory(opts BlockBasedTableOptions) *BlockBasedTableFactory {
	opts.EnsureDefaults()
	return &BlockBasedTableFactory{opts: opts}
}

// Name implements the base.TableFactory interface.
func (f *BlockBasedTableFactory) Name() string { return "BlockBasedTable" }

// TableOptions returns a copy of the factory's configuration. The block
// cache and filter policy references are shared.
func (f *BlockBasedTableFactory) TableOptions() BlockBasedTableOptions { return f.opts }

// GetPrintableOptions implements the base.TableFactory interface.
func (f *BlockBasedTableFactory) GetPrintableOptions() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "  index_type: %s\n", f.opts.IndexType)
	if f.opts.FilterPolicy != nil {
		// Prefer the policy's own description when it has one; the Name
		// alone does not carry sizing information.
		if s, ok := f.opts.FilterPolicy.(fmt.Stringer); ok {
			fmt.Fprintf(&buf, "  filter_policy: %s\n", s)
		} else {
			fmt.Fprintf(&buf, "  filter_policy: %s\n", f.opts.FilterPolicy.Name())
		}
	} else {
		fmt.Fprintf(&buf, "  filter_policy: nullptr\n")
	}
	fmt.Fprintf(&buf, "  whole_key_filtering: %t\n", f.opts.WholeKeyFiltering)
	if f.opts.BlockCache != nil {
		fmt.Fprintf(&buf, "  block_cache_size: %d\n", f.opts.BlockCache.MaxSize())
	} else {
		fmt.Fprintf(&buf, "  block_cache: None\n")
	}
	fmt.Fprintf(&buf, "  block_size: %d\n", f.opts.BlockSize)
	fmt.Fprintf(&buf, "  block_size_deviation: %d\n", f.opts.BlockSizeDeviation)
	fmt.Fprintf(&buf, "  block_restart_interval: %d\n", f.opts.BlockRestartInterval)
	fmt.Fprintf(&buf, "  cache_index_and_filter_blocks: %t\n", f.opts.CacheIndexAndFilterBlocks)
	fmt.Fprintf(&buf, "  pin_l0_filter_and_index_blocks_in_cache: %t\n",
		f.opts.PinL0FilterAndIndexBlocksInCache)
	return buf.String()
}
