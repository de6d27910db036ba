// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package sstable

import (
	"testing"

	"github.com/shaledb/shale/bloom"
	"github.com/shaledb/shale/internal/cache"
	"github.com/stretchr/testify/require"
)

func TestDefaultBlockBasedTableOptions(t *testing.T) {
	f := NewBlockBasedTableFactory(BlockBasedTableOptions{})
	require.Equal(t, "BlockBasedTable", f.Name())

	opts := f.TableOptions()
	require.Equal(t, BinarySearchIndex, opts.IndexType)
	require.Equal(t, 4096, opts.BlockSize)
	require.Equal(t, 10, opts.BlockSizeDeviation)
	require.Equal(t, 16, opts.BlockRestartInterval)

	s := f.GetPrintableOptions()
	require.Contains(t, s, "index_type: binary_search")
	require.Contains(t, s, "filter_policy: nullptr")
	require.Contains(t, s, "block_cache: None")
}

func TestPrintableOptions(t *testing.T) {
	f := NewBlockBasedTableFactory(BlockBasedTableOptions{
		IndexType:    HashSearchIndex,
		FilterPolicy: bloom.FilterPolicy(10),
		BlockCache:   cache.New(64 << 20),
	})
	s := f.GetPrintableOptions()
	require.Contains(t, s, "index_type: hash_search")
	require.Contains(t, s, "filter_policy: shale.BuiltinBloomFilter: 10 bits per key")
	require.Contains(t, s, "block_cache_size: 67108864")
}

func TestIndexTypeString(t *testing.T) {
	require.Equal(t, "binary_search", BinarySearchIndex.String())
	require.Equal(t, "hash_search", HashSearchIndex.String())
	require.Equal(t, "two_level", TwoLevelIndex.String())
	require.Equal(t, "unknown_9", IndexType(9).String())
}
