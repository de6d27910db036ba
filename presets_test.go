// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package shale

import (
	"testing"

	"github.com/shaledb/shale/sstable"
	"github.com/stretchr/testify/require"
)

func TestPrepareForBulkLoad(t *testing.T) {
	o := DefaultOptions().PrepareForBulkLoad()

	require.True(t, o.DisableAutoCompactions)
	require.Equal(t, 1<<30, o.Level0FileNumCompactionTrigger)
	require.Equal(t, 1<<30, o.Level0SlowdownWritesTrigger)
	require.Equal(t, 1<<30, o.Level0StopWritesTrigger)
	require.Equal(t, uint64(0), o.SoftPendingCompactionBytesLimit)
	require.Equal(t, uint64(0), o.HardPendingCompactionBytesLimit)
	require.Equal(t, uint64(1)<<60, o.MaxCompactionBytes)
	require.Equal(t, 2, o.NumLevels)
	require.Equal(t, 6, o.MaxWriteBufferNumber)
	require.Equal(t, 1, o.MinWriteBufferNumberToMerge)
	require.Equal(t, 4, o.MaxBackgroundFlushes)
	require.Equal(t, 2, o.BaseBackgroundCompactions)
	require.Equal(t, 2, o.MaxBackgroundCompactions)
	require.Equal(t, uint64(256<<20), o.TargetFileSizeBase)
	require.NoError(t, o.Validate())

	// A second application changes nothing.
	before := *o.Clone()
	o.PrepareForBulkLoad()
	require.Equal(t, &before, o)
}

func TestOptimizeForSmallDb(t *testing.T) {
	o := DefaultOptions().OptimizeForSmallDb()

	require.Equal(t, 1, o.MaxFileOpeningThreads)
	require.Equal(t, 5000, o.MaxOpenFiles)
	require.Equal(t, uint64(2<<20), o.WriteBufferSize)
	require.Equal(t, uint64(2*1048576), o.TargetFileSizeBase)
	require.Equal(t, uint64(10*1048576), o.MaxBytesForLevelBase)
	require.Equal(t, uint64(256*1048576), o.SoftPendingCompactionBytesLimit)
	require.Equal(t, uint64(1<<30), o.HardPendingCompactionBytesLimit)
	require.NoError(t, o.Validate())
}

func TestOptimizeForPointLookup(t *testing.T) {
	cf := DefaultColumnFamilyOptions()
	cf.OptimizeForPointLookup(64)

	require.NotNil(t, cf.PrefixExtractor)
	require.Equal(t, "shale.Noop", cf.PrefixExtractor.Name())
	require.Equal(t, 0.02, cf.MemtablePrefixBloomSizeRatio)

	f, ok := cf.TableFactory.(*sstable.BlockBasedTableFactory)
	require.True(t, ok)
	topts := f.TableOptions()
	require.Equal(t, sstable.HashSearchIndex, topts.IndexType)
	require.NotNil(t, topts.BlockCache)
	require.Equal(t, int64(64*1024*1024), topts.BlockCache.MaxSize())

	s := f.GetPrintableOptions()
	require.Contains(t, s, "index_type: hash_search")
	require.Contains(t, s, "filter_policy: shale.BuiltinBloomFilter: 10 bits per key")
}

func TestOptimizeLevelStyleCompaction(t *testing.T) {
	const budget = uint64(512 << 20)
	cf := DefaultColumnFamilyOptions()
	cf.OptimizeLevelStyleCompaction(budget)

	require.Equal(t, budget/4, cf.WriteBufferSize)
	require.Equal(t, 2, cf.MinWriteBufferNumberToMerge)
	require.Equal(t, 6, cf.MaxWriteBufferNumber)
	require.Equal(t, 2, cf.Level0FileNumCompactionTrigger)
	require.Equal(t, budget/8, cf.TargetFileSizeBase)
	require.Equal(t, budget, cf.MaxBytesForLevelBase)
	require.Equal(t, LevelCompactionStyle, cf.CompactionStyle)

	require.Len(t, cf.CompressionPerLevel, cf.NumLevels)
	for i, c := range cf.CompressionPerLevel {
		if i < 2 {
			require.Equal(t, NoCompression, c)
		} else {
			require.Equal(t, SnappyCompression, c)
		}
	}
}

func TestOptimizeLevelStyleCompactionZeroBudget(t *testing.T) {
	cf := DefaultColumnFamilyOptions()
	cf.OptimizeLevelStyleCompaction(0)
	require.Equal(t, uint64(DefaultMemtableMemoryBudget)/4, cf.WriteBufferSize)
}

func TestOptimizeUniversalStyleCompaction(t *testing.T) {
	const budget = uint64(256 << 20)
	cf := DefaultColumnFamilyOptions()
	cf.OptimizeUniversalStyleCompaction(budget)

	require.Equal(t, budget/4, cf.WriteBufferSize)
	require.Equal(t, 2, cf.MinWriteBufferNumberToMerge)
	require.Equal(t, 6, cf.MaxWriteBufferNumber)
	require.Equal(t, UniversalCompactionStyle, cf.CompactionStyle)
	require.Equal(t, 80, cf.CompactionOptionsUniversal.CompressionSizePercent)
}

func TestOldDefaults(t *testing.T) {
	o := DefaultOptions().OldDefaults(4, 6)

	require.Equal(t, uint64(4<<20), o.WriteBufferSize)
	require.Equal(t, uint64(2*1048576), o.TargetFileSizeBase)
	require.Equal(t, uint64(10*1048576), o.MaxBytesForLevelBase)
	require.Equal(t, uint64(0), o.SoftPendingCompactionBytesLimit)
	require.Equal(t, uint64(0), o.HardPendingCompactionBytesLimit)
	require.Equal(t, 24, o.Level0StopWritesTrigger)
	require.Equal(t, 1, o.MaxFileOpeningThreads)
	require.Equal(t, 4, o.TableCacheNumshardbits)
	require.Equal(t, uint64(2<<20), o.DelayedWriteRate)
	require.Equal(t, 5000, o.MaxOpenFiles)
	require.Equal(t, -1, o.BaseBackgroundCompactions)
	require.Equal(t, TolerateCorruptedTailRecords, o.WALRecoveryMode)
	require.Equal(t, ByCompensatedSize, o.CompactionPri)
}

// The version cutoffs are exclusive: the release that changed a default
// keeps the new value.
func TestOldDefaultsCutoffs(t *testing.T) {
	o := DefaultOptions().OldDefaults(4, 7)
	require.Equal(t, uint64(64<<20), o.WriteBufferSize)
	require.Equal(t, 16, o.MaxFileOpeningThreads)
	require.Equal(t, 6, o.TableCacheNumshardbits)
	require.Equal(t, 24, o.Level0StopWritesTrigger)
	require.Equal(t, uint64(2<<20), o.DelayedWriteRate)

	o = DefaultOptions().OldDefaults(5, 1)
	require.Equal(t, uint64(64<<20), o.WriteBufferSize)
	require.Equal(t, 30, o.Level0StopWritesTrigger)
	require.Equal(t, uint64(2<<20), o.DelayedWriteRate)

	o = DefaultOptions().OldDefaults(5, 2)
	require.Equal(t, 36, o.Level0StopWritesTrigger)
	require.Equal(t, uint64(16<<20), o.DelayedWriteRate)
	require.Equal(t, 5000, o.MaxOpenFiles)
}

type recordingEnv struct {
	pools map[Priority]int
}

func (e *recordingEnv) SetBackgroundThreads(n int, pri Priority) {
	if e.pools == nil {
		e.pools = make(map[Priority]int)
	}
	e.pools[pri] = n
}

func (e *recordingEnv) BackgroundThreads(pri Priority) int {
	return e.pools[pri]
}

func TestIncreaseParallelism(t *testing.T) {
	env := &recordingEnv{}
	db := DefaultDBOptions()
	db.Env = env
	db.IncreaseParallelism(8)

	require.Equal(t, 7, db.MaxBackgroundCompactions)
	require.Equal(t, 1, db.MaxBackgroundFlushes)
	require.Equal(t, 8, env.BackgroundThreads(LowPriority))
	require.Equal(t, 1, env.BackgroundThreads(HighPriority))
}

func TestIncreaseParallelismDefaults(t *testing.T) {
	db := DBOptions{}
	db.IncreaseParallelism(0)
	require.Equal(t, DefaultPresetTotalThreads-1, db.MaxBackgroundCompactions)
	require.NotNil(t, db.Env)
}
