// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package shale

import (
	"github.com/shaledb/shale/bloom"
	"github.com/shaledb/shale/sstable"
)

// DefaultMemtableMemoryBudget is the memtable memory budget assumed by the
// compaction-style presets when the caller passes zero.
const DefaultMemtableMemoryBudget = 512 << 20

// DefaultPresetTotalThreads is the thread count assumed by
// IncreaseParallelism when the caller passes zero or less.
const DefaultPresetTotalThreads = 16

// IncreaseParallelism sizes the background thread pools for a machine with
// totalThreads cores to spare, dedicating all but one to compactions. A
// totalThreads of zero or less selects DefaultPresetTotalThreads. Returns
// the receiver to allow chaining.
func (o *DBOptions) IncreaseParallelism(totalThreads int) *DBOptions {
	if totalThreads <= 0 {
		totalThreads = DefaultPresetTotalThreads
	}
	o.MaxBackgroundCompactions = totalThreads - 1
	o.MaxBackgroundFlushes = 1
	if o.Env == nil {
		o.Env = DefaultEnv()
	}
	o.Env.SetBackgroundThreads(totalThreads, LowPriority)
	o.Env.SetBackgroundThreads(1, HighPriority)
	return o
}

// OptimizeForSmallDb tunes the database-wide fields for databases up to
// roughly a gigabyte, trading peak performance for a small memory and file
// footprint. Returns the receiver to allow chaining.
func (o *DBOptions) OptimizeForSmallDb() *DBOptions {
	o.MaxFileOpeningThreads = 1
	o.MaxOpenFiles = 5000
	return o
}

// OldDefaults restores the database-wide defaults that shipped with the
// given release, for deployments that were tuned against them. Cutoffs are
// exclusive: a database created on the release that changed a default keeps
// the new value.
func (o *DBOptions) OldDefaults(majorVersion, minorVersion int) *DBOptions {
	if majorVersion < 4 || (majorVersion == 4 && minorVersion < 7) {
		o.MaxFileOpeningThreads = 1
		o.TableCacheNumshardbits = 4
	}
	if majorVersion < 5 || (majorVersion == 5 && minorVersion < 2) {
		o.DelayedWriteRate = 2 << 20
	}
	o.MaxOpenFiles = 5000
	o.BaseBackgroundCompactions = -1
	o.WALRecoveryMode = TolerateCorruptedTailRecords
	return o
}

// OptimizeForSmallDb tunes the column family for databases up to roughly a
// gigabyte, shrinking the write buffers and level budgets to match. Returns
// the receiver to allow chaining.
func (o *ColumnFamilyOptions) OptimizeForSmallDb() *ColumnFamilyOptions {
	o.WriteBufferSize = 2 << 20
	o.TargetFileSizeBase = 2 * 1048576
	o.MaxBytesForLevelBase = 10 * 1048576
	o.SoftPendingCompactionBytesLimit = 256 * 1048576
	o.HardPendingCompactionBytesLimit = 1 << 30
	return o
}

// OptimizeForPointLookup tunes the column family for a pure get/put
// workload with no iteration: hash-searchable indexes, a 10-bit Bloom
// filter, a dedicated block cache of blockCacheSizeMB megabytes, and a
// memtable prefix filter. A size of zero configures no dedicated cache.
// Returns the receiver to allow chaining.
func (o *ColumnFamilyOptions) OptimizeForPointLookup(blockCacheSizeMB uint64) *ColumnFamilyOptions {
	o.PrefixExtractor = NewNoopTransform()
	topts := sstable.BlockBasedTableOptions{
		IndexType:    sstable.HashSearchIndex,
		FilterPolicy: bloom.FilterPolicy(10),
	}
	if blockCacheSizeMB > 0 {
		topts.BlockCache = NewCache(int64(blockCacheSizeMB * 1024 * 1024))
	}
	o.TableFactory = sstable.NewBlockBasedTableFactory(topts)
	o.MemtablePrefixBloomSizeRatio = 0.02
	return o
}

// OptimizeLevelStyleCompaction tunes the column family for level-style
// compaction under the given memtable memory budget in bytes, sizing the
// buffers and level targets so that flushed data flows through level 0
// without stalling. A budget of zero selects DefaultMemtableMemoryBudget.
// Returns the receiver to allow chaining.
func (o *ColumnFamilyOptions) OptimizeLevelStyleCompaction(
	memtableMemoryBudget uint64,
) *ColumnFamilyOptions {
	if memtableMemoryBudget == 0 {
		memtableMemoryBudget = DefaultMemtableMemoryBudget
	}
	o.WriteBufferSize = memtableMemoryBudget / 4
	// Merging two memtables per flush halves the level-0 file count for
	// the same budget.
	o.MinWriteBufferNumberToMerge = 2
	o.MaxWriteBufferNumber = 6
	// Start compacting level 0 early so the budgeted memory drains into
	// the base level promptly.
	o.Level0FileNumCompactionTrigger = 2
	o.TargetFileSizeBase = memtableMemoryBudget / 8
	o.MaxBytesForLevelBase = memtableMemoryBudget
	o.CompactionStyle = LevelCompactionStyle
	// The first two levels hold freshly flushed data that is rewritten
	// soon; compressing them wastes cycles.
	perLevel := make([]CompressionType, o.NumLevels)
	for i := range perLevel {
		if i < 2 {
			perLevel[i] = NoCompression
		} else {
			perLevel[i] = SnappyCompression
		}
	}
	o.CompressionPerLevel = perLevel
	return o
}

// OptimizeUniversalStyleCompaction tunes the column family for universal
// compaction under the given memtable memory budget in bytes. A budget of
// zero selects DefaultMemtableMemoryBudget. Returns the receiver to allow
// chaining.
func (o *ColumnFamilyOptions) OptimizeUniversalStyleCompaction(
	memtableMemoryBudget uint64,
) *ColumnFamilyOptions {
	if memtableMemoryBudget == 0 {
		memtableMemoryBudget = DefaultMemtableMemoryBudget
	}
	o.WriteBufferSize = memtableMemoryBudget / 4
	o.MinWriteBufferNumberToMerge = 2
	o.MaxWriteBufferNumber = 6
	o.CompactionStyle = UniversalCompactionStyle
	o.CompactionOptionsUniversal.CompressionSizePercent = 80
	return o
}

// OldDefaults restores the per-column-family defaults that shipped with the
// given release. Cutoffs are exclusive, matching the database-wide variant.
func (o *ColumnFamilyOptions) OldDefaults(majorVersion, minorVersion int) *ColumnFamilyOptions {
	if majorVersion < 4 || (majorVersion == 4 && minorVersion < 7) {
		o.WriteBufferSize = 4 << 20
		o.TargetFileSizeBase = 2 * 1048576
		o.MaxBytesForLevelBase = 10 * 1048576
		o.SoftPendingCompactionBytesLimit = 0
		o.HardPendingCompactionBytesLimit = 0
	}
	if majorVersion < 5 {
		o.Level0StopWritesTrigger = 24
	} else if majorVersion == 5 && minorVersion < 2 {
		o.Level0StopWritesTrigger = 30
	}
	o.CompactionPri = ByCompensatedSize
	return o
}

// PrepareForBulkLoad reconfigures the options for an offline bulk ingest:
// compactions are suspended, the level-0 triggers are pushed out of reach,
// and the flush pipeline is widened. Once the load completes the caller is
// expected to run a manual compaction before serving reads. Returns the
// receiver to allow chaining.
func (o *Options) PrepareForBulkLoad() *Options {
	// Push every level-0 trigger out of reach so the load never stalls on
	// file counts or compaction debt.
	o.Level0FileNumCompactionTrigger = 1 << 30
	o.Level0SlowdownWritesTrigger = 1 << 30
	o.Level0StopWritesTrigger = 1 << 30
	o.SoftPendingCompactionBytesLimit = 0
	o.HardPendingCompactionBytesLimit = 0
	o.DisableAutoCompactions = true
	// The manual compaction that follows the load must be able to consume
	// everything in one pass.
	o.MaxCompactionBytes = 1 << 60
	// Two levels: the freshly loaded files and the manually compacted
	// result.
	o.NumLevels = 2
	o.MaxWriteBufferNumber = 6
	o.MinWriteBufferNumberToMerge = 1
	o.MaxBackgroundFlushes = 4
	o.BaseBackgroundCompactions = 2
	o.MaxBackgroundCompactions = 2
	o.TargetFileSizeBase = 256 << 20
	o.repairLevelGeometry()
	return o
}

// OptimizeForSmallDb applies both the database-wide and the per-column-
// family small-database presets.
func (o *Options) OptimizeForSmallDb() *Options {
	o.DBOptions.OptimizeForSmallDb()
	o.ColumnFamilyOptions.OptimizeForSmallDb()
	return o
}

// OldDefaults applies both the database-wide and the per-column-family old
// defaults for the given release.
func (o *Options) OldDefaults(majorVersion, minorVersion int) *Options {
	o.DBOptions.OldDefaults(majorVersion, minorVersion)
	o.ColumnFamilyOptions.OldDefaults(majorVersion, minorVersion)
	return o
}

// IncreaseParallelism applies the database-wide parallelism preset.
func (o *Options) IncreaseParallelism(totalThreads int) *Options {
	o.DBOptions.IncreaseParallelism(totalThreads)
	return o
}

// OptimizeForPointLookup applies the per-column-family point-lookup preset.
func (o *Options) OptimizeForPointLookup(blockCacheSizeMB uint64) *Options {
	o.ColumnFamilyOptions.OptimizeForPointLookup(blockCacheSizeMB)
	return o
}

// OptimizeLevelStyleCompaction applies the per-column-family level-style
// preset.
func (o *Options) OptimizeLevelStyleCompaction(memtableMemoryBudget uint64) *Options {
	o.ColumnFamilyOptions.OptimizeLevelStyleCompaction(memtableMemoryBudget)
	return o
}

// OptimizeUniversalStyleCompaction applies the per-column-family universal
// preset.
func (o *Options) OptimizeUniversalStyleCompaction(memtableMemoryBudget uint64) *Options {
	o.ColumnFamilyOptions.OptimizeUniversalStyleCompaction(memtableMemoryBudget)
	return o
}
