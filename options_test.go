// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package shale

import (
	"reflect"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	require.NoError(t, o.Validate())

	require.Equal(t, uint64(64<<20), o.WriteBufferSize)
	require.Equal(t, 2, o.MaxWriteBufferNumber)
	require.Equal(t, 7, o.NumLevels)
	require.Equal(t, 4, o.Level0FileNumCompactionTrigger)
	require.Equal(t, 20, o.Level0SlowdownWritesTrigger)
	require.Equal(t, 36, o.Level0StopWritesTrigger)
	require.Equal(t, uint64(64<<20), o.TargetFileSizeBase)
	require.Equal(t, uint64(256<<20), o.MaxBytesForLevelBase)
	require.Equal(t, float64(10), o.MaxBytesForLevelMultiplier)
	require.Equal(t, uint64(64<<30), o.SoftPendingCompactionBytesLimit)
	require.Equal(t, uint64(256<<30), o.HardPendingCompactionBytesLimit)
	require.Equal(t, -1, o.MaxOpenFiles)
	require.Equal(t, 16, o.MaxFileOpeningThreads)
	require.Equal(t, 6, o.TableCacheNumshardbits)
	require.Equal(t, uint64(16<<20), o.DelayedWriteRate)
	require.Equal(t, PointInTimeRecovery, o.WALRecoveryMode)
	require.Equal(t, LevelCompactionStyle, o.CompactionStyle)
	require.Equal(t, ByCompensatedSize, o.CompactionPri)
	require.True(t, o.ParanoidChecks)
	require.True(t, o.AllowConcurrentMemtableWrite)

	require.NotNil(t, o.Comparer)
	require.NotNil(t, o.MemtableFactory)
	require.NotNil(t, o.TableFactory)
	require.NotNil(t, o.Env)
	require.NotNil(t, o.InfoLog)
	require.Len(t, o.MaxBytesForLevelMultiplierAdditional, o.NumLevels)
	for _, m := range o.MaxBytesForLevelMultiplierAdditional {
		require.Equal(t, 1, m)
	}
}

func TestEnsureDefaults(t *testing.T) {
	var o Options
	o.EnsureDefaults()
	require.NoError(t, o.Validate())
	require.NotNil(t, o.Comparer)
	require.NotNil(t, o.MemtableFactory)
	require.NotNil(t, o.TableFactory)
	require.Equal(t, -1, o.MaxOpenFiles)
	require.Equal(t, 7, o.NumLevels)
	require.Len(t, o.MaxBytesForLevelMultiplierAdditional, 7)

	var nilOpts *Options
	d := nilOpts.EnsureDefaults()
	require.NotNil(t, d)
	require.Equal(t, 7, d.NumLevels)
}

func TestEnsureDefaultsPreservesExplicitValues(t *testing.T) {
	var o Options
	o.WriteBufferSize = 1 << 20
	o.NumLevels = 3
	o.MaxOpenFiles = 500
	o.EnsureDefaults()
	require.Equal(t, uint64(1<<20), o.WriteBufferSize)
	require.Equal(t, 3, o.NumLevels)
	require.Equal(t, 500, o.MaxOpenFiles)
	require.Len(t, o.MaxBytesForLevelMultiplierAdditional, 3)
}

// Splitting an Options into its two sub-domains and reassembling them must
// reproduce the original, field for field: the sub-domains partition the
// full configuration.
func TestSubOptionRoundTrip(t *testing.T) {
	o := DefaultOptions()
	o.CreateIfMissing = true
	o.WriteBufferSize = 8 << 20

	db := o.MakeDBOptions()
	cf := o.MakeColumnFamilyOptions()
	rt := NewOptions(db, cf)
	if !reflect.DeepEqual(o, rt) {
		t.Fatalf("round trip mismatch:\ngot  %# v\nwant %# v",
			pretty.Formatter(rt), pretty.Formatter(o))
	}
}

func TestCloneSharesCollaborators(t *testing.T) {
	o := DefaultOptions()
	c := o.Clone()
	require.Same(t, o.Comparer, c.Comparer)
	require.Equal(t, o.MemtableFactory, c.MemtableFactory)

	c.WriteBufferSize = 1 << 20
	require.Equal(t, uint64(64<<20), o.WriteBufferSize)
}

func TestMakeColumnFamilyOptionsPadsMultipliers(t *testing.T) {
	o := DefaultOptions()
	o.NumLevels = 9
	o.MaxBytesForLevelMultiplierAdditional = []int{3}

	cf := o.MakeColumnFamilyOptions()
	require.Len(t, cf.MaxBytesForLevelMultiplierAdditional, 9)
	require.Equal(t, 3, cf.MaxBytesForLevelMultiplierAdditional[0])
	for _, m := range cf.MaxBytesForLevelMultiplierAdditional[1:] {
		require.Equal(t, 1, m)
	}
	// The source slice is never grown in place.
	require.Len(t, o.MaxBytesForLevelMultiplierAdditional, 1)
}

func TestMakeColumnFamilyOptionsNilMemtableFactory(t *testing.T) {
	o := DefaultOptions()
	o.MemtableFactory = nil
	require.Panics(t, func() { o.MakeColumnFamilyOptions() })
	require.Panics(t, func() { o.MakeAdvancedColumnFamilyOptions() })
}

func TestValidate(t *testing.T) {
	o := DefaultOptions()
	o.Level0StopWritesTrigger = 10
	err := o.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Level0StopWritesTrigger")

	o = DefaultOptions()
	o.SoftPendingCompactionBytesLimit = 512 << 30
	err = o.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "SoftPendingCompactionBytesLimit")

	o = DefaultOptions()
	o.Compression = ZlibCompression
	err = o.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Compression type Zlib is not linked with the binary")

	o = DefaultOptions()
	o.TableCacheNumshardbits = 20
	err = o.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "TableCacheNumshardbits")

	o = DefaultOptions()
	o.MinWriteBufferNumberToMerge = 3
	err = o.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MinWriteBufferNumberToMerge")
}

func TestValidateDisabledHardLimit(t *testing.T) {
	o := DefaultOptions()
	o.HardPendingCompactionBytesLimit = 0
	require.NoError(t, o.Validate())
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "level", LevelCompactionStyle.String())
	require.Equal(t, "universal", UniversalCompactionStyle.String())
	require.Equal(t, "fifo", FIFOCompactionStyle.String())
	require.Equal(t, "none", NoneCompactionStyle.String())
	require.Equal(t, "unknown_9", CompactionStyle(9).String())

	require.Equal(t, "by_compensated_size", ByCompensatedSize.String())
	require.Equal(t, "min_overlapping_ratio", MinOverlappingRatio.String())

	require.Equal(t, "point_in_time", PointInTimeRecovery.String())
	require.Equal(t, "absolute_consistency", AbsoluteConsistency.String())
	require.Equal(t, "tolerate_corrupted_tail_records", TolerateCorruptedTailRecords.String())

	require.Equal(t, "all", ReadAllTier.String())
	require.Equal(t, "block_cache", BlockCacheTier.String())

	require.Equal(t, "normal", NormalAccessHint.String())
	require.Equal(t, "willneed", WillneedAccessHint.String())
}

func TestReadOptions(t *testing.T) {
	r := DefaultReadOptions()
	require.True(t, r.VerifyChecksums)
	require.True(t, r.FillCache)
	require.Equal(t, ReadAllTier, r.ReadTier)
	require.Nil(t, r.Snapshot)

	r = NewReadOptions(false, false)
	require.False(t, r.VerifyChecksums)
	require.False(t, r.FillCache)
	require.Equal(t, ReadAllTier, r.ReadTier)
}
