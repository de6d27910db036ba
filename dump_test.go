// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package shale

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	lines []string
}

func (l *captureLogger) Infof(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *captureLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

func (l *captureLogger) String() string {
	return strings.Join(l.lines, "\n")
}

func TestDumpDefaults(t *testing.T) {
	log := &captureLogger{}
	DefaultOptions().Dump(log)
	out := log.String()

	require.Contains(t, out, "Options.comparator: leveldb.BytewiseComparator")
	require.Contains(t, out, "Options.merge_operator: None")
	require.Contains(t, out, "Options.compaction_filter: None")
	require.Contains(t, out, "Options.compaction_filter_factory: None")
	require.Contains(t, out, "Options.memtable_factory: SkipListFactory")
	require.Contains(t, out, "Options.table_factory: BlockBasedTable")
	require.Contains(t, out, "index_type: binary_search")
	require.Contains(t, out, "Options.write_buffer_size: 67108864")
	require.Contains(t, out, "Options.max_open_files: -1")
	require.Contains(t, out, "Options.wal_recovery_mode: point_in_time")
	require.Contains(t, out, "Options.compaction_style: level")
	require.Contains(t, out, "Options.compaction_pri: by_compensated_size")
	require.Contains(t, out, "Options.prefix_extractor: nullptr")
	require.Contains(t, out, "Options.statistics: None")
	require.Contains(t, out, "Options.rate_limiter: None")
	require.Contains(t, out, "Options.row_cache: None")
	require.Contains(t, out, "Options.wal_filter: None")
	require.Contains(t, out, "Options.access_hint_on_compaction_start: normal")
	require.Contains(t, out, "Options.max_bytes_for_level_multiplier_additional[6]: 1")
	require.Contains(t, out, "Options.compaction_options_universal.max_size_amplification_percent: 200")
}

func TestDumpCollaborators(t *testing.T) {
	o := DefaultOptions()
	o.MergeOperator = DefaultMerger
	o.RowCache = NewCache(1 << 20)
	o.PrefixExtractor = NewFixedPrefixTransform(8)
	o.DBPaths = []DBPath{{Path: "/data/hot", TargetSize: 10 << 30}}

	log := &captureLogger{}
	o.Dump(log)
	out := log.String()

	require.Contains(t, out, "Options.merge_operator: shale.concatenate")
	require.Contains(t, out, "Options.row_cache: 1048576")
	require.Contains(t, out, "Options.prefix_extractor: shale.FixedPrefix.8")
	require.Contains(t, out, "Options.db_paths[0]: /data/hot (target 10737418240)")
}

func TestDumpCompressionPerLevel(t *testing.T) {
	o := DefaultOptions()
	o.OptimizeLevelStyleCompaction(0)

	log := &captureLogger{}
	o.DumpCFOptions(log)
	out := log.String()

	require.Contains(t, out, "Options.compression_per_level[0]: NoCompression")
	require.Contains(t, out, "Options.compression_per_level[1]: NoCompression")
	require.Contains(t, out, "Options.compression_per_level[2]: Snappy")
	require.Contains(t, out, "Options.compression_per_level[6]: Snappy")
	require.NotContains(t, out, "Options.max_open_files")
}

// Dumping never panics on a configuration full of nil collaborators.
func TestDumpZeroValue(t *testing.T) {
	log := &captureLogger{}
	var o Options
	o.Dump(log)
	require.Contains(t, log.String(), "Options.table_factory: None")
	require.Contains(t, log.String(), "Options.memtable_factory: None")
	require.Contains(t, log.String(), "Options.comparator: None")
}
