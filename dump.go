// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package shale

import (
	"strings"

	"github.com/shaledb/shale/internal/buildtags"
)

// Dump writes every database-wide field to the given log, one line per
// field, in the layout of the configuration section of the engine's
// informational log.
func (o *DBOptions) Dump(log Logger) {
	log.Infof("         Options.error_if_exists: %t", o.ErrorIfExists)
	log.Infof("       Options.create_if_missing: %t", o.CreateIfMissing)
	log.Infof("         Options.paranoid_checks: %t", o.ParanoidChecks)
	log.Infof("                     Options.env: %v", o.Env)
	log.Infof("                Options.info_log: %v", o.InfoLog)
	log.Infof("          Options.max_open_files: %d", o.MaxOpenFiles)
	log.Infof("Options.max_file_opening_threads: %d", o.MaxFileOpeningThreads)
	log.Infof("       Options.max_total_wal_size: %d", o.MaxTotalWALSize)
	if o.Statistics != nil {
		log.Infof("              Options.statistics: %s", o.Statistics.Name())
	} else {
		log.Infof("              Options.statistics: None")
	}
	log.Infof("               Options.use_fsync: %t", o.UseFsync)
	log.Infof("       Options.max_log_file_size: %d", o.MaxLogFileSize)
	log.Infof("  Options.max_manifest_file_size: %d", o.MaxManifestFileSize)
	log.Infof("   Options.log_file_time_to_roll: %d", o.LogFileTimeToRoll)
	log.Infof("       Options.keep_log_file_num: %d", o.KeepLogFileNum)
	log.Infof("    Options.recycle_log_file_num: %d", o.RecycleLogFileNum)
	log.Infof("         Options.allow_fallocate: %t", o.AllowFallocate)
	log.Infof("        Options.allow_mmap_reads: %t", o.AllowMmapReads)
	log.Infof("       Options.allow_mmap_writes: %t", o.AllowMmapWrites)
	log.Infof("        Options.use_direct_reads: %t", o.UseDirectReads)
	log.Infof("       Options.use_direct_writes: %t", o.UseDirectWrites)
	log.Infof("Options.create_missing_column_families: %t", o.CreateMissingColumnFamilies)
	log.Infof("                  Options.db_log_dir: %s", o.DBLogDir)
	log.Infof("                     Options.wal_dir: %s", o.WALDir)
	log.Infof("    Options.table_cache_numshardbits: %d", o.TableCacheNumshardbits)
	log.Infof("Options.delete_obsolete_files_period_micros: %d", o.DeleteObsoleteFilesPeriodMicros)
	log.Infof("  Options.base_background_compactions: %d", o.BaseBackgroundCompactions)
	log.Infof("   Options.max_background_compactions: %d", o.MaxBackgroundCompactions)
	log.Infof("           Options.max_subcompactions: %d", o.MaxSubcompactions)
	log.Infof("       Options.max_background_flushes: %d", o.MaxBackgroundFlushes)
	log.Infof("              Options.WAL_ttl_seconds: %d", o.WALTtlSeconds)
	log.Infof("            Options.WAL_size_limit_MB: %d", o.WALSizeLimitMB)
	log.Infof("Options.manifest_preallocation_size: %d", o.ManifestPreallocationSize)
	log.Infof("          Options.is_fd_close_on_exec: %t", o.IsFdCloseOnExec)
	log.Infof("        Options.stats_dump_period_sec: %d", o.StatsDumpPeriodSec)
	log.Infof("        Options.advise_random_on_open: %t", o.AdviseRandomOnOpen)
	log.Infof("        Options.db_write_buffer_size: %d", o.DBWriteBufferSize)
	log.Infof("Options.access_hint_on_compaction_start: %s", o.AccessHintOnCompactionStart)
	log.Infof("Options.new_table_reader_for_compaction_inputs: %t", o.NewTableReaderForCompactionInputs)
	log.Infof("   Options.compaction_readahead_size: %d", o.CompactionReadaheadSize)
	log.Infof("Options.random_access_max_buffer_size: %d", o.RandomAccessMaxBufferSize)
	log.Infof("Options.writable_file_max_buffer_size: %d", o.WritableFileMaxBufferSize)
	log.Infof("           Options.use_adaptive_mutex: %t", o.UseAdaptiveMutex)
	if o.RateLimiter != nil {
		log.Infof("                 Options.rate_limiter: %d bytes/sec", o.RateLimiter.BytesPerSecond())
	} else {
		log.Infof("                 Options.rate_limiter: None")
	}
	if o.SSTFileManager != nil {
		log.Infof("    Options.sst_file_manager.total_size: %d", o.SSTFileManager.TotalSize())
	} else {
		log.Infof("    Options.sst_file_manager: None")
	}
	log.Infof("               Options.bytes_per_sync: %d", o.BytesPerSync)
	log.Infof("           Options.wal_bytes_per_sync: %d", o.WALBytesPerSync)
	log.Infof("            Options.wal_recovery_mode: %s", o.WALRecoveryMode)
	log.Infof("       Options.enable_thread_tracking: %t", o.EnableThreadTracking)
	log.Infof("           Options.delayed_write_rate: %d", o.DelayedWriteRate)
	log.Infof("Options.allow_concurrent_memtable_write: %t", o.AllowConcurrentMemtableWrite)
	log.Infof("Options.enable_write_thread_adaptive_yield: %t", o.EnableWriteThreadAdaptiveYield)
	log.Infof("  Options.write_thread_max_yield_usec: %d", o.WriteThreadMaxYieldUsec)
	log.Infof(" Options.write_thread_slow_yield_usec: %d", o.WriteThreadSlowYieldUsec)
	if !buildtags.Lite {
		if o.RowCache != nil {
			log.Infof("                    Options.row_cache: %d", o.RowCache.MaxSize())
		} else {
			log.Infof("                    Options.row_cache: None")
		}
		if o.WALFilter != nil {
			log.Infof("                   Options.wal_filter: %s", o.WALFilter.Name())
		} else {
			log.Infof("                   Options.wal_filter: None")
		}
	}
	log.Infof("  Options.avoid_flush_during_recovery: %t", o.AvoidFlushDuringRecovery)
	log.Infof("  Options.avoid_flush_during_shutdown: %t", o.AvoidFlushDuringShutdown)
	for i, p := range o.DBPaths {
		log.Infof("                 Options.db_paths[%d]: %s (target %d)", i, p.Path, p.TargetSize)
	}
}

// Dump writes every per-column-family field to the given log, one line per
// field.
func (o *ColumnFamilyOptions) Dump(log Logger) {
	if o.Comparer != nil {
		log.Infof("              Options.comparator: %s", o.Comparer.Name)
	} else {
		log.Infof("              Options.comparator: None")
	}
	if o.MergeOperator != nil {
		log.Infof("          Options.merge_operator: %s", o.MergeOperator.Name)
	} else {
		log.Infof("          Options.merge_operator: None")
	}
	if o.CompactionFilter != nil {
		log.Infof("       Options.compaction_filter: %s", o.CompactionFilter.Name())
	} else {
		log.Infof("       Options.compaction_filter: None")
	}
	if o.CompactionFilterFactory != nil {
		log.Infof("Options.compaction_filter_factory: %s", o.CompactionFilterFactory.Name())
	} else {
		log.Infof("Options.compaction_filter_factory: None")
	}
	if o.MemtableFactory != nil {
		log.Infof("        Options.memtable_factory: %s", o.MemtableFactory.Name())
	} else {
		log.Infof("        Options.memtable_factory: None")
	}
	if o.TableFactory != nil {
		log.Infof("           Options.table_factory: %s", o.TableFactory.Name())
		log.Infof("           table_factory options:\n%s", o.TableFactory.GetPrintableOptions())
	} else {
		log.Infof("           Options.table_factory: None")
	}
	log.Infof("       Options.write_buffer_size: %d", o.WriteBufferSize)
	log.Infof(" Options.max_write_buffer_number: %d", o.MaxWriteBufferNumber)
	log.Infof("             Options.compression: %s", o.Compression)
	log.Infof("   Options.bottommost_compression: %s", o.BottommostCompression)
	if o.PrefixExtractor != nil {
		log.Infof("        Options.prefix_extractor: %s", o.PrefixExtractor.Name())
	} else {
		log.Infof("        Options.prefix_extractor: nullptr")
	}
	if o.MemtableInsertWithHintPrefixExtractor != nil {
		log.Infof("Options.memtable_insert_with_hint_prefix_extractor: %s",
			o.MemtableInsertWithHintPrefixExtractor.Name())
	} else {
		log.Infof("Options.memtable_insert_with_hint_prefix_extractor: nullptr")
	}
	log.Infof("              Options.num_levels: %d", o.NumLevels)
	log.Infof("Options.min_write_buffer_number_to_merge: %d", o.MinWriteBufferNumberToMerge)
	log.Infof("Options.max_write_buffer_number_to_maintain: %d", o.MaxWriteBufferNumberToMaintain)
	log.Infof("Options.compression_opts.window_bits: %d", o.CompressionOpts.WindowBits)
	log.Infof("      Options.compression_opts.level: %d", o.CompressionOpts.Level)
	log.Infof("   Options.compression_opts.strategy: %d", o.CompressionOpts.Strategy)
	log.Infof("Options.compression_opts.max_dict_bytes: %d", o.CompressionOpts.MaxDictBytes)
	log.Infof("Options.level0_file_num_compaction_trigger: %d", o.Level0FileNumCompactionTrigger)
	log.Infof("Options.level0_slowdown_writes_trigger: %d", o.Level0SlowdownWritesTrigger)
	log.Infof("Options.level0_stop_writes_trigger: %d", o.Level0StopWritesTrigger)
	log.Infof("    Options.target_file_size_base: %d", o.TargetFileSizeBase)
	log.Infof("Options.target_file_size_multiplier: %d", o.TargetFileSizeMultiplier)
	log.Infof("  Options.max_bytes_for_level_base: %d", o.MaxBytesForLevelBase)
	log.Infof("Options.level_compaction_dynamic_level_bytes: %t", o.LevelCompactionDynamicLevelBytes)
	log.Infof("Options.max_bytes_for_level_multiplier: %f", o.MaxBytesForLevelMultiplier)
	for i, m := range o.MaxBytesForLevelMultiplierAdditional {
		log.Infof("Options.max_bytes_for_level_multiplier_additional[%d]: %d", i, m)
	}
	log.Infof("Options.max_sequential_skip_in_iterations: %d", o.MaxSequentialSkipInIterations)
	log.Infof("    Options.max_compaction_bytes: %d", o.MaxCompactionBytes)
	log.Infof("        Options.arena_block_size: %d", o.ArenaBlockSize)
	log.Infof("Options.soft_pending_compaction_bytes_limit: %d", o.SoftPendingCompactionBytesLimit)
	log.Infof("Options.hard_pending_compaction_bytes_limit: %d", o.HardPendingCompactionBytesLimit)
	log.Infof("Options.disable_auto_compactions: %t", o.DisableAutoCompactions)
	log.Infof("        Options.compaction_style: %s", o.CompactionStyle)
	log.Infof("          Options.compaction_pri: %s", o.CompactionPri)
	log.Infof("Options.compaction_options_universal.size_ratio: %d",
		o.CompactionOptionsUniversal.SizeRatio)
	log.Infof("Options.compaction_options_universal.min_merge_width: %d",
		o.CompactionOptionsUniversal.MinMergeWidth)
	log.Infof("Options.compaction_options_universal.max_merge_width: %d",
		o.CompactionOptionsUniversal.MaxMergeWidth)
	log.Infof("Options.compaction_options_universal.max_size_amplification_percent: %d",
		o.CompactionOptionsUniversal.MaxSizeAmplificationPercent)
	log.Infof("Options.compaction_options_universal.compression_size_percent: %d",
		o.CompactionOptionsUniversal.CompressionSizePercent)
	log.Infof("Options.compaction_options_fifo.max_table_files_size: %d",
		o.CompactionOptionsFIFO.MaxTableFilesSize)
	if len(o.TablePropertiesCollectorFactories) > 0 {
		names := make([]string, len(o.TablePropertiesCollectorFactories))
		for i, f := range o.TablePropertiesCollectorFactories {
			names[i] = f.Name()
		}
		log.Infof("Options.table_properties_collectors: %s", strings.Join(names, "; "))
	} else {
		log.Infof("Options.table_properties_collectors: ")
	}
	log.Infof("  Options.inplace_update_support: %t", o.InplaceUpdateSupport)
	log.Infof("Options.inplace_update_num_locks: %d", o.InplaceUpdateNumLocks)
	log.Infof("Options.memtable_prefix_bloom_size_ratio: %f", o.MemtablePrefixBloomSizeRatio)
	log.Infof("Options.memtable_huge_page_size: %d", o.MemtableHugePageSize)
	log.Infof("          Options.bloom_locality: %d", o.BloomLocality)
	log.Infof("   Options.max_successive_merges: %d", o.MaxSuccessiveMerges)
	log.Infof("Options.optimize_filters_for_hits: %t", o.OptimizeFiltersForHits)
	log.Infof("    Options.paranoid_file_checks: %t", o.ParanoidFileChecks)
	log.Infof("  Options.force_consistency_checks: %t", o.ForceConsistencyChecks)
	log.Infof("       Options.report_bg_io_stats: %t", o.ReportBgIoStats)
	for i, c := range o.CompressionPerLevel {
		log.Infof("   Options.compression_per_level[%d]: %s", i, c)
	}
}

// Dump writes the complete configuration to the given log: the database-
// wide fields followed by the default column family's fields.
func (o *Options) Dump(log Logger) {
	o.DBOptions.Dump(log)
	o.ColumnFamilyOptions.Dump(log)
}

// DumpCFOptions writes only the per-column-family fields to the given log.
func (o *Options) DumpCFOptions(log Logger) {
	o.ColumnFamilyOptions.Dump(log)
}
