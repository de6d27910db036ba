// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package shale holds the configuration surface of the shale storage
// engine: the option aggregates consumed when a database or column family is
// opened, the per-read options, the workload preset transformers that derive
// self-consistent option sets for known access patterns, and the diagnostic
// reporter that renders an effective configuration to a log sink.
package shale

import (
	"github.com/shaledb/shale/internal/base"
	"github.com/shaledb/shale/internal/cache"
	"github.com/shaledb/shale/internal/compression"
)

// Comparer exports the base.Comparer type.
type Comparer = base.Comparer

// DefaultComparer uses the natural byte ordering, consistent with
// bytes.Compare.
var DefaultComparer = base.DefaultComparer

// Merger exports the base.Merger type.
type Merger = base.Merger

// DefaultMerger concatenates the values to merge.
var DefaultMerger = base.DefaultMerger

// CompactionFilter exports the base.CompactionFilter type.
type CompactionFilter = base.CompactionFilter

// CompactionFilterFactory exports the base.CompactionFilterFactory type.
type CompactionFilterFactory = base.CompactionFilterFactory

// PrefixExtractor exports the base.PrefixExtractor type.
type PrefixExtractor = base.PrefixExtractor

// NewNoopTransform returns a PrefixExtractor treating the whole key as the
// prefix.
var NewNoopTransform = base.NewNoopTransform

// NewFixedPrefixTransform returns a PrefixExtractor using the first n bytes
// of a key as the prefix.
var NewFixedPrefixTransform = base.NewFixedPrefixTransform

// MemTableFactory exports the base.MemTableFactory type.
type MemTableFactory = base.MemTableFactory

// NewSkipListFactory returns the default memtable factory.
var NewSkipListFactory = base.NewSkipListFactory

// TableFactory exports the base.TableFactory type.
type TableFactory = base.TableFactory

// TablePropertiesCollectorFactory exports the
// base.TablePropertiesCollectorFactory type.
type TablePropertiesCollectorFactory = base.TablePropertiesCollectorFactory

// FilterPolicy exports the base.FilterPolicy type.
type FilterPolicy = base.FilterPolicy

// FilterWriter exports the base.FilterWriter type.
type FilterWriter = base.FilterWriter

// Snapshot exports the base.Snapshot type.
type Snapshot = base.Snapshot

// Logger exports the base.Logger type.
type Logger = base.Logger

// DefaultLogger exports the base.DefaultLogger type.
type DefaultLogger = base.DefaultLogger

// Env exports the base.Env type.
type Env = base.Env

// Priority exports the base.Priority type.
type Priority = base.Priority

// Exported thread-pool priority constants.
const (
	LowPriority  = base.LowPriority
	HighPriority = base.HighPriority
)

// DefaultEnv returns the process-wide default execution environment.
var DefaultEnv = base.DefaultEnv

// Statistics exports the base.Statistics type.
type Statistics = base.Statistics

// RateLimiter exports the base.RateLimiter type.
type RateLimiter = base.RateLimiter

// SSTFileManager exports the base.SSTFileManager type.
type SSTFileManager = base.SSTFileManager

// WriteBufferManager exports the base.WriteBufferManager type.
type WriteBufferManager = base.WriteBufferManager

// EventListener exports the base.EventListener type.
type EventListener = base.EventListener

// WALFilter exports the base.WALFilter type.
type WALFilter = base.WALFilter

// Cache exports the cache.Cache type.
type Cache = cache.Cache

// NewCache creates a sharded LRU cache holding at most size bytes. The same
// cache instance may be shared by the block cache of several column families
// and by the row cache.
func NewCache(size int64) *Cache { return cache.New(size) }

// CompressionType exports the compression.Type type.
type CompressionType = compression.Type

// Exported block compression constants.
const (
	NoCompression            = compression.None
	SnappyCompression        = compression.Snappy
	ZlibCompression          = compression.Zlib
	BZip2Compression         = compression.BZip2
	LZ4Compression           = compression.LZ4
	LZ4HCCompression         = compression.LZ4HC
	ZSTDCompression          = compression.ZSTD
	DisableCompressionOption = compression.Disable
)

// CompressionSupported reports whether this build carries a codec for the
// given compression type.
var CompressionSupported = compression.Supported
