// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package shale

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shaledb/shale/internal/buildtags"
	"github.com/shaledb/shale/internal/compression"
	"github.com/shaledb/shale/internal/humanize"
	"github.com/shaledb/shale/sstable"
)

// CompactionStyle selects the strategy used to organize and merge table
// files across levels.
type CompactionStyle int8

const (
	// LevelCompactionStyle organizes data into size-bounded, increasingly
	// large levels merged sequentially.
	LevelCompactionStyle CompactionStyle = iota
	// UniversalCompactionStyle merges similarly sized sorted runs based on
	// size ratios rather than strict leveling.
	UniversalCompactionStyle
	// FIFOCompactionStyle drops the oldest files once the total table size
	// exceeds a bound; no merging is performed.
	FIFOCompactionStyle
	// NoneCompactionStyle disables background compaction entirely.
	NoneCompactionStyle
)

// String implements fmt.Stringer.
func (s CompactionStyle) String() string {
	switch s {
	case LevelCompactionStyle:
		return "level"
	case UniversalCompactionStyle:
		return "universal"
	case FIFOCompactionStyle:
		return "fifo"
	case NoneCompactionStyle:
		return "none"
	default:
		return fmt.Sprintf("unknown_%d", int(s))
	}
}

// CompactionPri determines which file within a level is picked first when a
// level-style compaction is due.
type CompactionPri int8

const (
	// ByCompensatedSize prefers files whose size, compensated for
	// deletions, is largest.
	ByCompensatedSize CompactionPri = iota
	// OldestLargestSeqFirst prefers files whose newest entry is oldest,
	// targeting cold ranges first.
	OldestLargestSeqFirst
	// OldestSmallestSeqFirst prefers files whose oldest entry is oldest,
	// shrinking the span of unmerged updates over time.
	OldestSmallestSeqFirst
	// MinOverlappingRatio prefers files with the smallest overlap ratio
	// against the next level, minimizing write amplification.
	MinOverlappingRatio
)

// String implements fmt.Stringer.
func (p CompactionPri) String() string {
	switch p {
	case ByCompensatedSize:
		return "by_compensated_size"
	case OldestLargestSeqFirst:
		return "oldest_largest_seq_first"
	case OldestSmallestSeqFirst:
		return "oldest_smallest_seq_first"
	case MinOverlappingRatio:
		return "min_overlapping_ratio"
	default:
		return fmt.Sprintf("unknown_%d", int(p))
	}
}

// WALRecoveryMode controls how aggressively write-ahead-log corruption is
// surfaced during crash recovery.
type WALRecoveryMode int8

const (
	// TolerateCorruptedTailRecords drops trailing corrupted records,
	// matching the behavior of databases created before recovery modes
	// existed.
	TolerateCorruptedTailRecords WALRecoveryMode = iota
	// AbsoluteConsistency fails recovery on any corrupted record.
	AbsoluteConsistency
	// PointInTimeRecovery replays the log up to the first corrupted record.
	PointInTimeRecovery
	// SkipAnyCorruptedRecords replays every intact record, skipping over
	// corruption.
	SkipAnyCorruptedRecords
)

// String implements fmt.Stringer.
func (m WALRecoveryMode) String() string {
	switch m {
	case TolerateCorruptedTailRecords:
		return "tolerate_corrupted_tail_records"
	case AbsoluteConsistency:
		return "absolute_consistency"
	case PointInTimeRecovery:
		return "point_in_time"
	case SkipAnyCorruptedRecords:
		return "skip_any_corrupted_records"
	default:
		return fmt.Sprintf("unknown_%d", int(m))
	}
}

// InfoLogLevel bounds the verbosity of the engine's informational log.
type InfoLogLevel int8

// Log verbosity levels, in increasing order of severity.
const (
	DebugInfoLogLevel InfoLogLevel = iota
	InfoInfoLogLevel
	WarnInfoLogLevel
	ErrorInfoLogLevel
	FatalInfoLogLevel
	HeaderInfoLogLevel
)

// String implements fmt.Stringer.
func (l InfoLogLevel) String() string {
	switch l {
	case DebugInfoLogLevel:
		return "debug"
	case InfoInfoLogLevel:
		return "info"
	case WarnInfoLogLevel:
		return "warn"
	case ErrorInfoLogLevel:
		return "error"
	case FatalInfoLogLevel:
		return "fatal"
	case HeaderInfoLogLevel:
		return "header"
	default:
		return fmt.Sprintf("unknown_%d", int(l))
	}
}

// ReadTier restricts which storage tiers a read is willing to consult.
type ReadTier int8

const (
	// ReadAllTier reads from memtables, the block cache and persistent
	// storage.
	ReadAllTier ReadTier = iota
	// BlockCacheTier reads only from memtables and the block cache,
	// failing reads that would touch persistent storage.
	BlockCacheTier
	// PersistedTier reads only persisted data, ignoring memtables.
	PersistedTier
)

// String implements fmt.Stringer.
func (t ReadTier) String() string {
	switch t {
	case ReadAllTier:
		return "all"
	case BlockCacheTier:
		return "block_cache"
	case PersistedTier:
		return "persisted"
	default:
		return fmt.Sprintf("unknown_%d", int(t))
	}
}

// AccessHint advises the operating system about the expected access pattern
// of compaction input files.
type AccessHint int8

const (
	// NoneAccessHint gives no advice.
	NoneAccessHint AccessHint = iota
	// NormalAccessHint advises the default readahead behavior.
	NormalAccessHint
	// SequentialAccessHint advises aggressive readahead.
	SequentialAccessHint
	// WillneedAccessHint advises prefetching the whole file.
	WillneedAccessHint
)

// String implements fmt.Stringer.
func (h AccessHint) String() string {
	switch h {
	case NoneAccessHint:
		return "none"
	case NormalAccessHint:
		return "normal"
	case SequentialAccessHint:
		return "sequential"
	case WillneedAccessHint:
		return "willneed"
	default:
		return fmt.Sprintf("unknown_%d", int(h))
	}
}

// CompressionOptions holds the codec-level parameters shared by the block
// compression types that accept them.
type CompressionOptions struct {
	// WindowBits is the codec window size parameter. Negative values
	// request a raw stream without a container header.
	WindowBits int
	// Level is the codec effort level. -1 selects the codec default.
	Level int
	// Strategy is the codec strategy parameter.
	Strategy int
	// MaxDictBytes bounds the per-compaction dictionary sampled from the
	// input. Zero disables dictionary compression.
	MaxDictBytes uint64
}

// UniversalCompactionOptions holds the parameters specific to
// UniversalCompactionStyle.
type UniversalCompactionOptions struct {
	// SizeRatio is the percentage slack allowed when judging whether two
	// adjacent sorted runs are of similar size.
	//
	// The default value is 1.
	SizeRatio int
	// MinMergeWidth is the minimum number of sorted runs merged at once.
	//
	// The default value is 2.
	MinMergeWidth int
	// MaxMergeWidth is the maximum number of sorted runs merged at once.
	//
	// The default value is math.MaxInt32, effectively unlimited.
	MaxMergeWidth int
	// MaxSizeAmplificationPercent bounds the space amplification accepted
	// before a full compaction is triggered.
	//
	// The default value is 200.
	MaxSizeAmplificationPercent int
	// CompressionSizePercent is the percentage of the database kept
	// compressed, counted from the largest sorted runs down. -1 compresses
	// according to the column family's Compression setting.
	//
	// The default value is -1.
	CompressionSizePercent int
	// AllowTrivialMove permits moving whole files instead of rewriting
	// them when the merge is a pure concatenation.
	//
	// The default value is false.
	AllowTrivialMove bool
}

// FIFOCompactionOptions holds the parameters specific to
// FIFOCompactionStyle.
type FIFOCompactionOptions struct {
	// MaxTableFilesSize is the total table size above which the oldest
	// files are dropped.
	//
	// The default value is 1 GB.
	MaxTableFilesSize uint64
}

// DBPath pairs a data directory with the cumulative size of files it is
// allowed to hold. Newer, hotter files are placed in earlier paths.
type DBPath struct {
	Path       string
	TargetSize uint64
}

// AdvancedColumnFamilyOptions holds the rarely tuned per-column-family
// knobs. It is embedded in ColumnFamilyOptions; the split keeps the
// commonly tuned surface small.
type AdvancedColumnFamilyOptions struct {
	// MaxWriteBufferNumber is the maximum number of memtables, active plus
	// unflushed, held in memory at once.
	//
	// The default value is 2.
	MaxWriteBufferNumber int

	// MinWriteBufferNumberToMerge is the minimum number of full memtables
	// merged into a single flush.
	//
	// The default value is 1.
	MinWriteBufferNumberToMerge int

	// MaxWriteBufferNumberToMaintain is the number of flushed memtables
	// retained in memory for conflict checking. Zero retains none.
	//
	// The default value is 0.
	MaxWriteBufferNumberToMaintain int

	// InplaceUpdateSupport allows updates to rewrite an existing memtable
	// entry in place when the new value is not larger.
	//
	// The default value is false.
	InplaceUpdateSupport bool

	// InplaceUpdateNumLocks is the number of locks striping in-place
	// memtable updates.
	//
	// The default value is 10000.
	InplaceUpdateNumLocks int

	// MemtablePrefixBloomSizeRatio sizes the memtable prefix bloom filter
	// as a fraction of the write buffer size. Zero disables the filter.
	//
	// The default value is 0.
	MemtablePrefixBloomSizeRatio float64

	// MemtableHugePageSize, if non-zero, requests huge pages of the given
	// size for the memtable arena.
	//
	// The default value is 0.
	MemtableHugePageSize uint64

	// MemtableInsertWithHintPrefixExtractor, if non-nil, enables hinted
	// memtable insertion for keys sharing a prefix, speeding up writes
	// that arrive in prefix order.
	//
	// The default value is nil.
	MemtableInsertWithHintPrefixExtractor PrefixExtractor

	// BloomLocality restricts probes of the memtable bloom filter to a
	// single cache line when set to 1.
	//
	// The default value is 0.
	BloomLocality uint32

	// ArenaBlockSize is the allocation unit of the memtable arena. Zero
	// derives the size from the write buffer size.
	//
	// The default value is 0.
	ArenaBlockSize uint64

	// CompressionPerLevel overrides the column family's Compression
	// setting per level. If shorter than NumLevels, the remaining levels
	// use the last entry.
	//
	// The default value is nil, meaning no per-level overrides.
	CompressionPerLevel []CompressionType

	// NumLevels is the number of levels in the tree.
	//
	// The default value is 7.
	NumLevels int

	// Level0SlowdownWritesTrigger is the number of level-0 files at which
	// writes are throttled.
	//
	// The default value is 20.
	Level0SlowdownWritesTrigger int

	// Level0StopWritesTrigger is the number of level-0 files at which
	// writes are stopped.
	//
	// The default value is 36.
	Level0StopWritesTrigger int

	// TargetFileSizeBase is the target size of files in the base level.
	//
	// The default value is 64 MB.
	TargetFileSizeBase uint64

	// TargetFileSizeMultiplier scales the target file size per level below
	// the base.
	//
	// The default value is 1.
	TargetFileSizeMultiplier int

	// LevelCompactionDynamicLevelBytes derives per-level byte targets from
	// the size of the last level instead of from the base level downward.
	//
	// The default value is false.
	LevelCompactionDynamicLevelBytes bool

	// MaxBytesForLevelMultiplier scales the byte budget per level below
	// the base.
	//
	// The default value is 10.
	MaxBytesForLevelMultiplier float64

	// MaxBytesForLevelMultiplierAdditional multiplies the budget of each
	// individual level on top of MaxBytesForLevelMultiplier. The slice
	// must have at least NumLevels entries; derivation pads missing
	// entries with the neutral multiplier 1.
	MaxBytesForLevelMultiplierAdditional []int

	// MaxCompactionBytes bounds the total input size of a single
	// compaction. Zero derives the bound from TargetFileSizeBase.
	//
	// The default value is 0.
	MaxCompactionBytes uint64

	// SoftPendingCompactionBytesLimit throttles writes once the estimated
	// pending compaction debt exceeds it. Zero disables the throttle.
	//
	// The default value is 64 GB.
	SoftPendingCompactionBytesLimit uint64

	// HardPendingCompactionBytesLimit stops writes once the estimated
	// pending compaction debt exceeds it. Zero disables the stop.
	//
	// The default value is 256 GB.
	HardPendingCompactionBytesLimit uint64

	// CompactionStyle selects the compaction strategy.
	//
	// The default value is LevelCompactionStyle.
	CompactionStyle CompactionStyle

	// CompactionPri selects which file is compacted first within a level.
	//
	// The default value is ByCompensatedSize.
	CompactionPri CompactionPri

	// CompactionOptionsUniversal holds the UniversalCompactionStyle
	// parameters.
	CompactionOptionsUniversal UniversalCompactionOptions

	// CompactionOptionsFIFO holds the FIFOCompactionStyle parameters.
	CompactionOptionsFIFO FIFOCompactionOptions

	// MaxSequentialSkipInIterations is the number of consecutive hidden
	// entries an iterator steps over before switching to a reseek.
	//
	// The default value is 8.
	MaxSequentialSkipInIterations uint64

	// MemtableFactory constructs the memtable implementation. It must
	// never be nil; every construction and derivation path enforces this.
	//
	// The default value is NewSkipListFactory().
	MemtableFactory MemTableFactory

	// TablePropertiesCollectorFactories is the ordered list of
	// user-defined property collectors applied to every table written.
	//
	// The default value is nil.
	TablePropertiesCollectorFactories []TablePropertiesCollectorFactory

	// MaxSuccessiveMerges bounds the number of merge operands collapsed at
	// write time for a single key. Zero disables write-time collapsing.
	//
	// The default value is 0.
	MaxSuccessiveMerges int

	// OptimizeFiltersForHits skips building filters for the last level,
	// where most lookups that reach it are expected to find their key.
	//
	// The default value is false.
	OptimizeFiltersForHits bool

	// ParanoidFileChecks re-reads every file written to verify it before
	// installing it.
	//
	// The default value is false.
	ParanoidFileChecks bool

	// ForceConsistencyChecks enables tree consistency verification on
	// every version change.
	//
	// The default value is false.
	ForceConsistencyChecks bool

	// ReportBgIoStats collects per-compaction I/O statistics.
	//
	// The default value is false.
	ReportBgIoStats bool
}

// DefaultAdvancedColumnFamilyOptions returns the catalog defaults for the
// advanced per-column-family fields.
func DefaultAdvancedColumnFamilyOptions() AdvancedColumnFamilyOptions {
	o := AdvancedColumnFamilyOptions{
		MaxWriteBufferNumber:            2,
		MinWriteBufferNumberToMerge:     1,
		InplaceUpdateNumLocks:           10000,
		NumLevels:                       7,
		Level0SlowdownWritesTrigger:     20,
		Level0StopWritesTrigger:         36,
		TargetFileSizeBase:              64 << 20,
		TargetFileSizeMultiplier:        1,
		MaxBytesForLevelMultiplier:      10,
		SoftPendingCompactionBytesLimit: 64 << 30,
		HardPendingCompactionBytesLimit: 256 << 30,
		CompactionStyle:                 LevelCompactionStyle,
		CompactionPri:                   ByCompensatedSize,
		CompactionOptionsUniversal: UniversalCompactionOptions{
			SizeRatio:                   1,
			MinMergeWidth:               2,
			MaxMergeWidth:               math.MaxInt32,
			MaxSizeAmplificationPercent: 200,
			CompressionSizePercent:      -1,
		},
		CompactionOptionsFIFO:         FIFOCompactionOptions{MaxTableFilesSize: 1 << 30},
		MaxSequentialSkipInIterations: 8,
		MemtableFactory:               NewSkipListFactory(),
	}
	o.MaxBytesForLevelMultiplierAdditional = neutralLevelMultipliers(o.NumLevels)
	return o
}

// ColumnFamilyOptions holds the per-column-family configuration: everything
// that may differ between two column families sharing one database.
type ColumnFamilyOptions struct {
	AdvancedColumnFamilyOptions

	// Comparer defines the total ordering over keys. It is shared, not
	// copied, when the options are copied, and must outlive every holder.
	//
	// The default value is DefaultComparer.
	Comparer *Comparer

	// MergeOperator resolves merge operands at read and compaction time.
	// Required only if merge writes are used. Shared, not copied.
	//
	// The default value is nil.
	MergeOperator *Merger

	// CompactionFilter, if non-nil, is consulted for every key/value pair
	// rewritten by a compaction. Shared by all compactions running
	// concurrently; must be safe for concurrent use.
	//
	// The default value is nil.
	CompactionFilter CompactionFilter

	// CompactionFilterFactory, if non-nil, constructs a fresh filter per
	// compaction. Ignored when CompactionFilter is set.
	//
	// The default value is nil.
	CompactionFilterFactory CompactionFilterFactory

	// WriteBufferSize is the amount of data accumulated in a memtable
	// before it is marked immutable and scheduled for flush.
	//
	// The default value is 64 MB.
	WriteBufferSize uint64

	// Compression is the block compression applied to levels without a
	// CompressionPerLevel override.
	//
	// The default value is SnappyCompression when this build carries the
	// codec, NoCompression otherwise.
	Compression CompressionType

	// BottommostCompression overrides Compression for the last level.
	//
	// The default value is DisableCompressionOption, meaning no override.
	BottommostCompression CompressionType

	// CompressionOpts holds the codec-level compression parameters.
	CompressionOpts CompressionOptions

	// Level0FileNumCompactionTrigger is the number of level-0 files that
	// triggers a level-0 compaction.
	//
	// The default value is 4.
	Level0FileNumCompactionTrigger int

	// PrefixExtractor, if non-nil, enables prefix-based indexing and
	// filtering using the derived prefixes. Shared, not copied.
	//
	// The default value is nil.
	PrefixExtractor PrefixExtractor

	// MaxBytesForLevelBase is the byte budget of the base level.
	//
	// The default value is 256 MB.
	MaxBytesForLevelBase uint64

	// DisableAutoCompactions prevents the engine from scheduling
	// compactions on its own; only manual compactions run.
	//
	// The default value is false.
	DisableAutoCompactions bool

	// TableFactory constructs the on-disk table format. It must never be
	// nil.
	//
	// The default value is a block-based table factory with default
	// options.
	TableFactory TableFactory
}

// DefaultColumnFamilyOptions returns the catalog defaults for a column
// family.
func DefaultColumnFamilyOptions() ColumnFamilyOptions {
	o := ColumnFamilyOptions{
		AdvancedColumnFamilyOptions:    DefaultAdvancedColumnFamilyOptions(),
		Comparer:                       DefaultComparer,
		WriteBufferSize:                64 << 20,
		Compression:                    NoCompression,
		BottommostCompression:          DisableCompressionOption,
		CompressionOpts:                CompressionOptions{WindowBits: -14, Level: -1},
		Level0FileNumCompactionTrigger: 4,
		MaxBytesForLevelBase:           256 << 20,
		TableFactory: sstable.NewBlockBasedTableFactory(
			sstable.DefaultBlockBasedTableOptions()),
	}
	if compression.Supported(compression.Snappy) {
		o.Compression = SnappyCompression
	}
	return o
}

// EnsureDefaults fills nil collaborators and unset sizing fields with their
// catalog defaults, returning the receiver (or fresh defaults for a nil
// receiver) to allow chaining. Fields whose zero value is meaningful, such
// as the pending-compaction byte limits, are never touched.
func (o *ColumnFamilyOptions) EnsureDefaults() *ColumnFamilyOptions {
	if o == nil {
		d := DefaultColumnFamilyOptions()
		return &d
	}
	if o.Comparer == nil {
		o.Comparer = DefaultComparer
	}
	if o.MemtableFactory == nil {
		o.MemtableFactory = NewSkipListFactory()
	}
	if o.TableFactory == nil {
		o.TableFactory = sstable.NewBlockBasedTableFactory(
			sstable.DefaultBlockBasedTableOptions())
	}
	if o.WriteBufferSize == 0 {
		o.WriteBufferSize = 64 << 20
	}
	if o.Level0FileNumCompactionTrigger == 0 {
		o.Level0FileNumCompactionTrigger = 4
	}
	if o.MaxBytesForLevelBase == 0 {
		o.MaxBytesForLevelBase = 256 << 20
	}
	o.AdvancedColumnFamilyOptions.ensureDefaults()
	return o
}

func (o *AdvancedColumnFamilyOptions) ensureDefaults() {
	if o.MaxWriteBufferNumber <= 0 {
		o.MaxWriteBufferNumber = 2
	}
	if o.MinWriteBufferNumberToMerge <= 0 {
		o.MinWriteBufferNumberToMerge = 1
	}
	if o.InplaceUpdateNumLocks <= 0 {
		o.InplaceUpdateNumLocks = 10000
	}
	if o.NumLevels <= 0 {
		o.NumLevels = 7
	}
	if o.Level0SlowdownWritesTrigger == 0 {
		o.Level0SlowdownWritesTrigger = 20
	}
	if o.Level0StopWritesTrigger == 0 {
		o.Level0StopWritesTrigger = 36
	}
	if o.TargetFileSizeBase == 0 {
		o.TargetFileSizeBase = 64 << 20
	}
	if o.TargetFileSizeMultiplier <= 0 {
		o.TargetFileSizeMultiplier = 1
	}
	if o.MaxBytesForLevelMultiplier == 0 {
		o.MaxBytesForLevelMultiplier = 10
	}
	if o.MaxSequentialSkipInIterations == 0 {
		o.MaxSequentialSkipInIterations = 8
	}
	u := &o.CompactionOptionsUniversal
	if u.SizeRatio == 0 {
		u.SizeRatio = 1
	}
	if u.MinMergeWidth == 0 {
		u.MinMergeWidth = 2
	}
	if u.MaxMergeWidth == 0 {
		u.MaxMergeWidth = math.MaxInt32
	}
	if u.MaxSizeAmplificationPercent == 0 {
		u.MaxSizeAmplificationPercent = 200
	}
	if u.CompressionSizePercent == 0 {
		u.CompressionSizePercent = -1
	}
	if o.CompactionOptionsFIFO.MaxTableFilesSize == 0 {
		o.CompactionOptionsFIFO.MaxTableFilesSize = 1 << 30
	}
	o.repairLevelGeometry()
}

// repairLevelGeometry enforces the structural invariants tying the
// per-level arrays to NumLevels. The multiplier-additional slice is resized
// copy-on-write so a derived configuration never grows a slice shared with
// its source.
func (o *AdvancedColumnFamilyOptions) repairLevelGeometry() {
	if o.MemtableFactory == nil {
		panic(errors.AssertionFailedf("shale: memtable factory must not be nil"))
	}
	if len(o.MaxBytesForLevelMultiplierAdditional) < o.NumLevels {
		padded := neutralLevelMultipliers(o.NumLevels)
		copy(padded, o.MaxBytesForLevelMultiplierAdditional)
		o.MaxBytesForLevelMultiplierAdditional = padded
	}
}

func neutralLevelMultipliers(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = 1
	}
	return m
}

// DBOptions holds the database-wide configuration: everything independent
// of any particular column family.
type DBOptions struct {
	// CreateIfMissing creates the database on open if it does not exist.
	//
	// The default value is false.
	CreateIfMissing bool

	// CreateMissingColumnFamilies creates any named column families that
	// do not exist yet when the database is opened.
	//
	// The default value is false.
	CreateMissingColumnFamilies bool

	// ErrorIfExists causes an error on open if the database already
	// exists.
	//
	// The default value is false.
	ErrorIfExists bool

	// ParanoidChecks enables aggressive verification of file contents,
	// surfacing corruption as early as possible.
	//
	// The default value is true.
	ParanoidChecks bool

	// Env is the execution environment. Shared, not copied.
	//
	// The default value is DefaultEnv().
	Env Env

	// RateLimiter, if non-nil, bounds the write rate of flushes and
	// compactions. Shared, not copied.
	//
	// The default value is nil.
	RateLimiter RateLimiter

	// SSTFileManager, if non-nil, tracks table files across databases to
	// enforce space limits and pace deletions. Shared, not copied.
	//
	// The default value is nil.
	SSTFileManager SSTFileManager

	// InfoLog receives the engine's informational log. Shared, not copied.
	//
	// The default value is the stdlib-backed DefaultLogger.
	InfoLog Logger

	// InfoLogLevel bounds the verbosity written to InfoLog.
	//
	// The default value is InfoInfoLogLevel.
	InfoLogLevel InfoLogLevel

	// MaxOpenFiles is a soft limit on the number of files held open. -1
	// keeps every file open.
	//
	// The default value is -1.
	MaxOpenFiles int

	// MaxFileOpeningThreads is the number of threads used to open table
	// files in parallel when the database is opened with unlimited
	// MaxOpenFiles.
	//
	// The default value is 16.
	MaxFileOpeningThreads int

	// MaxTotalWALSize forces a flush of the column families holding the
	// oldest log alive once the total WAL size exceeds it. Zero derives
	// the bound from the write buffer configuration.
	//
	// The default value is 0.
	MaxTotalWALSize uint64

	// Statistics, if non-nil, accumulates engine event counters. Shared,
	// not copied.
	//
	// The default value is nil.
	Statistics Statistics

	// UseFsync uses fsync instead of fdatasync when syncing file data.
	//
	// The default value is false.
	UseFsync bool

	// DBPaths is the ordered list of data directories with per-directory
	// size targets. Empty means all files live in the database directory.
	//
	// The default value is nil.
	DBPaths []DBPath

	// DBLogDir, if non-empty, stores the informational log files outside
	// the database directory.
	//
	// The default value is "".
	DBLogDir string

	// WALDir, if non-empty, stores write-ahead logs outside the database
	// directory, typically on a separate device.
	//
	// The default value is "".
	WALDir string

	// DeleteObsoleteFilesPeriodMicros is the period between sweeps for
	// obsolete files, in microseconds.
	//
	// The default value is 6 hours.
	DeleteObsoleteFilesPeriodMicros uint64

	// BaseBackgroundCompactions is the number of concurrent compactions
	// used under a steady write load; bursts may use up to
	// MaxBackgroundCompactions. -1 tracks MaxBackgroundCompactions.
	//
	// The default value is 1.
	BaseBackgroundCompactions int

	// MaxBackgroundCompactions is the maximum number of concurrent
	// compactions, run in the low-priority pool.
	//
	// The default value is 1.
	MaxBackgroundCompactions int

	// MaxSubcompactions splits a single compaction into up to this many
	// concurrent ranges.
	//
	// The default value is 1.
	MaxSubcompactions int

	// MaxBackgroundFlushes is the maximum number of concurrent flushes,
	// run in the high-priority pool.
	//
	// The default value is 1.
	MaxBackgroundFlushes int

	// MaxLogFileSize rolls the informational log once it exceeds this
	// size. Zero never rolls by size.
	//
	// The default value is 0.
	MaxLogFileSize uint64

	// LogFileTimeToRoll rolls the informational log after this many
	// seconds. Zero never rolls by time.
	//
	// The default value is 0.
	LogFileTimeToRoll uint64

	// KeepLogFileNum is the number of rolled informational logs retained.
	//
	// The default value is 1000.
	KeepLogFileNum int

	// RecycleLogFileNum, if non-zero, keeps up to this many finished WAL
	// files around for reuse, avoiding allocation churn on the write path.
	//
	// The default value is 0.
	RecycleLogFileNum int

	// MaxManifestFileSize rolls the manifest once it exceeds this size.
	//
	// The default value is math.MaxUint64, meaning the manifest is never
	// rolled by size.
	MaxManifestFileSize uint64

	// TableCacheNumshardbits shards the table cache into 2^n shards.
	//
	// The default value is 6.
	TableCacheNumshardbits int

	// WALTtlSeconds bounds the age of archived WAL files. Zero, together
	// with a zero WALSizeLimitMB, deletes archived logs promptly.
	//
	// The default value is 0.
	WALTtlSeconds uint64

	// WALSizeLimitMB bounds the total size of archived WAL files.
	//
	// The default value is 0.
	WALSizeLimitMB uint64

	// ManifestPreallocationSize is preallocated to the manifest file to
	// reduce fragmentation.
	//
	// The default value is 4 MB.
	ManifestPreallocationSize uint64

	// AllowMmapReads memory-maps table files for reading.
	//
	// The default value is false.
	AllowMmapReads bool

	// AllowMmapWrites memory-maps files for writing.
	//
	// The default value is false.
	AllowMmapWrites bool

	// UseDirectReads bypasses the OS page cache for reads.
	//
	// The default value is false.
	UseDirectReads bool

	// UseDirectWrites bypasses the OS page cache for writes.
	//
	// The default value is false.
	UseDirectWrites bool

	// AllowFallocate preallocates file space ahead of writes.
	//
	// The default value is true.
	AllowFallocate bool

	// IsFdCloseOnExec sets the close-on-exec flag on opened files.
	//
	// The default value is true.
	IsFdCloseOnExec bool

	// SkipLogErrorOnRecovery ignores WAL read errors during recovery
	// instead of surfacing them.
	//
	// The default value is false.
	//
	// Deprecated: use WALRecoveryMode instead.
	SkipLogErrorOnRecovery bool

	// StatsDumpPeriodSec is the period between statistics dumps to
	// InfoLog, in seconds. Zero disables the dump.
	//
	// The default value is 600.
	StatsDumpPeriodSec int

	// AdviseRandomOnOpen advises the OS of random access on opened table
	// files.
	//
	// The default value is true.
	AdviseRandomOnOpen bool

	// DBWriteBufferSize bounds the total memtable memory across all column
	// families. Zero disables the bound. Ignored when WriteBufferManager
	// is set.
	//
	// The default value is 0.
	DBWriteBufferSize uint64

	// WriteBufferManager, if non-nil, enforces a memtable budget shared
	// across databases. Shared, not copied.
	//
	// The default value is nil.
	WriteBufferManager WriteBufferManager

	// AccessHintOnCompactionStart advises the OS about the access pattern
	// of compaction inputs.
	//
	// The default value is NormalAccessHint.
	AccessHintOnCompactionStart AccessHint

	// NewTableReaderForCompactionInputs gives each compaction its own
	// table readers instead of sharing the table cache entries.
	//
	// The default value is false.
	NewTableReaderForCompactionInputs bool

	// CompactionReadaheadSize, if non-zero, enables readahead of this many
	// bytes on compaction inputs. Recommended with direct I/O or spinning
	// disks.
	//
	// The default value is 0.
	CompactionReadaheadSize uint64

	// RandomAccessMaxBufferSize bounds the buffer used for unbuffered
	// random reads.
	//
	// The default value is 1 MB.
	RandomAccessMaxBufferSize uint64

	// WritableFileMaxBufferSize bounds the write buffer used when the OS
	// page cache is bypassed.
	//
	// The default value is 1 MB.
	WritableFileMaxBufferSize uint64

	// UseAdaptiveMutex spins briefly before blocking on contended engine
	// mutexes.
	//
	// The default value is false.
	UseAdaptiveMutex bool

	// BytesPerSync syncs table files to disk incrementally every this many
	// bytes written, smoothing write latency. Zero disables incremental
	// sync.
	//
	// The default value is 0.
	BytesPerSync uint64

	// WALBytesPerSync is BytesPerSync for write-ahead logs.
	//
	// The default value is 0.
	WALBytesPerSync uint64

	// Listeners are notified of significant engine events. Shared, not
	// copied.
	//
	// The default value is nil.
	Listeners []EventListener

	// EnableThreadTracking tracks the status of engine threads for
	// debugging.
	//
	// The default value is false.
	EnableThreadTracking bool

	// DelayedWriteRate is the write rate imposed while writes are
	// throttled by a slowdown trigger, in bytes per second.
	//
	// The default value is 16 MB/s.
	DelayedWriteRate uint64

	// EnablePipelinedWrite overlaps WAL writes and memtable insertion of
	// consecutive write batches.
	//
	// The default value is false.
	EnablePipelinedWrite bool

	// AllowConcurrentMemtableWrite inserts into the memtable from multiple
	// writers concurrently. Requires a memtable factory that supports
	// concurrent insertion.
	//
	// The default value is true.
	AllowConcurrentMemtableWrite bool

	// EnableWriteThreadAdaptiveYield spins writers briefly before blocking
	// when joining the write group.
	//
	// The default value is true.
	EnableWriteThreadAdaptiveYield bool

	// WriteThreadMaxYieldUsec is the maximum time a writer spins before
	// blocking, in microseconds.
	//
	// The default value is 100.
	WriteThreadMaxYieldUsec uint64

	// WriteThreadSlowYieldUsec is the yield duration above which spinning
	// is judged unproductive, in microseconds.
	//
	// The default value is 3.
	WriteThreadSlowYieldUsec uint64

	// SkipStatsUpdateOnDBOpen skips recomputing table statistics while
	// opening the database, shortening open time.
	//
	// The default value is false.
	SkipStatsUpdateOnDBOpen bool

	// WALRecoveryMode controls how WAL corruption is handled during crash
	// recovery.
	//
	// The default value is PointInTimeRecovery.
	WALRecoveryMode WALRecoveryMode

	// RowCache, if non-nil, caches individual key/value pairs across
	// reads. Shared, not copied. Excluded from lite builds.
	//
	// The default value is nil.
	RowCache *Cache

	// WALFilter, if non-nil, inspects and rewrites WAL records during
	// recovery. Excluded from lite builds.
	//
	// The default value is nil.
	WALFilter WALFilter

	// FailIfOptionsFileError surfaces errors writing the options file on
	// open instead of ignoring them.
	//
	// The default value is false.
	FailIfOptionsFileError bool

	// DumpMallocStats includes allocator statistics in the periodic stats
	// dump.
	//
	// The default value is false.
	DumpMallocStats bool

	// AvoidFlushDuringRecovery replays WALs without flushing the rebuilt
	// memtables, keeping recovered data in memory.
	//
	// The default value is false.
	AvoidFlushDuringRecovery bool

	// AvoidFlushDuringShutdown skips flushing unpersisted data on close.
	// Data covered only by the WAL is replayed on the next open.
	//
	// The default value is false.
	AvoidFlushDuringShutdown bool
}

// DefaultDBOptions returns the catalog defaults for the database-wide
// fields.
func DefaultDBOptions() DBOptions {
	return DBOptions{
		ParanoidChecks:                  true,
		Env:                             DefaultEnv(),
		InfoLog:                         DefaultLogger{},
		InfoLogLevel:                    InfoInfoLogLevel,
		MaxOpenFiles:                    -1,
		MaxFileOpeningThreads:           16,
		DeleteObsoleteFilesPeriodMicros: 6 * 60 * 60 * 1e6,
		BaseBackgroundCompactions:       1,
		MaxBackgroundCompactions:        1,
		MaxSubcompactions:               1,
		MaxBackgroundFlushes:            1,
		KeepLogFileNum:                  1000,
		MaxManifestFileSize:             math.MaxUint64,
		TableCacheNumshardbits:          6,
		ManifestPreallocationSize:       4 << 20,
		AllowFallocate:                  true,
		IsFdCloseOnExec:                 true,
		StatsDumpPeriodSec:              600,
		AdviseRandomOnOpen:              true,
		AccessHintOnCompactionStart:     NormalAccessHint,
		RandomAccessMaxBufferSize:       1 << 20,
		WritableFileMaxBufferSize:       1 << 20,
		DelayedWriteRate:                16 << 20,
		AllowConcurrentMemtableWrite:    true,
		EnableWriteThreadAdaptiveYield:  true,
		WriteThreadMaxYieldUsec:         100,
		WriteThreadSlowYieldUsec:        3,
		WALRecoveryMode:                 PointInTimeRecovery,
	}
}

// EnsureDefaults fills nil collaborators and unset sizing fields with their
// catalog defaults, returning the receiver (or fresh defaults for a nil
// receiver) to allow chaining.
func (o *DBOptions) EnsureDefaults() *DBOptions {
	if o == nil {
		d := DefaultDBOptions()
		return &d
	}
	if o.Env == nil {
		o.Env = DefaultEnv()
	}
	if o.InfoLog == nil {
		o.InfoLog = DefaultLogger{}
	}
	if o.MaxOpenFiles == 0 {
		o.MaxOpenFiles = -1
	}
	if o.MaxFileOpeningThreads <= 0 {
		o.MaxFileOpeningThreads = 16
	}
	if o.DeleteObsoleteFilesPeriodMicros == 0 {
		o.DeleteObsoleteFilesPeriodMicros = 6 * 60 * 60 * 1e6
	}
	if o.BaseBackgroundCompactions == 0 {
		o.BaseBackgroundCompactions = 1
	}
	if o.MaxBackgroundCompactions <= 0 {
		o.MaxBackgroundCompactions = 1
	}
	if o.MaxSubcompactions <= 0 {
		o.MaxSubcompactions = 1
	}
	if o.MaxBackgroundFlushes <= 0 {
		o.MaxBackgroundFlushes = 1
	}
	if o.KeepLogFileNum <= 0 {
		o.KeepLogFileNum = 1000
	}
	if o.MaxManifestFileSize == 0 {
		o.MaxManifestFileSize = math.MaxUint64
	}
	if o.TableCacheNumshardbits <= 0 {
		o.TableCacheNumshardbits = 6
	}
	if o.ManifestPreallocationSize == 0 {
		o.ManifestPreallocationSize = 4 << 20
	}
	if o.RandomAccessMaxBufferSize == 0 {
		o.RandomAccessMaxBufferSize = 1 << 20
	}
	if o.WritableFileMaxBufferSize == 0 {
		o.WritableFileMaxBufferSize = 1 << 20
	}
	if o.DelayedWriteRate == 0 {
		o.DelayedWriteRate = 16 << 20
	}
	if o.WriteThreadMaxYieldUsec == 0 {
		o.WriteThreadMaxYieldUsec = 100
	}
	if o.WriteThreadSlowYieldUsec == 0 {
		o.WriteThreadSlowYieldUsec = 3
	}
	return o
}

// Options is the complete configuration handed to the engine when a
// database is opened with a single default column family: the union of the
// database-wide fields and the default column family's fields. The two
// sub-domains do not overlap; deriving either sub-object copies exactly the
// fields belonging to it.
type Options struct {
	DBOptions
	ColumnFamilyOptions
}

// DefaultOptions returns a new Options with every field set to its catalog
// default.
func DefaultOptions() *Options {
	return &Options{
		DBOptions:           DefaultDBOptions(),
		ColumnFamilyOptions: DefaultColumnFamilyOptions(),
	}
}

// NewOptions assembles an Options from its two sub-domains. Collaborators
// are shared with the sources, not duplicated.
func NewOptions(db DBOptions, cf ColumnFamilyOptions) *Options {
	return &Options{DBOptions: db, ColumnFamilyOptions: cf}
}

// EnsureDefaults fills nil collaborators and unset sizing fields in both
// sub-domains, returning the receiver (or fresh defaults for a nil
// receiver) to allow chaining.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}
	o.DBOptions.EnsureDefaults()
	o.ColumnFamilyOptions.EnsureDefaults()
	return o
}

// Clone creates a shallow copy of the supplied options. Collaborators and
// per-level slices are shared between the copy and the original.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	n := *o
	return &n
}

// MakeDBOptions derives the database-wide sub-object, copying every field
// of that domain. The result is indistinguishable from DefaultDBOptions
// with each matching field overwritten.
func (o *Options) MakeDBOptions() DBOptions {
	db := o.DBOptions
	if buildtags.Lite {
		db.RowCache = nil
		db.WALFilter = nil
	}
	return db
}

// MakeColumnFamilyOptions derives the per-column-family sub-object, copying
// every field of that domain and repairing the level-geometry invariants of
// the embedded advanced options.
func (o *Options) MakeColumnFamilyOptions() ColumnFamilyOptions {
	cf := o.ColumnFamilyOptions
	cf.repairLevelGeometry()
	return cf
}

// MakeAdvancedColumnFamilyOptions derives the advanced sub-object alone.
func (o *Options) MakeAdvancedColumnFamilyOptions() AdvancedColumnFamilyOptions {
	adv := o.AdvancedColumnFamilyOptions
	adv.repairLevelGeometry()
	return adv
}

// Validate checks the structural consistency of the options. It presumes
// EnsureDefaults (or one of the Default constructors) has run, and must be
// called before the options are handed to the engine; nothing revalidates
// during engine operation.
func (o *Options) Validate() error {
	var buf strings.Builder
	if o.Comparer == nil {
		fmt.Fprintf(&buf, "Comparer must not be nil\n")
	}
	if o.MemtableFactory == nil {
		fmt.Fprintf(&buf, "MemtableFactory must not be nil\n")
	}
	if o.TableFactory == nil {
		fmt.Fprintf(&buf, "TableFactory must not be nil\n")
	}
	if o.NumLevels < 1 {
		fmt.Fprintf(&buf, "NumLevels (%d) must be >= 1\n", o.NumLevels)
	}
	if len(o.MaxBytesForLevelMultiplierAdditional) < o.NumLevels {
		fmt.Fprintf(&buf, "MaxBytesForLevelMultiplierAdditional (%d entries) must have an entry per level (%d)\n",
			len(o.MaxBytesForLevelMultiplierAdditional), o.NumLevels)
	}
	if o.WriteBufferSize == 0 {
		fmt.Fprintf(&buf, "WriteBufferSize must be > 0\n")
	}
	if o.MaxWriteBufferNumber < 1 {
		fmt.Fprintf(&buf, "MaxWriteBufferNumber (%d) must be >= 1\n", o.MaxWriteBufferNumber)
	}
	if o.MinWriteBufferNumberToMerge > o.MaxWriteBufferNumber {
		fmt.Fprintf(&buf, "MinWriteBufferNumberToMerge (%d) must be <= MaxWriteBufferNumber (%d)\n",
			o.MinWriteBufferNumberToMerge, o.MaxWriteBufferNumber)
	}
	if o.Level0SlowdownWritesTrigger < o.Level0FileNumCompactionTrigger {
		fmt.Fprintf(&buf, "Level0SlowdownWritesTrigger (%d) must be >= Level0FileNumCompactionTrigger (%d)\n",
			o.Level0SlowdownWritesTrigger, o.Level0FileNumCompactionTrigger)
	}
	if o.Level0StopWritesTrigger < o.Level0SlowdownWritesTrigger {
		fmt.Fprintf(&buf, "Level0StopWritesTrigger (%d) must be >= Level0SlowdownWritesTrigger (%d)\n",
			o.Level0StopWritesTrigger, o.Level0SlowdownWritesTrigger)
	}
	if o.HardPendingCompactionBytesLimit != 0 &&
		o.SoftPendingCompactionBytesLimit > o.HardPendingCompactionBytesLimit {
		fmt.Fprintf(&buf, "SoftPendingCompactionBytesLimit (%s) must be <= HardPendingCompactionBytesLimit (%s)\n",
			humanize.Bytes.Uint64(o.SoftPendingCompactionBytesLimit),
			humanize.Bytes.Uint64(o.HardPendingCompactionBytesLimit))
	}
	u := o.CompactionOptionsUniversal
	if u.MaxMergeWidth < u.MinMergeWidth {
		fmt.Fprintf(&buf, "CompactionOptionsUniversal.MaxMergeWidth (%d) must be >= MinMergeWidth (%d)\n",
			u.MaxMergeWidth, u.MinMergeWidth)
	}
	if u.CompressionSizePercent > 100 {
		fmt.Fprintf(&buf, "CompactionOptionsUniversal.CompressionSizePercent (%d) must be <= 100\n",
			u.CompressionSizePercent)
	}
	if o.TableCacheNumshardbits < 0 || o.TableCacheNumshardbits > 19 {
		fmt.Fprintf(&buf, "TableCacheNumshardbits (%d) must be in [0, 19]\n", o.TableCacheNumshardbits)
	}
	if !compression.Supported(o.Compression) {
		fmt.Fprintf(&buf, "Compression type %s is not linked with the binary\n", o.Compression)
	}
	if o.BottommostCompression != DisableCompressionOption &&
		!compression.Supported(o.BottommostCompression) {
		fmt.Fprintf(&buf, "BottommostCompression type %s is not linked with the binary\n",
			o.BottommostCompression)
	}
	for i, ct := range o.CompressionPerLevel {
		if !compression.Supported(ct) {
			fmt.Fprintf(&buf, "CompressionPerLevel[%d] type %s is not linked with the binary\n", i, ct)
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	return errors.New(buf.String())
}

// ReadOptions controls a single read or iteration operation. It is short
// lived and independent of the Options aggregates. A zero value is not a
// useful configuration; construct through DefaultReadOptions or
// NewReadOptions.
type ReadOptions struct {
	// VerifyChecksums verifies the checksum of every block read against
	// storage.
	//
	// The default value is true.
	VerifyChecksums bool

	// FillCache places blocks read on behalf of this operation in the
	// block cache. Disable for bulk scans to avoid cache pollution.
	//
	// The default value is true.
	FillCache bool

	// Snapshot, if non-nil, pins the read to the given snapshot instead of
	// the current state. The caller owns the snapshot and must keep it
	// alive for the duration of the read.
	//
	// The default value is nil.
	Snapshot Snapshot

	// IterateUpperBound, if non-nil, is the exclusive upper bound of an
	// iteration. The caller owns the slice and must keep it alive while
	// the iterator is open.
	//
	// The default value is nil.
	IterateUpperBound []byte

	// ReadTier restricts which storage tiers the read may consult.
	//
	// The default value is ReadAllTier.
	ReadTier ReadTier

	// Tailing creates an iterator that observes writes performed after its
	// creation.
	//
	// The default value is false.
	Tailing bool

	// Managed requests an iterator whose lifetime is managed by the
	// engine.
	//
	// The default value is false.
	Managed bool

	// TotalOrderSeek ignores the prefix extractor during iteration,
	// providing strict total-order seeks even on prefix-indexed tables.
	//
	// The default value is false.
	TotalOrderSeek bool

	// PrefixSameAsStart confines iteration to keys sharing the prefix of
	// the seek key.
	//
	// The default value is false.
	PrefixSameAsStart bool

	// PinData keeps the blocks backing returned keys and values pinned,
	// making the returned slices valid until the iterator is closed.
	//
	// The default value is false.
	PinData bool

	// BackgroundPurgeOnIteratorCleanup moves the cleanup work of closed
	// iterators off the calling thread.
	//
	// The default value is false.
	BackgroundPurgeOnIteratorCleanup bool

	// ReadaheadSize enables readahead of this many bytes for large
	// sequential scans. Zero disables readahead.
	//
	// The default value is 0.
	ReadaheadSize uint64

	// IgnoreRangeDeletions makes range tombstones invisible to this read.
	//
	// The default value is false.
	IgnoreRangeDeletions bool
}

// DefaultReadOptions returns the catalog defaults for a read.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		VerifyChecksums: true,
		FillCache:       true,
		ReadTier:        ReadAllTier,
	}
}

// NewReadOptions returns read options with the two hot-path flags fixed and
// every other field at its default.
func NewReadOptions(verifyChecksums, fillCache bool) ReadOptions {
	o := DefaultReadOptions()
	o.VerifyChecksums = verifyChecksums
	o.FillCache = fillCache
	return o
}
