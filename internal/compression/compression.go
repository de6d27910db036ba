// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package compression defines the block compression types understood by the
// configuration layer and the codecs backing the types this build supports.
package compression

import "fmt"

// Type identifies a block compression algorithm.
type Type int8

const (
	// Disable is a sentinel used by the bottommost-compression option to
	// mean "fall back to the column family's Compression setting".
	Disable Type = iota - 1

	// None leaves blocks uncompressed.
	None

	// Snappy compresses blocks with google's Snappy.
	Snappy

	// Zlib compresses blocks with zlib.
	Zlib

	// BZip2 compresses blocks with bzip2.
	BZip2

	// LZ4 compresses blocks with LZ4.
	LZ4

	// LZ4HC compresses blocks with LZ4 in high-compression mode.
	LZ4HC

	// ZSTD compresses blocks with Zstandard.
	ZSTD
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Disable:
		return "Disabled"
	case None:
		return "NoCompression"
	case Snappy:
		return "Snappy"
	case Zlib:
		return "Zlib"
	case BZip2:
		return "BZip2"
	case LZ4:
		return "LZ4"
	case LZ4HC:
		return "LZ4HC"
	case ZSTD:
		return "ZSTD"
	default:
		return fmt.Sprintf("unknown_%d", int(t))
	}
}

// Supported reports whether this build carries a codec for t. The default
// column-family compression is Snappy when supported, None otherwise.
func Supported(t Type) bool {
	switch t {
	case None, Snappy, ZSTD:
		return true
	default:
		return false
	}
}

// Compressor compresses blocks of one compression type.
type Compressor interface {
	// Compress appends the compressed form of src to dst[:0] and returns
	// the result.
	Compress(dst, src []byte) []byte
}

// Decompressor decompresses blocks of one compression type.
type Decompressor interface {
	// Decompress appends the decompressed form of src to dst[:0] and
	// returns the result.
	Decompress(dst, src []byte) ([]byte, error)
}

// ForType returns the codec pair for t, or ok=false if this build has no
// codec for it.
func ForType(t Type) (Compressor, Decompressor, bool) {
	switch t {
	case None:
		return noopCompressor{}, noopDecompressor{}, true
	case Snappy:
		return snappyCompressor{}, snappyDecompressor{}, true
	case ZSTD:
		return zstdCompressor{}, zstdDecompressor{}, true
	default:
		return nil, nil, false
	}
}
