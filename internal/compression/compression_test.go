// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("shale options subsystem "), 64)
	for _, typ := range []Type{None, Snappy, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			c, d, ok := ForType(typ)
			require.True(t, ok)
			compressed := c.Compress(nil, src)
			decompressed, err := d.Decompress(nil, compressed)
			require.NoError(t, err)
			require.Equal(t, src, decompressed)
		})
	}
}

func TestSupported(t *testing.T) {
	require.True(t, Supported(None))
	require.True(t, Supported(Snappy))
	require.True(t, Supported(ZSTD))
	require.False(t, Supported(Zlib))
	require.False(t, Supported(BZip2))

	_, _, ok := ForType(LZ4)
	require.False(t, ok)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "Snappy", Snappy.String())
	require.Equal(t, "Disabled", Disable.String())
	require.Equal(t, "unknown_42", Type(42).String())
}
