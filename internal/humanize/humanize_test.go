// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package humanize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	testCases := []struct {
		value    uint64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2 << 10, "2.0 KB"},
		{4 << 20, "4.0 MB"},
		{4 << 30, "4.0 GB"},
		{256 << 30, "256.0 GB"},
	}
	for _, c := range testCases {
		require.EqualValues(t, c.expected, Bytes.Uint64(c.value))
	}
}

func TestCount(t *testing.T) {
	require.EqualValues(t, "999", Count.Int64(999))
	require.EqualValues(t, "1.0 K", Count.Int64(1000))
	require.EqualValues(t, "-1.5 M", Count.Int64(-1500000))
}
