// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheBasic(t *testing.T) {
	c := New(1 << 20)
	require.EqualValues(t, 1<<20, c.MaxSize())

	require.Nil(t, c.Get([]byte("a")))
	c.Set([]byte("a"), []byte("alpha"))
	require.Equal(t, []byte("alpha"), c.Get([]byte("a")))

	c.Set([]byte("a"), []byte("beta"))
	require.Equal(t, []byte("beta"), c.Get([]byte("a")))

	c.Delete([]byte("a"))
	require.Nil(t, c.Get([]byte("a")))
	require.EqualValues(t, 0, c.Size())
}

func TestCacheEvict(t *testing.T) {
	c := New(4096)
	value := make([]byte, 64)
	for i := 0; i < 1000; i++ {
		c.Set([]byte(fmt.Sprintf("key-%04d", i)), value)
	}
	require.LessOrEqual(t, c.Size(), c.MaxSize())
}

func TestCacheOversizedValue(t *testing.T) {
	c := New(1024)
	c.Set([]byte("big"), make([]byte, 1<<20))
	require.Nil(t, c.Get([]byte("big")))
}
