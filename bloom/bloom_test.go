// Copyright 2013 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyName(t *testing.T) {
	p := FilterPolicy(10)
	require.Equal(t, "shale.BuiltinBloomFilter", p.Name())
	require.Equal(t, "shale.BuiltinBloomFilter: 10 bits per key", p.String())
	require.Equal(t, 10, p.BitsPerKey())
}

func TestNoFalseNegatives(t *testing.T) {
	p := FilterPolicy(10)
	w := p.NewWriter()
	keys := make([][]byte, 0, 100)
	for i := 0; i < 100; i++ {
		keys = append(keys, []byte(fmt.Sprintf("key-%06d", i)))
	}
	for _, k := range keys {
		w.AddKey(k)
	}
	filter := w.Finish(nil)
	for _, k := range keys {
		require.True(t, p.MayContain(filter, k), "false negative for %q", k)
	}
}

func TestFalsePositiveRate(t *testing.T) {
	p := FilterPolicy(10)
	w := p.NewWriter()
	for i := 0; i < 10000; i++ {
		w.AddKey([]byte(fmt.Sprintf("key-%06d", i)))
	}
	filter := w.Finish(nil)

	falsePositives := 0
	const probes = 10000
	for i := 0; i < probes; i++ {
		if p.MayContain(filter, []byte(fmt.Sprintf("absent-%06d", i))) {
			falsePositives++
		}
	}
	// 10 bits per key yields a theoretical rate around 1%. Allow slack.
	require.Less(t, falsePositives, probes/20)
}

func TestEmptyFilter(t *testing.T) {
	p := FilterPolicy(10)
	require.False(t, p.MayContain(nil, []byte("a")))
	require.False(t, p.MayContain([]byte{0}, []byte("a")))
}
