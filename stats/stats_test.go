// Copyright 2019 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordTick(t *testing.T) {
	s := New()
	require.Equal(t, "shale.statistics.prometheus", s.Name())

	s.RecordTick("block.cache.miss", 3)
	s.RecordTick("block.cache.miss", 2)
	s.RecordTick("block.cache.hit", 1)

	require.EqualValues(t, 5, testutil.ToFloat64(s.tickers.WithLabelValues("block.cache.miss")))
	require.EqualValues(t, 1, testutil.ToFloat64(s.tickers.WithLabelValues("block.cache.hit")))

	families, err := s.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "shale_ticker_total", families[0].GetName())
}
