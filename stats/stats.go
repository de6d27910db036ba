// Copyright 2019 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package stats provides a Statistics implementation backed by Prometheus
// counters, suitable for assigning to DBOptions.Statistics.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shaledb/shale/internal/base"
)

// Statistics accumulates engine tickers into a Prometheus counter vector on
// a private registry. It is safe for concurrent use.
type Statistics struct {
	registry *prometheus.Registry
	tickers  *prometheus.CounterVec
}

var _ base.Statistics = (*Statistics)(nil)

// New creates an empty Statistics sink.
func New() *Statistics {
	s := &Statistics{
		registry: prometheus.NewRegistry(),
		tickers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shale_ticker_total",
			Help: "Cumulative engine event counters, labeled by ticker name.",
		}, []string{"ticker"}),
	}
	s.registry.MustRegister(s.tickers)
	return s
}

// Name implements the base.Statistics interface.
func (s *Statistics) Name() string { return "shale.statistics.prometheus" }

// RecordTick implements the base.Statistics interface.
func (s *Statistics) RecordTick(ticker string, count uint64) {
	s.tickers.WithLabelValues(ticker).Add(float64(count))
}

// Registry returns the registry holding the counters, for scraping or for
// registration with an exposition handler.
func (s *Statistics) Registry() *prometheus.Registry { return s.registry }
