// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	goruntime "runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/metrics"
	"github.com/deip/deipd/rpc"
)

const (
	mega = 1048576
)

// periodic sampling of values nothing else reports
type stats struct {
	log      *logger.L
	metrics  *metrics.Collector
	interval time.Duration
	memory   bool
}

func newStats(collector *metrics.Collector, interval time.Duration, memory bool) *stats {
	return &stats{
		log:      logger.New("stats"),
		metrics:  collector,
		interval: interval,
		memory:   memory,
	}
}

func (s *stats) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log
	log.Info("starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		s.sample()
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		}
	}

	log.Info("stopped")
}

func (s *stats) sample() {
	s.metrics.ConnectionCount(rpc.ConnectionCount())

	if !s.memory {
		return
	}

	var m goruntime.MemStats
	goruntime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
	} else {
		s.log.Infof("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	sys := m.Sys / mega
	s.log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, sys)
}
