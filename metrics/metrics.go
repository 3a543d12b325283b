// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus view of the runtime
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
)

const (
	namespace = "deipd"

	labelCall   = "call"
	labelResult = "result"
	labelKind   = "kind"

	resultOk    = "ok"
	resultOther = "other"
)

// Collector - runtime counters on a private registry
type Collector struct {
	registry      *prometheus.Registry
	extrinsics    *prometheus.CounterVec
	events        *prometheus.CounterVec
	blockHeight   prometheus.Gauge
	blockTime     prometheus.Gauge
	rpcConnection prometheus.Gauge
}

// New - create and register all collectors
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		extrinsics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "runtime",
				Name:      "extrinsics_total",
				Help:      "Total number of applied extrinsics by call and result.",
			},
			[]string{labelCall, labelResult}),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "runtime",
				Name:      "events_total",
				Help:      "Total number of published events by kind.",
			},
			[]string{labelKind}),
		blockHeight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "chain",
				Name:      "block_height",
				Help:      "Number of the current block.",
			}),
		blockTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "chain",
				Name:      "block_timestamp",
				Help:      "Timestamp of the current block.",
			}),
		rpcConnection: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "connections",
				Help:      "Number of open client RPC connections.",
			}),
	}

	c.registry.MustRegister(
		c.extrinsics,
		c.events,
		c.blockHeight,
		c.blockTime,
		c.rpcConnection,
		collectors.NewGoCollector(),
	)
	return c
}

// label value for an extrinsic result, bounded by the enumerated errors
func result(err error) string {
	if nil == err {
		return resultOk
	}
	if code, ok := fault.Code(err); ok {
		return strconv.Itoa(int(code))
	}
	return resultOther
}

// Extrinsic - count one applied extrinsic
func (c *Collector) Extrinsic(call string, err error) {
	c.extrinsics.WithLabelValues(call, result(err)).Inc()
}

// Events - count published events
func (c *Collector) Events(events []event.Event) {
	for _, e := range events {
		c.events.WithLabelValues(e.Kind.String()).Inc()
	}
}

// Block - record the current block
func (c *Collector) Block(number uint64, timestamp clock.Moment) {
	c.blockHeight.Set(float64(number))
	c.blockTime.Set(float64(timestamp))
}

// ConnectionCount - record the open RPC connections
func (c *Collector) ConnectionCount(n uint64) {
	c.rpcConnection.Set(float64(n))
}

// Handler - HTTP handler for the /metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
