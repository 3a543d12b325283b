// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/event"
)

// Relay - forwards committed events from the bus to a handler
type Relay struct {
	log     *logger.L
	bus     *event.Bus
	handler func(event.Message)
}

// NewRelay - create a relay, a nil handler only logs
func NewRelay(bus *event.Bus, handler func(event.Message)) *Relay {
	return &Relay{
		log:     logger.New("relay"),
		bus:     bus,
		handler: handler,
	}
}

// Run - drain the bus until shutdown
func (r *Relay) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log
	log.Info("starting…")

	queue := r.bus.Chan(0)
	defer r.bus.Release(queue)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m, ok := <-queue:
			if !ok {
				break loop
			}
			log.Infof("sequence: %d  context: %s  event: %s", m.Sequence, m.Context, m.Event)
			if nil != r.handler {
				r.handler(m)
			}
		}
	}

	log.Infof("stopped  dropped: %d", r.bus.Dropped())
}
