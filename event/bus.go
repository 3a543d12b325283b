// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"sync"

	"github.com/deip/deipd/identifier"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a committed event and where it happened
type Message struct {
	Sequence uint64                      `json:"sequence"`
	Context  identifier.TransactionCtxId `json:"context"`
	Event    Event                       `json:"event"`
}

// Bus - fan out committed events to any number of listeners
//
// a listener that falls behind misses messages rather than stalling
// the runtime
type Bus struct {
	sync.Mutex
	listeners []chan Message
	dropped   uint64
}

// NewBus - create an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Send - deliver to every listener without blocking
func (b *Bus) Send(messages ...Message) {
	b.Lock()
	defer b.Unlock()

	for _, m := range messages {
		for _, c := range b.listeners {
			select {
			case c <- m:
			default:
				b.dropped += 1
			}
		}
	}
}

// Chan - register a listener, size 0 selects the default queue size
func (b *Bus) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	b.Lock()
	b.listeners = append(b.listeners, c)
	b.Unlock()

	return c
}

// Release - unregister a listener and close its channel
func (b *Bus) Release(listener <-chan Message) {
	b.Lock()
	defer b.Unlock()

	for i, c := range b.listeners {
		if (<-chan Message)(c) == listener {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			close(c)
			return
		}
	}
}

// Dropped - count of deliveries skipped because a listener was full
func (b *Bus) Dropped() uint64 {
	b.Lock()
	defer b.Unlock()
	return b.dropped
}
