// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"sync"

	"github.com/gammazero/deque"

	"github.com/deip/deipd/fault"
)

// History - the most recent committed messages, oldest first
type History struct {
	sync.RWMutex
	capacity int
	queue    deque.Deque
}

// NewHistory - keep at most capacity messages
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = defaultQueueSize
	}
	return &History{
		capacity: capacity,
	}
}

// Add - append messages, discarding the oldest beyond capacity
func (h *History) Add(messages ...Message) {
	h.Lock()
	defer h.Unlock()

	for _, m := range messages {
		h.queue.PushBack(m)
		for h.queue.Len() > h.capacity {
			h.queue.PopFront()
		}
	}
}

// Fetch - up to count messages with sequence ≥ start
//
// also returns the sequence to continue from
func (h *History) Fetch(start uint64, count int) ([]Message, uint64, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	h.RLock()
	defer h.RUnlock()

	result := make([]Message, 0, count)
	next := start
	for i := 0; i < h.queue.Len() && len(result) < count; i += 1 {
		m := h.queue.At(i).(Message)
		if m.Sequence < start {
			continue
		}
		result = append(result, m)
		next = m.Sequence + 1
	}
	return result, next, nil
}
