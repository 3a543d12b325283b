// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - host supplied block time
package clock

import (
	"sync"

	"github.com/deip/deipd/fault"
)

// Moment - block timestamp in milliseconds
type Moment = uint64

// Clock - the only time source the engines see
type Clock interface {
	Now() Moment
}

// BlockClock - timestamp of the block being executed
type BlockClock struct {
	sync.RWMutex
	now Moment
}

// New - clock starting at a given moment
func New(start Moment) *BlockClock {
	return &BlockClock{now: start}
}

// Now - current block timestamp
func (c *BlockClock) Now() Moment {
	c.RLock()
	defer c.RUnlock()
	return c.now
}

// Advance - move to the next block timestamp, which may not go backwards
func (c *BlockClock) Advance(timestamp Moment) error {
	c.Lock()
	defer c.Unlock()
	if timestamp < c.now {
		return fault.TimestampDecreased
	}
	c.now = timestamp
	return nil
}
