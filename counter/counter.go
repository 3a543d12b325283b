// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic counters shared by listeners and metrics
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value safe for concurrent update
type Counter uint64

// Increment - add 1, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1, returns the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Acquire - increment only while the value stays at or below limit
//
// a false return leaves the counter unchanged
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
