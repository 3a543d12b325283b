// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/storage"
)

var (
	headKey    = []byte("head")
	genesisKey = []byte("genesis")
)

// the last block started
type head struct {
	number    uint64
	timestamp clock.Moment
}

func readHead(pool *storage.PoolHandle) (head, error) {
	packed := pool.Get(headKey)
	if nil == packed {
		return head{}, nil
	}
	r := codec.NewReader(packed)
	number, err := r.Uint64()
	if nil != err {
		return head{}, err
	}
	timestamp, err := r.Uint64()
	if nil != err {
		return head{}, err
	}
	if err := r.Done(); nil != err {
		return head{}, err
	}
	return head{number: number, timestamp: timestamp}, nil
}

func (h head) write(pool *storage.PoolHandle) {
	buffer := codec.AppendUint64(nil, h.number)
	buffer = codec.AppendUint64(buffer, h.timestamp)
	pool.Put(headKey, buffer)
}
