// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deip/deipd/rpc/node"
)

// GetInfo - node status
func (c *Client) GetInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", &node.InfoArguments{}, reply)
	return reply, err
}

// GetEvents - committed events from a sequence number
func (c *Client) GetEvents(start uint64, count int) (*node.EventsReply, error) {
	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}
	reply := &node.EventsReply{}
	err := c.call("Node.Events", &arguments, reply)
	return reply, err
}
