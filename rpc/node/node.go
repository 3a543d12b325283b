// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/counter"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/rpc/ratelimit"
	"github.com/deip/deipd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// limit for count
const maximumEventList = 100

// Host - the node state these calls report on
type Host interface {
	Head() (uint64, clock.Moment)
	StateDigest() (storage.Digest, error)
	History() *event.History
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Host    Host
	Mode    func() string
	counter *counter.Counter
}

// New - create the service
func New(log *logger.L, host Host, start time.Time, version string, mode func() string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: ratelimit.New(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Host:    host,
		Mode:    mode,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// BlockInfo - the current block
type BlockInfo struct {
	Height    uint64       `json:"height"`
	Timestamp clock.Moment `json:"timestamp"`
}

// InfoReply - results from info request
type InfoReply struct {
	Mode        string         `json:"mode"`
	Block       BlockInfo      `json:"block"`
	StateDigest storage.Digest `json:"stateDigest"`
	RPCs        uint64         `json:"rpcs"`
	Version     string         `json:"version"`
	Uptime      string         `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	digest, err := node.Host.StateDigest()
	if nil != err {
		return err
	}

	number, timestamp := node.Host.Head()

	reply.Mode = node.Mode()
	reply.Block = BlockInfo{
		Height:    number,
		Timestamp: timestamp,
	}
	reply.StateDigest = digest
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// EventsArguments - where to resume reading the event history
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - committed events and the sequence to continue from
type EventsReply struct {
	Events    []event.Message `json:"events"`
	NextStart uint64          `json:"nextStart,string"`
}

// Events - recent committed events in sequence order
//
// events older than the retained history are silently skipped
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {
	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEventList); nil != err {
		return err
	}

	messages, next, err := node.Host.History().Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Events = messages
	reply.NextStart = next
	return nil
}
