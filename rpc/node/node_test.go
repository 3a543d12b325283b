// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/counter"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/rpc/node"
	"github.com/deip/deipd/storage"
)

type fakeHost struct {
	history *event.History
	digest  storage.Digest
	err     error
}

func (h *fakeHost) Head() (uint64, clock.Moment)         { return 7, 1234 }
func (h *fakeHost) StateDigest() (storage.Digest, error) { return h.digest, h.err }
func (h *fakeHost) History() *event.History              { return h.history }

func newNode(host node.Host, c *counter.Counter) *node.Node {
	return node.New(
		logger.New(fixtures.LogCategory),
		host,
		time.Now(),
		"100",
		func() string { return "Normal" },
		c,
	)
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.Counter(5)
	host := &fakeHost{digest: storage.Digest{1, 2, 3}}
	n := newNode(host, &c)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	require.Nil(t, err, "wrong Info")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(7), reply.Block.Height, "wrong block height")
	assert.Equal(t, clock.Moment(1234), reply.Block.Timestamp, "wrong block timestamp")
	assert.Equal(t, host.digest, reply.StateDigest, "wrong digest")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")

	host.err = fault.TransactionInUse
	assert.Equal(t, fault.TransactionInUse, n.Info(&node.InfoArguments{}, &reply), "digest error")
}

func TestNodeEvents(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	history := event.NewHistory(3)
	for i := uint64(0); i < 5; i += 1 {
		history.Add(event.Message{
			Sequence: i,
			Event:    event.New(event.Invested, identifier.Id{byte(i)}),
		})
	}

	c := counter.Counter(0)
	n := newNode(&fakeHost{history: history}, &c)

	var reply node.EventsReply
	require.Nil(t, n.Events(&node.EventsArguments{Start: 0, Count: 10}, &reply), "wrong Events")
	require.Equal(t, 3, len(reply.Events), "only the retained events")
	assert.Equal(t, uint64(2), reply.Events[0].Sequence, "oldest retained")
	assert.Equal(t, uint64(5), reply.NextStart, "wrong next start")

	assert.Equal(t, fault.InvalidCount, n.Events(&node.EventsArguments{Count: 0}, &reply), "zero count")
	assert.Equal(t, fault.InvalidCount, n.Events(&node.EventsArguments{Count: 101}, &reply), "count above limit")
}
