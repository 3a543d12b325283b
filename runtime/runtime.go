// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/genesis"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/project"
	"github.com/deip/deipd/storage"
)

// Metrics - observer of runtime activity
type Metrics interface {
	Extrinsic(call string, err error)
	Events(events []event.Event)
	Block(number uint64, timestamp clock.Moment)
}

type nullMetrics struct{}

func (nullMetrics) Extrinsic(string, error)    {}
func (nullMetrics) Events([]event.Event)       {}
func (nullMetrics) Block(uint64, clock.Moment) {}

// Options - runtime limits and observers, zero values select defaults
type Options struct {
	MaxParties  int
	MaxShares   int
	HistorySize int
	Metrics     Metrics
}

// Runtime - deterministic host for the engines
//
// extrinsics run one at a time, each in its own storage transaction;
// the events of an extrinsic are published only after it commits
type Runtime struct {
	sync.Mutex

	log     *logger.L
	db      *storage.Database
	clock   *clock.BlockClock
	events  *event.Recorder
	bus     *event.Bus
	history *event.History
	metrics Metrics

	ledger        *ledger.Ledger
	projects      *project.Projects
	daos          *principal.DaoRegistry
	agreements    *agreement.Engine
	crowdfundings *crowdfunding.Engine

	head           head
	extrinsicIndex uint32
	sequence       uint64
}

// New - runtime over an open database, resuming from its last block
func New(db *storage.Database, options Options) (*Runtime, error) {
	log := logger.New("runtime")

	h, err := readHead(db.Pools.Chain)
	if nil != err {
		return nil, err
	}

	if nil == options.Metrics {
		options.Metrics = nullMetrics{}
	}

	r := &Runtime{
		log:      log,
		db:       db,
		clock:    clock.New(h.timestamp),
		events:   &event.Recorder{},
		bus:      event.NewBus(),
		history:  event.NewHistory(options.HistorySize),
		metrics:  options.Metrics,
		ledger:   ledger.New(db.Pools.Asset, db.Pools.Balance),
		projects: project.New(db.Pools.Project),
		daos:     principal.NewDaoRegistry(db.Pools.Dao),
		head:     h,
	}

	agreements := agreement.NewStore(db.Pools.Agreement, db.Pools.AgreementIdByKind)
	r.agreements = agreement.NewEngine(agreements, r.ledger, r.projects, r.daos, r.clock, r.events, options.MaxParties)

	sales := crowdfunding.NewStore(db.Pools.Crowdfunding, db.Pools.Contributions)
	r.crowdfundings = crowdfunding.NewEngine(sales, r.ledger, r.daos, r.clock, r.events, options.MaxShares)

	log.Infof("resume at block: %d  timestamp: %d", h.number, h.timestamp)
	return r, nil
}

// NewBlock - start the next block at the given timestamp
func (r *Runtime) NewBlock(timestamp clock.Moment) (uint64, error) {
	r.Lock()
	defer r.Unlock()

	if timestamp < r.head.timestamp {
		r.log.Warnf("block timestamp: %d  before: %d", timestamp, r.head.timestamp)
		return r.head.number, fault.TimestampDecreased
	}

	next := head{
		number:    r.head.number + 1,
		timestamp: timestamp,
	}

	if err := r.db.Begin(); nil != err {
		return r.head.number, err
	}
	next.write(r.db.Pools.Chain)
	if err := r.db.Commit(); nil != err {
		r.db.Abort()
		return r.head.number, err
	}

	if err := r.clock.Advance(timestamp); nil != err {
		logger.Panicf("runtime: clock rejected committed timestamp: %d  error: %s", timestamp, err)
	}
	r.head = next
	r.extrinsicIndex = 0

	r.log.Debugf("block: %d  timestamp: %d", next.number, next.timestamp)
	r.metrics.Block(next.number, next.timestamp)
	return next.number, nil
}

// Apply - run one extrinsic signed by origin
//
// returns the transaction context the extrinsic was given; on error
// every write is discarded and no event is published
func (r *Runtime) Apply(origin principal.Account, call Call) (identifier.TransactionCtxId, error) {
	r.Lock()
	defer r.Unlock()

	if 0 == r.head.number {
		return identifier.TransactionCtxId{}, fault.NotInitialised
	}

	ctx := identifier.TransactionCtxId{
		BlockNumber:    r.head.number,
		ExtrinsicIndex: r.extrinsicIndex,
	}
	r.extrinsicIndex += 1

	if err := r.db.Begin(); nil != err {
		return ctx, err
	}
	r.events.Reset()

	err := call.dispatch(r, origin, ctx)
	if nil == err {
		err = r.db.Commit()
	}
	if nil != err {
		r.db.Abort()
		r.events.Reset()
		r.log.Warnf("%s: %s  origin: %s  error: %s", ctx, call.Name(), origin, err)
		r.metrics.Extrinsic(call.Name(), err)
		return ctx, err
	}

	events := r.events.Take()
	messages := make([]event.Message, len(events))
	for i, e := range events {
		messages[i] = event.Message{
			Sequence: r.sequence,
			Context:  ctx,
			Event:    e,
		}
		r.sequence += 1
	}
	r.history.Add(messages...)
	r.bus.Send(messages...)

	r.log.Infof("%s: %s  origin: %s  events: %d", ctx, call.Name(), origin, len(events))
	r.metrics.Extrinsic(call.Name(), nil)
	r.metrics.Events(events)
	return ctx, nil
}

// Head - number and timestamp of the current block
func (r *Runtime) Head() (uint64, clock.Moment) {
	r.Lock()
	defer r.Unlock()
	return r.head.number, r.head.timestamp
}

// StateDigest - digest of the committed state
func (r *Runtime) StateDigest() (storage.Digest, error) {
	r.Lock()
	defer r.Unlock()
	return r.db.StateDigest()
}

// Bus - committed events for live listeners
func (r *Runtime) Bus() *event.Bus {
	return r.bus
}

// History - recent committed events
func (r *Runtime) History() *event.History {
	return r.history
}

// Genesis - apply the initial state to a database that has none
//
// returns false if genesis was already applied
func (r *Runtime) Genesis(state *genesis.State) (bool, error) {
	r.Lock()
	defer r.Unlock()

	if r.db.Pools.Chain.Has(genesisKey) {
		return false, nil
	}

	if err := r.db.Begin(); nil != err {
		return false, err
	}
	err := state.Apply(r.ledger, r.projects, r.daos)
	if nil == err {
		r.db.Pools.Chain.Put(genesisKey, []byte{})
		err = r.db.Commit()
	}
	if nil != err {
		r.db.Abort()
		r.log.Criticalf("genesis error: %s", err)
		return false, err
	}

	r.log.Infof("genesis: assets: %d  daos: %d  projects: %d  balances: %d",
		len(state.Assets), len(state.Daos), len(state.Projects), len(state.Balances))
	return true, nil
}
