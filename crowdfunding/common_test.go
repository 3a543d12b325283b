// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdfunding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/storage"
)

const (
	startTime = clock.Moment(1000)
	endTime   = clock.Moment(2000)
)

var (
	assetX  = identifier.Id{'X'}
	shareS  = identifier.Id{'S'}
	shareT  = identifier.Id{'T'}
	saleId  = identifier.Id{'C', 'F', '1'}
	creator = principal.Account{'C'}
	admin   = principal.Account{'a', 'd', 'm'}

	investors = []principal.Account{{'U', '1'}, {'U', '2'}, {'U', '3'}}

	ctx = identifier.TransactionCtxId{BlockNumber: 7, ExtrinsicIndex: 2}
)

type harness struct {
	db     *storage.Database
	ledger *ledger.Ledger
	clock  *clock.BlockClock
	events *event.Recorder
	engine *crowdfunding.Engine
}

// fresh state with assets X, S and T and an open transaction
//
// gateway replaces the real ledger when not nil
func newHarness(t *testing.T, gateway ledger.Gateway) *harness {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open database")
	require.Nil(t, db.Begin(), "begin")

	h := &harness{
		db:     db,
		ledger: ledger.New(db.Pools.Asset, db.Pools.Balance),
		clock:  clock.New(startTime),
		events: &event.Recorder{},
	}
	for _, asset := range []identifier.AssetId{assetX, shareS, shareT} {
		require.Nil(t, h.ledger.CreateAsset(asset, admin, balance.New(1)), "create asset: %s", asset)
	}

	if nil == gateway {
		gateway = h.ledger
	}
	store := crowdfunding.NewStore(db.Pools.Crowdfunding, db.Pools.Contributions)
	resolver := principal.NewDaoRegistry(db.Pools.Dao)
	h.engine = crowdfunding.NewEngine(store, gateway, resolver, h.clock, h.events, crowdfunding.DefaultMaxShares)
	return h
}

func (h *harness) close() {
	h.db.Abort()
	h.db.Close()
	fixtures.TeardownTestLogger()
}

func (h *harness) mint(t *testing.T, asset identifier.AssetId, who principal.Account, amount uint64) {
	require.Nil(t, h.ledger.Mint(asset, who, balance.New(amount)), "mint")
}

func (h *harness) holding(t *testing.T, asset identifier.AssetId, who principal.Account) ledger.AccountBalance {
	b, err := h.ledger.Balance(asset, who)
	require.Nil(t, err, "balance")
	return b
}

func (h *harness) get(t *testing.T) *crowdfunding.Crowdfunding {
	c, err := h.engine.Store().Get(saleId)
	require.Nil(t, err, "get crowdfunding")
	return c
}

// total of free plus reserved over the given accounts
func (h *harness) sum(t *testing.T, asset identifier.AssetId, accounts ...principal.Account) balance.Balance {
	total := balance.Zero
	for _, a := range accounts {
		b, err := h.holding(t, asset, a).Total()
		require.Nil(t, err, "account total")
		total, err = total.Add(b)
		require.Nil(t, err, "sum")
	}
	return total
}

// create and activate a sale offering 900 S for X
func (h *harness) open(t *testing.T, soft uint64, hard uint64) {
	h.mint(t, shareS, creator, 900)
	require.Nil(t, h.engine.Create(creator, ctx, saleParameters(soft, hard)), "create")
	require.Nil(t, h.engine.Activate(saleId), "activate")
}

func (h *harness) invest(t *testing.T, who principal.Account, amount uint64) error {
	return h.engine.Invest(who, saleId, crowdfunding.Asset{Id: assetX, Amount: balance.New(amount)})
}

func held(free uint64, reserved uint64) ledger.AccountBalance {
	return ledger.AccountBalance{Free: balance.New(free), Reserved: balance.New(reserved)}
}

func saleParameters(soft uint64, hard uint64) *crowdfunding.CreateParameters {
	return &crowdfunding.CreateParameters{
		Id:      saleId,
		Creator: principal.NewNative(creator),
		Shares: []crowdfunding.Asset{
			{Id: shareS, Amount: balance.New(900)},
		},
		FundingModel: crowdfunding.FundingModel{
			Kind: crowdfunding.Simple,
			Simple: &crowdfunding.SimpleCrowdfunding{
				StartTime: startTime,
				EndTime:   endTime,
				SoftCap:   crowdfunding.Asset{Id: assetX, Amount: balance.New(soft)},
				HardCap:   crowdfunding.Asset{Id: assetX, Amount: balance.New(hard)},
			},
		},
	}
}
