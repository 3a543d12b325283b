// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdfunding_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/mocks"
	"github.com/deip/deipd/principal"
)

func TestFinishAfterEndTime(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.open(t, 300, 1000)
	for _, u := range investors {
		h.mint(t, assetX, u, 200)
		require.Nil(t, h.invest(t, u, 200), "invest: %s", u)
		assert.Equal(t, held(0, 200), h.holding(t, assetX, u), "contribution reserved: %s", u)
	}

	assert.Equal(t, fault.NotEnded, h.engine.Finish(saleId), "finish before end")

	require.Nil(t, h.clock.Advance(endTime), "advance")
	require.Nil(t, h.engine.Finish(saleId), "finish")

	c := h.get(t)
	assert.Equal(t, crowdfunding.Finished, c.Status, "status")
	assert.Equal(t, balance.New(600), c.TotalAmount, "total raised")

	for _, u := range investors {
		assert.Equal(t, held(300, 0), h.holding(t, shareS, u), "shares received: %s", u)
		assert.Equal(t, held(0, 0), h.holding(t, assetX, u), "contribution paid: %s", u)
	}
	assert.Equal(t, held(600, 0), h.holding(t, assetX, creator), "creator raised")
	assert.Equal(t, held(0, 0), h.holding(t, shareS, creator), "creator shares distributed")

	kinds := []event.Kind{}
	for _, e := range h.events.Events() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []event.Kind{
		event.SimpleCrowdfundingCreated,
		event.SimpleCrowdfundingActivated,
		event.Invested,
		event.Invested,
		event.Invested,
		event.SimpleCrowdfundingFinished,
	}, kinds, "event sequence")

	assert.Equal(t, fault.ShouldBeActive, h.engine.Finish(saleId), "finish twice")
	assert.Equal(t, fault.ShouldBeActive, h.invest(t, investors[0], 1), "invest after finish")
}

func TestHardCapFinishesEarly(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.open(t, 300, 500)
	h.mint(t, assetX, investors[0], 300)
	h.mint(t, assetX, investors[1], 400)

	require.Nil(t, h.invest(t, investors[0], 300), "first investment")
	require.Nil(t, h.invest(t, investors[1], 400), "clamped investment")

	c := h.get(t)
	assert.Equal(t, crowdfunding.Finished, c.Status, "finished in the same call")
	assert.Equal(t, balance.New(500), c.TotalAmount, "total is the hard cap")

	assert.Equal(t, held(200, 0), h.holding(t, assetX, investors[1]), "only 200 taken")
	assert.Equal(t, held(500, 0), h.holding(t, assetX, creator), "creator raised")

	// 900 * 300 / 500 and 900 * 200 / 500
	assert.Equal(t, held(540, 0), h.holding(t, shareS, investors[0]), "first investor shares")
	assert.Equal(t, held(360, 0), h.holding(t, shareS, investors[1]), "second investor shares")

	contributions := h.engine.Store().Contributions(saleId)
	require.Equal(t, 2, len(contributions), "contributions")
	assert.Equal(t, balance.New(200), contributions[1].Amount, "clamped contribution recorded")
}

func TestEqualCapsFinishOnFirstFullInvestment(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.open(t, 500, 500)
	h.mint(t, assetX, investors[0], 500)
	h.events.Reset()

	require.Nil(t, h.invest(t, investors[0], 500), "investment")

	c := h.get(t)
	assert.Equal(t, crowdfunding.Finished, c.Status, "finished in the same call")
	assert.Equal(t, balance.New(500), c.TotalAmount, "total raised")

	assert.Equal(t, held(0, 0), h.holding(t, assetX, investors[0]), "contribution paid")
	assert.Equal(t, held(900, 0), h.holding(t, shareS, investors[0]), "all shares received")
	assert.Equal(t, held(500, 0), h.holding(t, assetX, creator), "creator raised")
	assert.Equal(t, held(0, 0), h.holding(t, shareS, creator), "creator shares distributed")

	kinds := []event.Kind{}
	for _, e := range h.events.Events() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []event.Kind{
		event.Invested,
		event.SimpleCrowdfundingFinished,
	}, kinds, "event sequence")
}

func TestExpireRefunds(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.open(t, 300, 1000)
	h.mint(t, assetX, investors[0], 100)
	h.mint(t, assetX, investors[1], 100)
	require.Nil(t, h.invest(t, investors[0], 60), "invest")
	require.Nil(t, h.invest(t, investors[1], 40), "invest")

	assert.Equal(t, fault.NotEnded, h.engine.Expire(saleId), "expire before end")

	require.Nil(t, h.clock.Advance(endTime), "advance")
	assert.Equal(t, fault.SoftCapNotReached, h.engine.Finish(saleId), "finish below soft cap")
	require.Nil(t, h.engine.Expire(saleId), "expire")

	assert.Equal(t, crowdfunding.Expired, h.get(t).Status, "status")
	assert.Equal(t, held(100, 0), h.holding(t, assetX, investors[0]), "refunded")
	assert.Equal(t, held(100, 0), h.holding(t, assetX, investors[1]), "refunded")
	assert.Equal(t, held(900, 0), h.holding(t, shareS, creator), "shares released")

	// a second expiry is a typed error and changes nothing
	h.events.Reset()
	assert.Equal(t, fault.ShouldBeActive, h.engine.Expire(saleId), "expire twice")
	assert.Equal(t, crowdfunding.Expired, h.get(t).Status, "status unchanged")
	assert.Equal(t, held(900, 0), h.holding(t, shareS, creator), "balance unchanged")
	assert.Equal(t, 0, len(h.events.Events()), "no events")
}

func TestExpireWithSoftCapReached(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.open(t, 300, 1000)
	h.mint(t, assetX, investors[0], 300)
	require.Nil(t, h.invest(t, investors[0], 300), "invest")

	require.Nil(t, h.clock.Advance(endTime), "advance")
	assert.Equal(t, fault.SoftCapReached, h.engine.Expire(saleId), "expire")
	assert.Equal(t, crowdfunding.Active, h.get(t).Status, "still active")
}

func TestCreateValidation(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.mint(t, shareS, creator, 900)
	h.mint(t, shareT, creator, 900)

	items := []struct {
		name   string
		origin principal.Account
		modify func(*crowdfunding.CreateParameters)
		err    error
	}{
		{
			name:   "creator is not origin",
			origin: investors[0],
			modify: func(p *crowdfunding.CreateParameters) {},
			err:    fault.BadOrigin,
		},
		{
			name:   "unknown model",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Kind = crowdfunding.FundingKind(3) },
			err:    fault.UnknownFundingModel,
		},
		{
			name:   "missing model",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Simple = nil },
			err:    fault.MissingParameters,
		},
		{
			name:   "start in the past",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Simple.StartTime = startTime - 1 },
			err:    fault.StartTimeInPast,
		},
		{
			name:   "end equals start",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Simple.EndTime = startTime },
			err:    fault.EndTimeBeforeStart,
		},
		{
			name:   "caps in different assets",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Simple.HardCap.Id = shareT },
			err:    fault.CapDifferentAssets,
		},
		{
			name:   "zero soft cap",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Simple.SoftCap.Amount = balance.Zero },
			err:    fault.AssetAmountMustBePositive,
		},
		{
			name:   "soft cap above hard cap",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.FundingModel.Simple.SoftCap.Amount = balance.New(1001) },
			err:    fault.CapOrdering,
		},
		{
			name:   "no shares",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.Shares = nil },
			err:    fault.SecurityTokenNotSpecified,
		},
		{
			name:   "too many shares",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) {
				p.Shares = make([]crowdfunding.Asset, crowdfunding.DefaultMaxShares+1)
				for i := range p.Shares {
					p.Shares[i] = crowdfunding.Asset{Id: identifier.Id{'s', byte(i)}, Amount: balance.New(1)}
				}
			},
			err: fault.TooMuchShares,
		},
		{
			name:   "share in the cap asset",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.Shares[0].Id = assetX },
			err:    fault.WrongAsset,
		},
		{
			name:   "duplicate shares",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.Shares = append(p.Shares, p.Shares[0]) },
			err:    fault.DuplicateShares,
		},
		{
			name:   "zero share",
			origin: creator,
			modify: func(p *crowdfunding.CreateParameters) { p.Shares[0].Amount = balance.Zero },
			err:    fault.AssetAmountMustBePositive,
		},
	}

	for _, item := range items {
		parameters := saleParameters(300, 1000)
		item.modify(parameters)
		err := h.engine.Create(item.origin, ctx, parameters)
		assert.Equal(t, item.err, err, item.name)
		assert.False(t, h.engine.Store().Exists(saleId), item.name)
	}
	assert.Equal(t, held(900, 0), h.holding(t, shareS, creator), "nothing reserved")

	// equal caps are allowed
	require.Nil(t, h.engine.Create(creator, ctx, saleParameters(1000, 1000)), "equal caps")
	assert.Equal(t, fault.AlreadyExists, h.engine.Create(creator, ctx, saleParameters(300, 1000)), "duplicate id")

	c := h.get(t)
	assert.Equal(t, crowdfunding.Inactive, c.Status, "initial status")
	assert.Equal(t, ctx, c.CreatedCtx, "creation context")
	assert.Equal(t, held(0, 900), h.holding(t, shareS, creator), "shares reserved")
}

func TestCreateReleasesSharesOnReserveFailure(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.mint(t, shareS, creator, 900)
	h.mint(t, shareT, creator, 10)

	parameters := saleParameters(300, 1000)
	parameters.Shares = append(parameters.Shares, crowdfunding.Asset{Id: shareT, Amount: balance.New(50)})

	err := h.engine.Create(creator, ctx, parameters)
	assert.Equal(t, fault.FailedToReserveAsset, err, "create")
	assert.Equal(t, held(900, 0), h.holding(t, shareS, creator), "first share released")
	assert.Equal(t, held(10, 0), h.holding(t, shareT, creator), "second share untouched")
	assert.False(t, h.engine.Store().Exists(saleId), "not stored")
}

func TestCreateUnwindsInOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	gateway := mocks.NewMockGateway(ctl)
	h := newHarness(t, gateway)
	defer h.close()

	parameters := saleParameters(300, 1000)
	parameters.Shares = append(parameters.Shares, crowdfunding.Asset{Id: shareT, Amount: balance.New(50)})

	gomock.InOrder(
		gateway.EXPECT().Reserve(shareS, creator, balance.New(900)).Return(nil).Times(1),
		gateway.EXPECT().Reserve(shareT, creator, balance.New(50)).Return(fault.InsufficientBalance).Times(1),
		gateway.EXPECT().Unreserve(shareS, creator, balance.New(900)).Return(nil).Times(1),
	)

	assert.Equal(t, fault.FailedToReserveAsset, h.engine.Create(creator, ctx, parameters), "create")
}

func TestActivate(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.mint(t, shareS, creator, 900)
	parameters := saleParameters(300, 1000)
	parameters.FundingModel.Simple.StartTime = startTime + 100
	require.Nil(t, h.engine.Create(creator, ctx, parameters), "create")

	assert.Equal(t, fault.NotFound, h.engine.Activate(identifier.Id{'?'}), "unknown sale")
	assert.Equal(t, fault.ShouldBeActive, h.invest(t, investors[0], 1), "invest while inactive")
	assert.Equal(t, fault.ShouldBeActive, h.engine.Finish(saleId), "finish while inactive")
	assert.Equal(t, fault.ShouldBeActive, h.engine.Expire(saleId), "expire while inactive")
	assert.Equal(t, fault.ShouldBeStarted, h.engine.Activate(saleId), "activate early")

	require.Nil(t, h.clock.Advance(startTime+100), "advance")
	require.Nil(t, h.engine.Activate(saleId), "activate at start")
	assert.Equal(t, crowdfunding.Active, h.get(t).Status, "active")
	assert.Equal(t, fault.ShouldBeInactive, h.engine.Activate(saleId), "activate twice")
}

func TestInvestRules(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.open(t, 300, 1000)
	u := investors[0]
	h.mint(t, assetX, u, 500)
	h.mint(t, shareT, u, 500)

	err := h.engine.Invest(u, saleId, crowdfunding.Asset{Id: shareT, Amount: balance.New(10)})
	assert.Equal(t, fault.WrongAsset, err, "wrong asset")
	assert.Equal(t, fault.AssetAmountMustBePositive, h.invest(t, u, 0), "zero amount")
	assert.Equal(t, fault.NotEnoughFunds, h.invest(t, u, 501), "more than held")

	require.Nil(t, h.clock.Advance(startTime+10), "advance")
	require.Nil(t, h.invest(t, u, 100), "first")
	require.Nil(t, h.clock.Advance(startTime+20), "advance")
	require.Nil(t, h.invest(t, u, 50), "second")

	contributions := h.engine.Store().Contributions(saleId)
	require.Equal(t, 1, len(contributions), "merged per investor")
	assert.Equal(t, balance.New(150), contributions[0].Amount, "accumulated amount")
	assert.Equal(t, startTime+20, contributions[0].Time, "latest contribution time")
	assert.Equal(t, balance.New(150), h.get(t).TotalAmount, "total")

	require.Nil(t, h.clock.Advance(endTime), "advance to end")
	assert.Equal(t, fault.CrowdfundingEnded, h.invest(t, u, 10), "invest at end")
}

func TestProRataDustStaysWithCreator(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	h.mint(t, shareS, creator, 100)
	parameters := saleParameters(3, 3)
	parameters.Shares[0].Amount = balance.New(100)
	require.Nil(t, h.engine.Create(creator, ctx, parameters), "create")
	require.Nil(t, h.engine.Activate(saleId), "activate")

	for _, u := range investors {
		h.mint(t, assetX, u, 1)
		require.Nil(t, h.invest(t, u, 1), "invest: %s", u)
	}

	assert.Equal(t, crowdfunding.Finished, h.get(t).Status, "hard cap reached")
	for _, u := range investors {
		assert.Equal(t, held(33, 0), h.holding(t, shareS, u), "floor share: %s", u)
	}
	assert.Equal(t, held(1, 0), h.holding(t, shareS, creator), "dust returned to creator")
}

func TestFinishConservesAssets(t *testing.T) {
	h := newHarness(t, nil)
	defer h.close()

	everyone := append([]principal.Account{creator}, investors...)

	h.mint(t, shareS, creator, 1000)
	h.mint(t, shareT, creator, 7)
	parameters := saleParameters(100, 1000)
	parameters.Shares = []crowdfunding.Asset{
		{Id: shareS, Amount: balance.New(1000)},
		{Id: shareT, Amount: balance.New(7)},
	}
	require.Nil(t, h.engine.Create(creator, ctx, parameters), "create")
	require.Nil(t, h.engine.Activate(saleId), "activate")

	amounts := []uint64{13, 101, 37}
	for i, u := range investors {
		h.mint(t, assetX, u, 200)
		require.Nil(t, h.invest(t, u, amounts[i]), "invest: %s", u)
	}

	beforeX := h.sum(t, assetX, everyone...)
	beforeS := h.sum(t, shareS, everyone...)
	beforeT := h.sum(t, shareT, everyone...)

	require.Nil(t, h.clock.Advance(endTime), "advance")
	require.Nil(t, h.engine.Finish(saleId), "finish")

	assert.Equal(t, beforeX, h.sum(t, assetX, everyone...), "cap asset conserved")
	assert.Equal(t, beforeS, h.sum(t, shareS, everyone...), "share S conserved")
	assert.Equal(t, beforeT, h.sum(t, shareT, everyone...), "share T conserved")

	for _, a := range everyone {
		for _, asset := range []identifier.AssetId{assetX, shareS, shareT} {
			assert.True(t, h.holding(t, asset, a).Reserved.IsZero(), "no reservation left: %s %s", asset, a)
		}
	}
}

func TestProRataSum(t *testing.T) {
	totals := []uint64{1, 7, 100, 999983, 1 << 40}
	splits := [][]uint64{
		{1},
		{1, 1, 1},
		{3, 5, 7, 11},
		{1, 1000000},
		{123456789, 987654321, 55555},
	}

	for _, s := range totals {
		shares := balance.New(s)
		for _, split := range splits {
			raised := balance.Zero
			for _, a := range split {
				var err error
				raised, err = raised.Add(balance.New(a))
				require.Nil(t, err, "raised")
			}

			distributed := balance.Zero
			for _, a := range split {
				part, err := shares.MulDiv(balance.New(a), raised)
				require.Nil(t, err, "part")
				distributed, err = distributed.Add(part)
				require.Nil(t, err, "distributed")
			}
			assert.False(t, distributed.Gt(shares), "never over distributed: %d %v", s, split)

			residue, err := shares.Sub(distributed)
			require.Nil(t, err, "residue")
			sum, err := distributed.Add(residue)
			require.Nil(t, err, "sum")
			assert.Equal(t, shares, sum, "shares plus residue: %d %v", s, split)
			assert.True(t, residue.Lt(balance.New(uint64(len(split)))) || residue.IsZero(), "residue below investor count: %d %v", s, split)
		}
	}
}
