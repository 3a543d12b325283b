// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdfunding

import (
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
)

// DefaultMaxShares - upper bound on share assets offered by one sale
const DefaultMaxShares = 10

// FundingKind - funding model tag
type FundingKind uint8

// funding models
const (
	Simple FundingKind = 0
)

// String - model name
func (k FundingKind) String() string {
	switch k {
	case Simple:
		return "SimpleCrowdfunding"
	default:
		return "*unknown*"
	}
}

// MarshalText - model name for JSON
func (k FundingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - model name from JSON
func (k *FundingKind) UnmarshalText(s []byte) error {
	if "SimpleCrowdfunding" != string(s) {
		return fault.UnknownFundingModel
	}
	*k = Simple
	return nil
}

// SimpleCrowdfunding - sale window and caps
type SimpleCrowdfunding struct {
	StartTime clock.Moment `json:"startTime"`
	EndTime   clock.Moment `json:"endTime"`
	SoftCap   Asset        `json:"softCap"`
	HardCap   Asset        `json:"hardCap"`
}

// FundingModel - how a sale raises funds; Simple is set for the simple model
type FundingModel struct {
	Kind   FundingKind         `json:"kind"`
	Simple *SimpleCrowdfunding `json:"simple,omitempty"`
}

// CreateParameters - input of create_investment_opportunity
type CreateParameters struct {
	Id           identifier.CrowdfundingId `json:"id"`
	Creator      principal.Principal       `json:"creator"`
	Shares       []Asset                   `json:"shares"`
	FundingModel FundingModel              `json:"fundingModel"`
}

// Engine - the crowdfunding state machine
type Engine struct {
	log       *logger.L
	store     *Store
	ledger    ledger.Gateway
	resolver  principal.Resolver
	clock     clock.Clock
	events    event.Sink
	maxShares int
}

// NewEngine - wire an engine to its collaborators
func NewEngine(
	store *Store,
	gateway ledger.Gateway,
	resolver principal.Resolver,
	c clock.Clock,
	events event.Sink,
	maxShares int,
) *Engine {
	if maxShares < 1 {
		maxShares = DefaultMaxShares
	}
	return &Engine{
		log:       logger.New("crowdfunding"),
		store:     store,
		ledger:    gateway,
		resolver:  resolver,
		clock:     c,
		events:    events,
		maxShares: maxShares,
	}
}

// Store - the engine's crowdfunding store
func (e *Engine) Store() *Store {
	return e.store
}

// Create - open a sale and reserve the offered shares on the creator
func (e *Engine) Create(origin principal.Account, ctx identifier.TransactionCtxId, parameters *CreateParameters) error {
	if e.store.Exists(parameters.Id) {
		return fault.AlreadyExists
	}

	creator, err := e.resolver.Resolve(parameters.Creator)
	if nil != err {
		return err
	}
	if creator != origin {
		return fault.BadOrigin
	}

	if Simple != parameters.FundingModel.Kind {
		return fault.UnknownFundingModel
	}
	model := parameters.FundingModel.Simple
	if nil == model {
		return fault.MissingParameters
	}

	if err := e.validate(model, parameters.Shares); nil != err {
		return err
	}

	// reserve every share, releasing earlier reservations on failure
	for i, share := range parameters.Shares {
		err := e.ledger.Reserve(share.Id, creator, share.Amount)
		if nil == err {
			continue
		}
		e.log.Debugf("create: %s  reserve share: %s  error: %s", parameters.Id, share.Id, err)
		for _, reserved := range parameters.Shares[:i] {
			if err := e.ledger.Unreserve(reserved.Id, creator, reserved.Amount); nil != err {
				logger.Panicf("crowdfunding: %s  release share: %s  error: %s", parameters.Id, reserved.Id, err)
			}
		}
		return fault.FailedToReserveAsset
	}

	c := &Crowdfunding{
		Id:          parameters.Id,
		Creator:     creator,
		StartTime:   model.StartTime,
		EndTime:     model.EndTime,
		Status:      Inactive,
		AssetId:     model.SoftCap.Id,
		TotalAmount: balance.Zero,
		SoftCap:     model.SoftCap.Amount,
		HardCap:     model.HardCap.Amount,
		Shares:      parameters.Shares,
		CreatedCtx:  ctx,
	}
	if err := e.store.Insert(c); nil != err {
		return err
	}

	e.log.Infof("create: %s  creator: %s  asset: %s  soft cap: %s  hard cap: %s", c.Id, creator, c.AssetId, c.SoftCap, c.HardCap)
	e.events.Emit(event.New(event.SimpleCrowdfundingCreated, c.Id))
	return nil
}

func (e *Engine) validate(model *SimpleCrowdfunding, shares []Asset) error {
	now := e.clock.Now()
	if model.StartTime < now {
		return fault.StartTimeInPast
	}
	if model.StartTime >= model.EndTime {
		return fault.EndTimeBeforeStart
	}

	if model.SoftCap.Id != model.HardCap.Id {
		return fault.CapDifferentAssets
	}
	if model.SoftCap.Amount.IsZero() {
		return fault.AssetAmountMustBePositive
	}
	if model.SoftCap.Amount.Gt(model.HardCap.Amount) {
		return fault.CapOrdering
	}

	if 0 == len(shares) {
		return fault.SecurityTokenNotSpecified
	}
	if len(shares) > e.maxShares {
		return fault.TooMuchShares
	}
	seen := make(map[identifier.AssetId]struct{}, len(shares))
	for _, share := range shares {
		if share.Id == model.SoftCap.Id {
			return fault.WrongAsset
		}
		if _, ok := seen[share.Id]; ok {
			return fault.DuplicateShares
		}
		seen[share.Id] = struct{}{}
		if share.Amount.IsZero() {
			return fault.AssetAmountMustBePositive
		}
	}
	return nil
}

// Activate - open an inactive sale whose start time has been reached
func (e *Engine) Activate(id identifier.CrowdfundingId) error {
	c, err := e.store.Get(id)
	if nil != err {
		return err
	}
	if Inactive != c.Status {
		return fault.ShouldBeInactive
	}
	if e.clock.Now() < c.StartTime {
		return fault.ShouldBeStarted
	}

	c.Status = Active
	if err := e.store.Update(c); nil != err {
		return err
	}
	e.log.Infof("activate: %s", id)
	e.events.Emit(event.New(event.SimpleCrowdfundingActivated, id))
	return nil
}

// Invest - reserve a contribution from the signer
//
// the amount is clamped to what remains below the hard cap; reaching
// the hard cap finishes the sale in the same call
func (e *Engine) Invest(origin principal.Account, id identifier.CrowdfundingId, asset Asset) error {
	c, err := e.store.Get(id)
	if nil != err {
		return err
	}
	if Active != c.Status {
		return fault.ShouldBeActive
	}
	now := e.clock.Now()
	if now >= c.EndTime {
		return fault.CrowdfundingEnded
	}
	if asset.Id != c.AssetId {
		return fault.WrongAsset
	}
	if asset.Amount.IsZero() {
		return fault.AssetAmountMustBePositive
	}

	remaining, err := c.HardCap.Sub(c.TotalAmount)
	if nil != err {
		logger.Panicf("crowdfunding: %s  total: %s  above hard cap: %s", id, c.TotalAmount, c.HardCap)
	}
	if remaining.IsZero() {
		return fault.ShouldBeActive
	}
	amount := asset.Amount.Min(remaining)

	total, err := c.TotalAmount.Add(amount)
	if nil != err {
		return err
	}

	if err := e.ledger.Reserve(c.AssetId, origin, amount); nil != err {
		e.log.Debugf("invest: %s  reserve on: %s  error: %s", id, origin, err)
		return fault.NotEnoughFunds
	}

	err = e.store.AddContribution(Contribution{
		SaleId: id,
		Owner:  origin,
		Amount: amount,
		Time:   now,
	})
	if nil != err {
		return err
	}

	c.TotalAmount = total
	if err := e.store.Update(c); nil != err {
		return err
	}

	e.log.Infof("invest: %s  investor: %s  amount: %s  total: %s", id, origin, amount, total)
	e.events.Emit(event.NewWithAccount(event.Invested, id, origin))

	if total == c.HardCap {
		return e.finish(c)
	}
	return nil
}

// Finish - settle a sale that reached its hard cap, or its soft cap by the end time
func (e *Engine) Finish(id identifier.CrowdfundingId) error {
	c, err := e.store.Get(id)
	if nil != err {
		return err
	}
	if Active != c.Status {
		return fault.ShouldBeActive
	}
	if c.TotalAmount != c.HardCap {
		if e.clock.Now() < c.EndTime {
			return fault.NotEnded
		}
		if c.TotalAmount.Lt(c.SoftCap) {
			return fault.SoftCapNotReached
		}
	}
	return e.finish(c)
}

// distribute shares pro rata and pay the creator
func (e *Engine) finish(c *Crowdfunding) error {
	contributions := e.store.Contributions(c.Id)

	for _, share := range c.Shares {
		distributed := balance.Zero
		for _, contribution := range contributions {
			part, err := share.Amount.MulDiv(contribution.Amount, c.TotalAmount)
			if nil != err {
				return err
			}
			if part.IsZero() {
				continue
			}
			if err := e.ledger.RepatriateReserved(share.Id, c.Creator, contribution.Owner, part); nil != err {
				return err
			}
			if distributed, err = distributed.Add(part); nil != err {
				return err
			}
		}

		dust, err := share.Amount.Sub(distributed)
		if nil != err {
			logger.Panicf("crowdfunding: %s  share: %s  over distributed: %s", c.Id, share.Id, distributed)
		}
		if err := e.ledger.Unreserve(share.Id, c.Creator, dust); nil != err {
			return err
		}
		e.log.Debugf("finish: %s  share: %s  distributed: %s  dust: %s", c.Id, share.Id, distributed, dust)
	}

	for _, contribution := range contributions {
		if err := e.ledger.RepatriateReserved(c.AssetId, contribution.Owner, c.Creator, contribution.Amount); nil != err {
			return err
		}
	}

	c.Status = Finished
	if err := e.store.Update(c); nil != err {
		return err
	}
	e.log.Infof("finish: %s  raised: %s  investors: %d", c.Id, c.TotalAmount, len(contributions))
	e.events.Emit(event.New(event.SimpleCrowdfundingFinished, c.Id))
	return nil
}

// Expire - refund a sale that ended below its soft cap
func (e *Engine) Expire(id identifier.CrowdfundingId) error {
	c, err := e.store.Get(id)
	if nil != err {
		return err
	}
	if Active != c.Status {
		return fault.ShouldBeActive
	}
	if e.clock.Now() < c.EndTime {
		return fault.NotEnded
	}
	if !c.TotalAmount.Lt(c.SoftCap) {
		return fault.SoftCapReached
	}

	contributions := e.store.Contributions(id)
	for _, contribution := range contributions {
		if err := e.ledger.Unreserve(c.AssetId, contribution.Owner, contribution.Amount); nil != err {
			return err
		}
	}
	for _, share := range c.Shares {
		if err := e.ledger.Unreserve(share.Id, c.Creator, share.Amount); nil != err {
			return err
		}
	}

	c.Status = Expired
	if err := e.store.Update(c); nil != err {
		return err
	}
	e.log.Infof("expire: %s  refunded: %s  investors: %d", id, c.TotalAmount, len(contributions))
	e.events.Emit(event.New(event.SimpleCrowdfundingExpired, id))
	return nil
}
