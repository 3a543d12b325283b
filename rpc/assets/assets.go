// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/ratelimit"
	"github.com/deip/deipd/rpc/submit"
	"github.com/deip/deipd/runtime"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Assets - type for RPC calls
type Assets struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    *runtime.Runtime
	IsMode  func(mode.Mode) bool
}

// New - create the service
func New(log *logger.L, host *runtime.Runtime, isMode func(mode.Mode) bool) *Assets {
	return &Assets{
		Log:     log,
		Limiter: ratelimit.New(rateLimitAssets, rateBurstAssets),
		Host:    host,
		IsMode:  isMode,
	}
}

// ---

// CreateArguments - new asset administered by origin
type CreateArguments struct {
	Origin     principal.Account  `json:"origin"`
	Id         identifier.AssetId `json:"id"`
	MinBalance balance.Balance    `json:"minBalance"`
}

// Create - submit create_asset
func (a *Assets) Create(arguments *CreateArguments, reply *submit.Reply) error {
	call := &runtime.CreateAsset{Id: arguments.Id, MinBalance: arguments.MinBalance}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// ---

// MoveArguments - mint to or transfer to an account
type MoveArguments struct {
	Origin principal.Account  `json:"origin"`
	Asset  identifier.AssetId `json:"asset"`
	To     principal.Account  `json:"to"`
	Amount balance.Balance    `json:"amount"`
}

// Mint - submit mint, origin must be the asset admin
func (a *Assets) Mint(arguments *MoveArguments, reply *submit.Reply) error {
	call := &runtime.Mint{Asset: arguments.Asset, To: arguments.To, Amount: arguments.Amount}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// Transfer - submit transfer from origin
func (a *Assets) Transfer(arguments *MoveArguments, reply *submit.Reply) error {
	call := &runtime.Transfer{Asset: arguments.Asset, To: arguments.To, Amount: arguments.Amount}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// ---

// BurnArguments - destroy part of origin's free balance
type BurnArguments struct {
	Origin principal.Account  `json:"origin"`
	Asset  identifier.AssetId `json:"asset"`
	Amount balance.Balance    `json:"amount"`
}

// Burn - submit burn
func (a *Assets) Burn(arguments *BurnArguments, reply *submit.Reply) error {
	call := &runtime.Burn{Asset: arguments.Asset, Amount: arguments.Amount}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// ---

// GetArguments - asset to read
type GetArguments struct {
	Id identifier.AssetId `json:"id"`
}

// GetReply - the asset definition
type GetReply struct {
	Asset *ledger.Asset `json:"asset"`
}

// Get - read an asset
func (a *Assets) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	asset, err := a.Host.Asset(arguments.Id)
	if nil != err {
		return err
	}
	reply.Asset = asset
	return nil
}

// ---

// BalanceArguments - holding to read
type BalanceArguments struct {
	Asset   identifier.AssetId `json:"asset"`
	Account principal.Account  `json:"account"`
}

// BalanceReply - free and reserved amounts
type BalanceReply struct {
	ledger.AccountBalance
}

// Balance - read a holding
func (a *Assets) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	b, err := a.Host.Balance(arguments.Asset, arguments.Account)
	if nil != err {
		return err
	}
	reply.AccountBalance = b
	return nil
}
