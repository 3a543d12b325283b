// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/storage"
)

// Asset - registered asset
type Asset struct {
	Id         identifier.AssetId `json:"id"`
	Admin      principal.Account  `json:"admin"`
	MinBalance balance.Balance    `json:"minBalance"`
	Supply     balance.Balance    `json:"supply"`
}

// Ledger - storage backed Gateway
type Ledger struct {
	log      *logger.L
	assets   *storage.PoolHandle
	balances *storage.PoolHandle
}

var _ Gateway = (*Ledger)(nil)

// New - ledger over the asset and balance pools
func New(assets *storage.PoolHandle, balances *storage.PoolHandle) *Ledger {
	return &Ledger{
		log:      logger.New("ledger"),
		assets:   assets,
		balances: balances,
	}
}

// CreateAsset - register a new asset with zero supply
func (l *Ledger) CreateAsset(id identifier.AssetId, admin principal.Account, minBalance balance.Balance) error {
	if minBalance.IsZero() {
		return fault.MinimumBalanceMustBePositive
	}
	if l.assets.Has(id[:]) {
		return fault.AssetAlreadyExists
	}
	l.putAsset(&Asset{
		Id:         id,
		Admin:      admin,
		MinBalance: minBalance,
		Supply:     balance.Zero,
	})
	l.log.Infof("create asset: %s  admin: %s  min: %s", id, admin, minBalance)
	return nil
}

// Asset - read an asset record
func (l *Ledger) Asset(id identifier.AssetId) (*Asset, error) {
	value := l.assets.Get(id[:])
	if nil == value {
		return nil, fault.AssetNotFound
	}
	asset, err := unpackAsset(id, value)
	if nil != err {
		logger.Panicf("ledger: asset: %s  corrupt record: %x  error: %s", id, value, err)
	}
	return asset, nil
}

func unpackAsset(id identifier.AssetId, packed []byte) (*Asset, error) {
	r := codec.NewReader(packed)
	admin, err := principal.UnpackAccount(r)
	if nil != err {
		return nil, err
	}
	minBalance, err := balance.Unpack(r)
	if nil != err {
		return nil, err
	}
	supply, err := balance.Unpack(r)
	if nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return &Asset{Id: id, Admin: admin, MinBalance: minBalance, Supply: supply}, nil
}

func (l *Ledger) putAsset(asset *Asset) {
	packed := asset.Admin.Pack(nil)
	packed = asset.MinBalance.Pack(packed)
	packed = asset.Supply.Pack(packed)
	l.assets.Put(asset.Id[:], packed)
}

func balanceKey(asset identifier.AssetId, who principal.Account) []byte {
	key := make([]byte, 0, identifier.IdLength+principal.AccountLength)
	key = append(key, asset[:]...)
	return append(key, who[:]...)
}

// Balance - free and reserved holdings, zero if never credited
func (l *Ledger) Balance(asset identifier.AssetId, who principal.Account) (AccountBalance, error) {
	if !l.assets.Has(asset[:]) {
		return AccountBalance{}, fault.AssetNotFound
	}
	return l.getBalance(asset, who), nil
}

func (l *Ledger) getBalance(asset identifier.AssetId, who principal.Account) AccountBalance {
	value := l.balances.Get(balanceKey(asset, who))
	if nil == value {
		return AccountBalance{}
	}
	b, err := unpackBalance(value)
	if nil != err {
		logger.Panicf("ledger: balance: %s/%s  corrupt record: %x  error: %s", asset, who, value, err)
	}
	return b
}

func unpackBalance(packed []byte) (AccountBalance, error) {
	r := codec.NewReader(packed)
	free, err := balance.Unpack(r)
	if nil != err {
		return AccountBalance{}, err
	}
	reserved, err := balance.Unpack(r)
	if nil != err {
		return AccountBalance{}, err
	}
	if err := r.Done(); nil != err {
		return AccountBalance{}, err
	}
	return AccountBalance{Free: free, Reserved: reserved}, nil
}

func (l *Ledger) putBalance(asset identifier.AssetId, who principal.Account, b AccountBalance) {
	key := balanceKey(asset, who)
	if b.Free.IsZero() && b.Reserved.IsZero() {
		l.balances.Delete(key)
		return
	}
	packed := b.Free.Pack(nil)
	packed = b.Reserved.Pack(packed)
	l.balances.Put(key, packed)
}

// a non-zero total must reach the asset minimum
func checkMinimum(asset *Asset, b AccountBalance) error {
	total, err := b.Total()
	if nil != err {
		return err
	}
	if !total.IsZero() && total.Lt(asset.MinBalance) {
		return fault.BelowMinimumBalance
	}
	return nil
}

// Reserve - move free funds to reserved on the same account
func (l *Ledger) Reserve(asset identifier.AssetId, who principal.Account, amount balance.Balance) error {
	if !l.assets.Has(asset[:]) {
		return fault.AssetNotFound
	}
	if amount.IsZero() {
		return nil
	}
	b := l.getBalance(asset, who)
	free, err := b.Free.Sub(amount)
	if nil != err {
		return fault.InsufficientBalance
	}
	reserved, err := b.Reserved.Add(amount)
	if nil != err {
		return err
	}
	l.putBalance(asset, who, AccountBalance{Free: free, Reserved: reserved})
	l.log.Debugf("reserve: %s  account: %s  amount: %s", asset, who, amount)
	return nil
}

// Unreserve - move reserved funds back to free on the same account
func (l *Ledger) Unreserve(asset identifier.AssetId, who principal.Account, amount balance.Balance) error {
	if !l.assets.Has(asset[:]) {
		return fault.AssetNotFound
	}
	if amount.IsZero() {
		return nil
	}
	b := l.getBalance(asset, who)
	reserved, err := b.Reserved.Sub(amount)
	if nil != err {
		return fault.InsufficientReserved
	}
	free, err := b.Free.Add(amount)
	if nil != err {
		return err
	}
	l.putBalance(asset, who, AccountBalance{Free: free, Reserved: reserved})
	l.log.Debugf("unreserve: %s  account: %s  amount: %s", asset, who, amount)
	return nil
}

// RepatriateReserved - move reserved funds of one account to the free balance of another
func (l *Ledger) RepatriateReserved(asset identifier.AssetId, from principal.Account, to principal.Account, amount balance.Balance) error {
	if !l.assets.Has(asset[:]) {
		return fault.AssetNotFound
	}
	if amount.IsZero() {
		return nil
	}

	source := l.getBalance(asset, from)
	reserved, err := source.Reserved.Sub(amount)
	if nil != err {
		return fault.InsufficientReserved
	}
	source.Reserved = reserved

	if from == to {
		source.Free, err = source.Free.Add(amount)
		if nil != err {
			return err
		}
		l.putBalance(asset, from, source)
		return nil
	}

	destination := l.getBalance(asset, to)
	destination.Free, err = destination.Free.Add(amount)
	if nil != err {
		return err
	}

	l.putBalance(asset, from, source)
	l.putBalance(asset, to, destination)
	l.log.Debugf("repatriate: %s  from: %s  to: %s  amount: %s", asset, from, to, amount)
	return nil
}

// Transfer - move free funds between accounts
func (l *Ledger) Transfer(asset identifier.AssetId, from principal.Account, to principal.Account, amount balance.Balance) error {
	a, err := l.Asset(asset)
	if nil != err {
		return err
	}
	if amount.IsZero() {
		return fault.AssetAmountMustBePositive
	}

	source := l.getBalance(asset, from)
	source.Free, err = source.Free.Sub(amount)
	if nil != err {
		return fault.InsufficientBalance
	}
	if from == to {
		return nil
	}
	if err := checkMinimum(a, source); nil != err {
		return err
	}

	destination := l.getBalance(asset, to)
	destination.Free, err = destination.Free.Add(amount)
	if nil != err {
		return err
	}
	if err := checkMinimum(a, destination); nil != err {
		return err
	}

	l.putBalance(asset, from, source)
	l.putBalance(asset, to, destination)
	l.log.Debugf("transfer: %s  from: %s  to: %s  amount: %s", asset, from, to, amount)
	return nil
}

// Mint - create new funds in the free balance of an account
func (l *Ledger) Mint(asset identifier.AssetId, to principal.Account, amount balance.Balance) error {
	a, err := l.Asset(asset)
	if nil != err {
		return err
	}
	if amount.IsZero() {
		return fault.AssetAmountMustBePositive
	}

	supply, err := a.Supply.Add(amount)
	if nil != err {
		return err
	}
	destination := l.getBalance(asset, to)
	destination.Free, err = destination.Free.Add(amount)
	if nil != err {
		return err
	}
	if err := checkMinimum(a, destination); nil != err {
		return err
	}

	a.Supply = supply
	l.putAsset(a)
	l.putBalance(asset, to, destination)
	l.log.Debugf("mint: %s  to: %s  amount: %s", asset, to, amount)
	return nil
}

// Burn - destroy funds from the free balance of an account
func (l *Ledger) Burn(asset identifier.AssetId, from principal.Account, amount balance.Balance) error {
	a, err := l.Asset(asset)
	if nil != err {
		return err
	}
	if amount.IsZero() {
		return fault.AssetAmountMustBePositive
	}

	source := l.getBalance(asset, from)
	source.Free, err = source.Free.Sub(amount)
	if nil != err {
		return fault.InsufficientBalance
	}
	if err := checkMinimum(a, source); nil != err {
		return err
	}
	supply, err := a.Supply.Sub(amount)
	if nil != err {
		logger.Panicf("ledger: asset: %s  supply: %s below burn: %s", asset, a.Supply, amount)
	}

	a.Supply = supply
	l.putAsset(a)
	l.putBalance(asset, from, source)
	l.log.Debugf("burn: %s  from: %s  amount: %s", asset, from, amount)
	return nil
}
