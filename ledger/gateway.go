// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

// AccountBalance - holdings of one account in one asset
type AccountBalance struct {
	Free     balance.Balance `json:"free"`
	Reserved balance.Balance `json:"reserved"`
}

// Total - free plus reserved
func (b AccountBalance) Total() (balance.Balance, error) {
	return b.Free.Add(b.Reserved)
}

// Gateway - asset operations the engines depend on
//
// every call either succeeds completely or changes nothing
type Gateway interface {
	Reserve(asset identifier.AssetId, who principal.Account, amount balance.Balance) error
	Unreserve(asset identifier.AssetId, who principal.Account, amount balance.Balance) error
	RepatriateReserved(asset identifier.AssetId, from principal.Account, to principal.Account, amount balance.Balance) error
	Transfer(asset identifier.AssetId, from principal.Account, to principal.Account, amount balance.Balance) error
	Mint(asset identifier.AssetId, to principal.Account, amount balance.Balance) error
	Burn(asset identifier.AssetId, from principal.Account, amount balance.Balance) error
	Balance(asset identifier.AssetId, who principal.Account) (AccountBalance, error)
}
