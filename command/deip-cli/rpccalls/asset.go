// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/assets"
	"github.com/deip/deipd/rpc/submit"
)

// CreateAsset - define a fungible asset administered by origin
func (c *Client) CreateAsset(origin principal.Account, id identifier.AssetId, minBalance balance.Balance) (*submit.Reply, error) {
	arguments := assets.CreateArguments{
		Origin:     origin,
		Id:         id,
		MinBalance: minBalance,
	}
	reply := &submit.Reply{}
	err := c.call("Assets.Create", &arguments, reply)
	return reply, err
}

// MoveAsset - Mint or Transfer
func (c *Client) MoveAsset(method string, origin principal.Account, asset identifier.AssetId, to principal.Account, amount balance.Balance) (*submit.Reply, error) {
	arguments := assets.MoveArguments{
		Origin: origin,
		Asset:  asset,
		To:     to,
		Amount: amount,
	}
	reply := &submit.Reply{}
	err := c.call("Assets."+method, &arguments, reply)
	return reply, err
}

// Burn - destroy some of origin's free balance
func (c *Client) Burn(origin principal.Account, asset identifier.AssetId, amount balance.Balance) (*submit.Reply, error) {
	arguments := assets.BurnArguments{
		Origin: origin,
		Asset:  asset,
		Amount: amount,
	}
	reply := &submit.Reply{}
	err := c.call("Assets.Burn", &arguments, reply)
	return reply, err
}

// GetAsset - read an asset definition
func (c *Client) GetAsset(id identifier.AssetId) (*assets.GetReply, error) {
	reply := &assets.GetReply{}
	err := c.call("Assets.Get", &assets.GetArguments{Id: id}, reply)
	return reply, err
}

// GetBalance - holdings of an account
func (c *Client) GetBalance(asset identifier.AssetId, account principal.Account) (*assets.BalanceReply, error) {
	arguments := assets.BalanceArguments{
		Asset:   asset,
		Account: account,
	}
	reply := &assets.BalanceReply{}
	err := c.call("Assets.Balance", &arguments, reply)
	return reply, err
}
