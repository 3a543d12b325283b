// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/crowdfundings"
	"github.com/deip/deipd/rpc/submit"
)

// CreateCrowdfunding - submit an investment opportunity
func (c *Client) CreateCrowdfunding(origin principal.Account, parameters crowdfunding.CreateParameters) (*submit.Reply, error) {
	arguments := crowdfundings.CreateArguments{
		Origin:           origin,
		CreateParameters: parameters,
	}
	reply := &submit.Reply{}
	err := c.call("Crowdfundings.Create", &arguments, reply)
	return reply, err
}

// CrowdfundingTransition - Activate, Finish or Expire
func (c *Client) CrowdfundingTransition(method string, origin principal.Account, id identifier.CrowdfundingId) (*submit.Reply, error) {
	arguments := crowdfundings.IdArguments{
		Origin: origin,
		Id:     id,
	}
	reply := &submit.Reply{}
	err := c.call("Crowdfundings."+method, &arguments, reply)
	return reply, err
}

// Invest - contribute to an active crowdfunding
func (c *Client) Invest(origin principal.Account, id identifier.CrowdfundingId, asset crowdfunding.Asset) (*submit.Reply, error) {
	arguments := crowdfundings.InvestArguments{
		Origin: origin,
		Id:     id,
		Asset:  asset,
	}
	reply := &submit.Reply{}
	err := c.call("Crowdfundings.Invest", &arguments, reply)
	return reply, err
}

// GetCrowdfunding - read a crowdfunding and its contributions
func (c *Client) GetCrowdfunding(id identifier.CrowdfundingId) (*crowdfundings.GetReply, error) {
	reply := &crowdfundings.GetReply{}
	err := c.call("Crowdfundings.Get", &crowdfundings.GetArguments{Id: id}, reply)
	return reply, err
}

// ListCrowdfundings - page of crowdfunding ids
func (c *Client) ListCrowdfundings(start identifier.CrowdfundingId, count int) (*crowdfundings.ListReply, error) {
	arguments := crowdfundings.ListArguments{
		Start: start,
		Count: count,
	}
	reply := &crowdfundings.ListReply{}
	err := c.call("Crowdfundings.List", &arguments, reply)
	return reply, err
}
