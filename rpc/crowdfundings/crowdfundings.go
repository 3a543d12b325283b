// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdfundings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/ratelimit"
	"github.com/deip/deipd/rpc/submit"
	"github.com/deip/deipd/runtime"
)

const (
	rateLimitCrowdfundings = 200
	rateBurstCrowdfundings = 100
)

// limit for count
const maximumCrowdfundingList = 100

// Crowdfundings - type for RPC calls
type Crowdfundings struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    *runtime.Runtime
	IsMode  func(mode.Mode) bool
}

// New - create the service
func New(log *logger.L, host *runtime.Runtime, isMode func(mode.Mode) bool) *Crowdfundings {
	return &Crowdfundings{
		Log:     log,
		Limiter: ratelimit.New(rateLimitCrowdfundings, rateBurstCrowdfundings),
		Host:    host,
		IsMode:  isMode,
	}
}

// ---

// CreateArguments - create_investment_opportunity signed by origin
type CreateArguments struct {
	Origin principal.Account `json:"origin"`
	crowdfunding.CreateParameters
}

// Create - submit create_investment_opportunity
func (c *Crowdfundings) Create(arguments *CreateArguments, reply *submit.Reply) error {
	call := &runtime.CreateInvestmentOpportunity{CreateParameters: arguments.CreateParameters}
	return submit.Extrinsic(c.Log, c.Limiter, c.IsMode, c.Host, arguments.Origin, call, reply)
}

// ---

// IdArguments - a lifecycle step on one crowdfunding
type IdArguments struct {
	Origin principal.Account         `json:"origin"`
	Id     identifier.CrowdfundingId `json:"id"`
}

// Activate - submit activate_crowdfunding
func (c *Crowdfundings) Activate(arguments *IdArguments, reply *submit.Reply) error {
	call := &runtime.ActivateCrowdfunding{Id: arguments.Id}
	return submit.Extrinsic(c.Log, c.Limiter, c.IsMode, c.Host, arguments.Origin, call, reply)
}

// Finish - submit finish_crowdfunding
func (c *Crowdfundings) Finish(arguments *IdArguments, reply *submit.Reply) error {
	call := &runtime.FinishCrowdfunding{Id: arguments.Id}
	return submit.Extrinsic(c.Log, c.Limiter, c.IsMode, c.Host, arguments.Origin, call, reply)
}

// Expire - submit expire_crowdfunding
func (c *Crowdfundings) Expire(arguments *IdArguments, reply *submit.Reply) error {
	call := &runtime.ExpireCrowdfunding{Id: arguments.Id}
	return submit.Extrinsic(c.Log, c.Limiter, c.IsMode, c.Host, arguments.Origin, call, reply)
}

// ---

// InvestArguments - contribution from origin
type InvestArguments struct {
	Origin principal.Account         `json:"origin"`
	Id     identifier.CrowdfundingId `json:"id"`
	Asset  crowdfunding.Asset        `json:"asset"`
}

// Invest - submit invest
func (c *Crowdfundings) Invest(arguments *InvestArguments, reply *submit.Reply) error {
	call := &runtime.Invest{Id: arguments.Id, Asset: arguments.Asset}
	return submit.Extrinsic(c.Log, c.Limiter, c.IsMode, c.Host, arguments.Origin, call, reply)
}

// ---

// GetArguments - crowdfunding to read
type GetArguments struct {
	Id identifier.CrowdfundingId `json:"id"`
}

// GetReply - the sale and its contributions in owner order
type GetReply struct {
	Crowdfunding  *crowdfunding.Crowdfunding  `json:"crowdfunding"`
	Contributions []crowdfunding.Contribution `json:"contributions"`
}

// Get - read one crowdfunding
func (c *Crowdfundings) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	sale, contributions, err := c.Host.Crowdfunding(arguments.Id)
	if nil != err {
		return err
	}
	reply.Crowdfunding = sale
	reply.Contributions = contributions
	return nil
}

// ---

// ListArguments - page through all crowdfundings
type ListArguments struct {
	Start identifier.CrowdfundingId `json:"start"`
	Count int                       `json:"count"`
}

// ListReply - ids in order, NextStart is absent on the last page
type ListReply struct {
	Ids       []identifier.CrowdfundingId `json:"ids"`
	NextStart *identifier.CrowdfundingId  `json:"nextStart,omitempty"`
}

// List - page of crowdfunding ids
func (c *Crowdfundings) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumCrowdfundingList); nil != err {
		return err
	}

	ids, err := c.Host.Crowdfundings(arguments.Start, arguments.Count+1)
	if nil != err {
		return err
	}
	if len(ids) > arguments.Count {
		next := ids[arguments.Count]
		reply.NextStart = &next
		ids = ids[:arguments.Count]
	}
	reply.Ids = ids
	return nil
}
