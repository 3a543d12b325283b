// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

// Call - one extrinsic, dispatched with the signer's account
type Call interface {
	Name() string
	dispatch(r *Runtime, origin principal.Account, ctx identifier.TransactionCtxId) error
}

// CreateContractAgreement - create_contract_agreement
type CreateContractAgreement struct {
	agreement.CreateParameters
}

// Name - extrinsic name
func (CreateContractAgreement) Name() string { return "create_contract_agreement" }

func (c *CreateContractAgreement) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.agreements.Create(origin, &c.CreateParameters)
}

// AcceptContractAgreement - accept_contract_agreement
type AcceptContractAgreement struct {
	Id    identifier.AgreementId `json:"id"`
	Party principal.Principal    `json:"party"`
}

// Name - extrinsic name
func (AcceptContractAgreement) Name() string { return "accept_contract_agreement" }

func (c *AcceptContractAgreement) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.agreements.Accept(origin, c.Id, c.Party)
}

// RejectContractAgreement - reject_contract_agreement
type RejectContractAgreement struct {
	Id    identifier.AgreementId `json:"id"`
	Party principal.Principal    `json:"party"`
}

// Name - extrinsic name
func (RejectContractAgreement) Name() string { return "reject_contract_agreement" }

func (c *RejectContractAgreement) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.agreements.Reject(origin, c.Id, c.Party)
}

// CreateInvestmentOpportunity - create_investment_opportunity
type CreateInvestmentOpportunity struct {
	crowdfunding.CreateParameters
}

// Name - extrinsic name
func (CreateInvestmentOpportunity) Name() string { return "create_investment_opportunity" }

func (c *CreateInvestmentOpportunity) dispatch(r *Runtime, origin principal.Account, ctx identifier.TransactionCtxId) error {
	return r.crowdfundings.Create(origin, ctx, &c.CreateParameters)
}

// ActivateCrowdfunding - activate_crowdfunding
type ActivateCrowdfunding struct {
	Id identifier.CrowdfundingId `json:"id"`
}

// Name - extrinsic name
func (ActivateCrowdfunding) Name() string { return "activate_crowdfunding" }

func (c *ActivateCrowdfunding) dispatch(r *Runtime, _ principal.Account, _ identifier.TransactionCtxId) error {
	return r.crowdfundings.Activate(c.Id)
}

// FinishCrowdfunding - finish_crowdfunding
type FinishCrowdfunding struct {
	Id identifier.CrowdfundingId `json:"id"`
}

// Name - extrinsic name
func (FinishCrowdfunding) Name() string { return "finish_crowdfunding" }

func (c *FinishCrowdfunding) dispatch(r *Runtime, _ principal.Account, _ identifier.TransactionCtxId) error {
	return r.crowdfundings.Finish(c.Id)
}

// ExpireCrowdfunding - expire_crowdfunding
type ExpireCrowdfunding struct {
	Id identifier.CrowdfundingId `json:"id"`
}

// Name - extrinsic name
func (ExpireCrowdfunding) Name() string { return "expire_crowdfunding" }

func (c *ExpireCrowdfunding) dispatch(r *Runtime, _ principal.Account, _ identifier.TransactionCtxId) error {
	return r.crowdfundings.Expire(c.Id)
}

// Invest - invest
type Invest struct {
	Id    identifier.CrowdfundingId `json:"id"`
	Asset crowdfunding.Asset        `json:"asset"`
}

// Name - extrinsic name
func (Invest) Name() string { return "invest" }

func (c *Invest) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.crowdfundings.Invest(origin, c.Id, c.Asset)
}

// CreateProject - create_project, the team must be the signer
type CreateProject struct {
	Id   identifier.ProjectId `json:"id"`
	Team principal.Principal  `json:"team"`
}

// Name - extrinsic name
func (CreateProject) Name() string { return "create_project" }

func (c *CreateProject) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	team, err := r.daos.Resolve(c.Team)
	if nil != err {
		return err
	}
	if team != origin {
		return fault.BadOrigin
	}
	return r.projects.Create(c.Id, team)
}

// CreateAsset - create_asset, the signer becomes the admin
type CreateAsset struct {
	Id         identifier.AssetId `json:"id"`
	MinBalance balance.Balance    `json:"minBalance"`
}

// Name - extrinsic name
func (CreateAsset) Name() string { return "create_asset" }

func (c *CreateAsset) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.ledger.CreateAsset(c.Id, origin, c.MinBalance)
}

// Mint - mint, asset admin only
type Mint struct {
	Asset  identifier.AssetId `json:"asset"`
	To     principal.Account  `json:"to"`
	Amount balance.Balance    `json:"amount"`
}

// Name - extrinsic name
func (Mint) Name() string { return "mint" }

func (c *Mint) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	asset, err := r.ledger.Asset(c.Asset)
	if nil != err {
		return err
	}
	if asset.Admin != origin {
		return fault.NotAssetAdmin
	}
	return r.ledger.Mint(c.Asset, c.To, c.Amount)
}

// Transfer - transfer from the signer
type Transfer struct {
	Asset  identifier.AssetId `json:"asset"`
	To     principal.Account  `json:"to"`
	Amount balance.Balance    `json:"amount"`
}

// Name - extrinsic name
func (Transfer) Name() string { return "transfer" }

func (c *Transfer) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.ledger.Transfer(c.Asset, origin, c.To, c.Amount)
}

// Burn - burn from the signer
type Burn struct {
	Asset  identifier.AssetId `json:"asset"`
	Amount balance.Balance    `json:"amount"`
}

// Name - extrinsic name
func (Burn) Name() string { return "burn" }

func (c *Burn) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.ledger.Burn(c.Asset, origin, c.Amount)
}

// RegisterDao - register_dao, the dao resolves to the signer
type RegisterDao struct {
	Id identifier.DaoId `json:"id"`
}

// Name - extrinsic name
func (RegisterDao) Name() string { return "register_dao" }

func (c *RegisterDao) dispatch(r *Runtime, origin principal.Account, _ identifier.TransactionCtxId) error {
	return r.daos.Register(c.Id, origin)
}
