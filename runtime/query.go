// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
)

// read only queries over committed state
//
// each holds the runtime lock so no extrinsic is half applied

// Agreement - read one agreement
func (r *Runtime) Agreement(id identifier.AgreementId) (*agreement.Agreement, error) {
	r.Lock()
	defer r.Unlock()
	return r.agreements.Store().Get(id)
}

// Agreements - page of agreement ids of one kind
func (r *Runtime) Agreements(kind agreement.Kind, start identifier.AgreementId, count int) ([]identifier.AgreementId, error) {
	r.Lock()
	defer r.Unlock()
	return r.agreements.Store().ListByKind(kind, start, count)
}

// Crowdfunding - read one crowdfunding and its contributions
func (r *Runtime) Crowdfunding(id identifier.CrowdfundingId) (*crowdfunding.Crowdfunding, []crowdfunding.Contribution, error) {
	r.Lock()
	defer r.Unlock()
	c, err := r.crowdfundings.Store().Get(id)
	if nil != err {
		return nil, nil, err
	}
	return c, r.crowdfundings.Store().Contributions(id), nil
}

// Crowdfundings - page of crowdfunding ids
func (r *Runtime) Crowdfundings(start identifier.CrowdfundingId, count int) ([]identifier.CrowdfundingId, error) {
	r.Lock()
	defer r.Unlock()
	return r.crowdfundings.Store().List(start, count)
}

// Balance - holdings of an account in one asset
func (r *Runtime) Balance(asset identifier.AssetId, who principal.Account) (ledger.AccountBalance, error) {
	r.Lock()
	defer r.Unlock()
	return r.ledger.Balance(asset, who)
}

// Asset - read an asset definition
func (r *Runtime) Asset(id identifier.AssetId) (*ledger.Asset, error) {
	r.Lock()
	defer r.Unlock()
	return r.ledger.Asset(id)
}

// Team - account owning a project
func (r *Runtime) Team(id identifier.ProjectId) (principal.Account, error) {
	r.Lock()
	defer r.Unlock()
	return r.projects.Team(id)
}

// Resolve - canonical account of a principal
func (r *Runtime) Resolve(p principal.Principal) (principal.Account, error) {
	r.Lock()
	defer r.Unlock()
	return r.daos.Resolve(p)
}
