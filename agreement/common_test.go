// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/project"
	"github.com/deip/deipd/storage"
)

const startTime = clock.Moment(1000)

var (
	assetX   = identifier.Id{'X'}
	projectP = identifier.Id{'P'}
	idL1     = identifier.Id{'L', '1'}
	idG1     = identifier.Id{'G', '1'}

	accountA = principal.Account{'A'}
	accountB = principal.Account{'B'}
	accountC = principal.Account{'C'}
	admin    = principal.Account{'a', 'd', 'm'}

	partyAccounts = []principal.Account{
		{'P', '1'}, {'P', '2'}, {'P', '3'}, {'P', '4'}, {'P', '5'},
	}
)

type harness struct {
	db       *storage.Database
	ledger   *ledger.Ledger
	projects *project.Projects
	daos     *principal.DaoRegistry
	clock    *clock.BlockClock
	events   *event.Recorder
	engine   *agreement.Engine
}

// fresh state with asset X, project P (team A) and an open transaction
//
// gateway replaces the real ledger when not nil
func newHarness(t *testing.T, gateway ledger.Gateway) *harness {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open database")
	require.Nil(t, db.Begin(), "begin")

	h := &harness{
		db:       db,
		ledger:   ledger.New(db.Pools.Asset, db.Pools.Balance),
		projects: project.New(db.Pools.Project),
		daos:     principal.NewDaoRegistry(db.Pools.Dao),
		clock:    clock.New(startTime),
		events:   &event.Recorder{},
	}
	require.Nil(t, h.ledger.CreateAsset(assetX, admin, balance.New(1)))
	require.Nil(t, h.projects.Create(projectP, accountA))

	if nil == gateway {
		gateway = h.ledger
	}
	store := agreement.NewStore(db.Pools.Agreement, db.Pools.AgreementIdByKind)
	h.engine = agreement.NewEngine(store, gateway, h.projects, h.daos, h.clock, h.events, agreement.DefaultMaxParties)
	return h
}

func (h *harness) close() {
	h.db.Abort()
	h.db.Close()
	fixtures.TeardownTestLogger()
}

func (h *harness) mint(t *testing.T, who principal.Account, amount uint64) {
	require.Nil(t, h.ledger.Mint(assetX, who, balance.New(amount)), "mint")
}

func (h *harness) holding(t *testing.T, who principal.Account) ledger.AccountBalance {
	b, err := h.ledger.Balance(assetX, who)
	require.Nil(t, err, "balance")
	return b
}

func (h *harness) get(t *testing.T, id identifier.AgreementId) *agreement.Agreement {
	a, err := h.engine.Store().Get(id)
	require.Nil(t, err, "get agreement")
	return a
}

func (h *harness) kinds() []event.Kind {
	kinds := []event.Kind{}
	for _, e := range h.events.Events() {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func native(a principal.Account) principal.Principal {
	return principal.NewNative(a)
}

func held(free uint64, reserved uint64) ledger.AccountBalance {
	return ledger.AccountBalance{Free: balance.New(free), Reserved: balance.New(reserved)}
}

func moment(m clock.Moment) *clock.Moment {
	return &m
}

// licenser A, licensee B, price 200 X on project P
func licenseParameters() *agreement.CreateParameters {
	return &agreement.CreateParameters{
		Id:      idL1,
		Creator: native(accountA),
		Parties: []principal.Principal{native(accountA), native(accountB)},
		Hash:    identifier.ContentHash{1, 2, 3},
		Terms: agreement.Terms{
			Kind: agreement.License,
			License: &agreement.LicenseTerms{
				Source: projectP,
				Price: agreement.Price{
					Asset:  assetX,
					Amount: balance.New(200),
				},
			},
		},
	}
}

// a generic contract created by P1 between the given parties
func contractParameters(parties []principal.Account) *agreement.CreateParameters {
	p := make([]principal.Principal, 0, len(parties))
	for _, a := range parties {
		p = append(p, native(a))
	}
	return &agreement.CreateParameters{
		Id:      idG1,
		Creator: native(partyAccounts[0]),
		Parties: p,
		Hash:    identifier.ContentHash{9},
		Terms: agreement.Terms{
			Kind: agreement.GenericContract,
		},
	}
}
