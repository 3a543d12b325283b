// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/crowdfunding"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/genesis"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/runtime"
	"github.com/deip/deipd/storage"
)

var (
	assetX   = identifier.Id{'X'}
	shareS   = identifier.Id{'S'}
	projectP = identifier.Id{'P'}
	idL1     = identifier.Id{'L', '1'}
	saleId   = identifier.Id{'C', 'F'}

	accountA = principal.Account{'A'}
	accountB = principal.Account{'B'}
	admin    = principal.Account{'a', 'd', 'm'}
)

type recordingMetrics struct {
	calls  map[string]int
	errors map[string]int
	events int
	block  uint64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		calls:  make(map[string]int),
		errors: make(map[string]int),
	}
}

func (m *recordingMetrics) Extrinsic(call string, err error) {
	m.calls[call] += 1
	if nil != err {
		m.errors[call] += 1
	}
}

func (m *recordingMetrics) Events(events []event.Event) {
	m.events += len(events)
}

func (m *recordingMetrics) Block(number uint64, _ clock.Moment) {
	m.block = number
}

func initialState() *genesis.State {
	return &genesis.State{
		Assets: []genesis.Asset{
			{Id: assetX, Admin: admin, MinBalance: balance.New(1)},
			{Id: shareS, Admin: admin, MinBalance: balance.New(1)},
		},
		Balances: []genesis.Balance{
			{Asset: assetX, Account: accountB, Amount: balance.New(1000)},
			{Asset: shareS, Account: accountA, Amount: balance.New(900)},
		},
		Projects: []genesis.Project{
			{Id: projectP, Team: accountA},
		},
	}
}

func setup(t *testing.T) (*storage.Database, *runtime.Runtime, *recordingMetrics) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	require.Nil(t, err, "open database")

	metrics := newRecordingMetrics()
	r, err := runtime.New(db, runtime.Options{Metrics: metrics})
	require.Nil(t, err, "new runtime")

	applied, err := r.Genesis(initialState())
	require.Nil(t, err, "genesis")
	require.True(t, applied, "genesis applied")
	return db, r, metrics
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func license() runtime.Call {
	return &runtime.CreateContractAgreement{
		CreateParameters: agreement.CreateParameters{
			Id:      idL1,
			Creator: principal.NewNative(accountA),
			Parties: []principal.Principal{principal.NewNative(accountA), principal.NewNative(accountB)},
			Terms: agreement.Terms{
				Kind: agreement.License,
				License: &agreement.LicenseTerms{
					Source: projectP,
					Price:  agreement.Price{Asset: assetX, Amount: balance.New(200)},
				},
			},
		},
	}
}

func TestApplyNeedsBlock(t *testing.T) {
	db, r, _ := setup(t)
	defer teardown(db)

	_, err := r.Apply(accountA, license())
	assert.Equal(t, fault.NotInitialised, err, "no block started")
}

func TestBlockTimestamps(t *testing.T) {
	db, r, metrics := setup(t)
	defer teardown(db)

	n, err := r.NewBlock(1000)
	require.Nil(t, err, "first block")
	assert.Equal(t, uint64(1), n, "first block number")

	n, err = r.NewBlock(1000)
	require.Nil(t, err, "same timestamp")
	assert.Equal(t, uint64(2), n, "second block number")

	n, err = r.NewBlock(999)
	assert.Equal(t, fault.TimestampDecreased, err, "timestamp decreased")
	assert.Equal(t, uint64(2), n, "block unchanged")

	number, timestamp := r.Head()
	assert.Equal(t, uint64(2), number, "head number")
	assert.Equal(t, clock.Moment(1000), timestamp, "head timestamp")
	assert.Equal(t, uint64(2), metrics.block, "metrics block")
}

func TestLicenseThroughRuntime(t *testing.T) {
	db, r, metrics := setup(t)
	defer teardown(db)

	listener := r.Bus().Chan(10)
	defer r.Bus().Release(listener)

	_, err := r.NewBlock(1000)
	require.Nil(t, err, "block")

	ctx, err := r.Apply(accountA, license())
	require.Nil(t, err, "create")
	assert.Equal(t, identifier.TransactionCtxId{BlockNumber: 1, ExtrinsicIndex: 0}, ctx, "context")

	_, err = r.Apply(accountA, &runtime.AcceptContractAgreement{Id: idL1, Party: principal.NewNative(accountA)})
	require.Nil(t, err, "licenser accept")

	ctx, err = r.Apply(accountB, &runtime.AcceptContractAgreement{Id: idL1, Party: principal.NewNative(accountB)})
	require.Nil(t, err, "licensee accept")
	assert.Equal(t, uint32(2), ctx.ExtrinsicIndex, "third extrinsic")

	a, err := r.Agreement(idL1)
	require.Nil(t, err, "agreement")
	assert.Equal(t, agreement.Signed, a.License.Status, "signed")

	b, err := r.Balance(assetX, accountA)
	require.Nil(t, err, "balance")
	assert.Equal(t, balance.New(200), b.Free, "licenser paid")

	kinds := []event.Kind{}
	for i := 0; i < 3; i += 1 {
		m := <-listener
		assert.Equal(t, uint64(i), m.Sequence, "sequence")
		kinds = append(kinds, m.Event.Kind)
	}
	assert.Equal(t, []event.Kind{
		event.ContractAgreementCreated,
		event.ContractAgreementAccepted,
		event.ContractAgreementFinalized,
	}, kinds, "bus events")

	messages, next, err := r.History().Fetch(2, 10)
	require.Nil(t, err, "history")
	assert.Equal(t, 1, len(messages), "history tail")
	assert.Equal(t, uint64(3), next, "next sequence")
	assert.Equal(t, uint32(2), messages[0].Context.ExtrinsicIndex, "licensee context")
	assert.Equal(t, event.ContractAgreementFinalized, messages[0].Event.Kind, "licensee only finalizes")

	assert.Equal(t, 3, metrics.calls["create_contract_agreement"]+metrics.calls["accept_contract_agreement"], "calls counted")
	assert.Equal(t, 3, metrics.events, "events counted")

	ids, err := r.Agreements(agreement.License, identifier.Id{}, 10)
	require.Nil(t, err, "list")
	assert.Equal(t, []identifier.AgreementId{idL1}, ids, "listed")
}

func TestFailedExtrinsicChangesNothing(t *testing.T) {
	db, r, metrics := setup(t)
	defer teardown(db)

	_, err := r.NewBlock(1000)
	require.Nil(t, err, "block")

	before, err := r.StateDigest()
	require.Nil(t, err, "digest")

	// rejected before any write
	mint := &runtime.Mint{Asset: assetX, To: accountB, Amount: balance.New(1)}
	_, err = r.Apply(accountA, mint)
	assert.Equal(t, fault.NotAssetAdmin, err, "mint by non admin")

	// fails part way: the first share is reserved before the second fails
	sale := &runtime.CreateInvestmentOpportunity{
		CreateParameters: crowdfunding.CreateParameters{
			Id:      saleId,
			Creator: principal.NewNative(accountA),
			Shares: []crowdfunding.Asset{
				{Id: shareS, Amount: balance.New(900)},
				{Id: identifier.Id{'?'}, Amount: balance.New(1)},
			},
			FundingModel: crowdfunding.FundingModel{
				Kind: crowdfunding.Simple,
				Simple: &crowdfunding.SimpleCrowdfunding{
					StartTime: 1000,
					EndTime:   2000,
					SoftCap:   crowdfunding.Asset{Id: assetX, Amount: balance.New(100)},
					HardCap:   crowdfunding.Asset{Id: assetX, Amount: balance.New(500)},
				},
			},
		},
	}
	_, err = r.Apply(accountA, sale)
	assert.Equal(t, fault.FailedToReserveAsset, err, "create sale")

	after, err := r.StateDigest()
	require.Nil(t, err, "digest")
	assert.Equal(t, before, after, "state unchanged")

	messages, _, err := r.History().Fetch(0, 10)
	require.Nil(t, err, "history")
	assert.Equal(t, 0, len(messages), "nothing published")
	assert.Equal(t, 1, metrics.errors["mint"], "mint error counted")
	assert.Equal(t, 1, metrics.errors["create_investment_opportunity"], "create error counted")

	// a later extrinsic still runs normally
	_, err = r.Apply(admin, mint)
	assert.Nil(t, err, "mint by admin")
}

func TestSupplementedCalls(t *testing.T) {
	db, r, _ := setup(t)
	defer teardown(db)

	_, err := r.NewBlock(1000)
	require.Nil(t, err, "block")

	assetY := identifier.Id{'Y'}
	_, err = r.Apply(accountB, &runtime.CreateAsset{Id: assetY, MinBalance: balance.New(5)})
	require.Nil(t, err, "create asset")

	a, err := r.Asset(assetY)
	require.Nil(t, err, "asset")
	assert.Equal(t, accountB, a.Admin, "signer is admin")

	_, err = r.Apply(accountB, &runtime.Mint{Asset: assetY, To: accountA, Amount: balance.New(50)})
	require.Nil(t, err, "mint")

	_, err = r.Apply(accountA, &runtime.Transfer{Asset: assetY, To: accountB, Amount: balance.New(47)})
	assert.Equal(t, fault.BelowMinimumBalance, err, "transfer leaving dust")

	_, err = r.Apply(accountA, &runtime.Transfer{Asset: assetY, To: accountB, Amount: balance.New(20)})
	require.Nil(t, err, "transfer")

	_, err = r.Apply(accountB, &runtime.Burn{Asset: assetY, Amount: balance.New(20)})
	require.Nil(t, err, "burn")

	b, err := r.Balance(assetY, accountA)
	require.Nil(t, err, "balance")
	assert.Equal(t, balance.New(30), b.Free, "after transfer")

	dao := identifier.Id{'D'}
	_, err = r.Apply(accountB, &runtime.RegisterDao{Id: dao})
	require.Nil(t, err, "register dao")
	account, err := r.Resolve(principal.NewDao(dao))
	require.Nil(t, err, "resolve")
	assert.Equal(t, accountB, account, "dao account")

	projectQ := identifier.Id{'Q'}
	_, err = r.Apply(accountA, &runtime.CreateProject{Id: projectQ, Team: principal.NewDao(dao)})
	assert.Equal(t, fault.BadOrigin, err, "team is not the signer")
	_, err = r.Apply(accountB, &runtime.CreateProject{Id: projectQ, Team: principal.NewDao(dao)})
	require.Nil(t, err, "create project")
	team, err := r.Team(projectQ)
	require.Nil(t, err, "team")
	assert.Equal(t, accountB, team, "team account")
}

func TestHeadSurvivesRestart(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	name := filepath.Join(t.TempDir(), "state.leveldb")

	db, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "open")
	r, err := runtime.New(db, runtime.Options{})
	require.Nil(t, err, "runtime")
	_, err = r.Genesis(initialState())
	require.Nil(t, err, "genesis")
	_, err = r.NewBlock(5000)
	require.Nil(t, err, "block")
	digest, err := r.StateDigest()
	require.Nil(t, err, "digest")
	db.Close()

	db, err = storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "reopen")
	defer db.Close()
	r, err = runtime.New(db, runtime.Options{})
	require.Nil(t, err, "runtime")

	number, timestamp := r.Head()
	assert.Equal(t, uint64(1), number, "block number")
	assert.Equal(t, clock.Moment(5000), timestamp, "timestamp")

	applied, err := r.Genesis(initialState())
	require.Nil(t, err, "second genesis")
	assert.False(t, applied, "genesis only once")

	again, err := r.StateDigest()
	require.Nil(t, err, "digest")
	assert.Equal(t, digest, again, "same state")

	_, err = r.NewBlock(4999)
	assert.Equal(t, fault.TimestampDecreased, err, "timestamp below stored head")
}
