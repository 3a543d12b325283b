// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/event"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/project"
)

// DefaultMaxParties - upper bound on generic contract parties
const DefaultMaxParties = 50

// LicenseTerms - what a license grants and costs
type LicenseTerms struct {
	Source identifier.ProjectId `json:"source"`
	Price  Price                `json:"price"`
}

// Terms - which agreement to create; License is set only for a license
type Terms struct {
	Kind    Kind          `json:"kind"`
	License *LicenseTerms `json:"license,omitempty"`
}

// CreateParameters - input of create_contract_agreement
type CreateParameters struct {
	Id             identifier.AgreementId `json:"id"`
	Creator        principal.Principal    `json:"creator"`
	Parties        []principal.Principal  `json:"parties"`
	Hash           identifier.ContentHash `json:"hash"`
	ActivationTime *clock.Moment          `json:"activationTime,omitempty"`
	ExpirationTime *clock.Moment          `json:"expirationTime,omitempty"`
	Terms          Terms                  `json:"terms"`
}

// Engine - the contract agreement state machines
type Engine struct {
	log        *logger.L
	store      *Store
	ledger     ledger.Gateway
	projects   project.Registry
	resolver   principal.Resolver
	clock      clock.Clock
	events     event.Sink
	maxParties int
}

// NewEngine - wire an engine to its collaborators
func NewEngine(
	store *Store,
	gateway ledger.Gateway,
	projects project.Registry,
	resolver principal.Resolver,
	c clock.Clock,
	events event.Sink,
	maxParties int,
) *Engine {
	if maxParties < 2 {
		maxParties = DefaultMaxParties
	}
	return &Engine{
		log:        logger.New("agreement"),
		store:      store,
		ledger:     gateway,
		projects:   projects,
		resolver:   resolver,
		clock:      c,
		events:     events,
		maxParties: maxParties,
	}
}

// Store - the engine's agreement store
func (e *Engine) Store() *Store {
	return e.store
}

// resolve a principal and require it to be the signer
func (e *Engine) authorise(origin principal.Account, p principal.Principal) (principal.Account, error) {
	account, err := e.resolver.Resolve(p)
	if nil != err {
		return principal.Account{}, err
	}
	if account != origin {
		return principal.Account{}, fault.BadOrigin
	}
	return account, nil
}

// true once the expiration moment has been reached
func expired(now clock.Moment, expiration *clock.Moment) bool {
	return nil != expiration && now >= *expiration
}

// true while the activation moment is still ahead
func notYetActive(now clock.Moment, activation *clock.Moment) bool {
	return nil != activation && now < *activation
}

func contains(accounts []principal.Account, account principal.Account) bool {
	for _, a := range accounts {
		if a == account {
			return true
		}
	}
	return false
}

// Create - record a new agreement signed by its creator
func (e *Engine) Create(origin principal.Account, parameters *CreateParameters) error {
	if e.store.Exists(parameters.Id) {
		return fault.AlreadyExists
	}

	creator, err := e.authorise(origin, parameters.Creator)
	if nil != err {
		return err
	}

	parties := make([]principal.Account, 0, len(parameters.Parties))
	for _, p := range parameters.Parties {
		account, err := e.resolver.Resolve(p)
		if nil != err {
			return err
		}
		parties = append(parties, account)
	}

	now := e.clock.Now()
	activation := parameters.ActivationTime
	expiration := parameters.ExpirationTime

	if nil != activation && *activation < now {
		return fault.StartTimeInPast
	}
	if nil != activation && nil != expiration && *activation >= *expiration {
		return fault.EndTimeBeforeStart
	}

	var a *Agreement

	switch parameters.Terms.Kind {
	case License:
		terms := parameters.Terms.License
		if nil == terms {
			return fault.MissingParameters
		}
		if nil == activation && nil != expiration && *expiration <= now {
			return fault.LicenseExpired
		}
		if err := e.validateLicense(parties, terms); nil != err {
			return err
		}
		a = &Agreement{
			Kind: License,
			License: &LicenseAgreement{
				Id:             parameters.Id,
				Creator:        creator,
				Licenser:       parties[0],
				Licensee:       parties[1],
				Hash:           parameters.Hash,
				ActivationTime: activation,
				ExpirationTime: expiration,
				ProjectId:      terms.Source,
				Price:          terms.Price,
				Status:         Unsigned,
			},
		}

	case GenericContract:
		if nil == activation && nil != expiration && *expiration <= now {
			return fault.EndTimeBeforeStart
		}
		if err := e.validateContract(parties); nil != err {
			return err
		}
		a = &Agreement{
			Kind: GenericContract,
			Generic: &Contract{
				Id:             parameters.Id,
				Creator:        creator,
				Parties:        parties,
				Hash:           parameters.Hash,
				ActivationTime: activation,
				ExpirationTime: expiration,
				Status: GenericStatus{
					Kind:       PartiallyAccepted,
					AcceptedBy: []principal.Account{},
				},
			},
		}

	default:
		return fault.UnknownTerms
	}

	if err := e.store.Insert(a); nil != err {
		return err
	}

	e.log.Infof("create: %s  kind: %s  creator: %s", parameters.Id, a.Kind, creator)
	e.events.Emit(event.New(event.ContractAgreementCreated, parameters.Id))
	return nil
}

// licenser first, licensee second, licenser is the project team
func (e *Engine) validateLicense(parties []principal.Account, terms *LicenseTerms) error {
	if 2 != len(parties) {
		return fault.TwoPartiesRequired
	}
	if parties[0] == parties[1] {
		return fault.DuplicateParties
	}
	team, err := e.projects.Team(terms.Source)
	if nil != err {
		return err
	}
	if !contains(parties, team) {
		return fault.ProjectTeamNotListed
	}
	if parties[0] != team {
		return fault.LicensePartyIsNotLicenser
	}
	if terms.Price.Amount.IsZero() {
		return fault.FeeMustBePositive
	}
	return nil
}

func (e *Engine) validateContract(parties []principal.Account) error {
	switch n := len(parties); {
	case 0 == n:
		return fault.NoParties
	case 1 == n:
		return fault.TwoPartiesRequired
	case n > e.maxParties:
		return fault.TooManyParties
	}
	seen := make(map[principal.Account]struct{}, len(parties))
	for _, p := range parties {
		if _, ok := seen[p]; ok {
			return fault.DuplicateParties
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Accept - a party accepts an agreement
//
// an agreement found expired is moved to its rejected state and the
// call still succeeds so the transition is committed
func (e *Engine) Accept(origin principal.Account, id identifier.AgreementId, party principal.Principal) error {
	a, err := e.store.Get(id)
	if nil != err {
		return err
	}
	account, err := e.authorise(origin, party)
	if nil != err {
		return err
	}

	switch a.Kind {
	case License:
		return e.acceptLicense(a, account)
	case GenericContract:
		return e.acceptContract(a, account)
	default:
		logger.Panicf("agreement: %s  unexpected kind: %d", id, a.Kind)
	}
	return nil
}

func (e *Engine) acceptLicense(a *Agreement, account principal.Account) error {
	l := a.License
	now := e.clock.Now()

	switch l.Status {
	case Unsigned:
		if account != l.Licenser {
			return fault.PartyIsNotLicenser
		}
		if notYetActive(now, l.ActivationTime) {
			return fault.StartTimeInFuture
		}
		if expired(now, l.ExpirationTime) {
			return e.rejectLicense(a, account, "expired")
		}
		if err := e.ledger.Reserve(l.Price.Asset, l.Licensee, l.Price.Amount); nil != err {
			e.log.Debugf("accept: %s  reserve on: %s  error: %s", l.Id, l.Licensee, err)
			return fault.NotEnoughBalance
		}
		l.Status = SignedByLicenser
		if err := e.store.Update(a); nil != err {
			return err
		}
		e.log.Infof("accept: %s  licenser: %s  price reserved", l.Id, account)
		e.events.Emit(event.NewWithAccount(event.ContractAgreementAccepted, l.Id, account))
		return nil

	case SignedByLicenser:
		if account != l.Licensee {
			return fault.PartyIsNotLicensee
		}
		if expired(now, l.ExpirationTime) {
			return e.rejectLicense(a, account, "expired")
		}
		err := e.ledger.RepatriateReserved(l.Price.Asset, l.Licensee, l.Licenser, l.Price.Amount)
		if nil != err {
			e.log.Warnf("accept: %s  charge: %s  error: %s", l.Id, l.Licensee, err)
			return fault.FailedToChargeFee
		}
		l.Status = Signed
		if err := e.store.Update(a); nil != err {
			return err
		}
		e.log.Infof("accept: %s  licensee: %s  signed", l.Id, account)
		e.events.Emit(event.New(event.ContractAgreementFinalized, l.Id))
		return nil

	case Signed:
		return fault.AlreadyAccepted

	default:
		return fault.Rejected
	}
}

// move a license to Rejected, releasing the licensee reservation if one was made
func (e *Engine) rejectLicense(a *Agreement, account principal.Account, reason string) error {
	l := a.License
	if SignedByLicenser == l.Status {
		if err := e.ledger.Unreserve(l.Price.Asset, l.Licensee, l.Price.Amount); nil != err {
			return err
		}
	}
	l.Status = LicenseRejected
	if err := e.store.Update(a); nil != err {
		return err
	}
	e.log.Infof("reject: %s  party: %s  reason: %s", l.Id, account, reason)
	e.events.Emit(event.NewWithAccount(event.ContractAgreementRejected, l.Id, account))
	return nil
}

func (e *Engine) acceptContract(a *Agreement, account principal.Account) error {
	g := a.Generic
	now := e.clock.Now()

	switch g.Status.Kind {
	case PartiallyAccepted:
		if !contains(g.Parties, account) {
			return fault.PartyIsNotListed
		}
		if contains(g.Status.AcceptedBy, account) {
			return fault.AlreadyAcceptedByParty
		}
		if notYetActive(now, g.ActivationTime) {
			return fault.StartTimeInFuture
		}
		if expired(now, g.ExpirationTime) {
			return e.rejectContract(a, account, "expired")
		}

		accepted := append(g.Status.AcceptedBy, account)
		sort.Slice(accepted, func(i, j int) bool {
			return accepted[i].Less(accepted[j])
		})

		final := len(accepted) == len(g.Parties)
		if final {
			g.Status = GenericStatus{Kind: Accepted}
		} else {
			g.Status.AcceptedBy = accepted
		}
		if err := e.store.Update(a); nil != err {
			return err
		}

		e.log.Infof("accept: %s  party: %s  accepted: %d/%d", g.Id, account, len(accepted), len(g.Parties))
		if final {
			e.events.Emit(event.New(event.ContractAgreementFinalized, g.Id))
		} else {
			e.events.Emit(event.NewWithAccount(event.ContractAgreementAccepted, g.Id, account))
		}
		return nil

	case Accepted:
		return fault.AlreadyAccepted

	default:
		return fault.Rejected
	}
}

func (e *Engine) rejectContract(a *Agreement, account principal.Account, reason string) error {
	g := a.Generic
	g.Status = GenericStatus{Kind: GenericRejected}
	if err := e.store.Update(a); nil != err {
		return err
	}
	e.log.Infof("reject: %s  party: %s  reason: %s", g.Id, account, reason)
	e.events.Emit(event.NewWithAccount(event.ContractAgreementRejected, g.Id, account))
	return nil
}

// Reject - a listed party rejects a non-terminal agreement
func (e *Engine) Reject(origin principal.Account, id identifier.AgreementId, party principal.Principal) error {
	a, err := e.store.Get(id)
	if nil != err {
		return err
	}
	account, err := e.authorise(origin, party)
	if nil != err {
		return err
	}

	switch a.Kind {
	case License:
		l := a.License
		if account != l.Licenser && account != l.Licensee {
			return fault.PartyIsNotListed
		}
		switch l.Status {
		case Signed:
			return fault.AlreadyAccepted
		case LicenseRejected:
			return fault.Rejected
		}
		return e.rejectLicense(a, account, "rejected")

	case GenericContract:
		g := a.Generic
		if !contains(g.Parties, account) {
			return fault.PartyIsNotListed
		}
		switch g.Status.Kind {
		case Accepted:
			return fault.AlreadyAccepted
		case GenericRejected:
			return fault.Rejected
		}
		return e.rejectContract(a, account, "rejected")

	default:
		logger.Panicf("agreement: %s  unexpected kind: %d", id, a.Kind)
	}
	return nil
}
