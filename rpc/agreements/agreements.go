// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreements

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/ratelimit"
	"github.com/deip/deipd/rpc/submit"
	"github.com/deip/deipd/runtime"
)

const (
	rateLimitAgreements = 200
	rateBurstAgreements = 100
)

// limit for count
const maximumAgreementList = 100

// Agreements - type for RPC calls
type Agreements struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    *runtime.Runtime
	IsMode  func(mode.Mode) bool
}

// New - create the service
func New(log *logger.L, host *runtime.Runtime, isMode func(mode.Mode) bool) *Agreements {
	return &Agreements{
		Log:     log,
		Limiter: ratelimit.New(rateLimitAgreements, rateBurstAgreements),
		Host:    host,
		IsMode:  isMode,
	}
}

// ---

// CreateArguments - create_contract_agreement signed by origin
type CreateArguments struct {
	Origin principal.Account `json:"origin"`
	agreement.CreateParameters
}

// Create - submit create_contract_agreement
func (a *Agreements) Create(arguments *CreateArguments, reply *submit.Reply) error {
	call := &runtime.CreateContractAgreement{CreateParameters: arguments.CreateParameters}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// ---

// PartyArguments - accept or reject on behalf of a party
type PartyArguments struct {
	Origin principal.Account      `json:"origin"`
	Id     identifier.AgreementId `json:"id"`
	Party  principal.Principal    `json:"party"`
}

// Accept - submit accept_contract_agreement
func (a *Agreements) Accept(arguments *PartyArguments, reply *submit.Reply) error {
	call := &runtime.AcceptContractAgreement{Id: arguments.Id, Party: arguments.Party}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// Reject - submit reject_contract_agreement
func (a *Agreements) Reject(arguments *PartyArguments, reply *submit.Reply) error {
	call := &runtime.RejectContractAgreement{Id: arguments.Id, Party: arguments.Party}
	return submit.Extrinsic(a.Log, a.Limiter, a.IsMode, a.Host, arguments.Origin, call, reply)
}

// ---

// GetArguments - agreement to read
type GetArguments struct {
	Id identifier.AgreementId `json:"id"`
}

// GetReply - the stored agreement
type GetReply struct {
	Agreement *agreement.Agreement `json:"agreement"`
}

// Get - read one agreement
func (a *Agreements) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	ag, err := a.Host.Agreement(arguments.Id)
	if nil != err {
		return err
	}
	reply.Agreement = ag
	return nil
}

// ---

// ListArguments - page through the agreements of one kind
type ListArguments struct {
	Kind  agreement.Kind         `json:"kind"`
	Start identifier.AgreementId `json:"start"`
	Count int                    `json:"count"`
}

// ListReply - ids in order, NextStart is absent on the last page
type ListReply struct {
	Ids       []identifier.AgreementId `json:"ids"`
	NextStart *identifier.AgreementId  `json:"nextStart,omitempty"`
}

// List - page of agreement ids
func (a *Agreements) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(a.Limiter, arguments.Count, maximumAgreementList); nil != err {
		return err
	}

	// one extra id tells whether another page exists
	ids, err := a.Host.Agreements(arguments.Kind, arguments.Start, arguments.Count+1)
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
