// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/agreements"
	"github.com/deip/deipd/rpc/submit"
)

// CreateAgreement - submit a new contract agreement
func (c *Client) CreateAgreement(origin principal.Account, parameters agreement.CreateParameters) (*submit.Reply, error) {
	arguments := agreements.CreateArguments{
		Origin:           origin,
		CreateParameters: parameters,
	}
	reply := &submit.Reply{}
	err := c.call("Agreements.Create", &arguments, reply)
	return reply, err
}

// AcceptAgreement - accept on behalf of a party
func (c *Client) AcceptAgreement(origin principal.Account, id identifier.AgreementId, party principal.Principal) (*submit.Reply, error) {
	return c.partyCall("Agreements.Accept", origin, id, party)
}

// RejectAgreement - reject on behalf of a party
func (c *Client) RejectAgreement(origin principal.Account, id identifier.AgreementId, party principal.Principal) (*submit.Reply, error) {
	return c.partyCall("Agreements.Reject", origin, id, party)
}

func (c *Client) partyCall(method string, origin principal.Account, id identifier.AgreementId, party principal.Principal) (*submit.Reply, error) {
	arguments := agreements.PartyArguments{
		Origin: origin,
		Id:     id,
		Party:  party,
	}
	reply := &submit.Reply{}
	err := c.call(method, &arguments, reply)
	return reply, err
}

// GetAgreement - read an agreement
func (c *Client) GetAgreement(id identifier.AgreementId) (*agreements.GetReply, error) {
	reply := &agreements.GetReply{}
	err := c.call("Agreements.Get", &agreements.GetArguments{Id: id}, reply)
	return reply, err
}

// ListAgreements - page of agreement ids of one kind
func (c *Client) ListAgreements(kind agreement.Kind, start identifier.AgreementId, count int) (*agreements.ListReply, error) {
	arguments := agreements.ListArguments{
		Kind:  kind,
		Start: start,
		Count: count,
	}
	reply := &agreements.ListReply{}
	err := c.call("Agreements.List", &arguments, reply)
	return reply, err
}
