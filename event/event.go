// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - domain events produced by the engines
//
// engines emit into a Sink during an extrinsic; the runtime only
// publishes what was emitted once the extrinsic has committed
package event

import (
	"fmt"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

// Kind - event discriminant
type Kind uint8

// all events
const (
	ContractAgreementCreated Kind = iota
	ContractAgreementAccepted
	ContractAgreementFinalized
	ContractAgreementRejected
	SimpleCrowdfundingCreated
	SimpleCrowdfundingActivated
	SimpleCrowdfundingFinished
	SimpleCrowdfundingExpired
	Invested
)

var kindNames = []string{
	ContractAgreementCreated:    "ContractAgreementCreated",
	ContractAgreementAccepted:   "ContractAgreementAccepted",
	ContractAgreementFinalized:  "ContractAgreementFinalized",
	ContractAgreementRejected:   "ContractAgreementRejected",
	SimpleCrowdfundingCreated:   "SimpleCrowdfundingCreated",
	SimpleCrowdfundingActivated: "SimpleCrowdfundingActivated",
	SimpleCrowdfundingFinished:  "SimpleCrowdfundingFinished",
	SimpleCrowdfundingExpired:   "SimpleCrowdfundingExpired",
	Invested:                    "Invested",
}

// String - event name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText - event name for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - event name from JSON
func (k *Kind) UnmarshalText(s []byte) error {
	for i, name := range kindNames {
		if name == string(s) {
			*k = Kind(i)
			return nil
		}
	}
	return fault.RecordUnknownTag
}

// Event - one domain event
//
// Account is the party or contributor for the events that carry one
type Event struct {
	Kind    Kind               `json:"kind"`
	Id      identifier.Id      `json:"id"`
	Account *principal.Account `json:"account,omitempty"`
}

// New - event carrying only an id
func New(kind Kind, id identifier.Id) Event {
	return Event{Kind: kind, Id: id}
}

// NewWithAccount - event carrying an id and an account
func NewWithAccount(kind Kind, id identifier.Id, account principal.Account) Event {
	return Event{Kind: kind, Id: id, Account: &account}
}

// String - readable form for logs
func (e Event) String() string {
	if nil == e.Account {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Id)
	}
	return fmt.Sprintf("%s(%s, %s)", e.Kind, e.Id, e.Account)
}

// Sink - where engines emit events
type Sink interface {
	Emit(Event)
}

// Recorder - buffers the events of one extrinsic
type Recorder struct {
	events []Event
}

// Emit - append an event to the buffer
func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

// Events - buffered events in emission order
func (r *Recorder) Events() []Event {
	return r.events
}

// Take - return the buffered events and empty the buffer
func (r *Recorder) Take() []Event {
	events := r.events
	r.events = nil
	return events
}

// Reset - drop the buffer
func (r *Recorder) Reset() {
	r.events = nil
}
