// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement

import (
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

// Kind - agreement variant tag
type Kind uint8

// agreement variants
const (
	License         Kind = 0
	GenericContract Kind = 1
)

// String - variant name
func (k Kind) String() string {
	switch k {
	case License:
		return "License"
	case GenericContract:
		return "GenericContract"
	default:
		return "*unknown*"
	}
}

// MarshalText - variant name for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - variant name from JSON
func (k *Kind) UnmarshalText(s []byte) error {
	switch string(s) {
	case "License":
		*k = License
	case "GenericContract":
		*k = GenericContract
	default:
		return fault.UnknownTerms
	}
	return nil
}

// find a name in a state table
func lookupName(names []string, s []byte) (uint8, error) {
	for i, name := range names {
		if name == string(s) {
			return uint8(i), nil
		}
	}
	return 0, fault.RecordUnknownTag
}

// LicenseStatus - state of a license
type LicenseStatus uint8

// license states
const (
	Unsigned         LicenseStatus = 0
	SignedByLicenser LicenseStatus = 1
	Signed           LicenseStatus = 2
	LicenseRejected  LicenseStatus = 3
)

var licenseStatusNames = []string{
	Unsigned:         "Unsigned",
	SignedByLicenser: "SignedByLicenser",
	Signed:           "Signed",
	LicenseRejected:  "Rejected",
}

// String - state name
func (s LicenseStatus) String() string {
	if int(s) < len(licenseStatusNames) {
		return licenseStatusNames[s]
	}
	return "*unknown*"
}

// MarshalText - state name for JSON
func (s LicenseStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - state name from JSON
func (s *LicenseStatus) UnmarshalText(text []byte) error {
	n, err := lookupName(licenseStatusNames, text)
	*s = LicenseStatus(n)
	return err
}

// GenericStatusKind - state of a generic contract
type GenericStatusKind uint8

// generic contract states
const (
	PartiallyAccepted GenericStatusKind = 0
	Accepted          GenericStatusKind = 1
	GenericRejected   GenericStatusKind = 2
)

var genericStatusNames = []string{
	PartiallyAccepted: "PartiallyAccepted",
	Accepted:          "Accepted",
	GenericRejected:   "Rejected",
}

// String - state name
func (s GenericStatusKind) String() string {
	if int(s) < len(genericStatusNames) {
		return genericStatusNames[s]
	}
	return "*unknown*"
}

// MarshalText - state name for JSON
func (s GenericStatusKind) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - state name from JSON
func (s *GenericStatusKind) UnmarshalText(text []byte) error {
	n, err := lookupName(genericStatusNames, text)
	*s = GenericStatusKind(n)
	return err
}

// GenericStatus - state plus, while partially accepted, who accepted
//
// AcceptedBy is kept in ascending account order
type GenericStatus struct {
	Kind       GenericStatusKind   `json:"kind"`
	AcceptedBy []principal.Account `json:"acceptedBy,omitempty"`
}

// Price - the fee a licensee pays
type Price struct {
	Asset  identifier.AssetId `json:"asset"`
	Amount balance.Balance    `json:"amount"`
}

// LicenseAgreement - a project license between two parties
type LicenseAgreement struct {
	Id             identifier.AgreementId `json:"id"`
	Creator        principal.Account      `json:"creator"`
	Licenser       principal.Account      `json:"licenser"`
	Licensee       principal.Account      `json:"licensee"`
	Hash           identifier.ContentHash `json:"hash"`
	ActivationTime *clock.Moment          `json:"activationTime,omitempty"`
	ExpirationTime *clock.Moment          `json:"expirationTime,omitempty"`
	ProjectId      identifier.ProjectId   `json:"projectId"`
	Price          Price                  `json:"price"`
	Status         LicenseStatus          `json:"status"`
}

// Contract - a contract every party must accept
type Contract struct {
	Id             identifier.AgreementId `json:"id"`
	Creator        principal.Account      `json:"creator"`
	Parties        []principal.Account    `json:"parties"`
	Hash           identifier.ContentHash `json:"hash"`
	ActivationTime *clock.Moment          `json:"activationTime,omitempty"`
	ExpirationTime *clock.Moment          `json:"expirationTime,omitempty"`
	Status         GenericStatus          `json:"status"`
}

// Agreement - tagged sum of the variants, exactly one payload is set
type Agreement struct {
	Kind    Kind              `json:"kind"`
	License *LicenseAgreement `json:"license,omitempty"`
	Generic *Contract         `json:"generic,omitempty"`
}

// Id - id of whichever variant is present
func (a *Agreement) Id() identifier.AgreementId {
	switch a.Kind {
	case License:
		return a.License.Id
	default:
		return a.Generic.Id
	}
}

// upper bound on decoded vector lengths
const maxVectorLength = 1 << 16

// Pack - encode in declaration order behind the variant tag
func (a *Agreement) Pack() codec.Packed {
	buffer := codec.AppendUint8(nil, uint8(a.Kind))

	switch a.Kind {
	case License:
		l := a.License
		buffer = l.Id.Pack(buffer)
		buffer = l.Creator.Pack(buffer)
		buffer = l.Licenser.Pack(buffer)
		buffer = l.Licensee.Pack(buffer)
		buffer = l.Hash.Pack(buffer)
		buffer = codec.AppendOptionUint64(buffer, l.ActivationTime)
		buffer = codec.AppendOptionUint64(buffer, l.ExpirationTime)
		buffer = l.ProjectId.Pack(buffer)
		buffer = l.Price.Asset.Pack(buffer)
		buffer = l.Price.Amount.Pack(buffer)
		buffer = codec.AppendUint8(buffer, uint8(l.Status))

	case GenericContract:
		g := a.Generic
		buffer = g.Id.Pack(buffer)
		buffer = g.Creator.Pack(buffer)
		buffer = packAccounts(buffer, g.Parties)
		buffer = g.Hash.Pack(buffer)
		buffer = codec.AppendOptionUint64(buffer, g.ActivationTime)
		buffer = codec.AppendOptionUint64(buffer, g.ExpirationTime)
		buffer = codec.AppendUint8(buffer, uint8(g.Status.Kind))
		if PartiallyAccepted == g.Status.Kind {
			buffer = packAccounts(buffer, g.Status.AcceptedBy)
		}
	}
	return buffer
}

func packAccounts(buffer codec.Packed, accounts []principal.Account) codec.Packed {
	buffer = codec.AppendCompact(buffer, uint64(len(accounts)))
	for _, account := range accounts {
		buffer = account.Pack(buffer)
	}
	return buffer
}

func unpackAccounts(r *codec.Reader) ([]principal.Account, error) {
	n, err := r.Length(maxVectorLength)
	if nil != err {
		return nil, err
	}
	accounts := make([]principal.Account, n)
	for i := range accounts {
		accounts[i], err = principal.UnpackAccount(r)
		if nil != err {
			return nil, err
		}
	}
	return accounts, nil
}

// Unpack - strict decode of a packed agreement
func Unpack(packed []byte) (*Agreement, error) {
	r := codec.NewReader(packed)

	tag, err := r.Uint8()
	if nil != err {
		return nil, err
	}

	a := &Agreement{Kind: Kind(tag)}

	switch a.Kind {
	case License:
		a.License, err = unpackLicense(r)
	case GenericContract:
		a.Generic, err = unpackContract(r)
	default:
		return nil, fault.RecordUnknownTag
	}
	if nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return a, nil
}

func unpackLicense(r *codec.Reader) (*LicenseAgreement, error) {
	var err error
	l := &LicenseAgreement{}

	if l.Id, err = identifier.Unpack(r); nil != err {
		return nil, err
	}
	if l.Creator, err = principal.UnpackAccount(r); nil != err {
		return nil, err
	}
	if l.Licenser, err = principal.UnpackAccount(r); nil != err {
		return nil, err
	}
	if l.Licensee, err = principal.UnpackAccount(r); nil != err {
		return nil, err
	}
	if l.Hash, err = identifier.UnpackHash(r); nil != err {
		return nil, err
	}
	if l.ActivationTime, err = r.OptionUint64(); nil != err {
		return nil, err
	}
	if l.ExpirationTime, err = r.OptionUint64(); nil != err {
		return nil, err
	}
	if l.ProjectId, err = identifier.Unpack(r); nil != err {
		return nil, err
	}
	if l.Price.Asset, err = identifier.Unpack(r); nil != err {
		return nil, err
	}
	if l.Price.Amount, err = balance.Unpack(r); nil != err {
		return nil, err
	}
	status, err := r.Uint8()
	if nil != err {
		return nil, err
	}
	l.Status = LicenseStatus(status)
	if l.Status > LicenseRejected {
		return nil, fault.RecordUnknownTag
	}
	return l, nil
}

func unpackContract(r *codec.Reader) (*Contract, error) {
	var err error
	g := &Contract{}

	if g.Id, err = identifier.Unpack(r); nil != err {
		return nil, err
	}
	if g.Creator, err = principal.UnpackAccount(r); nil != err {
		return nil, err
	}
	if g.Parties, err = unpackAccounts(r); nil != err {
		return nil, err
	}
	if g.Hash, err = identifier.UnpackHash(r); nil != err {
		return nil, err
	}
	if g.ActivationTime, err = r.OptionUint64(); nil != err {
		return nil, err
	}
	if g.ExpirationTime, err = r.OptionUint64(); nil != err {
		return nil, err
	}
	status, err := r.Uint8()
	if nil != err {
		return nil, err
	}
	g.Status.Kind = GenericStatusKind(status)
	switch g.Status.Kind {
	case PartiallyAccepted:
		if g.Status.AcceptedBy, err = unpackAccounts(r); nil != err {
			return nil, err
		}
		for i := 1; i < len(g.Status.AcceptedBy); i += 1 {
			if !g.Status.AcceptedBy[i-1].Less(g.Status.AcceptedBy[i]) {
				return nil, fault.RecordNotCanonical
			}
		}
	case Accepted, GenericRejected:
	default:
		return nil, fault.RecordUnknownTag
	}
	return g, nil
}
