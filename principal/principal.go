// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package principal - the actors that sign extrinsics and own balances
//
// callers name a principal either by its raw key or by a DAO id; every
// record stores the canonical Account the principal resolves to
package principal

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
)

// AccountLength - size of a canonical account
const AccountLength = 32

// Account - canonical principal, ordered bytewise
type Account [AccountLength]byte

// Kind - principal tag
type Kind uint8

// principal tags
const (
	Native Kind = 0
	Dao    Kind = 1
)

const daoPrefix = "dao:"

// Principal - input form of an actor
type Principal struct {
	Kind    Kind
	Account Account
	Dao     identifier.DaoId
}

// NewNative - principal naming a raw key
func NewNative(account Account) Principal {
	return Principal{Kind: Native, Account: account}
}

// NewDao - principal naming a DAO
func NewDao(id identifier.DaoId) Principal {
	return Principal{Kind: Dao, Dao: id}
}

// Less - byte order of accounts
func (account Account) Less(other Account) bool {
	return bytes.Compare(account[:], other[:]) < 0
}

// String - hex form of the account
func (account Account) String() string {
	return hex.EncodeToString(account[:])
}

// MarshalText - hex text for JSON
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// Base58 - the shorter form users paste from wallets
func (account Account) Base58() string {
	return base58.Encode(account[:])
}

// UnmarshalText - hex or base58 text to account
//
// only the 64 character form is hex, anything else must be base58
func (account *Account) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != AccountLength {
		return account.fromBase58(string(s))
	}
	if _, err := hex.Decode(account[:], s); nil != err {
		return fault.InvalidIdentifier
	}
	return nil
}

func (account *Account) fromBase58(s string) error {
	if "" == s {
		return fault.InvalidIdentifier
	}
	b, err := base58.Decode(s)
	if nil != err || AccountLength != len(b) {
		return fault.InvalidIdentifier
	}
	copy(account[:], b)
	return nil
}

// Pack - append the raw account
func (account Account) Pack(buffer codec.Packed) codec.Packed {
	return codec.AppendFixed(buffer, account[:])
}

// UnpackAccount - read a raw account
func UnpackAccount(r *codec.Reader) (Account, error) {
	account := Account{}
	err := r.Fixed(account[:])
	return account, err
}

// String - hex key, or dao: followed by the DAO id
func (p Principal) String() string {
	if Dao == p.Kind {
		return daoPrefix + p.Dao.String()
	}
	return p.Account.String()
}

// MarshalText - text form for JSON
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - accepts the forms produced by String
func (p *Principal) UnmarshalText(s []byte) error {
	text := string(s)
	if strings.HasPrefix(text, daoPrefix) {
		id, err := identifier.FromString(strings.TrimPrefix(text, daoPrefix))
		if nil != err {
			return err
		}
		*p = NewDao(id)
		return nil
	}
	account := Account{}
	if err := account.UnmarshalText(s); nil != err {
		return err
	}
	*p = NewNative(account)
	return nil
}

// Pack - tag octet then the payload
func (p Principal) Pack(buffer codec.Packed) codec.Packed {
	buffer = codec.AppendUint8(buffer, uint8(p.Kind))
	if Dao == p.Kind {
		return p.Dao.Pack(buffer)
	}
	return p.Account.Pack(buffer)
}

// Unpack - read a tagged principal
func Unpack(r *codec.Reader) (Principal, error) {
	tag, err := r.Uint8()
	if nil != err {
		return Principal{}, err
	}
	switch Kind(tag) {
	case Native:
		account, err := UnpackAccount(r)
		if nil != err {
			return Principal{}, err
		}
		return NewNative(account), nil
	case Dao:
		id, err := identifier.Unpack(r)
		if nil != err {
			return Principal{}, err
		}
		return NewDao(id), nil
	default:
		return Principal{}, fault.RecordUnknownTag
	}
}
