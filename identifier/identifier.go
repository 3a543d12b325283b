// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - opaque fixed size identifiers
package identifier

import (
	"encoding/hex"
	"fmt"

	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
)

// lengths in bytes
const (
	IdLength   = 20
	HashLength = 32
)

// Id - 20 byte opaque identifier chosen by the caller
type Id [IdLength]byte

// the different uses of an Id
type (
	AgreementId    = Id
	ProjectId      = Id
	CrowdfundingId = Id
	AssetId        = Id
	DaoId          = Id
)

// ContentHash - digest of the off-chain document an agreement refers to
type ContentHash [HashLength]byte

// FromString - parse a hex identifier
func FromString(s string) (Id, error) {
	id := Id{}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// String - hex form of the id
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - for %#v
func (id Id) GoString() string {
	return "<id:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert id to hex text for JSON
func (id Id) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an id
func (id *Id) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != IdLength {
		return fault.InvalidIdentifier
	}
	byteCount, err := hex.Decode(id[:], s)
	if nil != err {
		return fault.InvalidIdentifier
	}
	if IdLength != byteCount {
		return fault.InvalidIdentifier
	}
	return nil
}

// Pack - append the raw id
func (id Id) Pack(buffer codec.Packed) codec.Packed {
	return codec.AppendFixed(buffer, id[:])
}

// Unpack - read a raw id
func Unpack(r *codec.Reader) (Id, error) {
	id := Id{}
	err := r.Fixed(id[:])
	return id, err
}

// String - hex form of the hash
func (h ContentHash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - convert hash to hex text for JSON
func (h ContentHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - convert hex text into a hash
func (h *ContentHash) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != HashLength {
		return fault.InvalidIdentifier
	}
	if _, err := hex.Decode(h[:], s); nil != err {
		return fault.InvalidIdentifier
	}
	return nil
}

// Pack - append the raw hash
func (h ContentHash) Pack(buffer codec.Packed) codec.Packed {
	return codec.AppendFixed(buffer, h[:])
}

// UnpackHash - read a raw hash
func UnpackHash(r *codec.Reader) (ContentHash, error) {
	h := ContentHash{}
	err := r.Fixed(h[:])
	return h, err
}

// TransactionCtxId - position of an extrinsic in the chain
type TransactionCtxId struct {
	BlockNumber    uint64 `json:"blockNumber"`
	ExtrinsicIndex uint32 `json:"extrinsicIndex"`
}

// String - block/index form
func (ctx TransactionCtxId) String() string {
	return fmt.Sprintf("%d/%d", ctx.BlockNumber, ctx.ExtrinsicIndex)
}

// Pack - u64 block number then u32 index
func (ctx TransactionCtxId) Pack(buffer codec.Packed) codec.Packed {
	buffer = codec.AppendUint64(buffer, ctx.BlockNumber)
	return codec.AppendUint32(buffer, ctx.ExtrinsicIndex)
}

// UnpackTransactionCtx - read a transaction context
func UnpackTransactionCtx(r *codec.Reader) (TransactionCtxId, error) {
	block, err := r.Uint64()
	if nil != err {
		return TransactionCtxId{}, err
	}
	index, err := r.Uint32()
	if nil != err {
		return TransactionCtxId{}, err
	}
	return TransactionCtxId{BlockNumber: block, ExtrinsicIndex: index}, nil
}
