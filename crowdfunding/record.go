// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdfunding

import (
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/clock"
	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

// Status - crowdfunding lifecycle state
type Status uint8

// crowdfunding states
const (
	Inactive Status = 0
	Active   Status = 1
	Finished Status = 2
	Expired  Status = 3
)

var statusNames = []string{
	Inactive: "Inactive",
	Active:   "Active",
	Finished: "Finished",
	Expired:  "Expired",
}

// String - state name
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "*unknown*"
}

// MarshalText - state name for JSON
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - state name from JSON
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fault.RecordUnknownTag
}

// Asset - an amount of one asset
type Asset struct {
	Id     identifier.AssetId `json:"id"`
	Amount balance.Balance    `json:"amount"`
}

func (a Asset) pack(buffer codec.Packed) codec.Packed {
	buffer = a.Id.Pack(buffer)
	return a.Amount.Pack(buffer)
}

func unpackAsset(r *codec.Reader) (Asset, error) {
	id, err := identifier.Unpack(r)
	if nil != err {
		return Asset{}, err
	}
	amount, err := balance.Unpack(r)
	if nil != err {
		return Asset{}, err
	}
	return Asset{Id: id, Amount: amount}, nil
}

// Crowdfunding - a sale of share assets for a cap asset
type Crowdfunding struct {
	Id          identifier.CrowdfundingId   `json:"id"`
	Creator     principal.Account           `json:"creator"`
	StartTime   clock.Moment                `json:"startTime"`
	EndTime     clock.Moment                `json:"endTime"`
	Status      Status                      `json:"status"`
	AssetId     identifier.AssetId          `json:"assetId"`
	TotalAmount balance.Balance             `json:"totalAmount"`
	SoftCap     balance.Balance             `json:"softCap"`
	HardCap     balance.Balance             `json:"hardCap"`
	Shares      []Asset                     `json:"shares"`
	CreatedCtx  identifier.TransactionCtxId `json:"createdCtx"`
}

// Contribution - what one investor has put into a sale
type Contribution struct {
	SaleId identifier.CrowdfundingId `json:"saleId"`
	Owner  principal.Account         `json:"owner"`
	Amount balance.Balance           `json:"amount"`
	Time   clock.Moment              `json:"time"`
}

// upper bound on decoded vector lengths
const maxVectorLength = 1 << 16

// Pack - encode in declaration order
func (c *Crowdfunding) Pack() codec.Packed {
	buffer := c.Id.Pack(nil)
	buffer = c.Creator.Pack(buffer)
	buffer = codec.AppendUint64(buffer, c.StartTime)
	buffer = codec.AppendUint64(buffer, c.EndTime)
	buffer = codec.AppendUint8(buffer, uint8(c.Status))
	buffer = c.AssetId.Pack(buffer)
	buffer = c.TotalAmount.Pack(buffer)
	buffer = c.SoftCap.Pack(buffer)
	buffer = c.HardCap.Pack(buffer)
	buffer = codec.AppendCompact(buffer, uint64(len(c.Shares)))
	for _, share := range c.Shares {
		buffer = share.pack(buffer)
	}
	return c.CreatedCtx.Pack(buffer)
}

// Unpack - strict decode of a packed crowdfunding
func Unpack(packed []byte) (*Crowdfunding, error) {
	var err error
	r := codec.NewReader(packed)
	c := &Crowdfunding{}

	if c.Id, err = identifier.Unpack(r); nil != err {
		return nil, err
	}
	if c.Creator, err = principal.UnpackAccount(r); nil != err {
		return nil, err
	}
	if c.StartTime, err = r.Uint64(); nil != err {
		return nil, err
	}
	if c.EndTime, err = r.Uint64(); nil != err {
		return nil, err
	}
	status, err := r.Uint8()
	if nil != err {
		return nil, err
	}
	c.Status = Status(status)
	if c.Status > Expired {
		return nil, fault.RecordUnknownTag
	}
	if c.AssetId, err = identifier.Unpack(r); nil != err {
		return nil, err
	}
	if c.TotalAmount, err = balance.Unpack(r); nil != err {
		return nil, err
	}
	if c.SoftCap, err = balance.Unpack(r); nil != err {
		return nil, err
	}
	if c.HardCap, err = balance.Unpack(r); nil != err {
		return nil, err
	}
	n, err := r.Length(maxVectorLength)
	if nil != err {
		return nil, err
	}
	c.Shares = make([]Asset, n)
	for i := range c.Shares {
		if c.Shares[i], err = unpackAsset(r); nil != err {
			return nil, err
		}
	}
	if c.CreatedCtx, err = identifier.UnpackTransactionCtx(r); nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Contribution) pack(buffer codec.Packed) codec.Packed {
	buffer = c.SaleId.Pack(buffer)
	buffer = c.Owner.Pack(buffer)
	buffer = c.Amount.Pack(buffer)
	return codec.AppendUint64(buffer, c.Time)
}

func unpackContribution(r *codec.Reader) (Contribution, error) {
	var err error
	c := Contribution{}
	if c.SaleId, err = identifier.Unpack(r); nil != err {
		return c, err
	}
	if c.Owner, err = principal.UnpackAccount(r); nil != err {
		return c, err
	}
	if c.Amount, err = balance.Unpack(r); nil != err {
		return c, err
	}
	c.Time, err = r.Uint64()
	return c, err
}

// PackContributions - encode the contributions of one sale
func PackContributions(contributions []Contribution) codec.Packed {
	buffer := codec.AppendCompact(nil, uint64(len(contributions)))
	for i := range contributions {
		buffer = contributions[i].pack(buffer)
	}
	return buffer
}

// UnpackContributions - strict decode, owners must be strictly ascending
func UnpackContributions(packed []byte) ([]Contribution, error) {
	r := codec.NewReader(packed)
	n, err := r.Length(maxVectorLength)
	if nil != err {
		return nil, err
	}
	contributions := make([]Contribution, n)
	for i := range contributions {
		if contributions[i], err = unpackContribution(r); nil != err {
			return nil, err
		}
		if i > 0 && !contributions[i-1].Owner.Less(contributions[i].Owner) {
			return nil, fault.RecordNotCanonical
		}
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return contributions, nil
}
