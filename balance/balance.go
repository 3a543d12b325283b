// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - unsigned 128 bit amounts with checked arithmetic
package balance

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
)

// Length - packed size of a balance
const Length = 16

// Balance - an amount of an asset, 0 ≤ value < 2^128
//
// values are comparable with ==
type Balance struct {
	value uint256.Int
}

// largest representable value: the low two words all ones
var maximum = uint256.Int{^uint64(0), ^uint64(0), 0, 0}

// Zero - the empty balance
var Zero = Balance{}

// Max - the largest balance
var Max = Balance{value: maximum}

// New - balance from a small integer
func New(n uint64) Balance {
	b := Balance{}
	b.value.SetUint64(n)
	return b
}

// FromString - parse a decimal amount
func FromString(s string) (Balance, error) {
	b := Balance{}
	err := b.UnmarshalText([]byte(s))
	return b, err
}

func fromInt(v *uint256.Int) (Balance, error) {
	if v.Gt(&maximum) {
		return Zero, fault.Overflow
	}
	return Balance{value: *v}, nil
}

// IsZero - true for zero
func (b Balance) IsZero() bool {
	return b.value.IsZero()
}

// Cmp - -1, 0 or +1 as b is less than, equal to or greater than o
func (b Balance) Cmp(o Balance) int {
	return b.value.Cmp(&o.value)
}

// Lt - b < o
func (b Balance) Lt(o Balance) bool {
	return b.value.Lt(&o.value)
}

// Gt - b > o
func (b Balance) Gt(o Balance) bool {
	return b.value.Gt(&o.value)
}

// Min - the smaller of two balances
func (b Balance) Min(o Balance) Balance {
	if o.Lt(b) {
		return o
	}
	return b
}

// Add - b + o, fails with Overflow past 2^128-1
func (b Balance) Add(o Balance) (Balance, error) {
	// both operands are below 2^128 so the 256 bit sum cannot wrap
	sum := new(uint256.Int).Add(&b.value, &o.value)
	return fromInt(sum)
}

// Sub - b - o, fails with Overflow if o > b
func (b Balance) Sub(o Balance) (Balance, error) {
	if b.Lt(o) {
		return Zero, fault.Overflow
	}
	return Balance{value: *new(uint256.Int).Sub(&b.value, &o.value)}, nil
}

// MulDiv - floor(b * n / d) with a 256 bit intermediate product
func (b Balance) MulDiv(n Balance, d Balance) (Balance, error) {
	if d.IsZero() {
		return Zero, fault.Overflow
	}
	// the product of two values below 2^128 is below 2^256
	product := new(uint256.Int).Mul(&b.value, &n.value)
	return fromInt(product.Div(product, &d.value))
}

// Pack - append 16 bytes little endian
func (b Balance) Pack(buffer codec.Packed) codec.Packed {
	be := b.value.Bytes32()
	le := make([]byte, Length)
	for i := 0; i < Length; i += 1 {
		le[i] = be[len(be)-1-i]
	}
	return codec.AppendFixed(buffer, le)
}

// Unpack - read 16 bytes little endian
func Unpack(r *codec.Reader) (Balance, error) {
	le := make([]byte, Length)
	if err := r.Fixed(le); nil != err {
		return Zero, err
	}
	be := make([]byte, Length)
	for i := 0; i < Length; i += 1 {
		be[i] = le[Length-1-i]
	}
	b := Balance{}
	b.value.SetBytes(be)
	return b, nil
}

// String - decimal form
func (b Balance) String() string {
	return b.value.ToBig().String()
}

// MarshalText - decimal text so JSON keeps full precision
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText - decimal text to balance
func (b *Balance) UnmarshalText(s []byte) error {
	n, ok := new(big.Int).SetString(string(s), 10)
	if !ok || n.Sign() < 0 {
		return fault.InvalidCount
	}
	v, overflow := uint256.FromBig(n)
	if overflow {
		return fault.Overflow
	}
	r, err := fromInt(v)
	if nil != err {
		return err
	}
	*b = r
	return nil
}
