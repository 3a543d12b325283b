// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - binary record layout
//
// Records are packed as a sequence of fields in declaration order:
//
//   integers      little endian, fixed width (u8, u32, u64, u128)
//   bool          one octet 0x00 or 0x01
//   enum tag      one octet discriminant followed by the variant fields
//   option        0x00 (none) or 0x01 followed by the value
//   vector/bytes  Compact(length) ++ items
//   fixed arrays  raw bytes, no prefix
//
// Compact is the mode-tagged variable length unsigned integer:
//
//   0b00  single byte             value <  2^6
//   0b01  two bytes, LE           value <  2^14
//   0b10  four bytes, LE          value <  2^30
//   0b11  upper six bits = N-4    N following bytes, LE, minimal
//
// Decoding is strict: a value must use its shortest form, tags must be
// known and no bytes may follow the record, so that unpack followed by
// pack reproduces the input exactly.
package codec
