// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"encoding/hex"
)

// Packed - packed records are just a byte slice
type Packed []byte

// compact mode boundaries
const (
	singleByteLimit = 1 << 6
	twoByteLimit    = 1 << 14
	fourByteLimit   = 1 << 30
)

// AppendUint8 - append a single octet
func AppendUint8(buffer Packed, value uint8) Packed {
	return append(buffer, value)
}

// AppendBool - append 0x00 or 0x01
func AppendBool(buffer Packed, value bool) Packed {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// AppendUint32 - append four octets little endian
func AppendUint32(buffer Packed, value uint32) Packed {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint64 - append eight octets little endian
func AppendUint64(buffer Packed, value uint64) Packed {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendCompact - append a mode-tagged compact integer
func AppendCompact(buffer Packed, value uint64) Packed {
	switch {
	case value < singleByteLimit:
		return append(buffer, byte(value<<2))

	case value < twoByteLimit:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(value<<2)|0x01)
		return append(buffer, b[:]...)

	case value < fourByteLimit:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(value<<2)|0x02)
		return append(buffer, b[:]...)
	}

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	n := 8
	for n > 4 && 0 == b[n-1] {
		n -= 1
	}
	buffer = append(buffer, byte(n-4)<<2|0x03)
	return append(buffer, b[:n]...)
}

// AppendFixed - append raw bytes without a length prefix
func AppendFixed(buffer Packed, data []byte) Packed {
	return append(buffer, data...)
}

// AppendBytes - append Compact(length) followed by the data
func AppendBytes(buffer Packed, data []byte) Packed {
	buffer = AppendCompact(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendOptionUint64 - append a possibly absent u64
func AppendOptionUint64(buffer Packed, value *uint64) Packed {
	if nil == value {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return AppendUint64(buffer, *value)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	b := make([]byte, size)
	_, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*record = b
	return nil
}
