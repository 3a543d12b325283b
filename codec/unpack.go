// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"github.com/deip/deipd/fault"
)

// Reader - sequential field reader over a packed record
type Reader struct {
	buffer []byte
	n      int
}

// NewReader - start reading at the beginning of a record
func NewReader(record []byte) *Reader {
	return &Reader{
		buffer: record,
		n:      0,
	}
}

// Remaining - count of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.n
}

// Done - the record must be fully consumed
func (r *Reader) Done() error {
	if r.n != len(r.buffer) {
		return fault.RecordHasTrailingData
	}
	return nil
}

func (r *Reader) take(count int) ([]byte, error) {
	if count < 0 || r.Remaining() < count {
		return nil, fault.RecordTruncated
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b, nil
}

// Uint8 - read a single octet
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// Bool - read an octet that must be 0x00 or 0x01
func (r *Reader) Bool() (bool, error) {
	b, err := r.Uint8()
	if nil != err {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.RecordNotCanonical
	}
}

// Uint32 - read four octets little endian
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 - read eight octets little endian
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Compact - read a mode-tagged compact integer in its shortest form
func (r *Reader) Compact() (uint64, error) {
	first, err := r.Uint8()
	if nil != err {
		return 0, err
	}

	switch first & 0x03 {
	case 0x00:
		return uint64(first >> 2), nil

	case 0x01:
		second, err := r.Uint8()
		if nil != err {
			return 0, err
		}
		value := uint64(binary.LittleEndian.Uint16([]byte{first, second}) >> 2)
		if value < singleByteLimit {
			return 0, fault.RecordNotCanonical
		}
		return value, nil

	case 0x02:
		rest, err := r.take(3)
		if nil != err {
			return 0, err
		}
		value := uint64(binary.LittleEndian.Uint32([]byte{first, rest[0], rest[1], rest[2]}) >> 2)
		if value < twoByteLimit {
			return 0, fault.RecordNotCanonical
		}
		return value, nil
	}

	n := int(first>>2) + 4
	if n > 8 {
		return 0, fault.RecordTooLarge
	}
	b, err := r.take(n)
	if nil != err {
		return 0, err
	}
	if 0 == b[n-1] {
		return 0, fault.RecordNotCanonical
	}
	var v [8]byte
	copy(v[:], b)
	value := binary.LittleEndian.Uint64(v[:])
	if value < fourByteLimit {
		return 0, fault.RecordNotCanonical
	}
	return value, nil
}

// Length - read a vector length and check it against a maximum
func (r *Reader) Length(maximum int) (int, error) {
	value, err := r.Compact()
	if nil != err {
		return 0, err
	}
	if value > uint64(maximum) {
		return 0, fault.RecordTooLarge
	}
	return int(value), nil
}

// Fixed - fill the destination with raw bytes
func (r *Reader) Fixed(destination []byte) error {
	b, err := r.take(len(destination))
	if nil != err {
		return err
	}
	copy(destination, b)
	return nil
}

// Bytes - read Compact(length) followed by the data
func (r *Reader) Bytes(maximum int) ([]byte, error) {
	length, err := r.Length(maximum)
	if nil != err {
		return nil, err
	}
	b, err := r.take(length)
	if nil != err {
		return nil, err
	}
	result := make([]byte, length)
	copy(result, b)
	return result, nil
}

// OptionUint64 - read a possibly absent u64
func (r *Reader) OptionUint64() (*uint64, error) {
	present, err := r.Bool()
	if nil != err {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	value, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	return &value, nil
}
