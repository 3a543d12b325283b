// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/deip/deipd/codec"
	"github.com/deip/deipd/fault"
)

// DigestLength - size of a state digest
const DigestLength = 32

// Digest - SHA3-256 of the committed state
type Digest [DigestLength]byte

// StateDigest - hash every committed key/value pair in key order
//
// each pair contributes Compact(len(key)) ++ key ++ Compact(len(value)) ++ value;
// the version record is not part of the state
func (d *Database) StateDigest() (Digest, error) {
	d.RLock()
	defer d.RUnlock()

	hasher := sha3.New256()

	iter := d.db.NewIterator(nil, nil)
	buffer := make(codec.Packed, 0, 256)
	for iter.Next() {
		key := iter.Key()
		if bytes.Equal(key, versionKey) {
			continue
		}
		buffer = codec.AppendBytes(buffer[:0], key)
		buffer = codec.AppendBytes(buffer, iter.Value())
		hasher.Write(buffer)
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return Digest{}, err
	}

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// String - hex form of the digest
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - hex text for JSON
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - hex text to digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != DigestLength {
		return fault.InvalidIdentifier
	}
	_, err := hex.Decode(digest[:], s)
	return err
}
