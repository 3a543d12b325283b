// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement

import (
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/storage"
)

// Store - agreements by id plus the by-kind index
//
// writes go through the open storage transaction
type Store struct {
	agreements *storage.PoolHandle
	byKind     *storage.PoolHandle
}

// NewStore - store over the agreement pools
func NewStore(agreements *storage.PoolHandle, byKind *storage.PoolHandle) *Store {
	return &Store{
		agreements: agreements,
		byKind:     byKind,
	}
}

func kindKey(kind Kind, id identifier.AgreementId) []byte {
	key := make([]byte, 0, 1+identifier.IdLength)
	key = append(key, byte(kind))
	return append(key, id[:]...)
}

// Exists - true if an agreement has the id
func (s *Store) Exists(id identifier.AgreementId) bool {
	return s.agreements.Has(id[:])
}

// Get - read an agreement
func (s *Store) Get(id identifier.AgreementId) (*Agreement, error) {
	packed := s.agreements.Get(id[:])
	if nil == packed {
		return nil, fault.NotFound
	}
	a, err := Unpack(packed)
	if nil != err {
		logger.Panicf("agreement: %s  corrupt record: %x  error: %s", id, packed, err)
	}
	return a, nil
}

// Insert - store a new agreement and index it by kind
func (s *Store) Insert(a *Agreement) error {
	id := a.Id()
	if s.agreements.Has(id[:]) {
		return fault.AlreadyExists
	}
	s.agreements.Put(id[:], a.Pack())
	s.byKind.Put(kindKey(a.Kind, id), []byte{})
	return nil
}

// Update - replace an existing agreement
func (s *Store) Update(a *Agreement) error {
	id := a.Id()
	if !s.agreements.Has(id[:]) {
		return fault.NotFound
	}
	s.agreements.Put(id[:], a.Pack())
	return nil
}

// Delete - remove an agreement and its index entry
func (s *Store) Delete(id identifier.AgreementId) error {
	a, err := s.Get(id)
	if nil != err {
		return err
	}
	s.agreements.Delete(id[:])
	s.byKind.Delete(kindKey(a.Kind, id))
	return nil
}

// ListByKind - committed agreement ids of one kind in id order
//
// starts at the given id (inclusive) and returns at most count ids
func (s *Store) ListByKind(kind Kind, start identifier.AgreementId, count int) ([]identifier.AgreementId, error) {
	cursor := s.byKind.NewPrefixCursor([]byte{byte(kind)})
	cursor.Seek(kindKey(kind, start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	ids := make([]identifier.AgreementId, 0, len(elements))
	for _, e := range elements {
		if 1+identifier.IdLength != len(e.Key) {
			logger.Panicf("agreement: corrupt kind index key: %x", e.Key)
		}
		id := identifier.AgreementId{}
		copy(id[:], e.Key[1:])
		ids = append(ids, id)
	}
	return ids, nil
}
