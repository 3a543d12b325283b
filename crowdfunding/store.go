// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdfunding

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/storage"
)

// Store - crowdfundings by id and their contributions
//
// the contributions of a sale are a single record kept in owner order
type Store struct {
	sales         *storage.PoolHandle
	contributions *storage.PoolHandle
}

// NewStore - store over the crowdfunding pools
func NewStore(sales *storage.PoolHandle, contributions *storage.PoolHandle) *Store {
	return &Store{
		sales:         sales,
		contributions: contributions,
	}
}

// Exists - true if a crowdfunding has the id
func (s *Store) Exists(id identifier.CrowdfundingId) bool {
	return s.sales.Has(id[:])
}

// Get - read a crowdfunding
func (s *Store) Get(id identifier.CrowdfundingId) (*Crowdfunding, error) {
	packed := s.sales.Get(id[:])
	if nil == packed {
		return nil, fault.NotFound
	}
	c, err := Unpack(packed)
	if nil != err {
		logger.Panicf("crowdfunding: %s  corrupt record: %x  error: %s", id, packed, err)
	}
	return c, nil
}

// Insert - store a new crowdfunding
func (s *Store) Insert(c *Crowdfunding) error {
	if s.sales.Has(c.Id[:]) {
		return fault.AlreadyExists
	}
	s.sales.Put(c.Id[:], c.Pack())
	return nil
}

// Update - replace an existing crowdfunding
func (s *Store) Update(c *Crowdfunding) error {
	if !s.sales.Has(c.Id[:]) {
		return fault.NotFound
	}
	s.sales.Put(c.Id[:], c.Pack())
	return nil
}

// Contributions - all contributions to a sale in owner order
func (s *Store) Contributions(id identifier.CrowdfundingId) []Contribution {
	packed := s.contributions.Get(id[:])
	if nil == packed {
		return []Contribution{}
	}
	contributions, err := UnpackContributions(packed)
	if nil != err {
		logger.Panicf("crowdfunding: %s  corrupt contributions: %x  error: %s", id, packed, err)
	}
	return contributions
}

// AddContribution - merge a contribution into the owner's entry
func (s *Store) AddContribution(c Contribution) error {
	contributions := s.Contributions(c.SaleId)

	n := sort.Search(len(contributions), func(i int) bool {
		return !contributions[i].Owner.Less(c.Owner)
	})
	if n < len(contributions) && contributions[n].Owner == c.Owner {
		amount, err := contributions[n].Amount.Add(c.Amount)
		if nil != err {
			return err
		}
		contributions[n].Amount = amount
		contributions[n].Time = c.Time
	} else {
		contributions = append(contributions, Contribution{})
		copy(contributions[n+1:], contributions[n:])
		contributions[n] = c
	}

	s.contributions.Put(c.SaleId[:], PackContributions(contributions))
	return nil
}

// List - committed crowdfunding ids in id order
//
// starts at the given id (inclusive) and returns at most count ids
func (s *Store) List(start identifier.CrowdfundingId, count int) ([]identifier.CrowdfundingId, error) {
	elements, err := s.sales.NewFetchCursor().Seek(start[:]).Fetch(count)
	if nil != err {
		return nil, err
	}

	ids := make([]identifier.CrowdfundingId, 0, len(elements))
	for _, e := range elements {
		if identifier.IdLength != len(e.Key) {
			logger.Panicf("crowdfunding: corrupt key: %x", e.Key)
		}
		id := identifier.CrowdfundingId{}
		copy(id[:], e.Key)
		ids = append(ids, id)
	}
	return ids, nil
}
