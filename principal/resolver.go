// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package principal

import (
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/storage"
)

// Resolver - map an input principal to its canonical account
type Resolver interface {
	Resolve(Principal) (Account, error)
}

// DaoRegistry - resolver backed by the Dao pool
type DaoRegistry struct {
	log  *logger.L
	pool *storage.PoolHandle
}

// NewDaoRegistry - create a registry over a pool
func NewDaoRegistry(pool *storage.PoolHandle) *DaoRegistry {
	return &DaoRegistry{
		log:  logger.New("principal"),
		pool: pool,
	}
}

// Register - bind a DAO id to the account that acts for it
func (r *DaoRegistry) Register(id identifier.DaoId, account Account) error {
	if r.pool.Has(id[:]) {
		return fault.DaoAlreadyExists
	}
	r.pool.Put(id[:], account[:])
	r.log.Infof("dao: %s  account: %s", id, account)
	return nil
}

// Resolve - native keys map to themselves, DAOs through the registry
func (r *DaoRegistry) Resolve(p Principal) (Account, error) {
	switch p.Kind {
	case Native:
		return p.Account, nil

	case Dao:
		value := r.pool.Get(p.Dao[:])
		if nil == value {
			return Account{}, fault.DaoNotFound
		}
		if AccountLength != len(value) {
			logger.Panicf("principal: dao: %s  corrupt record: %x", p.Dao, value)
		}
		account := Account{}
		copy(account[:], value)
		return account, nil

	default:
		return Account{}, fault.UnknownPrincipal
	}
}
