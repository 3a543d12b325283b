// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package project - projects that licenses are granted for
package project

import (
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/storage"
)

// Registry - look up the team that owns a project
type Registry interface {
	Team(id identifier.ProjectId) (principal.Account, error)
}

// Projects - storage backed Registry
type Projects struct {
	log  *logger.L
	pool *storage.PoolHandle
}

var _ Registry = (*Projects)(nil)

// New - registry over the project pool
func New(pool *storage.PoolHandle) *Projects {
	return &Projects{
		log:  logger.New("project"),
		pool: pool,
	}
}

// Create - record a project and its team
func (p *Projects) Create(id identifier.ProjectId, team principal.Account) error {
	if p.pool.Has(id[:]) {
		return fault.ProjectAlreadyExists
	}
	p.pool.Put(id[:], team[:])
	p.log.Infof("project: %s  team: %s", id, team)
	return nil
}

// Team - account of the project team
func (p *Projects) Team(id identifier.ProjectId) (principal.Account, error) {
	value := p.pool.Get(id[:])
	if nil == value {
		return principal.Account{}, fault.ProjectNotFound
	}
	if principal.AccountLength != len(value) {
		logger.Panicf("project: %s  corrupt record: %x", id, value)
	}
	team := principal.Account{}
	copy(team[:], value)
	return team, nil
}
