// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/ratelimit"
	"github.com/deip/deipd/rpc/submit"
	"github.com/deip/deipd/runtime"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for RPC calls on projects and DAOs
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    *runtime.Runtime
	IsMode  func(mode.Mode) bool
}

// New - create the service
func New(log *logger.L, host *runtime.Runtime, isMode func(mode.Mode) bool) *Registry {
	return &Registry{
		Log:     log,
		Limiter: ratelimit.New(rateLimitRegistry, rateBurstRegistry),
		Host:    host,
		IsMode:  isMode,
	}
}

// ---

// CreateProjectArguments - project owned by team, team must resolve to origin
type CreateProjectArguments struct {
	Origin principal.Account    `json:"origin"`
	Id     identifier.ProjectId `json:"id"`
	Team   principal.Principal  `json:"team"`
}

// CreateProject - submit create_project
func (r *Registry) CreateProject(arguments *CreateProjectArguments, reply *submit.Reply) error {
	call := &runtime.CreateProject{Id: arguments.Id, Team: arguments.Team}
	return submit.Extrinsic(r.Log, r.Limiter, r.IsMode, r.Host, arguments.Origin, call, reply)
}

// RegisterDaoArguments - dao resolving to origin
type RegisterDaoArguments struct {
	Origin principal.Account `json:"origin"`
	Id     identifier.DaoId  `json:"id"`
}

// RegisterDao - submit register_dao
func (r *Registry) RegisterDao(arguments *RegisterDaoArguments, reply *submit.Reply) error {
	call := &runtime.RegisterDao{Id: arguments.Id}
	return submit.Extrinsic(r.Log, r.Limiter, r.IsMode, r.Host, arguments.Origin, call, reply)
}

// ---

// TeamArguments - project to look up
type TeamArguments struct {
	Id identifier.ProjectId `json:"id"`
}

// AccountReply - a canonical account
type AccountReply struct {
	Account principal.Account `json:"account"`
}

// Team - account owning a project
func (r *Registry) Team(arguments *TeamArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	team, err := r.Host.Team(arguments.Id)
	if nil != err {
		return err
	}
	reply.Account = team
	return nil
}

// ResolveArguments - principal to resolve
type ResolveArguments struct {
	Principal principal.Principal `json:"principal"`
}

// Resolve - canonical account of a key or dao
func (r *Registry) Resolve(arguments *ResolveArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	account, err := r.Host.Resolve(arguments.Principal)
	if nil != err {
		return err
	}
	reply.Account = account
	return nil
}
