// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/registry"
	"github.com/deip/deipd/rpc/submit"
)

// CreateProject - register a project and its team
func (c *Client) CreateProject(origin principal.Account, id identifier.ProjectId, team principal.Principal) (*submit.Reply, error) {
	arguments := registry.CreateProjectArguments{
		Origin: origin,
		Id:     id,
		Team:   team,
	}
	reply := &submit.Reply{}
	err := c.call("Registry.CreateProject", &arguments, reply)
	return reply, err
}

// RegisterDao - bind a dao id to origin
func (c *Client) RegisterDao(origin principal.Account, id identifier.DaoId) (*submit.Reply, error) {
	arguments := registry.RegisterDaoArguments{
		Origin: origin,
		Id:     id,
	}
	reply := &submit.Reply{}
	err := c.call("Registry.RegisterDao", &arguments, reply)
	return reply, err
}

// Team - account owning a project
func (c *Client) Team(id identifier.ProjectId) (*registry.AccountReply, error) {
	reply := &registry.AccountReply{}
	err := c.call("Registry.Team", &registry.TeamArguments{Id: id}, reply)
	return reply, err
}

// Resolve - canonical account of a principal
func (c *Client) Resolve(p principal.Principal) (*registry.AccountReply, error) {
	reply := &registry.AccountReply{}
	err := c.call("Registry.Resolve", &registry.ResolveArguments{Principal: p}, reply)
	return reply, err
}
