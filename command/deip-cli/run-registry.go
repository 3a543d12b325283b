// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runProjectCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}
	id, err := checkId("id", c.String("id"))
	if nil != err {
		return err
	}
	team, err := checkPrincipal("team", c.String("team"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateProject(origin, id, team)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDaoRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}
	id, err := checkId("id", c.String("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RegisterDao(origin, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTeam(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId("id", c.String("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Team(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := checkPrincipal("party", c.String("party"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Resolve(p)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
