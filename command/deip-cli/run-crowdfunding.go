// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/deip/deipd/crowdfunding"
)

func runCrowdfundingCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}

	parameters := crowdfunding.CreateParameters{}
	if err := readParameters(c.String("file"), os.Stdin, &parameters); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateCrowdfunding(origin, parameters)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// Activate, Finish and Expire share their arguments
func transition(method string) cli.ActionFunc {
	return func(c *cli.Context) error {

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

		response, err := client.CrowdfundingTransition(method, origin, id)
		if nil != err {
			return err
		}

		return printJson(m.w, response)
	}
}

func runInvest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}
	id, err := checkId("id", c.String("id"))
	if nil != err {
		return err
	}
	asset, err := checkId("asset", c.String("asset"))
	if nil != err {
		return err
	}
	amount, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "crowdfunding: %s\n", id)
		fmt.Fprintf(m.e, "asset: %s  amount: %s\n", asset, amount)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Invest(origin, id, crowdfunding.Asset{Id: asset, Amount: amount})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCrowdfunding(c *cli.Context) error {

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

	response, err := client.GetCrowdfunding(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCrowdfundings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start, err := checkOptionalId("start", c.String("start"))
	if nil != err {
		return err
	}
	count := c.Int("count")
	if err := checkCount(count); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListCrowdfundings(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
