// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAssetCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}
	id, err := checkId("id", c.String("id"))
	if nil != err {
		return err
	}
	minBalance, err := checkAmount("min-balance", c.String("min-balance"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateAsset(origin, id, minBalance)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// Mint and Transfer share their arguments
func move(method string) cli.ActionFunc {
	return func(c *cli.Context) error {

		m := c.App.Metadata["config"].(*metadata)

		origin, err := checkOrigin(m)
		if nil != err {
			return err
		}
		asset, err := checkId("asset", c.String("asset"))
		if nil != err {
			return err
		}
		to, err := checkAccount("to", c.String("to"))
		if nil != err {
			return err
		}
		amount, err := checkAmount("amount", c.String("amount"))
		if nil != err {
			return err
		}

		if m.verbose {
			fmt.Fprintf(m.e, "%s: %s  to: %s  amount: %s\n", method, asset, to, amount)
		}

		client, err := connect(m)
		if nil != err {
			return err
		}
		defer client.Close()

		response, err := client.MoveAsset(method, origin, asset, to, amount)
		if nil != err {
			return err
		}

		return printJson(m.w, response)
	}
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
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

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(origin, asset, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAsset(c *cli.Context) error {

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

	response, err := client.GetAsset(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkId("asset", c.String("asset"))
	if nil != err {
		return err
	}

	account := c.String("account")
	if "" == account {
		account = m.origin
	}
	who, err := checkAccount("account", account)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(asset, who)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
