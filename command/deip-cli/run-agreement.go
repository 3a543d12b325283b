// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/command/deip-cli/rpccalls"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/submit"
)

func runAgreementCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}

	parameters := agreement.CreateParameters{}
	if err := readParameters(c.String("file"), os.Stdin, &parameters); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateAgreement(origin, parameters)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAgreementAccept(c *cli.Context) error {
	return partyAction(c, (*rpccalls.Client).AcceptAgreement)
}

func runAgreementReject(c *cli.Context) error {
	return partyAction(c, (*rpccalls.Client).RejectAgreement)
}

type partyCall func(*rpccalls.Client, principal.Account, identifier.AgreementId, principal.Principal) (*submit.Reply, error)

func partyAction(c *cli.Context, call partyCall) error {

	m := c.App.Metadata["config"].(*metadata)

	origin, err := checkOrigin(m)
	if nil != err {
		return err
	}
	id, err := checkId("id", c.String("id"))
	if nil != err {
		return err
	}
	party, err := checkPrincipal("party", c.String("party"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "agreement: %s\n", id)
		fmt.Fprintf(m.e, "party: %s\n", party)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := call(client, origin, id, party)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAgreement(c *cli.Context) error {

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

	response, err := client.GetAgreement(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAgreements(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind := agreement.Kind(0)
	if err := kind.UnmarshalText([]byte(c.String("kind"))); nil != err {
		return fmt.Errorf("kind: %q  error: %s", c.String("kind"), err)
	}
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

	response, err := client.ListAgreements(kind, start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
