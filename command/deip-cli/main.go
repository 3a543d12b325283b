// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/deip/deipd/command/deip-cli/rpccalls"
)

type metadata struct {
	connect string
	useTLS  bool
	origin  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
)

func main() {
	err := newApp().Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "deip-cli"
	app.Usage = "submit extrinsics to and query a deipd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " deipd RPC `HOST:PORT`",
			EnvVar: "DEIP_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.StringFlag{
			Name:   "origin, o",
			Value:  "",
			Usage:  " signing `ACCOUNT` for extrinsics",
			EnvVar: "DEIP_ORIGIN",
		},
	}

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*identifier `HEX`",
	}
	startFlag := cli.StringFlag{
		Name:  "start, s",
		Value: "",
		Usage: " start from identifier `HEX`",
	}
	countFlag := cli.IntFlag{
		Name:  "count, n",
		Value: 20,
		Usage: " maximum records to output `COUNT`",
	}
	fileFlag := cli.StringFlag{
		Name:  "file, f",
		Value: "-",
		Usage: " JSON parameters from `FILE`, - is stdin",
	}
	partyFlag := cli.StringFlag{
		Name:  "party, p",
		Value: "",
		Usage: "*acting party `PRINCIPAL` (account or dao:ID)",
	}
	assetFlag := cli.StringFlag{
		Name:  "asset, a",
		Value: "",
		Usage: "*asset identifier `HEX`",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, q",
		Value: "",
		Usage: "*decimal `AMOUNT`",
	}
	toFlag := cli.StringFlag{
		Name:  "to, r",
		Value: "",
		Usage: "*receiving `ACCOUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display deipd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "events",
			Usage:     "list committed events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first sequence `NUMBER`",
				},
				countFlag,
			},
			Action: runEvents,
		},
		{
			Name:      "agreement-create",
			Usage:     "create a contract agreement from JSON parameters",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runAgreementCreate,
		},
		{
			Name:      "agreement-accept",
			Usage:     "accept a contract agreement",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, partyFlag},
			Action:    runAgreementAccept,
		},
		{
			Name:      "agreement-reject",
			Usage:     "reject a contract agreement",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, partyFlag},
			Action:    runAgreementReject,
		},
		{
			Name:      "agreement",
			Usage:     "display a contract agreement",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runAgreement,
		},
		{
			Name:      "agreements",
			Usage:     "list contract agreements of one kind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*agreement `KIND`",
				},
				startFlag,
				countFlag,
			},
			Action: runAgreements,
		},
		{
			Name:      "crowdfunding-create",
			Usage:     "create an investment opportunity from JSON parameters",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fileFlag},
			Action:    runCrowdfundingCreate,
		},
		{
			Name:      "crowdfunding-activate",
			Usage:     "open a crowdfunding whose start time has come",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    transition("Activate"),
		},
		{
			Name:      "crowdfunding-finish",
			Usage:     "close a crowdfunding that reached its soft cap",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    transition("Finish"),
		},
		{
			Name:      "crowdfunding-expire",
			Usage:     "refund a crowdfunding that ended below its soft cap",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    transition("Expire"),
		},
		{
			Name:      "invest",
			Usage:     "contribute to an active crowdfunding",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, assetFlag, amountFlag},
			Action:    runInvest,
		},
		{
			Name:      "crowdfunding",
			Usage:     "display a crowdfunding and its contributions",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runCrowdfunding,
		},
		{
			Name:      "crowdfundings",
			Usage:     "list crowdfundings",
			ArgsUsage: " ",
			Flags:     []cli.Flag{startFlag, countFlag},
			Action:    runCrowdfundings,
		},
		{
			Name:      "asset-create",
			Usage:     "define a fungible asset administered by origin",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "min-balance, m",
					Value: "1",
					Usage: " smallest non-zero holding `AMOUNT`",
				},
			},
			Action: runAssetCreate,
		},
		{
			Name:      "mint",
			Usage:     "create new units of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag, toFlag, amountFlag},
			Action:    move("Mint"),
		},
		{
			Name:      "transfer",
			Usage:     "move free balance to another account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag, toFlag, amountFlag},
			Action:    move("Transfer"),
		},
		{
			Name:      "burn",
			Usage:     "destroy free balance of origin",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag, amountFlag},
			Action:    runBurn,
		},
		{
			Name:      "asset",
			Usage:     "display an asset definition",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runAsset,
		},
		{
			Name:      "balance",
			Usage:     "display the holdings of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.StringFlag{
					Name:  "account, u",
					Value: "",
					Usage: " `ACCOUNT` default is origin",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "project-create",
			Usage:     "register a project",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "team, m",
					Value: "",
					Usage: "*team `PRINCIPAL` (account or dao:ID)",
				},
			},
			Action: runProjectCreate,
		},
		{
			Name:      "dao-register",
			Usage:     "bind a dao identifier to origin",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runDaoRegister,
		},
		{
			Name:      "team",
			Usage:     "display the account owning a project",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runTeam,
		},
		{
			Name:      "resolve",
			Usage:     "display the account behind a principal",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{partyFlag},
			Action:    runResolve,
		},
		{
			Name:      "version",
			Usage:     "display deip-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	// read the global flags into metadata
	app.Before = func(c *cli.Context) error {

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBool("tls"),
			origin:  c.GlobalString("origin"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

// open a client from the global flags
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  tls: %v\n", m.connect, m.useTLS)
	}
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
