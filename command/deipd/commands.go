// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/runtime"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "info", "i", "agreement", "a", "crowdfunding", "cf":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  info                       (i)      - current block and state digest\n")
		fmt.Printf("\n")

		fmt.Printf("  agreement ID               (a)      - dump one agreement as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  crowdfunding ID            (cf)     - dump one crowdfunding and its contributions as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
//
// the runtime is open, but no block is started and no listener is
// running, so these commands only read state
func processDataCommand(log *logger.L, arguments []string, host *runtime.Runtime) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "info", "i":
		number, timestamp := host.Head()
		digest, err := host.StateDigest()
		if nil != err {
			exitwithstatus.Message("state digest error: %s", err)
		}
		printJSON(struct {
			Height      uint64 `json:"height"`
			Timestamp   uint64 `json:"timestamp"`
			StateDigest string `json:"stateDigest"`
		}{
			Height:      number,
			Timestamp:   uint64(timestamp),
			StateDigest: digest.String(),
		})

	case "agreement", "a":
		id := idArgument(arguments)
		a, err := host.Agreement(id)
		if nil != err {
			exitwithstatus.Message("agreement: %s  error: %s", id, err)
		}
		printJSON(a)

	case "crowdfunding", "cf":
		id := idArgument(arguments)
		c, contributions, err := host.Crowdfunding(id)
		if nil != err {
			exitwithstatus.Message("crowdfunding: %s  error: %s", id, err)
		}
		printJSON(struct {
			Crowdfunding  interface{} `json:"crowdfunding"`
			Contributions interface{} `json:"contributions"`
		}{
			Crowdfunding:  c,
			Contributions: contributions,
		})

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	log.Infof("data command: %s  completed", command)

	// indicate processing complete and perform normal exit from main
	return true
}

// first argument as a hex identifier
func idArgument(arguments []string) identifier.Id {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing identifier argument")
	}
	id, err := identifier.FromString(arguments[0])
	if nil != err {
		exitwithstatus.Message("error in identifier: %q  error: %s", arguments[0], err)
	}
	return id
}

// indented JSON to stdout
func printJSON(data interface{}) {
	b, err := json.Marshal(data)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
