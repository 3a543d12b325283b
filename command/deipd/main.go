// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/background"
	"github.com/deip/deipd/metrics"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/rpc"
	"github.com/deip/deipd/rpc/certificate"
	"github.com/deip/deipd/rpc/listeners"
	"github.com/deip/deipd/runtime"
	"github.com/deip/deipd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	metricsPath = "/metrics"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// check genesis before anything is opened
	genesisState, err := theConfiguration.Genesis.Parse()
	if nil != err {
		exitwithstatus.Message("%s: genesis error: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise()
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("read only: %v", theConfiguration.ReadOnly)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HTTPStatus", theConfiguration.HTTPStatus)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name, theConfiguration.ReadOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	collector := metrics.New()

	log.Info("initialise runtime")
	host, err := runtime.New(db, runtime.Options{
		MaxParties:  theConfiguration.Limits.MaxParties,
		MaxShares:   theConfiguration.Limits.MaxShares,
		HistorySize: theConfiguration.Limits.HistorySize,
		Metrics:     collector,
	})
	if nil != err {
		log.Criticalf("runtime initialise error: %s", err)
		exitwithstatus.Message("runtime initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, host) {
		return
	}

	if !theConfiguration.ReadOnly {
		applied, err := host.Genesis(genesisState)
		if nil != err {
			log.Criticalf("genesis error: %s", err)
			exitwithstatus.Message("genesis error: %s", err)
		}
		if applied && 0 != genesisState.Timestamp {
			if _, err := host.NewBlock(genesisState.Timestamp); nil != err {
				log.Criticalf("genesis block error: %s", err)
				exitwithstatus.Message("genesis block error: %s", err)
			}
		}
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, host, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// status endpoints share nothing with the client RPC listener
	httpLog := logger.New("http_status")
	httpTLS, _, err := certificate.Load(httpLog, "http_status", theConfiguration.HTTPStatus.Certificate, theConfiguration.HTTPStatus.PrivateKey)
	if nil != err {
		log.Criticalf("http status certificate error: %s", err)
		exitwithstatus.Message("http status certificate error: %s", err)
	}
	status, err := listeners.NewHTTP(
		&theConfiguration.HTTPStatus,
		httpLog,
		httpTLS,
		map[string]http.Handler{
			metricsPath: collector.Handler(),
		},
	)
	if nil != err {
		log.Criticalf("http status initialise error: %s", err)
		exitwithstatus.Message("http status initialise error: %s", err)
	}
	if nil != status {
		if err := status.Serve(); nil != err {
			log.Criticalf("http status serve error: %s", err)
			exitwithstatus.Message("http status serve error: %s", err)
		}
		defer status.Stop()
	}

	// background processes
	processes := background.Processes{
		background.NewRelay(host.Bus(), nil),
		newStats(collector, time.Duration(theConfiguration.StatsInterval)*time.Second, len(options["memory-stats"]) > 0),
	}
	if theConfiguration.ReadOnly {
		mode.Set(mode.ReadOnly)
	} else {
		interval := time.Duration(theConfiguration.BlockInterval) * time.Second
		processes = append(processes, background.NewProducer(host, interval, nil))
		mode.Set(mode.Normal)
	}
	log.Infof("mode: %s", mode.String())

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
