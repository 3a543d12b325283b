// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/counter"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/rpc/certificate"
	"github.com/deip/deipd/rpc/listeners"
	"github.com/deip/deipd/rpc/server"
	"github.com/deip/deipd/runtime"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener    listeners.Listener
	connections counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, host *runtime.Runtime, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	if nil != tlsConfig {
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.connections,
		server.Create(log, version, host, &globalData.connections),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - currently open client connections
func ConnectionCount() uint64 {
	return globalData.connections.Uint64()
}
