// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/counter"
	"github.com/deip/deipd/fault"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	listeners       []net.Listener
	stopped         bool
}

// NewRPC - JSON-RPC listener, a nil tlsConfig serves plain TCP
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: append([]string{}, configuration.Listen...),
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)

		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.ipType[i], listen)
		} else {
			l, err = tls.Listen(r.ipType[i], listen, r.tlsConfig)
		}
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}

		r.listeners = append(r.listeners, l)
		go r.accept(l)
	}
	return nil
}

// Addresses - bound addresses, valid after Serve
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addresses := make([]net.Addr, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr()
	}
	return addresses
}

// Stop - close the listen sockets, open connections finish their calls
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	r.stopped = true
	for _, l := range r.listeners {
		_ = l.Close()
	}
}

func (r *rpcListener) isStopped() bool {
	r.Lock()
	defer r.Unlock()
	return r.stopped
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			if !r.isStopped() {
				r.log.Errorf("rpc.server terminated: accept error: %s", err)
			}
			break
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit: %d reached, reject: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
	_ = listen.Close()
	r.log.Info("RPC accept terminated")
}
