// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	httpLogName      = "http_status"
	readWriteTimeout = 10 * time.Second
)

// HTTPConfiguration - configuration file data for the status endpoints
//
// Allow maps a path to the networks that may fetch it, paths absent
// from the map are open
type HTTPConfiguration struct {
	Listen      []string            `gluamapper:"listen" json:"listen"`
	Certificate string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey  string              `gluamapper:"private_key" json:"private_key"`
	Allow       map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpListener struct {
	sync.Mutex
	log             *logger.L
	listenIPAndPort []string
	tlsConfig       *tls.Config
	handler         http.Handler
	servers         []*http.Server
	listeners       []net.Listener
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// NewHTTP - serve the routes on every listen address
//
// returns nil, nil when no listen address is configured
func NewHTTP(
	configuration *HTTPConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	routes map[string]http.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpLogName)
		return nil, nil
	}

	addresses := append([]string{}, configuration.Listen...)
	if _, err := parseListenAddress(addresses, log); nil != err {
		return nil, err
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, networks := range configuration.Allow {
		set := make([]*net.IPNet, len(networks))
		local[path] = set
		for i, ip := range networks {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("%s allow: %q  error: %s", httpLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}

	mux := http.NewServeMux()
	for path, h := range routes {
		mux.Handle(path, restrict(log, local[path], h))
	}

	return &httpListener{
		log:             log,
		listenIPAndPort: addresses,
		tlsConfig:       tlsConfig,
		handler:         mux,
	}, nil
}

// restrict - refuse clients outside the allowed networks
func restrict(log *logger.L, allowed []*net.IPNet, h http.Handler) http.Handler {
	if 0 == len(allowed) {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		host, _, err := net.SplitHostPort(req.RemoteAddr)
		ip := net.ParseIP(host)
		if nil == err && nil != ip {
			for _, n := range allowed {
				if n.Contains(ip) {
					h.ServeHTTP(w, req)
					return
				}
			}
		}
		log.Warnf("forbidden: %s  from: %s", req.URL.Path, req.RemoteAddr)
		http.Error(w, "forbidden", http.StatusForbidden)
	})
}

// Serve - start one server per listen address
func (h *httpListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpLogName, listen)

		ln, err := net.Listen("tcp", listen)
		if err != nil {
			h.log.Errorf("%s listen error: %s", httpLogName, err)
			return err
		}

		var l net.Listener = tcpKeepAliveListener{ln.(*net.TCPListener)}
		if nil != h.tlsConfig {
			cfg := h.tlsConfig.Clone()
			cfg.NextProtos = []string{"http/1.1"}
			l = tls.NewListener(l, cfg)
		}

		s := &http.Server{
			Handler:        h.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)
		h.listeners = append(h.listeners, ln)

		go func() {
			if err := s.Serve(l); nil != err && http.ErrServerClosed != err {
				h.log.Errorf("%s terminated: %s", httpLogName, err)
			}
		}()
	}

	return nil
}

// Addresses - bound addresses, valid after Serve
func (h *httpListener) Addresses() []net.Addr {
	h.Lock()
	defer h.Unlock()

	addresses := make([]net.Addr, len(h.listeners))
	for i, l := range h.listeners {
		addresses[i] = l.Addr()
	}
	return addresses
}

// Stop - close every server
func (h *httpListener) Stop() {
	h.Lock()
	defer h.Unlock()

	for _, s := range h.servers {
		_ = s.Close()
	}
}
