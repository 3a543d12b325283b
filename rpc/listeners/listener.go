// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network front ends for the RPC server and the
// HTTP status endpoints
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a started or startable network service
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Stop()
}

// parseListenAddress - network type per address
//
// "*:PORT" is rewritten in place to "[::]:PORT"
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("empty listen address")
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen: %q  error: %s", addrs[i], err)
			return nil, err
		}
	}

	return parsed, nil
}
