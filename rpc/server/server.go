// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the net/rpc server with every service registered
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/counter"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/rpc/agreements"
	"github.com/deip/deipd/rpc/assets"
	"github.com/deip/deipd/rpc/crowdfundings"
	"github.com/deip/deipd/rpc/node"
	"github.com/deip/deipd/rpc/registry"
	"github.com/deip/deipd/runtime"
)

// Create - server exposing Agreements, Crowdfundings, Assets, Registry
// and Node
func Create(log *logger.L, version string, host *runtime.Runtime, rpcCount *counter.Counter) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(agreements.New(log, host, mode.Is))
	_ = server.Register(crowdfundings.New(log, host, mode.Is))
	_ = server.Register(assets.New(log, host, mode.Is))
	_ = server.Register(registry.New(log, host, mode.Is))
	_ = server.Register(node.New(log, host, start, version, mode.String, rpcCount))

	return server
}
