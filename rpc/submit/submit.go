// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package submit - common path of every extrinsic carrying RPC
package submit

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/mode"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/rpc/ratelimit"
	"github.com/deip/deipd/runtime"
)

// Applier - where extrinsics are executed
type Applier interface {
	Apply(origin principal.Account, call runtime.Call) (identifier.TransactionCtxId, error)
}

// Reply - result of an accepted extrinsic
type Reply struct {
	Context identifier.TransactionCtxId `json:"context"`
}

// Extrinsic - rate limit, check the node accepts writes then apply
func Extrinsic(
	log *logger.L,
	limiter *rate.Limiter,
	isMode func(mode.Mode) bool,
	host Applier,
	origin principal.Account,
	call runtime.Call,
	reply *Reply,
) error {
	if err := ratelimit.Limit(limiter); nil != err {
		return err
	}

	if !isMode(mode.Normal) {
		return fault.NotAvailableInReadOnlyMode
	}

	ctx, err := host.Apply(origin, call)
	if nil != err {
		log.Debugf("%s  origin: %s  error: %s", call.Name(), origin, err)
		return err
	}

	reply.Context = ctx
	return nil
}
