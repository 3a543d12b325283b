// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package runtime - deterministic extrinsic host
//
// the runtime owns the state database and the engines.  A block is
// started with NewBlock, which fixes the timestamp every extrinsic in
// the block observes.  Apply then runs one extrinsic at a time:
//
//   1. open a storage transaction
//   2. dispatch the call with the signer's account
//   3. commit, or abort on any error
//   4. publish the buffered events to the history and the bus
//
// The origin passed to Apply is trusted: signature checking belongs to
// whatever submits the extrinsic.
package runtime
