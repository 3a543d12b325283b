// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error to allow easy comparison
// without having to resort to partial string matches.  Every error
// belongs to a class so callers can test the kind of failure, and
// every error has a stable numeric reason code for RPC clients.
package fault
