// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - multi-asset balances with reservations
//
// every account holds, per asset, a free balance and a reserved
// balance; reserved funds still belong to the account but cannot be
// spent until unreserved or repatriated to another account
//
// each asset has an admin (the only account that may mint) and a
// positive minimum balance: a transfer, mint or burn may not leave an
// account holding a non-zero total below that minimum.  Moving reserved
// funds (reserve, unreserve, repatriate) is never blocked by it, so a
// reservation that was accepted can always be settled.
package ledger
