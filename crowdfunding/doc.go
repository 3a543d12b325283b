// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crowdfunding - simple crowdfunding with soft and hard caps
//
// a creator offers one or more share assets, reserved on the creator for
// the life of the sale, in exchange for contributions in a single cap
// asset.  Contributions are reserved on the investors until the sale
// settles.
//
//   Inactive --(activate, now >= start)--> Active
//   Active --(total == hard cap | total >= soft cap at end)--> Finished
//   Active --(total < soft cap at end)--> Expired
//
// On finish each share is split between investors in proportion to
// their contribution, rounding down; the remainder stays with the
// creator.  On expiry every reservation is released.
package crowdfunding
