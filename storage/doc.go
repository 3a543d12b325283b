// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk chain state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++         = concatenation of byte data
// 3. id         = 20 byte opaque identifier
// 4. account    = canonical 32 byte account
// 5. kind       = one byte agreement variant tag
// 6. *records*  = codec packed records
//
// Agreements:
//
//   A ++ id              - agreement record
//   K ++ kind ++ id      - agreement id by kind, data: empty
//
// Crowdfunding:
//
//   C ++ id              - crowdfunding record
//   U ++ id              - contributions, data: Vec<Contribution>
//
// Collaborators:
//
//   P ++ id              - project record (team account)
//   D ++ id              - dao record (account the dao resolves to)
//   S ++ id              - asset record (admin, minimum balance, supply)
//   B ++ id ++ account   - balance record (free, reserved)
//
// Host:
//
//   H ++ "head"          - block number and timestamp of the last block
//
// Testing:
//
//   Z ++ key             - test data
//
// Writes are only possible inside a transaction: Begin, then Put/Delete
// through the pools, then Commit or Abort.  Reads inside a transaction
// see the uncommitted writes; cursors and the state digest only see
// committed data.
package storage
