// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package agreement - multi-party agreements recorded on chain
//
// two shapes exist: a project license between a licenser (the project
// team) and a licensee who pays a fixed price, and a generic contract
// that every listed party must accept
//
// License:
//
//   Unsigned --(licenser accept)--> SignedByLicenser --(licensee accept)--> Signed
//   Unsigned | SignedByLicenser --(expired on touch | rejection)--> Rejected
//
// Generic contract:
//
//   PartiallyAccepted{...} --(party accept)--> PartiallyAccepted{... party}
//   PartiallyAccepted{all} --> Accepted
//   PartiallyAccepted --(expired on touch | rejection)--> Rejected
//
// Signed, Accepted and Rejected are terminal.  Terminal records are
// kept so an id can never be reused.  Expiration is only observed when
// a party touches the record; nothing runs on a timer.
package agreement
