// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles of the collaborator interfaces
package mocks

//go:generate mockgen -destination=ledger.go -package=mocks github.com/deip/deipd/ledger Gateway
//go:generate mockgen -destination=project.go -package=mocks github.com/deip/deipd/project Registry
//go:generate mockgen -destination=principal.go -package=mocks github.com/deip/deipd/principal Resolver
//go:generate mockgen -destination=submit.go -package=mocks github.com/deip/deipd/rpc/submit Applier
