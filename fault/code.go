// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// reason codes are the position in this list plus one (zero means
// "not an enumerated error"), so append only - never reorder
var enumerated = []error{
	AlreadyExists,
	NotFound,
	PartyIsNotListed,
	PartyIsNotLicenser,
	PartyIsNotLicensee,
	AlreadyAcceptedByParty,
	AlreadyAccepted,
	Rejected,
	ShouldBeInactive,
	ShouldBeActive,
	StartTimeInFuture,
	EndTimeBeforeStart,
	LicenseExpired,
	FeeMustBePositive,
	CapOrdering,
	WrongAsset,
	AssetAmountMustBePositive,
	NotEnoughBalance,
	NotEnoughFunds,
	FailedToChargeFee,
	FailedToReserveAsset,
	NoParties,
	TwoPartiesRequired,
	TooMuchShares,
	CapDifferentAssets,
	ShouldBeStarted,
	StartTimeInPast,
	TooManyParties,
	DuplicateParties,
	SecurityTokenNotSpecified,
	DuplicateShares,
	ProjectNotFound,
	ProjectTeamNotListed,
	LicensePartyIsNotLicenser,
	SoftCapNotReached,
	SoftCapReached,
	NotEnded,
	CrowdfundingEnded,
	Overflow,
	UnknownTerms,
	UnknownFundingModel,
	UnknownPrincipal,
	BadOrigin,
	InsufficientBalance,
	InsufficientReserved,
	BelowMinimumBalance,
	AssetAlreadyExists,
	AssetNotFound,
	NotAssetAdmin,
	MinimumBalanceMustBePositive,
	DaoAlreadyExists,
	DaoNotFound,
	ProjectAlreadyExists,
	TimestampDecreased,
	RecordTruncated,
	RecordHasTrailingData,
	RecordNotCanonical,
	RecordUnknownTag,
	RecordTooLarge,
	InvalidIdentifier,
	InvalidCount,
	MissingParameters,
	RateLimiting,
	NotAvailableInReadOnlyMode,
	InvalidIpAddress,
}

var (
	codeOf    = make(map[error]uint16, len(enumerated))
	byMessage = make(map[string]error, len(enumerated))
)

func init() {
	for i, e := range enumerated {
		if _, ok := codeOf[e]; ok {
			panic("duplicate enumerated error: " + e.Error())
		}
		codeOf[e] = uint16(i + 1)
		byMessage[e.Error()] = e
	}
}

// Code - stable numeric reason code of an enumerated error
//
// returns 0, false for any error not in the enumeration
func Code(err error) (uint16, bool) {
	c, ok := codeOf[err]
	return c, ok
}

// Lookup - recover the enumerated error from its message
//
// used by RPC clients where only the error text crosses the wire
func Lookup(message string) (error, bool) {
	e, ok := byMessage[message]
	return e, ok
}
