// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type StateError GenericError
type InvalidError GenericError
type LedgerError GenericError
type RecordError GenericError
type ProcessError GenericError

// identity / existence
var (
	AlreadyExists        = ExistsError("already exists")
	AssetAlreadyExists   = ExistsError("asset already exists")
	DaoAlreadyExists     = ExistsError("dao already exists")
	ProjectAlreadyExists = ExistsError("project already exists")

	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	KeyFileAlreadyExists         = ExistsError("key file already exists")

	NotFound        = NotFoundError("not found")
	AssetNotFound   = NotFoundError("asset not found")
	DaoNotFound     = NotFoundError("dao not found")
	ProjectNotFound = NotFoundError("project not found")
)

// role mismatch
var (
	PartyIsNotListed          = PermissionError("party is not listed")
	PartyIsNotLicenser        = PermissionError("party is not licenser")
	PartyIsNotLicensee        = PermissionError("party is not licensee")
	AlreadyAcceptedByParty    = PermissionError("already accepted by party")
	LicensePartyIsNotLicenser = PermissionError("first license party is not the project team")
	ProjectTeamNotListed      = PermissionError("project team is not listed in parties")
	BadOrigin                 = PermissionError("origin does not match principal")
	NotAssetAdmin             = PermissionError("origin is not the asset admin")
)

// state mismatch
var (
	AlreadyAccepted   = StateError("already accepted")
	Rejected          = StateError("rejected")
	ShouldBeInactive  = StateError("crowdfunding should be inactive")
	ShouldBeActive    = StateError("crowdfunding should be active")
	ShouldBeStarted   = StateError("crowdfunding should be started")
	SoftCapNotReached = StateError("soft cap not reached")
	SoftCapReached    = StateError("soft cap reached")
	NotEnded          = StateError("crowdfunding end time not reached")
	CrowdfundingEnded = StateError("crowdfunding end time passed")
)

// time, value and shape
var (
	StartTimeInFuture  = InvalidError("start time is in the future")
	StartTimeInPast    = InvalidError("start time must be later or equal current moment")
	EndTimeBeforeStart = InvalidError("end time must be later than start time")
	LicenseExpired     = InvalidError("license expired")
	TimestampDecreased = InvalidError("block timestamp decreased")

	FeeMustBePositive            = InvalidError("fee must be positive")
	CapOrdering                  = InvalidError("hard cap must be greater or equal soft cap")
	WrongAsset                   = InvalidError("wrong asset")
	AssetAmountMustBePositive    = InvalidError("asset amount must be positive")
	MinimumBalanceMustBePositive = InvalidError("minimum balance must be positive")

	NoParties                 = InvalidError("no parties")
	TwoPartiesRequired        = InvalidError("two parties required")
	TooManyParties            = InvalidError("too many parties")
	DuplicateParties          = InvalidError("parties must be distinct")
	TooMuchShares             = InvalidError("too much shares")
	CapDifferentAssets        = InvalidError("caps have different assets")
	SecurityTokenNotSpecified = InvalidError("security token not specified")
	DuplicateShares           = InvalidError("share assets must be distinct")
	UnknownTerms              = InvalidError("unknown agreement terms")
	UnknownFundingModel       = InvalidError("unknown funding model")
	UnknownPrincipal          = InvalidError("unknown principal kind")
	InvalidIdentifier         = InvalidError("invalid identifier")
	InvalidCount              = InvalidError("invalid count")
	MissingParameters         = InvalidError("missing parameters")
	InvalidIpAddress          = InvalidError("invalid IP address")
)

// ledger
var (
	NotEnoughBalance     = LedgerError("not enough balance")
	NotEnoughFunds       = LedgerError("not enough funds")
	FailedToChargeFee    = LedgerError("failed to charge fee")
	FailedToReserveAsset = LedgerError("failed to reserve asset")
	InsufficientBalance  = LedgerError("insufficient balance")
	InsufficientReserved = LedgerError("insufficient reserved balance")
	BelowMinimumBalance  = LedgerError("balance below minimum")
)

// record encoding
var (
	RecordTruncated       = RecordError("record truncated")
	RecordHasTrailingData = RecordError("record has trailing data")
	RecordNotCanonical    = RecordError("record is not canonical")
	RecordUnknownTag      = RecordError("record has unknown tag")
	RecordTooLarge        = RecordError("record too large")
)

// process
var (
	Overflow                   = ProcessError("arithmetic overflow")
	AlreadyInitialised         = ProcessError("already initialised")
	NotInitialised             = ProcessError("not initialised")
	DatabaseIsNewer            = ProcessError("database version is newer than program")
	TransactionInUse           = ProcessError("transaction already in use")
	TransactionNotInUse        = ProcessError("transaction not in use")
	NotAvailableInReadOnlyMode = ProcessError("not available in read only mode")
	RateLimiting               = ProcessError("rate limiting")
	InvalidStructPointer       = ProcessError("invalid struct pointer")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e StateError) Error() string      { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LedgerError) Error() string     { return string(e) }
func (e RecordError) Error() string     { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrState(e error) bool      { _, ok := e.(StateError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLedger(e error) bool     { _, ok := e.(LedgerError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
