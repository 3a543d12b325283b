// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deip/deipd/fault"
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		notFound   bool
		permission bool
		state      bool
		invalid    bool
		ledger     bool
		record     bool
		process    bool
	}{
		{fault.AlreadyExists, true, false, false, false, false, false, false, false},
		{fault.NotFound, false, true, false, false, false, false, false, false},
		{fault.PartyIsNotLicensee, false, false, true, false, false, false, false, false},
		{fault.Rejected, false, false, false, true, false, false, false, false},
		{fault.CapOrdering, false, false, false, false, true, false, false, false},
		{fault.NotEnoughFunds, false, false, false, false, false, true, false, false},
		{fault.RecordTruncated, false, false, false, false, false, false, true, false},
		{fault.Overflow, false, false, false, false, false, false, false, true},
		{errors.New("plain"), false, false, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLedger(err) != e.ledger {
			t.Errorf("%d: expected 'ledger' == %v for err = %v", i, e.ledger, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestCodesAreStable(t *testing.T) {
	c, ok := fault.Code(fault.AlreadyExists)
	assert.True(t, ok)
	assert.Equal(t, uint16(1), c, "first code")

	c, ok = fault.Code(fault.CapDifferentAssets)
	assert.True(t, ok)
	assert.Equal(t, uint16(25), c, "codes from the original table keep their position")

	_, ok = fault.Code(errors.New("not enumerated"))
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	err, ok := fault.Lookup(fault.PartyIsNotLicenser.Error())
	assert.True(t, ok)
	assert.Equal(t, fault.PartyIsNotLicenser, err)

	_, ok = fault.Lookup("something else")
	assert.False(t, ok)
}
