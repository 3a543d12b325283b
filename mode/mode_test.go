// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/mode"
)

func TestMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.Equal(t, fault.NotInitialised, mode.Finalise(), "finalise before start")

	assert.Nil(t, mode.Initialise(), "initialise")
	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(), "second initialise")

	assert.True(t, mode.Is(mode.Stopped), "starts stopped")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal")
	assert.True(t, mode.IsNot(mode.ReadOnly), "not read only")
	assert.Equal(t, "Normal", mode.String(), "name")

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid set ignored")

	assert.Nil(t, mode.Finalise(), "finalise")
	assert.True(t, mode.Is(mode.Stopped), "stopped after finalise")
	assert.Equal(t, "*Unknown*", mode.Mode(99).String(), "unknown name")
}
