// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

var (
	idHex      = strings.Repeat("0a", identifier.IdLength)
	accountHex = strings.Repeat("a1", principal.AccountLength)
)

func TestCheckId(t *testing.T) {
	id, err := checkId("id", " "+idHex+" ")
	require.Nil(t, err, "valid")
	assert.Equal(t, byte(0x0a), id[0], "decoded")

	_, err = checkId("id", "")
	assert.NotNil(t, err, "required")

	_, err = checkId("id", "0a0b")
	assert.NotNil(t, err, "short")

	id, err = checkOptionalId("start", "")
	assert.Nil(t, err, "optional")
	assert.Equal(t, identifier.Id{}, id, "blank start")
}

func TestCheckPrincipal(t *testing.T) {
	p, err := checkPrincipal("party", accountHex)
	require.Nil(t, err, "account")
	assert.Equal(t, principal.Native, p.Kind, "native")

	p, err = checkPrincipal("party", "dao:"+idHex)
	require.Nil(t, err, "dao")
	assert.Equal(t, principal.Dao, p.Kind, "dao")

	_, err = checkPrincipal("party", "dao:zz")
	assert.NotNil(t, err, "bad dao")
}

func TestCheckOrigin(t *testing.T) {
	_, err := checkOrigin(&metadata{})
	assert.Equal(t, ErrMissingOrigin, err, "missing")

	a, err := checkOrigin(&metadata{origin: accountHex})
	require.Nil(t, err, "valid")
	assert.Equal(t, byte(0xa1), a[0], "decoded")
}

func TestCheckAmount(t *testing.T) {
	b, err := checkAmount("amount", "1500")
	require.Nil(t, err, "valid")
	assert.Equal(t, balance.New(1500), b, "value")

	_, err = checkAmount("amount", "-1")
	assert.NotNil(t, err, "negative")

	assert.NotNil(t, checkCount(0), "count")
}

func TestReadParameters(t *testing.T) {
	source := `{
  "id": "` + idHex + `",
  "creator": "` + accountHex + `",
  "parties": ["` + accountHex + `", "dao:` + idHex + `"],
  "terms": {"kind": "GenericContract"}
}`
	parameters := agreement.CreateParameters{}
	err := readParameters("-", bytes.NewBufferString(source), &parameters)
	require.Nil(t, err, "decode")
	assert.Equal(t, 2, len(parameters.Parties), "parties")
	assert.Equal(t, agreement.GenericContract, parameters.Terms.Kind, "kind")

	err = readParameters("-", bytes.NewBufferString(`{"unknown": 1}`), &parameters)
	assert.NotNil(t, err, "unknown field")

	err = readParameters("/nonexistent/params.json", nil, &parameters)
	assert.NotNil(t, err, "missing file")
}

func TestCommandsAreUnique(t *testing.T) {
	app := newApp()
	seen := map[string]bool{}
	for _, c := range app.Commands {
		assert.False(t, seen[c.Name], "duplicate: %s", c.Name)
		seen[c.Name] = true
		assert.NotNil(t, c.Action, "action: %s", c.Name)
	}
}
