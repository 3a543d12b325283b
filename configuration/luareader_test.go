// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/configuration"
	"github.com/deip/deipd/fault"
)

type listenConfig struct {
	Listen             []string `gluamapper:"listen"`
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
}

type sample struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Interval      int               `gluamapper:"block_interval"`
	ClientRPC     listenConfig      `gluamapper:"client_rpc"`
	Levels        map[string]string `gluamapper:"levels"`
}

const source = `
local M = {}
M.data_directory = node_dir
M.block_interval = 2 * 3
M.client_rpc = {
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    maximum_connections = 50,
}
M.levels = { main = "info", rpc = "warn" }
return M
`

func TestParseString(t *testing.T) {
	var c sample
	err := configuration.ParseConfigurationString(source, &c, map[string]string{"node_dir": "/var/lib/deipd"})
	require.Nil(t, err, "parse")

	assert.Equal(t, "/var/lib/deipd", c.DataDirectory, "variable")
	assert.Equal(t, 6, c.Interval, "computed value")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "list")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "nested")
	assert.Equal(t, "warn", c.Levels["rpc"], "map")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "deipd.conf")
	require.Nil(t, ioutil.WriteFile(name, []byte(`return { data_directory = arg[0] }`), 0600), "write")

	var c sample
	require.Nil(t, configuration.ParseConfigurationFile(name, &c, nil), "parse")
	assert.Equal(t, name, c.DataDirectory, "arg[0] is the file name")
}

func TestParseErrors(t *testing.T) {
	var c sample
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationString(source, c, nil), "not a pointer")
	assert.Equal(t, fault.MissingParameters, configuration.ParseConfigurationString(`local x = 1`, &c, nil), "no table returned")
	assert.NotNil(t, configuration.ParseConfigurationString(`return {`, &c, nil), "syntax error")
	assert.NotNil(t, configuration.ParseConfigurationFile("/nonexistent/deipd.conf", &c, nil), "missing file")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/tmp/x", configuration.EnsureAbsolute("/data", "/tmp/./x"), "absolute")
}
