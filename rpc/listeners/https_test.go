// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/rpc/listeners"
)

func TestHTTPListener(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.HTTPConfiguration{
		Listen: []string{"127.0.0.1:0"},
		Allow: map[string][]string{
			"/open":    {"127.0.0.0/8", "::1/128"},
			"/private": {"10.0.0.0/8"},
		},
	}

	routes := map[string]http.Handler{}
	for _, path := range []string{"/open", "/private", "/public"} {
		p := path
		routes[p] = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, "path: %s", p)
		})
	}

	l, err := listeners.NewHTTP(&con, logger.New(fixtures.LogCategory), nil, routes)
	require.Nil(t, err, "wrong NewHTTP")
	require.Nil(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	base := "http://" + l.Addresses()[0].String()

	items := []struct {
		path   string
		status int
	}{
		{"/open", http.StatusOK},
		{"/public", http.StatusOK},
		{"/private", http.StatusForbidden},
	}
	for _, item := range items {
		resp, err := http.Get(base + item.path)
		require.Nil(t, err, item.path)
		body, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, item.status, resp.StatusCode, item.path)
		if http.StatusOK == item.status {
			assert.Equal(t, "path: "+item.path, string(body), item.path)
		}
	}
}

func TestHTTPListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTP(&listeners.HTTPConfiguration{}, logger.New(fixtures.LogCategory), nil, nil)
	assert.Nil(t, err, "no error")
	assert.Nil(t, l, "no listener")
}

func TestHTTPListenerBadAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.HTTPConfiguration{
		Listen: []string{"127.0.0.1:0"},
		Allow:  map[string][]string{"/x": {"not-a-cidr"}},
	}
	_, err := listeners.NewHTTP(&con, logger.New(fixtures.LogCategory), nil, nil)
	assert.NotNil(t, err, "bad cidr")
}
