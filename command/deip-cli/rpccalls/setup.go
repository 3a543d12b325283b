// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/deip/deipd/fault"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a deipd
//
// the self signed node certificate is not verified
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	} else {
		conn, err = net.Dial("tcp", connect)
	}
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the deipd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call - one request, restoring enumerated errors from their text
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		c.printJson(method+" request", arguments)
	}

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		if e, ok := fault.Lookup(err.Error()); ok {
			return e
		}
		return err
	}

	if c.verbose {
		c.printJson(method+" reply", reply)
	}
	return nil
}

func (c *Client) printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
