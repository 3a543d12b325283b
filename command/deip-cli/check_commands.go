// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/principal"
)

// common errors
const (
	ErrMissingOrigin = fault.InvalidError("origin account is required")
)

func checkId(name string, value string) (identifier.Id, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return identifier.Id{}, fmt.Errorf("%s is required", name)
	}
	id, err := identifier.FromString(value)
	if nil != err {
		return identifier.Id{}, fmt.Errorf("%s: %q  error: %s", name, value, err)
	}
	return id, nil
}

// blank is the start of the list
func checkOptionalId(name string, value string) (identifier.Id, error) {
	if "" == strings.TrimSpace(value) {
		return identifier.Id{}, nil
	}
	return checkId(name, value)
}

func checkAccount(name string, value string) (principal.Account, error) {
	account := principal.Account{}
	value = strings.TrimSpace(value)
	if "" == value {
		return account, fmt.Errorf("%s is required", name)
	}
	if err := account.UnmarshalText([]byte(value)); nil != err {
		return account, fmt.Errorf("%s: %q  error: %s", name, value, err)
	}
	return account, nil
}

func checkOrigin(m *metadata) (principal.Account, error) {
	if "" == strings.TrimSpace(m.origin) {
		return principal.Account{}, ErrMissingOrigin
	}
	return checkAccount("origin", m.origin)
}

func checkPrincipal(name string, value string) (principal.Principal, error) {
	p := principal.Principal{}
	value = strings.TrimSpace(value)
	if "" == value {
		return p, fmt.Errorf("%s is required", name)
	}
	if err := p.UnmarshalText([]byte(value)); nil != err {
		return p, fmt.Errorf("%s: %q  error: %s", name, value, err)
	}
	return p, nil
}

func checkAmount(name string, value string) (balance.Balance, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return balance.Zero, fmt.Errorf("%s is required", name)
	}
	b, err := balance.FromString(value)
	if nil != err {
		return balance.Zero, fmt.Errorf("%s: %q  error: %s", name, value, err)
	}
	return b, nil
}

func checkCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}
	return nil
}

// decode JSON parameters from a file or "-" for the given reader
func readParameters(fileName string, stdin io.Reader, parameters interface{}) error {
	in := stdin
	if "" != fileName && "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		in = f
	}

	decoder := json.NewDecoder(in)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(parameters); nil != err {
		return fmt.Errorf("parameters: %q  error: %s", fileName, err)
	}
	return nil
}
