// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the initial chain state
//
// assets, DAOs, projects and opening balances are read from the
// configuration file as text and applied once, in a single
// transaction, to an empty database
package genesis

import (
	"fmt"

	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/identifier"
	"github.com/deip/deipd/ledger"
	"github.com/deip/deipd/principal"
	"github.com/deip/deipd/project"
)

// AssetConfiguration - asset entry in the configuration file
type AssetConfiguration struct {
	Id         string `gluamapper:"id" json:"id"`
	Admin      string `gluamapper:"admin" json:"admin"`
	MinBalance string `gluamapper:"min_balance" json:"min_balance"`
}

// BalanceConfiguration - opening balance entry
type BalanceConfiguration struct {
	Asset   string `gluamapper:"asset" json:"asset"`
	Account string `gluamapper:"account" json:"account"`
	Amount  string `gluamapper:"amount" json:"amount"`
}

// ProjectConfiguration - project entry
type ProjectConfiguration struct {
	Id   string `gluamapper:"id" json:"id"`
	Team string `gluamapper:"team" json:"team"`
}

// DaoConfiguration - dao entry
type DaoConfiguration struct {
	Id      string `gluamapper:"id" json:"id"`
	Account string `gluamapper:"account" json:"account"`
}

// Configuration - genesis section of the configuration file
type Configuration struct {
	Timestamp uint64                 `gluamapper:"timestamp" json:"timestamp"`
	Assets    []AssetConfiguration   `gluamapper:"assets" json:"assets"`
	Balances  []BalanceConfiguration `gluamapper:"balances" json:"balances"`
	Projects  []ProjectConfiguration `gluamapper:"projects" json:"projects"`
	Daos      []DaoConfiguration     `gluamapper:"daos" json:"daos"`
}

// Asset - an asset to create
type Asset struct {
	Id         identifier.AssetId
	Admin      principal.Account
	MinBalance balance.Balance
}

// Balance - an amount to mint
type Balance struct {
	Asset   identifier.AssetId
	Account principal.Account
	Amount  balance.Balance
}

// Project - a project to register
type Project struct {
	Id   identifier.ProjectId
	Team principal.Account
}

// Dao - a dao to register
type Dao struct {
	Id      identifier.DaoId
	Account principal.Account
}

// State - parsed genesis
type State struct {
	Timestamp uint64
	Assets    []Asset
	Balances  []Balance
	Projects  []Project
	Daos      []Dao
}

func parseAccount(s string) (principal.Account, error) {
	a := principal.Account{}
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// Parse - convert the text form, reporting the first bad entry
func (c *Configuration) Parse() (*State, error) {
	var err error
	s := &State{
		Timestamp: c.Timestamp,
		Assets:    make([]Asset, len(c.Assets)),
		Balances:  make([]Balance, len(c.Balances)),
		Projects:  make([]Project, len(c.Projects)),
		Daos:      make([]Dao, len(c.Daos)),
	}

	for i, a := range c.Assets {
		if s.Assets[i].Id, err = identifier.FromString(a.Id); nil != err {
			return nil, fmt.Errorf("asset[%d] id: %q  error: %s", i, a.Id, err)
		}
		if s.Assets[i].Admin, err = parseAccount(a.Admin); nil != err {
			return nil, fmt.Errorf("asset[%d] admin: %q  error: %s", i, a.Admin, err)
		}
		if s.Assets[i].MinBalance, err = balance.FromString(a.MinBalance); nil != err {
			return nil, fmt.Errorf("asset[%d] min_balance: %q  error: %s", i, a.MinBalance, err)
		}
	}

	for i, b := range c.Balances {
		if s.Balances[i].Asset, err = identifier.FromString(b.Asset); nil != err {
			return nil, fmt.Errorf("balance[%d] asset: %q  error: %s", i, b.Asset, err)
		}
		if s.Balances[i].Account, err = parseAccount(b.Account); nil != err {
			return nil, fmt.Errorf("balance[%d] account: %q  error: %s", i, b.Account, err)
		}
		if s.Balances[i].Amount, err = balance.FromString(b.Amount); nil != err {
			return nil, fmt.Errorf("balance[%d] amount: %q  error: %s", i, b.Amount, err)
		}
	}

	for i, p := range c.Projects {
		if s.Projects[i].Id, err = identifier.FromString(p.Id); nil != err {
			return nil, fmt.Errorf("project[%d] id: %q  error: %s", i, p.Id, err)
		}
		if s.Projects[i].Team, err = parseAccount(p.Team); nil != err {
			return nil, fmt.Errorf("project[%d] team: %q  error: %s", i, p.Team, err)
		}
	}

	for i, d := range c.Daos {
		if s.Daos[i].Id, err = identifier.FromString(d.Id); nil != err {
			return nil, fmt.Errorf("dao[%d] id: %q  error: %s", i, d.Id, err)
		}
		if s.Daos[i].Account, err = parseAccount(d.Account); nil != err {
			return nil, fmt.Errorf("dao[%d] account: %q  error: %s", i, d.Account, err)
		}
	}

	return s, nil
}

// Apply - write the state through the collaborators
//
// must run inside a storage transaction
func (s *State) Apply(l *ledger.Ledger, projects *project.Projects, daos *principal.DaoRegistry) error {
	for _, a := range s.Assets {
		if err := l.CreateAsset(a.Id, a.Admin, a.MinBalance); nil != err {
			return err
		}
	}
	for _, d := range s.Daos {
		if err := daos.Register(d.Id, d.Account); nil != err {
			return err
		}
	}
	for _, p := range s.Projects {
		if err := projects.Create(p.Id, p.Team); nil != err {
			return err
		}
	}
	for _, b := range s.Balances {
		if err := l.Mint(b.Asset, b.Account, b.Amount); nil != err {
			return err
		}
	}
	return nil
}
