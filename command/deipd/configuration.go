// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/configuration"
	"github.com/deip/deipd/genesis"
	"github.com/deip/deipd/rpc/listeners"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "deipd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "deipd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultBlockInterval = 6 // seconds
	defaultStatsInterval = 60
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the state database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LimitsType - engine bounds, zero selects the built in default
type LimitsType struct {
	MaxParties  int `gluamapper:"max_parties" json:"max_parties"`
	MaxShares   int `gluamapper:"max_shares" json:"max_shares"`
	HistorySize int `gluamapper:"history_size" json:"history_size"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	ReadOnly      bool         `gluamapper:"read_only" json:"read_only"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	BlockInterval int `gluamapper:"block_interval" json:"block_interval"`
	StatsInterval int `gluamapper:"stats_interval" json:"stats_interval"`

	ClientRPC  listeners.RPCConfiguration  `gluamapper:"client_rpc" json:"client_rpc"`
	HTTPStatus listeners.HTTPConfiguration `gluamapper:"http_status" json:"http_status"`
	Limits     LimitsType                  `gluamapper:"limits" json:"limits"`
	Genesis    genesis.Configuration       `gluamapper:"genesis" json:"genesis"`
	Logging    logger.Configuration        `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		BlockInterval: defaultBlockInterval,
		StatsInterval: defaultStatsInterval,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"data_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	return options, options.resolve(dataDirectory)
}

// resolve - validate values and expand every path
func (options *Configuration) resolve(configurationDirectory string) error {

	if options.BlockInterval <= 0 {
		return fmt.Errorf("block_interval: %d must be positive", options.BlockInterval)
	}
	if options.StatsInterval <= 0 {
		return fmt.Errorf("stats_interval: %d must be positive", options.StatsInterval)
	}
	if options.Limits.MaxParties < 0 || options.Limits.MaxShares < 0 || options.Limits.HistorySize < 0 {
		return fmt.Errorf("limits: %+v must not be negative", options.Limits)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = configurationDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	// a blank certificate pair means plain TCP
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HTTPStatus.Certificate,
		&options.HTTPStatus.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = configuration.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}

	// done
	return nil
}
