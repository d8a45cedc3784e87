// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avl-tool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// fresh map each time as the parsed configuration adds to it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Operation - one step applied to the tree
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

type Configuration struct {
	Trace      bool                 `gluamapper:"trace" json:"trace"`
	PrintData  bool                 `gluamapper:"print_data" json:"print_data"`
	Operations []Operation          `gluamapper:"operations" json:"operations"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults used with or without a configuration file
func newConfiguration() *Configuration {
	return &Configuration{
		Trace:      false,
		PrintData:  true,
		Operations: []Operation{},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels(),
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with the log directory
// relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := newConfiguration()
	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(fileName) {
			return nil, fault.ErrNotFoundConfigFile
		}
		baseDirectory, _ = filepath.Split(fileName)

		variables := map[string]string{
			"config_directory": baseDirectory,
		}
		if err := configuration.ParseConfigurationFile(fileName, options, variables); nil != err {
			return nil, err
		}
	}

	logDirectory, err := util.EnsureDirectory(baseDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}
	options.Logging.Directory = logDirectory

	return options, nil
}
