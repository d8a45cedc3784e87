// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	verbose := len(options["verbose"]) > 0

	configurationFile := ""
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: error: %s, %d were detected", program, fault.ErrRequiredConfigFile, len(options["config-file"]))
	}

	if 0 == len(arguments) && "" == configurationFile {
		usage(program)
		exitwithstatus.Message("%s: no operations", program)
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command-line operations follow those of the configuration
	for _, argument := range arguments {
		operation, err := parseOperation(argument)
		if nil != err {
			exitwithstatus.Message("%s: argument: %q  error: %s", program, argument, err)
		}
		theConfiguration.Operations = append(theConfiguration.Operations, operation)
	}

	if verbose {
		theConfiguration.Trace = true
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = LoglevelMap{
			logger.DefaultTag: "debug",
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	tree := avl.New[string, string]()
	if theConfiguration.Trace {
		tree.SetTracer(logger.New("avl"))
	}

	err = runOperations(os.Stdout, tree, theConfiguration.Operations, theConfiguration.PrintData)
	if nil != err {
		log.Criticalf("run error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [operation...]\n", program)
	fmt.Printf("\n")
	fmt.Printf("operations are applied in order, after any from the configuration file\n\n")
	fmt.Printf("  insert:KEY=VALUE                    - add or overwrite KEY\n")
	fmt.Printf("  remove:KEY                          - delete KEY if present\n")
	fmt.Printf("  find:KEY                            - show KEY, its value and balance\n")
	fmt.Printf("  at:KEY                              - show value of KEY or an error\n")
	fmt.Printf("  print                               - draw the tree\n")
	fmt.Printf("  list                                - all keys and values in order\n")
	fmt.Printf("  check                               - verify order, balance and parent links\n")
	fmt.Printf("  clear                               - remove all nodes\n")
	fmt.Printf("\n")
}
