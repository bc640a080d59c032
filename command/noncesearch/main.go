// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	_ "github.com/bitmark-inc/noncesearch/blockdigest/argon2d"
	"github.com/bitmark-inc/noncesearch/configuration"
	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--difficulty=N]... [options] [difficulty...]\n%s", program, usage)
	}

	if len(options["algorithms"]) > 0 {
		for _, name := range blockdigest.Algorithms() {
			fmt.Println(name)
		}
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	err = applyOptions(masterConfiguration, options, arguments)
	if nil != err {
		exitwithstatus.Message("%s: invalid option: %s", program, err)
	}
	if 0 == len(masterConfiguration.Difficulty) {
		exitwithstatus.Message("%s: at least one difficulty is required", program)
	}

	// start logging
	if err := util.EnsureDirectory(masterConfiguration.Logging.Directory); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// turn Signals into context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Infof("received signal: %v", sig)
		cancel()
	}()

	s, err := newSearch(masterConfiguration, log)
	if nil != err {
		log.Criticalf("setup error: %s", err)
		exitwithstatus.Message("%s: setup error: %s", program, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	failed := false
	for _, d := range masterConfiguration.Difficulty {
		if verbose {
			fmt.Fprintf(os.Stderr, "difficulty: %d  workers: %d  algorithm: %s\n", d, s.workers, masterConfiguration.Algorithm)
		}

		result, err := s.run(ctx, d)
		if nil != err {
			log.Errorf("difficulty: %d  error: %s", d, err)
			fmt.Fprintf(os.Stderr, "%s: difficulty: %d  error: %s\n", program, d, err)
			failed = true
			if nil != ctx.Err() || fault.IsErrInvalid(err) || fault.IsErrUnavailable(err) {
				break
			}
			continue
		}

		out := newResultOutput(result)
		if !quiet {
			printJson("", out)
		}
		s.publishResult(out)
	}

	s.stop()

	if failed {
		log.Flush()
		exitwithstatus.Exit(1)
	}
}
