// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"

	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/noncesearch/configuration"
	"github.com/bitmark-inc/noncesearch/difficulty"
	"github.com/bitmark-inc/noncesearch/fault"
)

const randomSeedSize = 16

var flags = []getoptions.Option{
	{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
	{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
	{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
	{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	{Long: "algorithms", HasArg: getoptions.NO_ARGUMENT, Short: 'A'},
	{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	{Long: "difficulty", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
	{Long: "algorithm", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
	{Long: "selection", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	{Long: "previous-seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
	{Long: "random-seed", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
	{Long: "payload-url", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'u'},
	{Long: "payload-text", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
	{Long: "host", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'H'},
	{Long: "grace-period", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'g'},
	{Long: "progress", HasArg: getoptions.NO_ARGUMENT, Short: 'P'},
}

const usage = `  -c, --config-file=FILE    optional Lua configuration file
  -d, --difficulty=N        leading zero hex digits, repeatable
  -w, --workers=N           parallel workers [0 = from max_cpu_usage]
  -a, --algorithm=NAME      digest algorithm, see --algorithms
  -s, --selection=POLICY    lowest|first
  -p, --previous-seed=TEXT  seed for the previous block digest
  -r, --random-seed         random previous block seed
  -u, --payload-url=URL     fetch transactions from URL
  -t, --payload-text=TEXT   use TEXT as the transactions
  -H, --host=LABEL          host label for worker identities
  -g, --grace-period=SEC    worker shutdown allowance
  -P, --progress            log every candidate tried`

// applyOptions - command line values override the configuration
//
// plain arguments are further difficulties
func applyOptions(c *configuration.Configuration, options map[string][]string, arguments []string) error {

	difficulties := append([]string{}, options["difficulty"]...)
	difficulties = append(difficulties, arguments...)
	if len(difficulties) > 0 {
		c.Difficulty = make([]int, 0, len(difficulties))
		for _, s := range difficulties {
			d, err := difficulty.Parse(s)
			if nil != err {
				return err
			}
			c.Difficulty = append(c.Difficulty, d)
		}
	}

	if v, ok := last(options, "workers"); ok {
		n, err := strconv.Atoi(v)
		if nil != err {
			return fault.ErrInvalidWorkerCount
		}
		c.Workers = n
	}
	if v, ok := last(options, "algorithm"); ok {
		c.Algorithm = v
	}
	if v, ok := last(options, "selection"); ok {
		c.Selection = v
	}
	if v, ok := last(options, "previous-seed"); ok {
		c.PreviousSeed = v
	}
	if len(options["random-seed"]) > 0 {
		c.RandomSeed = true
	}
	if v, ok := last(options, "payload-url"); ok {
		c.Payload.URL = v
		c.Payload.Text = ""
	}
	if v, ok := last(options, "payload-text"); ok {
		c.Payload.Text = v
	}
	if v, ok := last(options, "host"); ok {
		c.HostLabel = v
	}
	if v, ok := last(options, "grace-period"); ok {
		n, err := strconv.Atoi(v)
		if nil != err || n <= 0 {
			return fault.ErrInvalidGracePeriod
		}
		c.GracePeriod = n
	}
	if len(options["progress"]) > 0 {
		c.Progress.Log = true
	}

	if c.RandomSeed {
		seed := make([]byte, randomSeedSize)
		if _, err := rand.Read(seed); nil != err {
			return err
		}
		c.PreviousSeed = hex.EncodeToString(seed)
	}

	return c.Validate()
}

// last occurrence of an option wins
func last(options map[string][]string, name string) (string, bool) {
	values := options[name]
	if 0 == len(values) {
		return "", false
	}
	return values[len(values)-1], true
}
