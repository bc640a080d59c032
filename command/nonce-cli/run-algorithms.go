// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncesearch/blockdigest"
)

func runAlgorithms(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	out := struct {
		Default    string   `json:"default"`
		Algorithms []string `json:"algorithms"`
	}{
		Default:    blockdigest.Default,
		Algorithms: blockdigest.Algorithms(),
	}
	return printJson(m.w, out)
}
