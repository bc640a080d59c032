// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncesearch/blockdigest"
)

func runHeader(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hasher, err := blockdigest.New(c.String("algorithm"))
	if nil != err {
		return err
	}

	header, err := headerFromFlags(c, hasher)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "algorithm: %s\n", hasher.Name())
	}

	out := struct {
		Algorithm     string `json:"algorithm"`
		PreviousBlock string `json:"previousBlock"`
		MerkleRoot    string `json:"merkleRoot"`
		Header        string `json:"header"`
		Fingerprint   string `json:"fingerprint"`
	}{
		Algorithm:     hasher.Name(),
		PreviousBlock: header.PreviousBlock(),
		MerkleRoot:    header.MerkleRoot(),
		Header:        header.String(),
		Fingerprint:   header.Fingerprint().String(),
	}
	return printJson(m.w, out)
}
