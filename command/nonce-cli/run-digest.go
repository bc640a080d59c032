// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/difficulty"
)

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	nonce, err := nonceFromFlags(c)
	if nil != err {
		return err
	}

	hasher, err := blockdigest.New(c.String("algorithm"))
	if nil != err {
		return err
	}

	header, err := headerFromFlags(c, hasher)
	if nil != err {
		return err
	}

	candidate := header.Candidate(header.NewBuffer(), nonce)
	digest, err := hasher.Sum(candidate)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "candidate: %s\n", candidate)
	}

	out := struct {
		Algorithm    string `json:"algorithm"`
		Nonce        uint64 `json:"nonce"`
		Digest       string `json:"digest"`
		LeadingZeros int    `json:"leadingZeros"`
	}{
		Algorithm:    hasher.Name(),
		Nonce:        nonce,
		Digest:       digest.String(),
		LeadingZeros: difficulty.LeadingZeros(digest.String()),
	}
	return printJson(m.w, out)
}
