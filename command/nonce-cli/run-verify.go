// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/proof"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	nonce, err := nonceFromFlags(c)
	if nil != err {
		return err
	}

	digest := strings.TrimSpace(c.String("digest"))
	if "" == digest {
		return ErrMissingDigest
	}

	hasher, err := blockdigest.New(c.String("algorithm"))
	if nil != err {
		return err
	}

	header, err := headerFromFlags(c, hasher)
	if nil != err {
		return err
	}

	d := c.Int("difficulty")
	if m.verbose {
		fmt.Fprintf(m.e, "verify nonce: %d  difficulty: %d  algorithm: %s\n", nonce, d, hasher.Name())
	}

	err = proof.Verify(hasher, header, nonce, digest, d)
	if nil != err {
		return err
	}

	out := struct {
		Nonce      uint64 `json:"nonce"`
		Digest     string `json:"digest"`
		Difficulty int    `json:"difficulty"`
		Valid      bool   `json:"valid"`
	}{
		Nonce:      nonce,
		Digest:     strings.ToLower(digest),
		Difficulty: d,
		Valid:      true,
	}
	return printJson(m.w, out)
}
