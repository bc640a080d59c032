// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/blockheader"
	"github.com/bitmark-inc/noncesearch/util"
)

const fetchTimeout = 10 * time.Second

// header from either --header or --seed with one payload source
func headerFromFlags(c *cli.Context, hasher blockdigest.Hasher) (blockheader.Header, error) {

	text := strings.TrimSpace(c.String("header"))
	payload := c.String("payload")
	url := c.String("url")

	given := 0
	for _, s := range []string{text, payload, url} {
		if "" != s {
			given += 1
		}
	}
	if given > 1 {
		return blockheader.Header{}, ErrMultiplePayload
	}

	if "" != text {
		return blockheader.Parse(strings.ToLower(text))
	}

	data := []byte(payload)
	if "" != url {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		b, err := util.FetchBytes(ctx, &http.Client{Timeout: fetchTimeout}, url, 0)
		if nil != err {
			return blockheader.Header{}, err
		}
		data = b
	}

	return blockheader.Assemble(hasher, []byte(c.String("seed")), data)
}

func nonceFromFlags(c *cli.Context) (uint64, error) {
	s := strings.TrimSpace(c.String("nonce"))
	if "" == s {
		return 0, ErrMissingNonce
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, ErrInvalidNonce
	}
	return n, nil
}
