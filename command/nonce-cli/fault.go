// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/noncesearch/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidNonce    = fault.InvalidError("nonce is not a decimal number")
	ErrMissingDigest   = fault.InvalidError("digest is required")
	ErrMissingNonce    = fault.InvalidError("nonce is required")
	ErrMultiplePayload = fault.InvalidError("only one of payload, url or header is allowed")
)
