// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// noncesearch - find a nonce whose digest meets a difficulty
//
// The header is digest(previous seed) || digest(payload) and each
// candidate is digest(header || decimal nonce).  The payload is
// fetched once and every difficulty given is searched in turn, each
// result printed as JSON.
//
//	noncesearch --difficulty=3 --workers=4
//	noncesearch -c noncesearch.conf 2 3 4
//
// Options override the optional Lua configuration file.
package main
