// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// nonce-cli - inspect and check search results
//
// header assembles the header a search would use, digest shows the
// candidate digest for one nonce and verify checks a reported result.
package main
