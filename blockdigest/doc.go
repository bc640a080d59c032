// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - 256 bit digests used for headers and candidates
//
// The digest algorithm is selected by name.  sha256 is the default
// and matches the reference hashcash simulation; sha3-256 and
// blake2b-256 are built in and further algorithms (e.g. argon2d)
// register themselves from their own packages.
//
// Every hasher is safe for concurrent use by multiple workers.
package blockdigest
