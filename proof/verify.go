// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"strings"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/blockheader"
	"github.com/bitmark-inc/noncesearch/difficulty"
	"github.com/bitmark-inc/noncesearch/fault"
)

// Verify - recompute the digest for nonce and check it against the
// claimed digest and the difficulty
func Verify(hasher blockdigest.Hasher, header blockheader.Header, nonce uint64, digestHex string, d int) error {
	if header.IsEmpty() {
		return fault.ErrEmptyHeader
	}
	if err := difficulty.Validate(d); nil != err {
		return err
	}

	digest, err := hasher.Sum(header.Candidate(header.NewBuffer(), nonce))
	if nil != err {
		return fault.ErrHasherFailed
	}

	computed := digest.String()
	if computed != strings.ToLower(digestHex) {
		return fault.ErrDigestMismatch
	}
	if !difficulty.Satisfies(computed, d) {
		return fault.ErrDifficultyNotMet
	}
	return nil
}

// VerifyResult - check a result produced by a coordinator
func VerifyResult(hasher blockdigest.Hasher, result *Result) error {
	return Verify(hasher, result.Header, result.Nonce, result.Digest.String(), result.Difficulty)
}
