// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - leading zero hex digit difficulty
//
// A digest satisfies difficulty d when its first d hex characters are
// all '0'.  Zero is always satisfied; Maximum needs an all zero
// digest and is accepted only so that an operator can ask for a
// search that runs until cancelled.
package difficulty

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/fault"
)

// range of valid difficulties
const (
	Minimum = 0
	Maximum = blockdigest.HexLength
)

// Satisfies - true iff the first difficulty characters of digestHex are all '0'
//
// a negative difficulty or one longer than the digest text never succeeds
func Satisfies(digestHex string, difficulty int) bool {
	if difficulty < Minimum || difficulty > len(digestHex) {
		return false
	}
	for i := 0; i < difficulty; i += 1 {
		if '0' != digestHex[i] {
			return false
		}
	}
	return true
}

// LeadingZeros - count of leading '0' characters
func LeadingZeros(digestHex string) int {
	return len(digestHex) - len(strings.TrimLeft(digestHex, "0"))
}

// Validate - reject difficulties outside [Minimum, Maximum]
func Validate(difficulty int) error {
	if difficulty < Minimum || difficulty > Maximum {
		return fault.ErrInvalidDifficulty
	}
	return nil
}

// Parse - decimal text to a validated difficulty
func Parse(text string) (int, error) {
	difficulty, err := strconv.Atoi(strings.TrimSpace(text))
	if nil != err {
		return 0, fault.ErrInvalidDifficulty
	}
	if err := Validate(difficulty); nil != err {
		return 0, err
	}
	return difficulty, nil
}

// ExpectedAttempts - mean number of candidates needed, 16^difficulty
func ExpectedAttempts(difficulty int) float64 {
	if difficulty <= 0 {
		return 1
	}
	return math.Pow(16, float64(difficulty))
}
