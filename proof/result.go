// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"time"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/blockheader"
)

// Candidate - a successful nonce reported by a worker
type Candidate struct {
	Nonce  uint64
	Digest blockdigest.Digest
	Worker Identity
}

// Result - the single outcome of a successful run
type Result struct {
	Nonce          uint64             `json:"nonce"`
	Digest         blockdigest.Digest `json:"digest"`
	Elapsed        time.Duration      `json:"elapsed"`
	Winner         Identity           `json:"winner"`
	Difficulty     int                `json:"difficulty"`
	Algorithm      string             `json:"algorithm"`
	Header         blockheader.Header `json:"header"`
	Attempts       uint64             `json:"attempts"`
	HashRate       float64            `json:"hashRate"`
	FaultedWorkers int                `json:"faultedWorkers"`
	Selection      Selection          `json:"selection"`
}

// hash rate in digests per second
func hashRate(attempts uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(attempts) / elapsed.Seconds()
}
