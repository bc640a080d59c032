// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/noncesearch/proof"
)

type resultOutput struct {
	Difficulty     int            `json:"difficulty"`
	Nonce          uint64         `json:"nonce"`
	Digest         string         `json:"digest"`
	PreviousBlock  string         `json:"previousBlock"`
	MerkleRoot     string         `json:"merkleRoot"`
	Algorithm      string         `json:"algorithm"`
	Selection      string         `json:"selection"`
	Winner         proof.Identity `json:"winner"`
	Elapsed        string         `json:"elapsed"`
	Seconds        float64        `json:"seconds"`
	Attempts       uint64         `json:"attempts"`
	HashRate       float64        `json:"hashRate"`
	FaultedWorkers int            `json:"faultedWorkers,omitempty"`
}

func newResultOutput(r *proof.Result) *resultOutput {
	return &resultOutput{
		Difficulty:     r.Difficulty,
		Nonce:          r.Nonce,
		Digest:         r.Digest.String(),
		PreviousBlock:  r.Header.PreviousBlock(),
		MerkleRoot:     r.Header.MerkleRoot(),
		Algorithm:      r.Algorithm,
		Selection:      r.Selection.String(),
		Winner:         r.Winner,
		Elapsed:        r.Elapsed.String(),
		Seconds:        r.Elapsed.Seconds(),
		Attempts:       r.Attempts,
		HashRate:       r.HashRate,
		FaultedWorkers: r.FaultedWorkers,
	}
}
