// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package progress - observe candidates without slowing the search
//
// Emit must never block a worker: records that cannot be queued at
// once are counted and dropped.
package progress

// Record - one evaluated candidate
type Record struct {
	Nonce       uint64 `json:"nonce"`
	Digest      string `json:"digest"`
	Ordinal     int    `json:"ordinal"`
	WorkerCount int    `json:"workerCount"`
	Host        string `json:"host,omitempty"`
}

// Sink - receives records from the workers
type Sink interface {
	Emit(Record)
}

// Backend - final destination of queued records
type Backend interface {
	Write(Record) error
}

type discard struct{}

func (discard) Emit(Record) {}

// Discard - a sink that ignores every record
var Discard Sink = discard{}
