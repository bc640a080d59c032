// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/blockheader"
	"github.com/bitmark-inc/noncesearch/fixtures"
	"github.com/bitmark-inc/noncesearch/proof"
)

func newHasher(t *testing.T, name string) blockdigest.Hasher {
	h, err := blockdigest.New(name)
	if nil != err {
		t.Fatalf("new hasher: %q  error: %s", name, err)
	}
	return h
}

func exampleHeader(t *testing.T, hasher blockdigest.Hasher) blockheader.Header {
	header, err := blockheader.Assemble(hasher, []byte(fixtures.PreviousSeed), []byte(fixtures.Payload))
	if nil != err {
		t.Fatalf("assemble error: %s", err)
	}
	return header
}

func newCoordinator(t *testing.T, config proof.Config) *proof.Coordinator {
	if nil == config.Log {
		config.Log = logger.New("coordinator")
	}
	c, err := proof.NewCoordinator(config)
	if nil != err {
		t.Fatalf("new coordinator error: %s", err)
	}
	return c
}

func candidateNonce(record []byte) uint64 {
	n, err := strconv.ParseUint(string(record[blockheader.Length:]), 10, 64)
	if nil != err {
		panic(err)
	}
	return n
}

// panics for every nonce in one residue class
type panicHasher struct {
	blockdigest.Hasher
	ordinal     uint64
	workerCount uint64
}

func (h *panicHasher) Sum(record []byte) (blockdigest.Digest, error) {
	if candidateNonce(record)%h.workerCount == h.ordinal {
		panic("induced worker failure")
	}
	return h.Hasher.Sum(record)
}

// sleeps before every nonce in one residue class
type slowHasher struct {
	blockdigest.Hasher
	ordinal     uint64
	workerCount uint64
	delay       time.Duration
}

func (h *slowHasher) Sum(record []byte) (blockdigest.Digest, error) {
	if candidateNonce(record)%h.workerCount == h.ordinal {
		time.Sleep(h.delay)
	}
	return h.Hasher.Sum(record)
}

// counts every digest computed
type countingHasher struct {
	blockdigest.Hasher
	calls uint64
}

func (h *countingHasher) Sum(record []byte) (blockdigest.Digest, error) {
	atomic.AddUint64(&h.calls, 1)
	return h.Hasher.Sum(record)
}

func (h *countingHasher) count() uint64 {
	return atomic.LoadUint64(&h.calls)
}
