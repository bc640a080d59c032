// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/blockheader"
	"github.com/bitmark-inc/noncesearch/counter"
	"github.com/bitmark-inc/noncesearch/difficulty"
	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/progress"
)

// Worker - searches one residue class of the nonce space
type Worker struct {
	log         *logger.L
	identity    Identity
	header      blockheader.Header
	fingerprint blockdigest.Digest
	difficulty  int
	hasher      blockdigest.Hasher
	sink        progress.Sink
	attempts    counter.Counter
}

// NewWorker - create a worker
//
// fingerprint is the coordinator's view of the header; the worker
// refuses to search if its own header does not match it
func NewWorker(identity Identity, header blockheader.Header, fingerprint blockdigest.Digest, d int, hasher blockdigest.Hasher, sink progress.Sink, log *logger.L) (*Worker, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if identity.WorkerCount < 1 {
		return nil, fault.ErrInvalidWorkerCount
	}
	if identity.Ordinal < 0 || identity.Ordinal >= identity.WorkerCount {
		return nil, fault.ErrInvalidOrdinal
	}
	if err := difficulty.Validate(d); nil != err {
		return nil, err
	}
	if nil == hasher {
		return nil, fault.ErrInvalidAlgorithm
	}
	if header.IsEmpty() {
		return nil, fault.ErrEmptyHeader
	}
	if nil == sink {
		sink = progress.Discard
	}

	return &Worker{
		log:         log,
		identity:    identity,
		header:      header,
		fingerprint: fingerprint,
		difficulty:  d,
		hasher:      hasher,
		sink:        sink,
	}, nil
}

// Search - evaluate ordinal, ordinal+N, … until success or stop
//
// returns:
//
//	(candidate, nil)          success, the bound has been offered the nonce
//	(nil, nil)                cancelled, or a lower success is already known
//	(nil, ErrSearchExhausted) next nonce would overflow
//	(nil, error)              header mismatch or digest failure
func (w *Worker) Search(signal *Signal) (*Candidate, error) {
	log := w.log

	if w.header.Fingerprint() != w.fingerprint {
		log.Errorf("header fingerprint: %s  expected: %s", w.header.Fingerprint(), w.fingerprint)
		return nil, fault.ErrHeaderMismatch
	}

	log.Debugf("start: %s  difficulty: %d", w.identity, w.difficulty)

	buffer := w.header.NewBuffer()
	n := w.identity.First()

	for {
		if signal.Stopped(n) {
			log.Debugf("stopped at nonce: %d  attempts: %d", n, w.attempts.Uint64())
			return nil, nil
		}

		digest, err := w.hasher.Sum(w.header.Candidate(buffer[:0], n))
		if nil != err {
			log.Errorf("nonce: %d  digest error: %s", n, err)
			return nil, fault.ErrHasherFailed
		}
		w.attempts.Increment()

		hex := digest.String()
		w.sink.Emit(progress.Record{
			Nonce:       n,
			Digest:      hex,
			Ordinal:     w.identity.Ordinal,
			WorkerCount: w.identity.WorkerCount,
			Host:        w.identity.HostLabel,
		})

		if difficulty.Satisfies(hex, w.difficulty) {
			lowered := signal.Offer(n)
			log.Infof("found nonce: %d  digest: %s  lowered bound: %t", n, hex, lowered)
			return &Candidate{
				Nonce:  n,
				Digest: digest,
				Worker: w.identity,
			}, nil
		}

		next, ok := w.identity.Next(n)
		if !ok {
			log.Warnf("nonce space exhausted after: %d", n)
			return nil, fault.ErrSearchExhausted
		}
		n = next
	}
}

// Attempts - digests computed so far
func (w *Worker) Attempts() uint64 {
	return w.attempts.Uint64()
}

// Identity - the worker's position
func (w *Worker) Identity() Identity {
	return w.identity
}
