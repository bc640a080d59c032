// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/blockheader"
	"github.com/bitmark-inc/noncesearch/difficulty"
	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/payload"
)

// Request - inputs for one complete run
type Request struct {
	PreviousSeed []byte
	Source       string
	Difficulty   int
}

// Proofer - fetch, assemble, then search
type Proofer struct {
	log         *logger.L
	fetcher     payload.Fetcher
	coordinator *Coordinator
}

// NewProofer - create a pipeline around a coordinator
func NewProofer(fetcher payload.Fetcher, coordinator *Coordinator, log *logger.L) (*Proofer, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == fetcher {
		return nil, fault.ErrMissingPayload
	}
	if nil == coordinator {
		return nil, fault.ErrNotInitialised
	}
	return &Proofer{
		log:         log,
		fetcher:     fetcher,
		coordinator: coordinator,
	}, nil
}

// Run - one run; the header is complete before any worker starts
func (p *Proofer) Run(ctx context.Context, request Request) (*Result, error) {
	log := p.log
	tracker := newStateTracker(log)

	if err := difficulty.Validate(request.Difficulty); nil != err {
		log.Errorf("difficulty: %d  error: %s", request.Difficulty, err)
		return nil, tracker.fail(err)
	}

	if err := tracker.set(Assembling); nil != err {
		return nil, tracker.fail(err)
	}

	data, err := p.fetcher.Fetch(ctx, request.Source)
	if nil != err {
		log.Errorf("payload: %q  error: %s", request.Source, err)
		return nil, tracker.fail(err)
	}

	header, err := blockheader.Assemble(p.coordinator.Hasher(), request.PreviousSeed, data)
	if nil != err {
		log.Errorf("assemble header error: %s", err)
		return nil, tracker.fail(fault.ErrHasherFailed)
	}
	log.Infof("previous block: %s  merkle root: %s", header.PreviousBlock(), header.MerkleRoot())

	return p.coordinator.run(ctx, tracker, header, header.Fingerprint(), request.Difficulty)
}
