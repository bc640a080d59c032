// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/configuration"
	"github.com/bitmark-inc/noncesearch/payload"
	"github.com/bitmark-inc/noncesearch/progress"
	"github.com/bitmark-inc/noncesearch/proof"
	"github.com/bitmark-inc/noncesearch/publish"
)

// logger prefixes
const (
	coordinatorLoggerPrefix = "coordinator"
	payloadLoggerPrefix     = "payload"
	progressLoggerPrefix    = "progress"
	prooferLoggerPrefix     = "proof"
	publishLoggerPrefix     = "publish"
)

// everything needed to run searches at several difficulties
type search struct {
	log          *logger.L
	config       *configuration.Configuration
	workers      int
	proofer      *proof.Proofer
	sink         *progress.Async
	publishers   []*publish.Publisher
	results      *publish.Publisher
	previousSeed []byte
}

func newSearch(config *configuration.Configuration, log *logger.L) (*search, error) {
	s := &search{
		log:          log,
		config:       config,
		workers:      config.OptimalWorkerCount(runtime.NumCPU()),
		previousSeed: []byte(config.PreviousSeed),
	}

	hasher, err := blockdigest.New(config.Algorithm)
	if nil != err {
		return nil, err
	}

	// progress output, only if something will consume it
	backends := []progress.Backend{}
	if config.Progress.Log {
		b, err := progress.NewLogBackend(logger.New(progressLoggerPrefix))
		if nil != err {
			return nil, err
		}
		backends = append(backends, b)
	}
	if len(config.Progress.Publish.Broadcast) > 0 {
		p, err := publish.New(&config.Progress.Publish, logger.New(publishLoggerPrefix))
		if nil != err {
			return nil, err
		}
		s.publishers = append(s.publishers, p)
		backends = append(backends, p)
	}

	sink := progress.Discard
	if len(backends) > 0 {
		s.sink, err = progress.NewAsync(config.Progress.Limits, logger.New(progressLoggerPrefix), backends...)
		if nil != err {
			s.stop()
			return nil, err
		}
		sink = s.sink
	}

	if len(config.Results.Broadcast) > 0 {
		s.results, err = publish.New(&config.Results, logger.New(publishLoggerPrefix))
		if nil != err {
			s.stop()
			return nil, err
		}
		s.publishers = append(s.publishers, s.results)
	}

	coordinator, err := proof.NewCoordinator(proof.Config{
		Workers:     s.workers,
		Hasher:      hasher,
		Sink:        sink,
		Selection:   proof.Selection(config.Selection),
		GracePeriod: config.GracePeriodDuration(),
		HostLabel:   config.HostLabel,
		Log:         logger.New(coordinatorLoggerPrefix),
	})
	if nil != err {
		s.stop()
		return nil, err
	}

	var fetcher payload.Fetcher
	if "" != config.Payload.Text {
		fetcher = payload.Literal(config.Payload.Text)
	} else {
		fetcher, err = payload.NewHTTPFetcher(config.PayloadTimeout(), config.PayloadCacheExpiry(), config.Payload.MaxSize, logger.New(payloadLoggerPrefix))
		if nil != err {
			s.stop()
			return nil, err
		}
	}

	s.proofer, err = proof.NewProofer(fetcher, coordinator, logger.New(prooferLoggerPrefix))
	if nil != err {
		s.stop()
		return nil, err
	}

	log.Infof("workers: %d  algorithm: %s  selection: %s", s.workers, hasher.Name(), config.Selection)
	return s, nil
}

func (s *search) run(ctx context.Context, d int) (*proof.Result, error) {
	if err := s.config.CheckDifficulty(d); nil != err {
		return nil, err
	}
	return s.proofer.Run(ctx, proof.Request{
		PreviousSeed: s.previousSeed,
		Source:       s.config.Payload.URL,
		Difficulty:   d,
	})
}

func (s *search) publishResult(out *resultOutput) {
	if nil == s.results {
		return
	}
	if err := s.results.Send(publish.TopicResult, out); nil != err {
		s.log.Errorf("publish result error: %s", err)
	}
}

// flush progress before closing the sockets it writes to
func (s *search) stop() {
	if nil != s.sink {
		s.sink.Stop()
		s.log.Infof("progress written: %d  dropped: %d", s.sink.Written(), s.sink.Dropped())
		s.sink = nil
	}
	for _, p := range s.publishers {
		_ = p.Close()
	}
	s.publishers = nil
}
