// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progress

import (
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/noncesearch/background"
	"github.com/bitmark-inc/noncesearch/counter"
	"github.com/bitmark-inc/noncesearch/fault"
)

// defaults
const (
	DefaultRate   = 10.0
	DefaultBurst  = 10
	DefaultBuffer = 100
)

// Configuration - limits for an Async sink
type Configuration struct {
	Rate   float64 `gluamapper:"rate" json:"rate"`
	Burst  int     `gluamapper:"burst" json:"burst"`
	Buffer int     `gluamapper:"buffer" json:"buffer"`
}

// Async - rate limited queue drained by a background process
//
// once the limiter refuses a record, Emit skips records without
// touching the limiter until the next token is due
type Async struct {
	closedUntil int64 // unix nanoseconds, atomic access

	log      *logger.L
	limiter  *rate.Limiter
	interval int64 // nanoseconds per token, zero when unlimited
	queue    chan Record
	backends []Backend
	dropped  counter.Counter
	written  counter.Counter
	failed   counter.Counter
	bg       *background.T
}

// NewAsync - create and start the sink
//
// a rate of zero or less disables rate limiting
func NewAsync(configuration Configuration, log *logger.L, backends ...Backend) (*Async, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	limit := rate.Limit(configuration.Rate)
	if configuration.Rate <= 0 {
		limit = rate.Inf
	}
	burst := configuration.Burst
	if burst <= 0 {
		burst = DefaultBurst
	}
	buffer := configuration.Buffer
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	interval := int64(0)
	if rate.Inf != limit {
		interval = int64(float64(time.Second) / configuration.Rate)
		if interval < 1 {
			interval = 1
		}
	}

	a := &Async{
		log:      log,
		limiter:  rate.NewLimiter(limit, burst),
		interval: interval,
		queue:    make(chan Record, buffer),
		backends: backends,
	}

	log.Debugf("rate: %v  burst: %d  buffer: %d  backends: %d", limit, burst, buffer, len(backends))
	a.bg = background.Start(background.Processes{a}, nil)
	return a, nil
}

// Emit - queue a record if the rate and buffer allow it
func (a *Async) Emit(record Record) {
	if 0 != a.interval {
		now := time.Now().UnixNano()
		if now < atomic.LoadInt64(&a.closedUntil) {
			return
		}
		if !a.limiter.AllowN(time.Unix(0, now), 1) {
			atomic.StoreInt64(&a.closedUntil, now+a.interval)
			a.dropped.Increment()
			return
		}
	}
	select {
	case a.queue <- record:
	default:
		a.dropped.Increment()
	}
}

// Run - drain the queue until shutdown, then flush what is left
func (a *Async) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log
	log.Debug("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case record := <-a.queue:
			a.write(record)
		}
	}

flush:
	for {
		select {
		case record := <-a.queue:
			a.write(record)
		default:
			break flush
		}
	}
	log.Debugf("written: %d  dropped: %d  failed: %d", a.written.Uint64(), a.dropped.Uint64(), a.failed.Uint64())
	log.Debug("stopped")
}

func (a *Async) write(record Record) {
	for _, b := range a.backends {
		if err := b.Write(record); nil != err {
			a.failed.Increment()
			a.log.Warnf("write nonce: %d  error: %s", record.Nonce, err)
		}
	}
	a.written.Increment()
}

// Stop - flush queued records and stop the drain process
func (a *Async) Stop() {
	a.bg.Stop()
}

// Dropped - records refused by the limiter or a full queue
//
// records skipped while the limiter is closed are not counted
func (a *Async) Dropped() uint64 {
	return a.dropped.Uint64()
}

// Written - number of records passed to the backends
func (a *Async) Written() uint64 {
	return a.written.Uint64()
}
