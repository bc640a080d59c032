// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/background"
	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/blockheader"
	"github.com/bitmark-inc/noncesearch/counter"
	"github.com/bitmark-inc/noncesearch/difficulty"
	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/progress"
)

// DefaultGracePeriod - time allowed for workers to stop
const DefaultGracePeriod = 5 * time.Second

// Config - coordinator settings
type Config struct {
	Workers     int
	Hasher      blockdigest.Hasher
	Sink        progress.Sink
	Selection   Selection
	GracePeriod time.Duration
	HostLabel   string
	Log         *logger.L
}

// Coordinator - runs searches and owns their results
type Coordinator struct {
	sync.Mutex

	log         *logger.L
	workers     int
	hasher      blockdigest.Hasher
	sink        progress.Sink
	selection   Selection
	gracePeriod time.Duration
	hostLabel   string
	workerLogs  []*logger.L

	// most recent run
	state *stateTracker
}

// report - what a worker sends back, exactly once
type report struct {
	worker    *Worker
	candidate *Candidate
	err       error
}

// NewCoordinator - validate the configuration
func NewCoordinator(config Config) (*Coordinator, error) {
	if nil == config.Log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if config.Workers < 1 {
		return nil, fault.ErrInvalidWorkerCount
	}
	if nil == config.Hasher {
		return nil, fault.ErrInvalidAlgorithm
	}
	selection, err := ParseSelection(string(config.Selection))
	if nil != err {
		return nil, err
	}
	grace := config.GracePeriod
	if grace < 0 {
		return nil, fault.ErrInvalidGracePeriod
	}
	if 0 == grace {
		grace = DefaultGracePeriod
	}
	sink := config.Sink
	if nil == sink {
		sink = progress.Discard
	}

	workerLogs := make([]*logger.L, config.Workers)
	for i := range workerLogs {
		workerLogs[i] = logger.New(fmt.Sprintf("worker-%d", i))
	}

	config.Log.Infof("workers: %d  algorithm: %s  selection: %s  grace: %s", config.Workers, config.Hasher.Name(), selection, grace)

	return &Coordinator{
		log:         config.Log,
		workers:     config.Workers,
		hasher:      config.Hasher,
		sink:        sink,
		selection:   selection,
		gracePeriod: grace,
		hostLabel:   config.HostLabel,
		workerLogs:  workerLogs,
		state:       newStateTracker(config.Log),
	}, nil
}

// Run - search for a nonce meeting the difficulty
func (c *Coordinator) Run(ctx context.Context, header blockheader.Header, d int) (*Result, error) {
	tracker := newStateTracker(c.log)
	return c.run(ctx, tracker, header, header.Fingerprint(), d)
}

// State - state of the most recent run
func (c *Coordinator) State() State {
	c.Lock()
	defer c.Unlock()
	return c.state.get()
}

// Hasher - the digest used for every candidate
func (c *Coordinator) Hasher() blockdigest.Hasher {
	return c.hasher
}

func (c *Coordinator) run(ctx context.Context, tracker *stateTracker, header blockheader.Header, fingerprint blockdigest.Digest, d int) (*Result, error) {
	log := c.log

	c.Lock()
	c.state = tracker
	c.Unlock()

	if err := difficulty.Validate(d); nil != err {
		return nil, tracker.fail(err)
	}
	if header.IsEmpty() {
		return nil, tracker.fail(fault.ErrEmptyHeader)
	}

	identities, err := NewIdentities(c.workers, c.hostLabel)
	if nil != err {
		return nil, tracker.fail(err)
	}

	workers := make([]*Worker, len(identities))
	for i, identity := range identities {
		workers[i], err = NewWorker(identity, header, fingerprint, d, c.hasher, c.sink, c.workerLogs[i])
		if nil != err {
			return nil, tracker.fail(err)
		}
	}

	if err := tracker.set(Searching); nil != err {
		return nil, tracker.fail(err)
	}
	log.Infof("search header: %s  difficulty: %d  workers: %d", header, d, len(workers))

	start := time.Now()

	var candidate *Candidate
	faulted := 0
	if 1 == len(workers) {
		candidate, faulted, err = c.runInline(ctx, workers[0])
	} else {
		candidate, faulted, err = c.runParallel(ctx, tracker, workers, d)
	}
	elapsed := time.Since(start)

	attempts := uint64(0)
	for _, w := range workers {
		attempts += w.Attempts()
	}

	if nil != err {
		log.Errorf("search failed after: %s  attempts: %d  error: %s", elapsed, attempts, err)
		return nil, tracker.fail(err)
	}

	if tracker.get() < Found {
		_ = tracker.set(Found)
	}
	if tracker.get() < Terminating {
		_ = tracker.set(Terminating)
	}

	result := &Result{
		Nonce:          candidate.Nonce,
		Digest:         candidate.Digest,
		Elapsed:        elapsed,
		Winner:         candidate.Worker,
		Difficulty:     d,
		Algorithm:      c.hasher.Name(),
		Header:         header,
		Attempts:       attempts,
		HashRate:       hashRate(attempts, elapsed),
		FaultedWorkers: faulted,
		Selection:      c.selection,
	}

	_ = tracker.set(Done)
	log.Infof("found nonce: %d  digest: %s  winner: %s  elapsed: %s  attempts: %d", result.Nonce, result.Digest, result.Winner, elapsed, attempts)
	return result, nil
}

// sequential case, the context is the only cancellation
func (c *Coordinator) runInline(ctx context.Context, w *Worker) (*Candidate, int, error) {
	r := searchRecover(w, NewSignal(ctx.Done(), nil))

	switch {
	case nil != r.candidate:
		return r.candidate, 0, nil
	case fault.ErrHeaderMismatch == r.err:
		return nil, 0, r.err
	case nil != ctx.Err():
		return nil, 0, ctx.Err()
	case fault.ErrSearchExhausted == r.err:
		return nil, 0, r.err
	case nil != r.err:
		c.log.Warnf("worker: %s  fault: %s", w.Identity(), r.err)
		return nil, 1, fault.ErrWorkersFaulted
	default:
		return nil, 0, fault.ErrSearchExhausted
	}
}

// lowest: every worker runs until it passes the bound, so the wait is
// finite and only ctx can end it early
//
// first: the earliest report wins, except at difficulty zero where every
// worker succeeds on its first nonce and nonce zero is always chosen
func (c *Coordinator) runParallel(ctx context.Context, tracker *stateTracker, workers []*Worker, d int) (*Candidate, int, error) {
	log := c.log

	waitAll := SelectLowest == c.selection || 0 == d

	bound := counter.NewMinimum()

	// buffered so an abandoned worker never blocks
	reports := make(chan report, len(workers))

	processes := make(background.Processes, len(workers))
	for i, w := range workers {
		processes[i] = &workerProcess{
			worker:  w,
			bound:   bound,
			reports: reports,
		}
	}
	bg := background.Start(processes, nil)

	var best *Candidate
	faulted := 0
	exhausted := 0
	pending := len(workers)

	abort := func(err error) (*Candidate, int, error) {
		bg.Shutdown()
		c.await(bg)
		return nil, faulted, err
	}

collect:
	for pending > 0 {
		select {
		case <-ctx.Done():
			log.Warnf("cancelled: %s", ctx.Err())
			return abort(ctx.Err())

		case r := <-reports:
			pending -= 1

			switch {
			case nil != r.candidate:
				if nil == best || r.candidate.Nonce < best.Nonce {
					best = r.candidate
				}
				if tracker.get() < Found {
					_ = tracker.set(Found)
				}
				if !waitAll {
					break collect
				}

			case fault.ErrHeaderMismatch == r.err:
				log.Criticalf("worker: %s  refused header", r.worker.Identity())
				return abort(r.err)

			case fault.ErrSearchExhausted == r.err:
				exhausted += 1

			case nil != r.err:
				faulted += 1
				log.Warnf("worker: %s  fault: %s", r.worker.Identity(), r.err)
			}
		}
	}

	if nil != best {
		_ = tracker.set(Terminating)
	}
	bg.Shutdown()
	c.await(bg)

	if nil != best {
		return best, faulted, nil
	}
	if faulted == len(workers) {
		return nil, faulted, fault.ErrWorkersFaulted
	}
	log.Warnf("no solution  exhausted: %d  faulted: %d", exhausted, faulted)
	return nil, faulted, fault.ErrSearchExhausted
}

// bounded wait for acknowledgement of shutdown
func (c *Coordinator) await(bg *background.T) {
	if err := bg.Wait(c.gracePeriod); nil != err {
		c.log.Warnf("workers abandoned after: %s  error: %s", c.gracePeriod, err)
	}
}

// workerProcess - adapts a worker to a background process
type workerProcess struct {
	worker  *Worker
	bound   *counter.Minimum
	reports chan<- report
}

func (p *workerProcess) Run(args interface{}, shutdown <-chan struct{}) {
	p.reports <- searchRecover(p.worker, NewSignal(shutdown, p.bound))
}

// a panicking worker is treated as a faulted one
func searchRecover(w *Worker, signal *Signal) (r report) {
	r.worker = w
	defer func() {
		if e := recover(); nil != e {
			w.log.Criticalf("panic: %v", e)
			r.candidate = nil
			r.err = fault.ErrWorkerPanic
		}
	}()
	r.candidate, r.err = w.Search(signal)
	return r
}
