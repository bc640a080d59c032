// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
	"time"

	"github.com/bitmark-inc/noncesearch/fault"
)

// Process - type signature for background process
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle type
type T struct {
	shutdown []chan struct{}
	once     sync.Once
	finished chan struct{}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make([]chan struct{}, len(processes)),
		finished: make(chan struct{}),
	}

	var wg sync.WaitGroup
	wg.Add(len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		register.shutdown[i] = shutdown
		go func(p Process) {
			defer wg.Done()
			p.Run(args, shutdown)
		}(p)
	}

	go func() {
		wg.Wait()
		close(register.finished)
	}()

	return register
}

// Shutdown - broadcast shutdown to every process without waiting
//
// safe to call more than once
func (t *T) Shutdown() {
	t.once.Do(func() {
		for _, shutdown := range t.shutdown {
			close(shutdown)
		}
	})
}

// Finished - channel that is closed once all processes have returned
func (t *T) Finished() <-chan struct{} {
	return t.finished
}

// Wait - wait for all processes to return, at most timeout
func (t *T) Wait(timeout time.Duration) error {
	select {
	case <-t.finished:
		return nil
	case <-time.After(timeout):
		return fault.ErrShutdownTimeout
	}
}

// Stop - shutdown a set of background processes and wait for them
func (t *T) Stop() {
	t.Shutdown()
	<-t.finished
}
