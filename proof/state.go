// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/fault"
)

// State - stage of a search run
type State int

// all possible states, in order
const (
	Idle State = iota
	Assembling
	Searching
	Found
	Terminating
	Done
	Failed
	maximum
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Assembling:
		return "Assembling"
	case Searching:
		return "Searching"
	case Found:
		return "Found"
	case Terminating:
		return "Terminating"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return "*Unknown*"
	}
}

// IsFinal - no further change is possible
func (s State) IsFinal() bool {
	return Done == s || Failed == s
}

// stateTracker - forward only state changes for one run
//
// stages may be skipped, e.g. a coordinator given a ready made header
// goes straight from Idle to Searching
type stateTracker struct {
	sync.RWMutex
	log     *logger.L
	state   State
	history []State
}

func newStateTracker(log *logger.L) *stateTracker {
	return &stateTracker{
		log:     log,
		state:   Idle,
		history: []State{Idle},
	}
}

func (t *stateTracker) set(state State) error {
	t.Lock()
	defer t.Unlock()

	if state < Idle || state >= maximum || t.state.IsFinal() {
		t.log.Errorf("ignore state change: %s → %s", t.state, state)
		return fault.ErrInvalidStateChange
	}
	if Failed != state && state <= t.state {
		t.log.Errorf("ignore backward state change: %s → %s", t.state, state)
		return fault.ErrInvalidStateChange
	}

	t.log.Debugf("state: %s → %s", t.state, state)
	t.state = state
	t.history = append(t.history, state)
	return nil
}

// fail - record a failure and hand back the cause
func (t *stateTracker) fail(err error) error {
	_ = t.set(Failed)
	return err
}

func (t *stateTracker) get() State {
	t.RLock()
	defer t.RUnlock()
	return t.state
}

func (t *stateTracker) changes() []State {
	t.RLock()
	defer t.RUnlock()
	h := make([]State, len(t.history))
	copy(h, t.history)
	return h
}
