// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/noncesearch/counter"
)

// Signal - the cancellation state seen by one worker
//
// shutdown is closed once and never reopened; bound only decreases
type Signal struct {
	shutdown <-chan struct{}
	bound    *counter.Minimum
}

// NewSignal - combine a shutdown channel with a shared bound
func NewSignal(shutdown <-chan struct{}, bound *counter.Minimum) *Signal {
	if nil == bound {
		bound = counter.NewMinimum()
	}
	return &Signal{
		shutdown: shutdown,
		bound:    bound,
	}
}

// Cancelled - true once shutdown has been broadcast
func (s *Signal) Cancelled() bool {
	select {
	case <-s.shutdown:
		return true
	default:
		return false
	}
}

// Stopped - true if nonce n no longer needs evaluating
func (s *Signal) Stopped(n uint64) bool {
	return n > s.bound.Uint64() || s.Cancelled()
}

// Offer - lower the bound to a successful nonce
func (s *Signal) Offer(n uint64) bool {
	return s.bound.Lower(n)
}

// Bound - lowest successful nonce so far, false if none
func (s *Signal) Bound() (uint64, bool) {
	if !s.bound.IsSet() {
		return 0, false
	}
	return s.bound.Uint64(), true
}
