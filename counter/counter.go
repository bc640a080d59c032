// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously
// incremented from many goroutines
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(ic))
}

// Minimum - a value that can only ever be lowered
//
// the zero value is NOT usable, create with NewMinimum so that the
// initial value is the maximum uint64
type Minimum struct {
	value uint64
}

// NewMinimum - create a minimum starting at the largest possible value
func NewMinimum() *Minimum {
	return &Minimum{
		value: ^uint64(0),
	}
}

// Lower - set the value to n if n is below the current value,
// returns true if this call changed the value
func (m *Minimum) Lower(n uint64) bool {
	for {
		current := atomic.LoadUint64(&m.value)
		if n >= current {
			return false
		}
		if atomic.CompareAndSwapUint64(&m.value, current, n) {
			return true
		}
	}
}

// Uint64 - returns current value
func (m *Minimum) Uint64() uint64 {
	return atomic.LoadUint64(&m.value)
}

// IsSet - true once any value has been lowered into the minimum
func (m *Minimum) IsSet() bool {
	return ^uint64(0) != atomic.LoadUint64(&m.value)
}
