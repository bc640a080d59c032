// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/noncesearch/fault"
)

var (
	ErrExhaustedOne   = fault.ExhaustedError("exhausted one")
	ErrExhaustedTwo   = fault.ExhaustedError("exhausted two")
	ErrExistsOne      = fault.ExistsError("exists one ")
	ErrExistsTwo      = fault.ExistsError("exists two")
	ErrInvalidOne     = fault.InvalidError("invalid one")
	ErrInvalidTwo     = fault.InvalidError("invalid two")
	ErrNotFoundOne    = fault.NotFoundError("not found one")
	ErrNotFoundTwo    = fault.NotFoundError("not found two")
	ErrProcessOne     = fault.ProcessError("process one")
	ErrProcessTwo     = fault.ProcessError("process two")
	ErrUnavailableOne = fault.UnavailableError("unavailable one")
	ErrUnavailableTwo = fault.UnavailableError("unavailable two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err         error
		exhausted   bool
		exists      bool
		invalid     bool
		notFound    bool
		process     bool
		unavailable bool
	}{
		{ErrExhaustedOne, true, false, false, false, false, false},
		{ErrExhaustedTwo, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrUnavailableOne, false, false, false, false, false, true},
		{ErrUnavailableTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExhausted(err) != e.exhausted {
			t.Errorf("%d: expected 'exhausted' == %v for err = %v", i, e.exhausted, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrUnavailable(err) != e.unavailable {
			t.Errorf("%d: expected 'unavailable' == %v for err = %v", i, e.unavailable, err)
		}
	}
}

// the search errors must be distinguishable from infrastructure errors
func TestSearchErrorClasses(t *testing.T) {
	if !fault.IsErrExhausted(fault.ErrSearchExhausted) {
		t.Errorf("search exhausted is not an exhausted error")
	}
	if !fault.IsErrUnavailable(fault.ErrPayloadTooLarge) {
		t.Errorf("payload too large is not unavailable")
	}
	if !fault.IsErrExhausted(fault.ErrWorkersFaulted) {
		t.Errorf("workers faulted is not an exhausted error")
	}
	if !fault.IsErrInvalid(fault.ErrInvalidDifficulty) {
		t.Errorf("invalid difficulty is not an invalid error")
	}
	if !fault.IsErrProcess(fault.ErrWorkerPanic) {
		t.Errorf("worker panic is not a process error")
	}
}
