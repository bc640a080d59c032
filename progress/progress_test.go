// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progress_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/fixtures"
	"github.com/bitmark-inc/noncesearch/progress"
)

type memoryBackend struct {
	sync.Mutex
	records []progress.Record
	fail    bool
}

func (m *memoryBackend) Write(record progress.Record) error {
	m.Lock()
	defer m.Unlock()
	if m.fail {
		return fmt.Errorf("write failed")
	}
	m.records = append(m.records, record)
	return nil
}

func (m *memoryBackend) count() int {
	m.Lock()
	defer m.Unlock()
	return len(m.records)
}

func TestDiscard(t *testing.T) {
	// must not panic or block
	for i := 0; i < 1000; i++ {
		progress.Discard.Emit(progress.Record{Nonce: uint64(i)})
	}
}

func TestAsyncUnlimited(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := &memoryBackend{}
	configuration := progress.Configuration{
		Rate:   0,
		Buffer: 1000,
	}
	a, err := progress.NewAsync(configuration, logger.New("progress"), m)
	assert.Nil(t, err, "new async")

	for i := 0; i < 500; i++ {
		a.Emit(progress.Record{Nonce: uint64(i), Ordinal: 0, WorkerCount: 1})
	}
	a.Stop()

	assert.Equal(t, uint64(0), a.Dropped(), "dropped")
	assert.Equal(t, uint64(500), a.Written(), "written")
	assert.Equal(t, 500, m.count(), "backend records")
	assert.Equal(t, uint64(0), m.records[0].Nonce, "first record")
	assert.Equal(t, uint64(499), m.records[499].Nonce, "last record")
}

func TestAsyncRateLimited(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := &memoryBackend{}
	configuration := progress.Configuration{
		Rate:   0.001,
		Burst:  5,
		Buffer: 100,
	}
	a, err := progress.NewAsync(configuration, logger.New("progress"), m)
	assert.Nil(t, err, "new async")

	total := 100
	for i := 0; i < total; i++ {
		a.Emit(progress.Record{Nonce: uint64(i)})
	}
	a.Stop()

	assert.Equal(t, 5, m.count(), "only the burst is written")
	assert.Equal(t, uint64(5), a.Written(), "written")
	assert.Equal(t, uint64(1), a.Dropped(), "limiter consulted once after the burst")
}

func TestAsyncReopens(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := &memoryBackend{}
	configuration := progress.Configuration{
		Rate:   5,
		Burst:  1,
		Buffer: 100,
	}
	a, err := progress.NewAsync(configuration, logger.New("progress"), m)
	assert.Nil(t, err, "new async")

	for i := 0; i < 1000; i++ {
		a.Emit(progress.Record{Nonce: uint64(i)})
	}
	time.Sleep(300 * time.Millisecond)
	for i := 1000; i < 2000; i++ {
		a.Emit(progress.Record{Nonce: uint64(i)})
	}
	a.Stop()

	assert.Equal(t, 2, m.count(), "one record per open period")
	assert.Equal(t, uint64(0), m.records[0].Nonce, "first burst")
	assert.Equal(t, uint64(1000), m.records[1].Nonce, "after reopening")
	assert.Equal(t, uint64(2), a.Dropped(), "one refusal per closed period")
}

func TestAsyncConcurrentEmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := &memoryBackend{}
	configuration := progress.Configuration{
		Rate:   0.001,
		Burst:  3,
		Buffer: 100,
	}
	a, err := progress.NewAsync(configuration, logger.New("progress"), m)
	assert.Nil(t, err, "new async")

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				a.Emit(progress.Record{Nonce: uint64(i*8 + w), Ordinal: w, WorkerCount: 8})
			}
		}(w)
	}
	wg.Wait()
	a.Stop()

	assert.Equal(t, 3, m.count(), "never more than the burst")
	assert.True(t, a.Dropped() <= 8, "limiter refusals bounded by emitters: %d", a.Dropped())
}

func TestAsyncBackendFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	failing := &memoryBackend{fail: true}
	ok := &memoryBackend{}
	a, err := progress.NewAsync(progress.Configuration{Buffer: 10}, logger.New("progress"), failing, ok)
	assert.Nil(t, err, "new async")

	a.Emit(progress.Record{Nonce: 7})
	a.Stop()

	assert.Equal(t, 0, failing.count(), "failing backend")
	assert.Equal(t, 1, ok.count(), "second backend still written")
}

func TestAsyncNoLogger(t *testing.T) {
	_, err := progress.NewAsync(progress.Configuration{}, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}

func TestLogBackend(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := progress.NewLogBackend(nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	b, err := progress.NewLogBackend(logger.New("progress"))
	assert.Nil(t, err, "new log backend")
	err = b.Write(progress.Record{Nonce: 10, Digest: fixtures.Solutions[1].Digest, Ordinal: 0, WorkerCount: 4})
	assert.Nil(t, err, "write")
}
