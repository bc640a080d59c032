// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/fixtures"
	"github.com/bitmark-inc/noncesearch/payload"
)

func setupServer(hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/transactions":
			fmt.Fprint(w, fixtures.Payload)
		case "/broken":
			http.Error(w, "broken", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestLiteral(t *testing.T) {
	l := payload.Literal(fixtures.Payload)

	b, err := l.Fetch(context.Background(), "ignored")
	assert.Nil(t, err, "fetch")
	assert.Equal(t, fixtures.Payload, string(b), "payload")

	b[0] = 'x'
	b, _ = l.Fetch(context.Background(), "")
	assert.Equal(t, fixtures.Payload, string(b), "literal was modified")
}

func TestHTTPFetcherCaches(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	hits := int32(0)
	server := setupServer(&hits)
	defer server.Close()

	f, err := payload.NewHTTPFetcher(time.Second, time.Minute, 0, logger.New("payload"))
	assert.Nil(t, err, "new fetcher")

	for i := 0; i < 3; i++ {
		b, err := f.Fetch(context.Background(), server.URL+"/transactions")
		assert.Nil(t, err, "fetch: %d", i)
		assert.Equal(t, fixtures.Payload, string(b), "payload: %d", i)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "server hits")

	f.Forget()
	_, err = f.Fetch(context.Background(), server.URL+"/transactions")
	assert.Nil(t, err, "fetch after forget")
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "server hits after forget")
}

func TestHTTPFetcherUnavailable(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	hits := int32(0)
	server := setupServer(&hits)
	defer server.Close()

	f, err := payload.NewHTTPFetcher(0, 0, 0, logger.New("payload"))
	assert.Nil(t, err, "new fetcher")

	_, err = f.Fetch(context.Background(), server.URL+"/broken")
	assert.True(t, fault.IsErrUnavailable(err), "broken: %v", err)

	_, err = f.Fetch(context.Background(), server.URL+"/missing")
	assert.True(t, fault.IsErrUnavailable(err), "missing: %v", err)

	// failures are not cached
	_, _ = f.Fetch(context.Background(), server.URL+"/broken")
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "server hits")
}

func TestHTTPFetcherTooLarge(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	hits := int32(0)
	server := setupServer(&hits)
	defer server.Close()

	f, err := payload.NewHTTPFetcher(0, 0, int64(len(fixtures.Payload)-1), logger.New("payload"))
	assert.Nil(t, err, "new fetcher")

	_, err = f.Fetch(context.Background(), server.URL+"/transactions")
	assert.Equal(t, fault.ErrPayloadTooLarge, err, "over maximum")
	assert.True(t, fault.IsErrUnavailable(err), "error class")
}

func TestHTTPFetcherInvalidSource(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	f, err := payload.NewHTTPFetcher(0, 0, 0, logger.New("payload"))
	assert.Nil(t, err, "new fetcher")

	for _, source := range []string{"", "ftp://example.com/x", "not a url", "http://"} {
		_, err = f.Fetch(context.Background(), source)
		assert.Equal(t, fault.ErrMissingPayload, err, "source: %q", source)
	}
}

func TestNewHTTPFetcherNoLogger(t *testing.T) {
	_, err := payload.NewHTTPFetcher(0, 0, 0, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}
