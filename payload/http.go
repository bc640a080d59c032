// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/util"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultCacheExpiry = 2 * time.Minute
)

// HTTPFetcher - GET the payload, keeping bodies for a while so that
// runs at several difficulties download it only once
type HTTPFetcher struct {
	log     *logger.L
	client  *http.Client
	cache   *cache.Cache
	expiry  time.Duration
	maximum int64
}

// NewHTTPFetcher - create a fetcher
//
// zero durations select the defaults; bodies over maximum bytes are
// refused, zero selects util.DefaultMaximumSize
func NewHTTPFetcher(timeout time.Duration, expiry time.Duration, maximum int64, log *logger.L) (*HTTPFetcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if expiry <= 0 {
		expiry = DefaultCacheExpiry
	}
	if maximum <= 0 {
		maximum = util.DefaultMaximumSize
	}

	return &HTTPFetcher{
		log: log,
		client: &http.Client{
			Timeout: timeout,
		},
		cache:   cache.New(expiry, 2*expiry),
		expiry:  expiry,
		maximum: maximum,
	}, nil
}

// Fetch - cached body of source, which must be an http or https URL
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	u, err := url.Parse(source)
	if nil != err || ("http" != u.Scheme && "https" != u.Scheme) || "" == u.Host {
		f.log.Errorf("invalid payload url: %q", source)
		return nil, fault.ErrMissingPayload
	}

	if obj, found := f.cache.Get(source); found {
		f.log.Debugf("payload cache hit: %q", source)
		return obj.([]byte), nil
	}

	f.log.Infof("fetch payload: %q", source)
	body, err := util.FetchBytes(ctx, f.client, source, f.maximum)
	if nil != err {
		f.log.Errorf("fetch payload: %q  error: %s", source, err)
		if fault.IsErrUnavailable(err) {
			return nil, err
		}
		return nil, fault.UnavailableError("payload unavailable: " + err.Error())
	}

	f.log.Debugf("payload: %d bytes", len(body))
	f.cache.Set(source, body, f.expiry)
	return body, nil
}

// Forget - drop any cached body
func (f *HTTPFetcher) Forget() {
	f.cache.Flush()
}
