// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/bitmark-inc/noncesearch/fault"
)

// DefaultMaximumSize - largest body accepted when no limit is given
const DefaultMaximumSize = 16 * 1024 * 1024

// StatusError - non-success HTTP response
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status: %d %q on: %q", e.StatusCode, e.Status, e.URL)
}

// FetchBytes - fetch the raw body of an HTTP GET request
//
// any response other than 200 is returned as a *StatusError and a
// body longer than maximum bytes as fault.ErrPayloadTooLarge; a
// maximum of zero or less selects DefaultMaximumSize
func FetchBytes(ctx context.Context, client *http.Client, url string, maximum int64) ([]byte, error) {
	if maximum <= 0 {
		maximum = DefaultMaximumSize
	}

	request, err := http.NewRequest(http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}
	request = request.WithContext(ctx)

	response, err := client.Do(request)
	if nil != err {
		return nil, err
	}
	defer response.Body.Close()
	body, err := ioutil.ReadAll(io.LimitReader(response.Body, maximum+1))
	if nil != err {
		return nil, err
	}
	if int64(len(body)) > maximum {
		return nil, fault.ErrPayloadTooLarge
	}

	if http.StatusOK != response.StatusCode {
		return nil, &StatusError{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			URL:        url,
		}
	}
	return body, nil
}
