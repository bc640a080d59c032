// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payload - supply the transaction payload for a header
package payload

import (
	"context"
)

// Fetcher - obtain the raw payload bytes named by source
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// Literal - a fixed payload, the source is ignored
type Literal []byte

// Fetch - return a copy of the literal bytes
func (l Literal) Fetch(_ context.Context, _ string) ([]byte, error) {
	b := make([]byte, len(l))
	copy(b, l)
	return b, nil
}
