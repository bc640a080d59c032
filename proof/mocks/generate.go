// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks

//go:generate mockgen -destination=hasher.go -package=mocks github.com/bitmark-inc/noncesearch/blockdigest Hasher
//go:generate mockgen -destination=sink.go -package=mocks github.com/bitmark-inc/noncesearch/progress Sink
//go:generate mockgen -destination=fetcher.go -package=mocks github.com/bitmark-inc/noncesearch/payload Fetcher
