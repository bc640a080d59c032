// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progress

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncesearch/fault"
)

// LogBackend - write records to a logger channel
type LogBackend struct {
	log *logger.L
}

// NewLogBackend - create a backend on an existing channel
func NewLogBackend(log *logger.L) (*LogBackend, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &LogBackend{log: log}, nil
}

// Write - one line per record
func (b *LogBackend) Write(record Record) error {
	b.log.Infof("try nonce: %d  digest: %s  worker: %d/%d  host: %q", record.Nonce, record.Digest, record.Ordinal, record.WorkerCount, record.Host)
	return nil
}
