// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/noncesearch/fault"
)

// Identity - position of a worker within a search
type Identity struct {
	Ordinal     int    `json:"ordinal"`
	WorkerCount int    `json:"workerCount"`
	HostLabel   string `json:"host,omitempty"`
}

// NewIdentity - validated identity
func NewIdentity(ordinal int, workerCount int, hostLabel string) (Identity, error) {
	if workerCount < 1 {
		return Identity{}, fault.ErrInvalidWorkerCount
	}
	if ordinal < 0 || ordinal >= workerCount {
		return Identity{}, fault.ErrInvalidOrdinal
	}
	return Identity{
		Ordinal:     ordinal,
		WorkerCount: workerCount,
		HostLabel:   hostLabel,
	}, nil
}

// NewIdentities - identities 0 … count-1
func NewIdentities(count int, hostLabel string) ([]Identity, error) {
	if count < 1 {
		return nil, fault.ErrInvalidWorkerCount
	}
	identities := make([]Identity, count)
	for i := range identities {
		identities[i] = Identity{
			Ordinal:     i,
			WorkerCount: count,
			HostLabel:   hostLabel,
		}
	}
	return identities, nil
}

// First - first nonce of this residue class
func (id Identity) First() uint64 {
	return uint64(id.Ordinal)
}

// Next - nonce following n, false if it would overflow
func (id Identity) Next(n uint64) (uint64, bool) {
	step := uint64(id.WorkerCount)
	if n > math.MaxUint64-step {
		return 0, false
	}
	return n + step, true
}

// Owns - true if n belongs to this residue class
func (id Identity) Owns(n uint64) bool {
	return n%uint64(id.WorkerCount) == uint64(id.Ordinal)
}

func (id Identity) String() string {
	if "" == id.HostLabel {
		return fmt.Sprintf("%d/%d", id.Ordinal, id.WorkerCount)
	}
	return fmt.Sprintf("%s:%d/%d", id.HostLabel, id.Ordinal, id.WorkerCount)
}
