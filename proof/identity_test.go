// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/proof"
)

func TestNewIdentity(t *testing.T) {
	id, err := proof.NewIdentity(2, 4, "node-a")
	assert.Nil(t, err, "valid identity")
	assert.Equal(t, proof.Identity{Ordinal: 2, WorkerCount: 4, HostLabel: "node-a"}, id, "identity")
	assert.Equal(t, "node-a:2/4", id.String(), "string")

	id, _ = proof.NewIdentity(0, 1, "")
	assert.Equal(t, "0/1", id.String(), "string without host")

	_, err = proof.NewIdentity(0, 0, "")
	assert.Equal(t, fault.ErrInvalidWorkerCount, err, "zero workers")

	_, err = proof.NewIdentity(4, 4, "")
	assert.Equal(t, fault.ErrInvalidOrdinal, err, "ordinal too large")

	_, err = proof.NewIdentity(-1, 4, "")
	assert.Equal(t, fault.ErrInvalidOrdinal, err, "negative ordinal")

	_, err = proof.NewIdentities(0, "")
	assert.Equal(t, fault.ErrInvalidWorkerCount, err, "no identities")
}

// every nonce below limit is visited by exactly one worker
func TestPartitionCompleteness(t *testing.T) {
	const limit = 1000

	for n := 1; n <= 8; n += 1 {
		identities, err := proof.NewIdentities(n, "")
		assert.Nil(t, err, "identities: %d", n)
		assert.Equal(t, n, len(identities), "count")

		visits := make([]int, limit)
		for i, id := range identities {
			assert.Equal(t, i, id.Ordinal, "ordinal")
			assert.Equal(t, n, id.WorkerCount, "worker count")

			for nonce, ok := id.First(), true; ok && nonce < limit; nonce, ok = id.Next(nonce) {
				assert.True(t, id.Owns(nonce), "worker: %s does not own: %d", id, nonce)
				visits[nonce] += 1
			}
		}

		for nonce, v := range visits {
			if 1 != v {
				t.Errorf("workers: %d  nonce: %d  visited: %d times", n, nonce, v)
			}
		}
	}
}

func TestNextOverflow(t *testing.T) {
	id, _ := proof.NewIdentity(3, 4, "")

	n, ok := id.Next(math.MaxUint64 - 4)
	assert.True(t, ok, "last step")
	assert.Equal(t, uint64(math.MaxUint64), n, "maximum nonce")

	_, ok = id.Next(math.MaxUint64 - 3)
	assert.False(t, ok, "overflow")

	_, ok = id.Next(math.MaxUint64)
	assert.False(t, ok, "overflow at maximum")
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		text      string
		selection proof.Selection
		err       error
	}{
		{"", proof.SelectLowest, nil},
		{"lowest", proof.SelectLowest, nil},
		{" First ", proof.SelectFirst, nil},
		{"FIRST", proof.SelectFirst, nil},
		{"fastest", "", fault.ErrInvalidSelection},
	}
	for _, item := range tests {
		s, err := proof.ParseSelection(item.text)
		assert.Equal(t, item.err, err, "error for: %q", item.text)
		assert.Equal(t, item.selection, s, "selection for: %q", item.text)
	}
}
