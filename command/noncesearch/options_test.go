// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/configuration"
	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/proof"
)

func TestApplyOptions(t *testing.T) {
	c := configuration.Default(".")

	options := map[string][]string{
		"difficulty":    {"2", "3"},
		"workers":       {"2", "6"},
		"algorithm":     {"BLAKE2b-256"},
		"selection":     {"first"},
		"previous-seed": {"genesis"},
		"payload-text":  {"[1,2,3]"},
		"host":          {"node-c"},
		"grace-period":  {"9"},
		"progress":      {""},
	}
	err := applyOptions(c, options, []string{"4"})
	assert.Nil(t, err, "apply")

	assert.Equal(t, []int{2, 3, 4}, c.Difficulty, "difficulty")
	assert.Equal(t, 6, c.Workers, "last workers wins")
	assert.Equal(t, blockdigest.BLAKE2b, c.Algorithm, "algorithm")
	assert.Equal(t, string(proof.SelectFirst), c.Selection, "selection")
	assert.Equal(t, "genesis", c.PreviousSeed, "seed")
	assert.Equal(t, "[1,2,3]", c.Payload.Text, "payload")
	assert.Equal(t, "node-c", c.HostLabel, "host")
	assert.Equal(t, 9*time.Second, c.GracePeriodDuration(), "grace")
	assert.True(t, c.Progress.Log, "progress")
}

func TestApplyOptionsRandomSeed(t *testing.T) {
	c1 := configuration.Default(".")
	c2 := configuration.Default(".")

	options := map[string][]string{"random-seed": {""}}
	assert.Nil(t, applyOptions(c1, options, nil), "first")
	assert.Nil(t, applyOptions(c2, options, nil), "second")

	assert.Equal(t, 2*randomSeedSize, len(c1.PreviousSeed), "seed length")
	assert.NotEqual(t, configuration.DefaultPreviousSeed, c1.PreviousSeed, "seed unchanged")
	assert.NotEqual(t, c1.PreviousSeed, c2.PreviousSeed, "seeds repeat")
}

func TestApplyOptionsPayloadURL(t *testing.T) {
	c := configuration.Default(".")
	c.Payload.Text = "[]"

	err := applyOptions(c, map[string][]string{"payload-url": {"http://127.0.0.1:8080/tx"}}, nil)
	assert.Nil(t, err, "apply")
	assert.Equal(t, "http://127.0.0.1:8080/tx", c.Payload.URL, "url")
	assert.Equal(t, "", c.Payload.Text, "url replaces text")
}

func TestApplyOptionsErrors(t *testing.T) {
	tests := []struct {
		options   map[string][]string
		arguments []string
		err       error
	}{
		{map[string][]string{"difficulty": {"x"}}, nil, fault.ErrInvalidDifficulty},
		{nil, []string{"65"}, fault.ErrInvalidDifficulty},
		{map[string][]string{"workers": {"many"}}, nil, fault.ErrInvalidWorkerCount},
		{map[string][]string{"workers": {"-2"}}, nil, fault.ErrInvalidWorkerCount},
		{map[string][]string{"algorithm": {"md5"}}, nil, fault.ErrInvalidAlgorithm},
		{map[string][]string{"selection": {"best"}}, nil, fault.ErrInvalidSelection},
		{map[string][]string{"grace-period": {"0"}}, nil, fault.ErrInvalidGracePeriod},
	}

	for i, item := range tests {
		c := configuration.Default(".")
		err := applyOptions(c, item.options, item.arguments)
		assert.Equal(t, item.err, err, "%d: error", i)
	}
}

func TestNewResultOutput(t *testing.T) {
	h, _ := blockdigest.New(blockdigest.SHA256)
	digest, _ := blockdigest.FromHex("0f840d28f3aee7d472b0190fa4d7944d62599a8ea08226ee9ec402a43b3ba28b")

	r := &proof.Result{
		Nonce:      10,
		Digest:     digest,
		Elapsed:    1500 * time.Millisecond,
		Winner:     proof.Identity{Ordinal: 2, WorkerCount: 4},
		Difficulty: 1,
		Algorithm:  h.Name(),
		Attempts:   12,
		HashRate:   8,
		Selection:  proof.SelectLowest,
	}
	out := newResultOutput(r)
	assert.Equal(t, uint64(10), out.Nonce, "nonce")
	assert.Equal(t, digest.String(), out.Digest, "digest")
	assert.Equal(t, "1.5s", out.Elapsed, "elapsed")
	assert.Equal(t, 1.5, out.Seconds, "seconds")
	assert.Equal(t, "lowest", out.Selection, "selection")
	assert.Equal(t, 2, out.Winner.Ordinal, "winner")
}
