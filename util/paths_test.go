// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noncesearch/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "x/../log/"), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	base, err := os.Getwd()
	assert.Nil(t, err, "getwd")
	dir := filepath.Join(base, "testing-directory", "nested")
	defer os.RemoveAll(filepath.Join(base, "testing-directory"))

	err = util.EnsureDirectory(dir)
	assert.Nil(t, err, "create")
	info, err := os.Stat(dir)
	assert.Nil(t, err, "stat")
	assert.True(t, info.IsDir(), "not a directory")

	err = util.EnsureDirectory(dir)
	assert.Nil(t, err, "existing")
}
