// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known search input
const (
	PreviousSeed   = "prevblockhash"
	Payload        = "[]"
	PreviousDigest = "b2a8ae895f177a1d575a417b2707c78d31d24f4cee8b59b352944e1d516cc632"
	MerkleRoot     = "4f53cda18c2baa0c0354bb5f9a3ecbe5ed12ab4d8e11ba873c2f11161202b945"
	Header         = PreviousDigest + MerkleRoot
)

// Solution - lowest sha256 nonce for Header at a difficulty
type Solution struct {
	Difficulty int
	Nonce      uint64
	Digest     string
}

// Solutions - lowest sha256 solutions for Header
var Solutions = []Solution{
	{0, 0, "5a417b9c20eb9793d61fc0d0f9eab440b90921441c6b3a99893aaabb2e7678ce"},
	{1, 10, "0f840d28f3aee7d472b0190fa4d7944d62599a8ea08226ee9ec402a43b3ba28b"},
	{2, 96, "00452781930dc112d6327fa3e7ad47a0a629d8dbe03d56aaf405d11d1ba67fd0"},
	{3, 3559, "000e5bf957fb12ea43ca604b4287c6ca22ac2b6900aaf4cded404cdfa3ba5129"},
}

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
