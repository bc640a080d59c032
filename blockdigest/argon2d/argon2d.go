// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argon2d - memory hard digest for candidate hashing
//
// importing this package registers the "argon2d" algorithm with
// blockdigest
package argon2d

import (
	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/noncesearch/blockdigest"
)

// Name - algorithm name as registered
const Name = "argon2d"

// internal hashing parameters
//
// much lighter than a production chain so that several workers can
// run side by side
const (
	digestMode        = argon2.ModeArgon2d
	digestMemory      = 1 << 14 // 16 MiB
	digestParallelism = 1
	digestIterations  = 2
	digestVersion     = argon2.Version13
)

func init() {
	blockdigest.Register(Name, New)
}

type hasher struct{}

// New - create an argon2d hasher
func New() (blockdigest.Hasher, error) {
	return hasher{}, nil
}

// Sum - create a digest from a byte slice, the record is also the salt
func (hasher) Sum(record []byte) (blockdigest.Digest, error) {

	context := &argon2.Context{
		Iterations:  digestIterations,
		Memory:      digestMemory,
		Parallelism: digestParallelism,
		HashLen:     blockdigest.Length,
		Mode:        digestMode,
		Version:     digestVersion,
	}

	hash, err := argon2.Hash(context, record, record)
	if nil != err {
		return blockdigest.Digest{}, err
	}

	var digest blockdigest.Digest
	copy(digest[:], hash)
	return digest, nil
}

func (hasher) Name() string {
	return Name
}
