// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"crypto/sha256"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/noncesearch/fault"
)

// names of the built in algorithms
const (
	SHA256  = "sha256"
	SHA3    = "sha3-256"
	BLAKE2b = "blake2b-256"
	Default = SHA256
)

// Constructor - create a hasher
type Constructor func() (Hasher, error)

var registry = struct {
	sync.RWMutex
	algorithms map[string]Constructor
}{
	algorithms: map[string]Constructor{
		SHA256:  func() (Hasher, error) { return sumFunc{name: SHA256, sum: sha256.Sum256}, nil },
		SHA3:    func() (Hasher, error) { return sumFunc{name: SHA3, sum: sha3.Sum256}, nil },
		BLAKE2b: func() (Hasher, error) { return sumFunc{name: BLAKE2b, sum: blake2b.Sum256}, nil },
	},
}

// Register - make an algorithm available to New
//
// intended to be called from an init function; registering the same
// name twice panics
func Register(name string, constructor Constructor) {
	registry.Lock()
	defer registry.Unlock()

	name = strings.ToLower(name)
	if _, ok := registry.algorithms[name]; ok {
		fault.PanicWithError("blockdigest.Register", fault.ErrAlreadyInitialised)
	}
	registry.algorithms[name] = constructor
}

// New - create a hasher for the named algorithm, an empty name selects the default
func New(name string) (Hasher, error) {
	if "" == name {
		name = Default
	}
	registry.RLock()
	constructor, ok := registry.algorithms[strings.ToLower(name)]
	registry.RUnlock()

	if !ok {
		return nil, fault.ErrInvalidAlgorithm
	}
	return constructor()
}

// Algorithms - sorted list of registered algorithm names
func Algorithms() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.algorithms))
	for name := range registry.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// adapts a fixed size sum function to a Hasher
type sumFunc struct {
	name string
	sum  func([]byte) [Length]byte
}

func (s sumFunc) Sum(record []byte) (Digest, error) {
	return Digest(s.sum(record)), nil
}

func (s sumFunc) Name() string {
	return s.name
}
