// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - the immutable search input
//
// A header is the hex text previousBlockDigest || merkleRoot.  Every
// candidate digest is computed over header || decimal(nonce).
package blockheader

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/bitmark-inc/noncesearch/blockdigest"
	"github.com/bitmark-inc/noncesearch/fault"
)

// Length - number of characters in a header
const Length = 2 * blockdigest.HexLength

// maximum decimal digits in a uint64
const maxNonceDigits = 20

// Header - previous block digest followed by merkle root, as hex text
//
// the text is unexported so that a header cannot be changed once built
type Header struct {
	text string
}

// Assemble - build the header from the previous block seed and the
// transaction payload
func Assemble(hasher blockdigest.Hasher, previousSeed []byte, payload []byte) (Header, error) {
	previous, err := hasher.Sum(previousSeed)
	if nil != err {
		return Header{}, err
	}
	root, err := MerkleRoot(hasher, payload)
	if nil != err {
		return Header{}, err
	}
	return New(previous, root), nil
}

// MerkleRoot - digest of the transaction payload
//
// the payload is a single opaque blob so the tree has exactly one
// leaf and the root is the digest of that leaf
func MerkleRoot(hasher blockdigest.Hasher, payload []byte) (blockdigest.Digest, error) {
	return hasher.Sum(payload)
}

// New - header from its two component digests
func New(previous blockdigest.Digest, merkleRoot blockdigest.Digest) Header {
	return Header{
		text: previous.String() + merkleRoot.String(),
	}
}

// Parse - validate header text as produced by String
func Parse(text string) (Header, error) {
	if 0 == len(text) {
		return Header{}, fault.ErrEmptyHeader
	}
	if Length != len(text) {
		return Header{}, fault.ErrHeaderMismatch
	}
	if _, err := hex.DecodeString(text); nil != err {
		return Header{}, fault.ErrHeaderMismatch
	}
	return Header{text: text}, nil
}

// String - the header text
func (h Header) String() string {
	return h.text
}

// IsEmpty - true for the zero value
func (h Header) IsEmpty() bool {
	return 0 == len(h.text)
}

// PreviousBlock - hex digest of the previous block seed
func (h Header) PreviousBlock() string {
	if h.IsEmpty() {
		return ""
	}
	return h.text[:blockdigest.HexLength]
}

// MerkleRoot - hex digest of the transaction payload
func (h Header) MerkleRoot() string {
	if h.IsEmpty() {
		return ""
	}
	return h.text[blockdigest.HexLength:]
}

// Candidate - append header || decimal(nonce) to buffer
//
// pass buffer[:0] of a slice from NewBuffer to avoid allocating in a
// search loop
func (h Header) Candidate(buffer []byte, nonce uint64) []byte {
	buffer = append(buffer, h.text...)
	return strconv.AppendUint(buffer, nonce, 10)
}

// NewBuffer - a buffer large enough for any candidate of this header
func (h Header) NewBuffer() []byte {
	return make([]byte, 0, len(h.text)+maxNonceDigits)
}

// Fingerprint - sha256 of the header text
//
// independent of the search algorithm, used to check that all
// workers were given byte identical headers
func (h Header) Fingerprint() blockdigest.Digest {
	return blockdigest.Digest(sha256.Sum256([]byte(h.text)))
}

// MarshalText - header as JSON text
func (h Header) MarshalText() ([]byte, error) {
	return []byte(h.text), nil
}
