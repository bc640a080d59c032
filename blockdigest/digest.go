// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/noncesearch/fault"
)

// Length - number of bytes in the digest
const Length = 32

// HexLength - number of characters in the hex text of a digest
const HexLength = 2 * Length

// Digest - type for a digest
//
// stored in the natural (big endian) order produced by the hash
// function, so the hex text is identical to a hexdigest
type Digest [Length]byte

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, HexLength)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if HexLength != len(s) {
		return fault.ErrDigestMismatch
	}
	_, err := hex.Decode(digest[:], s)
	return err
}

// FromHex - convert and validate a hex string to a digest
func FromHex(s string) (Digest, error) {
	var digest Digest
	if err := digest.UnmarshalText([]byte(s)); nil != err {
		return Digest{}, err
	}
	return digest, nil
}

// IsZero - true if every byte is zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// Hasher - computes a digest of a record
type Hasher interface {
	Sum(record []byte) (Digest, error)
	Name() string
}

// SumHex - digest a record and return the hex text
func SumHex(hasher Hasher, record []byte) (string, error) {
	digest, err := hasher.Sum(record)
	if nil != err {
		return "", fmt.Errorf("%s: %s", hasher.Name(), err)
	}
	return digest.String(), nil
}
