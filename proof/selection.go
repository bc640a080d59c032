// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"strings"

	"github.com/bitmark-inc/noncesearch/fault"
)

// Selection - policy for choosing between successful workers
type Selection string

// the possible policies
const (
	SelectLowest Selection = "lowest"
	SelectFirst  Selection = "first"
)

// DefaultSelection - reproducible across worker counts
const DefaultSelection = SelectLowest

// ParseSelection - case insensitive, empty selects the default
func ParseSelection(s string) (Selection, error) {
	switch Selection(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultSelection, nil
	case SelectLowest:
		return SelectLowest, nil
	case SelectFirst:
		return SelectFirst, nil
	default:
		return "", fault.ErrInvalidSelection
	}
}

func (s Selection) String() string {
	return string(s)
}
