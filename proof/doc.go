// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - partitioned nonce search
//
// A search runs N workers.  Worker i evaluates the nonces
// i, i+N, i+2N, … so that the workers together cover every nonce
// exactly once without communicating.  Each candidate is the digest of
// header || decimal(nonce) and succeeds when it has the required
// number of leading zero hex digits.
//
// The coordinator owns the result.  Workers only report candidates;
// the coordinator selects one, broadcasts shutdown and waits a bounded
// time for the workers to stop.
//
// Two selection policies exist:
//
//	lowest  the first success lowers a shared bound; workers above
//	        the bound stop at once and those below finish only their
//	        prefix, so the answer equals a sequential search
//	first   the first reported success wins immediately
package proof
