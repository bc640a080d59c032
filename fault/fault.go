// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExhaustedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnavailableError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrDifficultyNotMet         = InvalidError("digest does not meet difficulty")
	ErrDigestMismatch           = InvalidError("digest does not match header and nonce")
	ErrEmptyHeader              = InvalidError("header is empty")
	ErrHasherFailed             = ProcessError("digest computation failed")
	ErrHeaderMismatch           = InvalidError("worker header differs from coordinator header")
	ErrInvalidAlgorithm         = InvalidError("invalid digest algorithm")
	ErrInvalidConfiguration     = InvalidError("invalid configuration")
	ErrInvalidConfigurationFile = InvalidError("configuration file must return a table")
	ErrInvalidDifficulty        = InvalidError("invalid difficulty")
	ErrInvalidEndpoint          = InvalidError("invalid endpoint")
	ErrInvalidGracePeriod       = InvalidError("invalid grace period")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidOrdinal           = InvalidError("invalid worker ordinal")
	ErrInvalidSelection         = InvalidError("invalid selection policy")
	ErrInvalidStateChange       = ProcessError("invalid state change")
	ErrInvalidWorkerCount       = InvalidError("invalid worker count")
	ErrMissingPayload           = InvalidError("payload source is required")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrPayloadTooLarge          = UnavailableError("payload exceeds maximum size")
	ErrSearchExhausted          = ExhaustedError("nonce space exhausted without a solution")
	ErrShutdownTimeout          = ProcessError("processes did not stop within grace period")
	ErrWorkerPanic              = ProcessError("worker panicked")
	ErrWorkersFaulted           = ExhaustedError("all workers faulted")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExhaustedError) Error() string   { return string(e) }
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnavailableError) Error() string { return string(e) }

// determine the class of an error
func IsErrExhausted(e error) bool   { _, ok := e.(ExhaustedError); return ok }
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrUnavailable(e error) bool { _, ok := e.(UnavailableError); return ok }
