// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import "errors"

// The following sentinel errors make up the closed error taxonomy for this
// package. Callers should use errors.Is to classify a failure rather than
// comparing error strings.
var (
	// ErrNoRootKeyTrust is returned when a candidate root key is not
	// present in the root key store supplied at construction time.
	ErrNoRootKeyTrust = errors.New("root key is not present in the trust store")

	// ErrInvalidSignature is returned when an Ed25519 verification fails,
	// either while appending a link to a chain or while verifying caller
	// data against the chain's end key.
	ErrInvalidSignature = errors.New("signature verification failed")

	// ErrMaxChainLengthExceeded is returned when an append would grow a
	// chain beyond MaxChainLinks total keys.
	ErrMaxChainLengthExceeded = errors.New("trust chain cannot exceed the maximum number of links")

	// ErrInvalidTrustChain signals a wire-format violation: a short read,
	// a malformed header or version, a zero chain length, or an invalid
	// key/signature width. A chain length above the bound is reported as
	// ErrMaxChainLengthExceeded instead.
	ErrInvalidTrustChain = errors.New("malformed trust chain")

	// ErrInvalidExpiry is returned when an Expiry's not-before date is
	// later than its not-after date, including when a decoded expiry
	// window is inverted. A date that fails to decode is reported as
	// ErrInvalidDate.
	ErrInvalidExpiry = errors.New("expiry window is invalid")

	// ErrInvalidDate is returned when a date fails to decode: a bad
	// temporenc tag, an out-of-range month index, or a (year, month, day)
	// triple that Date rejects.
	ErrInvalidDate = errors.New("date is invalid")

	// ErrInvalidYear is returned by Date construction when year exceeds
	// the maximum representable year (4094).
	ErrInvalidYear = errors.New("year must be between 0 and 4094")

	// ErrInvalidMonth is returned by Date construction when month is
	// outside 1..=12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidDay is returned by Date construction when day is outside
	// 1..=the number of days in the given month and year.
	ErrInvalidDay = errors.New("day is out of range for the given month and year")
)
