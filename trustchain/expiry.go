// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

// ExpirySize is the length in bytes of an encoded Expiry: two consecutive
// encoded dates.
const ExpirySize = 2 * DateSize

// Expiry is a validity window, a pair (NotBefore, NotAfter) with the
// invariant NotBefore <= NotAfter.
type Expiry struct {
	NotBefore Date
	NotAfter  Date
}

// NewExpiry constructs an Expiry, failing with ErrInvalidExpiry if
// notBefore is later than notAfter.
func NewExpiry(notBefore, notAfter Date) (Expiry, error) {
	if notBefore.IsAfter(notAfter) {
		return Expiry{}, ErrInvalidExpiry
	}
	return Expiry{NotBefore: notBefore, NotAfter: notAfter}, nil
}

// Bytes encodes e as the concatenation of its two dates' encodings,
// not-before first.
func (e Expiry) Bytes() [ExpirySize]byte {
	var out [ExpirySize]byte
	nb := e.NotBefore.Bytes()
	na := e.NotAfter.Bytes()
	copy(out[0:DateSize], nb[:])
	copy(out[DateSize:], na[:])
	return out
}

// ExpiryFromBytes decodes an Expiry from two consecutive encoded dates. It
// fails with ErrInvalidDate if either date fails to decode, or with
// ErrInvalidExpiry if the decoded pair inverts (not-before after
// not-after).
func ExpiryFromBytes(b []byte) (Expiry, error) {
	if len(b) < ExpirySize {
		return Expiry{}, ErrInvalidDate
	}
	nb, err := DateFromBytes(b[0:DateSize])
	if err != nil {
		return Expiry{}, err
	}
	na, err := DateFromBytes(b[DateSize:ExpirySize])
	if err != nil {
		return Expiry{}, err
	}
	return NewExpiry(nb, na)
}
