// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import (
	"crypto/subtle"
	"fmt"
)

// SignatureSize is the length in bytes of an Ed25519 signature.
const SignatureSize = 64

// Signature is a fixed-width Ed25519 signature, kept distinct from
// PublicKey for the same reason: so the two can never be confused at an
// API boundary.
type Signature [SignatureSize]byte

// SignatureFromBytes copies b into a Signature. It returns false if b is
// not exactly SignatureSize bytes long.
func SignatureFromBytes(b []byte) (Signature, bool) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, false
	}
	copy(sig[:], b)
	return sig, true
}

// Bytes returns the raw bytes backing the signature.
func (s Signature) Bytes() []byte {
	return s[:]
}

// Equal reports whether s and other hold the same signature bytes. The
// comparison is constant-time.
func (s Signature) Equal(other Signature) bool {
	return subtle.ConstantTimeCompare(s[:], other[:]) == 1
}

// String implements fmt.Stringer, rendering the signature as lowercase hex.
func (s Signature) String() string {
	return fmt.Sprintf("%x", s[:])
}

// GoString implements fmt.GoStringer.
func (s Signature) GoString() string {
	return fmt.Sprintf("trustchain.Signature(%x)", s[:])
}
