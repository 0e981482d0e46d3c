// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import (
	"crypto/subtle"
	"fmt"
)

// PublicKeySize is the length in bytes of an Ed25519 public key.
const PublicKeySize = 32

// PublicKey is a fixed-width Ed25519 public key. It exists as a distinct
// type, rather than a bare []byte, so that keys and signatures can never be
// accidentally swapped at an API boundary.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes copies b into a PublicKey. It returns false if b is not
// exactly PublicKeySize bytes long.
func PublicKeyFromBytes(b []byte) (PublicKey, bool) {
	var key PublicKey
	if len(b) != PublicKeySize {
		return key, false
	}
	copy(key[:], b)
	return key, true
}

// Bytes returns the raw bytes backing the key.
func (k PublicKey) Bytes() []byte {
	return k[:]
}

// Equal reports whether k and other hold the same key material. The
// comparison is constant-time: every byte is examined regardless of where
// the first mismatch occurs.
func (k PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(k[:], other[:]) == 1
}

// String implements fmt.Stringer, rendering the key as lowercase hex.
func (k PublicKey) String() string {
	return fmt.Sprintf("%x", k[:])
}

// GoString implements fmt.GoStringer so that %#v and debug output also
// render as lowercase hex rather than a byte-array literal.
func (k PublicKey) GoString() string {
	return fmt.Sprintf("trustchain.PublicKey(%x)", k[:])
}
