// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

// RootKeyStore is a membership oracle over trusted root keys. It is
// consulted only at chain construction time (New, or a parser's
// equivalent); a constructed TrustChain does not retain a reference to the
// store that witnessed it, so the store need not outlive the chain.
//
// Implementations need not be safe for concurrent use unless they document
// otherwise; the reference implementation, ListStore, is read-only after
// construction and is therefore freely shareable across goroutines.
type RootKeyStore interface {
	// Contains reports whether candidate matches a trusted root key.
	// Implementations must compare by byte value.
	Contains(candidate PublicKey) bool
}

// ListStore is a RootKeyStore backed by a flat, unordered list of trusted
// keys, checked with a linear scan and constant-time per-key comparison.
type ListStore []PublicKey

// Contains reports whether candidate is present in the list.
func (s ListStore) Contains(candidate PublicKey) bool {
	for _, trusted := range s {
		if trusted.Equal(candidate) {
			return true
		}
	}
	return false
}
