// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

// TrustLink is the common view over a chain position: every position
// (root or non-root) exposes its key; only non-root positions carry a
// signature.
type TrustLink interface {
	// Key returns the public key at this position.
	Key() PublicKey

	// Signature returns the signature attesting this position's key,
	// produced by the previous position's key. It is the zero value and
	// ok is false at the root position.
	Signature() (sig Signature, ok bool)

	// IsRoot reports whether this position is the chain's root.
	IsRoot() bool
}

// Root wraps the public key at the head of a trust chain: a candidate
// trust anchor, checked against a RootKeyStore at construction time.
type Root struct {
	key PublicKey
}

// NewRoot wraps key as a chain root.
func NewRoot(key PublicKey) Root {
	return Root{key: key}
}

// Key returns the root's public key.
func (r Root) Key() PublicKey { return r.key }

// Signature always returns ok=false: a root has no predecessor to have
// signed it.
func (r Root) Signature() (Signature, bool) { return Signature{}, false }

// IsRoot always returns true for a Root.
func (r Root) IsRoot() bool { return true }

// Link is a non-root chain position: a public key together with the
// signature by which the previous position's key attests it.
type Link struct {
	key PublicKey
	sig Signature
}

// NewLink pairs key with the signature attesting it.
func NewLink(key PublicKey, sig Signature) Link {
	return Link{key: key, sig: sig}
}

// Key returns the link's public key.
func (l Link) Key() PublicKey { return l.key }

// Signature returns the link's attesting signature.
func (l Link) Signature() (Signature, bool) { return l.sig, true }

// IsRoot always returns false for a Link.
func (l Link) IsRoot() bool { return false }

var (
	_ TrustLink = Root{}
	_ TrustLink = Link{}
)
