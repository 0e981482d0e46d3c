// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import "golang.org/x/crypto/ed25519"

// ExpiringLink is a non-root chain position in the v3-with-expiry dialect:
// a public key, the validity window it is attested for, and the signature
// by which the previous position's key attests key||expiry together.
type ExpiringLink struct {
	key PublicKey
	exp Expiry
	sig Signature
}

// NewExpiringLink pairs key and exp with the signature attesting their
// concatenation.
func NewExpiringLink(key PublicKey, exp Expiry, sig Signature) ExpiringLink {
	return ExpiringLink{key: key, exp: exp, sig: sig}
}

// Key returns the link's public key.
func (l ExpiringLink) Key() PublicKey { return l.key }

// Expiry returns the link's validity window.
func (l ExpiringLink) Expiry() Expiry { return l.exp }

// Signature returns the link's attesting signature.
func (l ExpiringLink) Signature() (Signature, bool) { return l.sig, true }

// IsRoot always returns false for an ExpiringLink.
func (l ExpiringLink) IsRoot() bool { return false }

// signedMessage returns the exact byte sequence an ExpiringLink's
// signature is computed over: key bytes immediately followed by expiry
// bytes, per SPEC_FULL.md's resolution of the v3-with-expiry Open
// Question.
func (l ExpiringLink) signedMessage() []byte {
	exp := l.exp.Bytes()
	msg := make([]byte, 0, PublicKeySize+ExpirySize)
	msg = append(msg, l.key.Bytes()...)
	msg = append(msg, exp[:]...)
	return msg
}

// ExpiringChain is the v3-with-expiry counterpart to TrustChain: the same
// bounded, verified sequence of keys, but where every non-root link also
// carries a validity window that is included in the signed message.
type ExpiringChain struct {
	root  Root
	links []ExpiringLink
}

// NewExpiring constructs a single-key ExpiringChain from root, after
// checking that root's key is present in store. It fails with
// ErrNoRootKeyTrust if it is not.
func NewExpiring(store RootKeyStore, root Root) (ExpiringChain, error) {
	if !store.Contains(root.Key()) {
		return ExpiringChain{}, ErrNoRootKeyTrust
	}
	return ExpiringChain{root: root}, nil
}

// Len returns the total number of keys in the chain, including the root.
func (c ExpiringChain) Len() int {
	return 1 + len(c.links)
}

// EndKey returns the public key of the chain's tail position.
func (c ExpiringChain) EndKey() PublicKey {
	if len(c.links) == 0 {
		return c.root.Key()
	}
	return c.links[len(c.links)-1].Key()
}

// lastKey returns the key to verify the next appended link's signature
// against.
func (c ExpiringChain) lastKey() PublicKey {
	return c.EndKey()
}

// Append verifies link's signature against the current tail key over
// link.Key()||link.Expiry() and, on success, returns a new chain with link
// at the tail. c is left unmodified.
//
// Append fails with ErrMaxChainLengthExceeded if c already holds
// MaxChainLinks keys, or with ErrInvalidSignature if the signature does
// not verify.
func (c ExpiringChain) Append(link ExpiringLink) (ExpiringChain, error) {
	if c.Len() >= MaxChainLinks {
		return ExpiringChain{}, ErrMaxChainLengthExceeded
	}

	sig, _ := link.Signature()
	if !ed25519.Verify(ed25519.PublicKey(c.lastKey().Bytes()), link.signedMessage(), sig.Bytes()) {
		return ExpiringChain{}, ErrInvalidSignature
	}

	newLinks := make([]ExpiringLink, len(c.links)+1)
	copy(newLinks, c.links)
	newLinks[len(c.links)] = link

	return ExpiringChain{root: c.root, links: newLinks}, nil
}

// VerifyData verifies sig as an Ed25519 signature over data, produced
// under the chain's end key.
func (c ExpiringChain) VerifyData(sig Signature, data []byte) error {
	if !ed25519.Verify(ed25519.PublicKey(c.EndKey().Bytes()), data, sig.Bytes()) {
		return ErrInvalidSignature
	}
	return nil
}

// Bytes serializes c using the v3-with-expiry wire format: a 4-byte
// header, a 1-byte total chain length, the 32-byte root key, and then per
// non-root link its 32-byte key, 6-byte expiry, and 64-byte signature.
func (c ExpiringChain) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+1+PublicKeySize+ExpiringLinkSize*len(c.links))
	out = append(out, TC_V3_Header[:]...)
	out = append(out, byte(c.Len()))
	out = append(out, c.root.Key().Bytes()...)
	for _, l := range c.links {
		sig, _ := l.Signature()
		exp := l.exp.Bytes()
		out = append(out, l.Key().Bytes()...)
		out = append(out, exp[:]...)
		out = append(out, sig.Bytes()...)
	}
	return out
}
