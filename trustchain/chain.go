// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import (
	"golang.org/x/crypto/ed25519"
)

// MaxChainLinks is the maximum total number of keys (root plus non-root
// links) a TrustChain may hold.
const MaxChainLinks = 5

// TrustChain is a verified, immutable sequence of 1..=MaxChainLinks keys:
// a root, followed by zero or more links, where each link's signature has
// been checked against its predecessor's key. A TrustChain value can only
// be produced by New followed by zero or more calls to Append (or by the
// parser package, which uses exactly that path), so its existence is
// itself a proof that every link verified.
type TrustChain struct {
	root  Root
	links []Link
}

// New constructs a single-key TrustChain from root, after checking that
// root's key is present in store. It fails with ErrNoRootKeyTrust if it is
// not.
func New(store RootKeyStore, root Root) (TrustChain, error) {
	if !store.Contains(root.Key()) {
		return TrustChain{}, ErrNoRootKeyTrust
	}
	return TrustChain{root: root}, nil
}

// Len returns the total number of keys in the chain, including the root.
func (c TrustChain) Len() int {
	return 1 + len(c.links)
}

// First returns the chain's root position.
func (c TrustChain) First() TrustLink {
	return c.root
}

// Last returns the chain's tail position: the root if the chain has no
// links, otherwise the most recently appended link.
func (c TrustChain) Last() TrustLink {
	if len(c.links) == 0 {
		return c.root
	}
	return c.links[len(c.links)-1]
}

// EndKey returns the public key of the chain's tail position: the only key
// that VerifyData will accept signatures under.
func (c TrustChain) EndKey() PublicKey {
	return c.Last().Key()
}

// Append verifies link's signature against the current tail key and, on
// success, returns a new chain with link at the tail. c is left unmodified
// (TrustChain values are immutable); the returned chain never aliases c's
// backing storage, so appending different links to the same chain value
// produces independent branches.
//
// Append fails with ErrMaxChainLengthExceeded if c already holds
// MaxChainLinks keys, or with ErrInvalidSignature if link.Signature()
// does not verify against c.Last().Key() over link.Key().
func (c TrustChain) Append(link Link) (TrustChain, error) {
	if c.Len() >= MaxChainLinks {
		return TrustChain{}, ErrMaxChainLengthExceeded
	}

	sig, _ := link.Signature()
	if !ed25519.Verify(ed25519.PublicKey(c.Last().Key().Bytes()), link.Key().Bytes(), sig.Bytes()) {
		return TrustChain{}, ErrInvalidSignature
	}

	newLinks := make([]Link, len(c.links)+1)
	copy(newLinks, c.links)
	newLinks[len(c.links)] = link

	return TrustChain{root: c.root, links: newLinks}, nil
}

// VerifyData verifies sig as an Ed25519 signature over data, produced
// under the chain's end key. It is the one operation that lets a validated
// chain speak for caller-supplied data: the signed message is exactly
// data, with no prefixing, so callers remain responsible for their own
// domain separation.
func (c TrustChain) VerifyData(sig Signature, data []byte) error {
	if !ed25519.Verify(ed25519.PublicKey(c.EndKey().Bytes()), data, sig.Bytes()) {
		return ErrInvalidSignature
	}
	return nil
}

// Links returns every position in the chain, in order, root first.
func (c TrustChain) Links() []TrustLink {
	out := make([]TrustLink, 0, c.Len())
	out = append(out, c.root)
	for _, l := range c.links {
		out = append(out, l)
	}
	return out
}

// Bytes serializes c using the version-3 wire format described in
// SPEC_FULL.md §6.1: a 4-byte "TC"+version header, a 1-byte total chain
// length, the 32-byte root key, and then, per non-root link, its 32-byte
// key followed by the 64-byte signature attesting it.
func (c TrustChain) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+1+PublicKeySize+(PublicKeySize+SignatureSize)*len(c.links))
	out = append(out, TC_V3_Header[:]...)
	out = append(out, byte(c.Len()))
	out = append(out, c.root.Key().Bytes()...)
	for _, l := range c.links {
		sig, _ := l.Signature()
		out = append(out, l.Key().Bytes()...)
		out = append(out, sig.Bytes()...)
	}
	return out
}
