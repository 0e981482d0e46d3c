// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parser reads the compact binary trust-chain wire format
// described in SPEC_FULL.md §6.1 and reconstructs a trustchain.TrustChain
// (or, for the expiry-bearing dialect, a trustchain.ExpiringChain).
//
// Every parse reconstructs its chain exclusively through
// trustchain.New/trustchain.NewExpiring followed by repeated Append calls
// — the same verifying path used for in-memory construction — so a
// successfully parsed chain carries the identical cryptographic
// guarantees as one built by hand.
package parser

import (
	"io"

	tc "github.com/EXCCoin/trustchain/trustchain"
)

// headerLen is the length, in bytes, of the common header plus the
// chain-length byte that precedes every dialect's link records.
const headerLen = tc.HeaderSize + 1

// readHeader reads headerLen bytes from r and splits them into the 4-byte
// magic/version header and the chain-length byte. It fails with
// tc.ErrInvalidTrustChain on a short read.
func readHeader(r io.Reader) (header [tc.HeaderSize]byte, length byte, err error) {
	var buf [headerLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return header, 0, tc.ErrInvalidTrustChain
	}
	copy(header[:], buf[:tc.HeaderSize])
	return header, buf[tc.HeaderSize], nil
}

// readPublicKey reads a single fixed-width public key from r.
func readPublicKey(r io.Reader) (tc.PublicKey, error) {
	var buf [tc.PublicKeySize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return tc.PublicKey{}, tc.ErrInvalidTrustChain
	}
	key, ok := tc.PublicKeyFromBytes(buf[:])
	if !ok {
		return tc.PublicKey{}, tc.ErrInvalidTrustChain
	}
	return key, nil
}

// readLink reads a plain (no-expiry) link record: a public key followed by
// a signature.
func readLink(r io.Reader) (tc.Link, error) {
	var buf [tc.LinkSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return tc.Link{}, tc.ErrInvalidTrustChain
	}
	key, ok := tc.PublicKeyFromBytes(buf[:tc.PublicKeySize])
	if !ok {
		return tc.Link{}, tc.ErrInvalidTrustChain
	}
	sig, ok := tc.SignatureFromBytes(buf[tc.PublicKeySize:])
	if !ok {
		return tc.Link{}, tc.ErrInvalidTrustChain
	}
	return tc.NewLink(key, sig), nil
}

// readExpiringLink reads an expiry-bearing link record: a public key,
// followed by a 6-byte expiry window, followed by a signature.
func readExpiringLink(r io.Reader) (tc.ExpiringLink, error) {
	var buf [tc.ExpiringLinkSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return tc.ExpiringLink{}, tc.ErrInvalidTrustChain
	}
	key, ok := tc.PublicKeyFromBytes(buf[:tc.PublicKeySize])
	if !ok {
		return tc.ExpiringLink{}, tc.ErrInvalidTrustChain
	}
	exp, err := tc.ExpiryFromBytes(buf[tc.PublicKeySize : tc.PublicKeySize+tc.ExpirySize])
	if err != nil {
		return tc.ExpiringLink{}, err
	}
	sig, ok := tc.SignatureFromBytes(buf[tc.PublicKeySize+tc.ExpirySize:])
	if !ok {
		return tc.ExpiringLink{}, tc.ErrInvalidTrustChain
	}
	return tc.NewExpiringLink(key, exp, sig), nil
}

// ParseV2 reads a version-2 trust chain from r: the chain-length byte
// counts additional links beyond the root (0..=MaxChainLinks-1). Each
// root key is checked against store before any link is read.
func ParseV2(r io.Reader, store tc.RootKeyStore) (tc.TrustChain, error) {
	header, additional, err := readHeader(r)
	if err != nil {
		log.Debugf("v2 parse: header read failed: %v", err)
		return tc.TrustChain{}, err
	}
	if header != tc.TC_V2_Header {
		log.Debugf("v2 parse: unexpected header %x", header)
		return tc.TrustChain{}, tc.ErrInvalidTrustChain
	}
	if additional > tc.MaxChainLinks-1 {
		log.Debugf("v2 parse: additional link count %d exceeds bound", additional)
		return tc.TrustChain{}, tc.ErrMaxChainLengthExceeded
	}

	rootKey, err := readPublicKey(r)
	if err != nil {
		log.Debugf("v2 parse: root key read failed: %v", err)
		return tc.TrustChain{}, err
	}
	chain, err := tc.New(store, tc.NewRoot(rootKey))
	if err != nil {
		return tc.TrustChain{}, err
	}

	for i := byte(0); i < additional; i++ {
		link, err := readLink(r)
		if err != nil {
			log.Debugf("v2 parse: link %d read failed: %v", i, err)
			return tc.TrustChain{}, err
		}
		chain, err = chain.Append(link)
		if err != nil {
			return tc.TrustChain{}, err
		}
	}
	return chain, nil
}

// ParseV3 reads a version-3 trust chain from r: the chain-length byte
// counts the total number of keys, root included (1..=MaxChainLinks).
func ParseV3(r io.Reader, store tc.RootKeyStore) (tc.TrustChain, error) {
	header, total, err := readHeader(r)
	if err != nil {
		log.Debugf("v3 parse: header read failed: %v", err)
		return tc.TrustChain{}, err
	}
	if header != tc.TC_V3_Header {
		log.Debugf("v3 parse: unexpected header %x", header)
		return tc.TrustChain{}, tc.ErrInvalidTrustChain
	}
	if total > tc.MaxChainLinks {
		log.Debugf("v3 parse: chain length %d exceeds bound", total)
		return tc.TrustChain{}, tc.ErrMaxChainLengthExceeded
	}
	if total < 1 {
		log.Debugf("v3 parse: chain length is zero")
		return tc.TrustChain{}, tc.ErrInvalidTrustChain
	}

	rootKey, err := readPublicKey(r)
	if err != nil {
		log.Debugf("v3 parse: root key read failed: %v", err)
		return tc.TrustChain{}, err
	}
	chain, err := tc.New(store, tc.NewRoot(rootKey))
	if err != nil {
		return tc.TrustChain{}, err
	}

	for i := byte(1); i < total; i++ {
		link, err := readLink(r)
		if err != nil {
			log.Debugf("v3 parse: link %d read failed: %v", i, err)
			return tc.TrustChain{}, err
		}
		chain, err = chain.Append(link)
		if err != nil {
			return tc.TrustChain{}, err
		}
	}
	return chain, nil
}

// ParseV3Expiry reads a version-3-with-expiry trust chain from r: same
// header and total-length semantics as ParseV3, but each non-root link
// also carries a 6-byte expiry window that is folded into the signed
// message.
func ParseV3Expiry(r io.Reader, store tc.RootKeyStore) (tc.ExpiringChain, error) {
	header, total, err := readHeader(r)
	if err != nil {
		log.Debugf("v3-expiry parse: header read failed: %v", err)
		return tc.ExpiringChain{}, err
	}
	if header != tc.TC_V3_Header {
		log.Debugf("v3-expiry parse: unexpected header %x", header)
		return tc.ExpiringChain{}, tc.ErrInvalidTrustChain
	}
	if total > tc.MaxChainLinks {
		log.Debugf("v3-expiry parse: chain length %d exceeds bound", total)
		return tc.ExpiringChain{}, tc.ErrMaxChainLengthExceeded
	}
	if total < 1 {
		log.Debugf("v3-expiry parse: chain length is zero")
		return tc.ExpiringChain{}, tc.ErrInvalidTrustChain
	}

	rootKey, err := readPublicKey(r)
	if err != nil {
		log.Debugf("v3-expiry parse: root key read failed: %v", err)
		return tc.ExpiringChain{}, err
	}
	chain, err := tc.NewExpiring(store, tc.NewRoot(rootKey))
	if err != nil {
		return tc.ExpiringChain{}, err
	}

	for i := byte(1); i < total; i++ {
		link, err := readExpiringLink(r)
		if err != nil {
			log.Debugf("v3-expiry parse: link %d read failed: %v", i, err)
			return tc.ExpiringChain{}, err
		}
		chain, err = chain.Append(link)
		if err != nil {
			return tc.ExpiringChain{}, err
		}
	}
	return chain, nil
}
