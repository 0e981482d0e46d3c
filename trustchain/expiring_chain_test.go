// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/ed25519"
)

func signExpiring(priv ed25519.PrivateKey, link ExpiringLink) Signature {
	raw := ed25519.Sign(priv, link.signedMessage())
	sig, _ := SignatureFromBytes(raw)
	return sig
}

func buildExpiringChain(t *testing.T, length int) (ExpiringChain, []ed25519.PrivateKey) {
	t.Helper()
	rootPub, rootPriv := testKeyPair(t, 0x21)
	store := ListStore{rootPub}
	chain, err := NewExpiring(store, NewRoot(rootPub))
	if err != nil {
		t.Fatalf("NewExpiring: %v", err)
	}

	nb, _ := NewDate(2020, 1, 1)
	na, _ := NewDate(2030, 1, 1)
	exp, err := NewExpiry(nb, na)
	if err != nil {
		t.Fatalf("NewExpiry: %v", err)
	}

	privs := []ed25519.PrivateKey{rootPriv}
	prevPriv := rootPriv
	for i := 1; i < length; i++ {
		pub, priv := testKeyPair(t, byte(0x30+i))
		unsigned := NewExpiringLink(pub, exp, Signature{})
		sig := signExpiring(prevPriv, unsigned)
		chain, err = chain.Append(NewExpiringLink(pub, exp, sig))
		if err != nil {
			t.Fatalf("Append link %d: %v", i, err)
		}
		privs = append(privs, priv)
		prevPriv = priv
	}
	return chain, privs
}

func TestExpiringChainLengthsOneThroughFive(t *testing.T) {
	for length := 1; length <= MaxChainLinks; length++ {
		chain, _ := buildExpiringChain(t, length)
		if chain.Len() != length {
			t.Errorf("length %d: Len() = %d", length, chain.Len())
		}
	}
}

func TestExpiringChainAppendRejectsTamperedExpiry(t *testing.T) {
	rootPub, rootPriv := testKeyPair(t, 0x21)
	store := ListStore{rootPub}
	chain, err := NewExpiring(store, NewRoot(rootPub))
	if err != nil {
		t.Fatalf("NewExpiring: %v", err)
	}

	nb, _ := NewDate(2020, 1, 1)
	na, _ := NewDate(2030, 1, 1)
	exp, _ := NewExpiry(nb, na)
	nextPub, _ := testKeyPair(t, 0x31)

	unsigned := NewExpiringLink(nextPub, exp, Signature{})
	sig := signExpiring(rootPriv, unsigned)

	tamperedNb, _ := NewDate(2021, 1, 1)
	tamperedExp, _ := NewExpiry(tamperedNb, na)

	if _, err := chain.Append(NewExpiringLink(nextPub, tamperedExp, sig)); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature for tampered expiry, got %v", err)
	}
}

func TestExpiringChainBytesLayout(t *testing.T) {
	chain, _ := buildExpiringChain(t, 2)
	raw := chain.Bytes()

	wantLen := HeaderSize + 1 + PublicKeySize + ExpiringLinkSize
	if len(raw) != wantLen {
		t.Fatalf("length = %d, want %d", len(raw), wantLen)
	}
	if !bytes.Equal(raw[:HeaderSize], TC_V3_Header[:]) {
		t.Error("expected v3 header on expiring chain wire format")
	}
}

func TestExpiringChainVerifyData(t *testing.T) {
	chain, privs := buildExpiringChain(t, 2)
	data := []byte("attested payload")
	sig, _ := SignatureFromBytes(ed25519.Sign(privs[len(privs)-1], data))

	if err := chain.VerifyData(sig, data); err != nil {
		t.Errorf("VerifyData: %v", err)
	}
}
