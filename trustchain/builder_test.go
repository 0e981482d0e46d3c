// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import "testing"

func TestBuildMatchesStepwiseConstruction(t *testing.T) {
	rootPub, rootPriv := testKeyPair(t, 0x01)
	midPub, midPriv := testKeyPair(t, 0x02)
	tailPub, _ := testKeyPair(t, 0x03)

	store := ListStore{rootPub}

	midSig := signLink(rootPriv, midPub)
	tailSig := signLink(midPriv, tailPub)

	built, err := Build(store, NewRoot(rootPub),
		NewLink(midPub, midSig),
		NewLink(tailPub, tailSig))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	stepwise, err := New(store, NewRoot(rootPub))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stepwise, err = stepwise.Append(NewLink(midPub, midSig))
	if err != nil {
		t.Fatalf("Append mid: %v", err)
	}
	stepwise, err = stepwise.Append(NewLink(tailPub, tailSig))
	if err != nil {
		t.Fatalf("Append tail: %v", err)
	}

	if built.Len() != stepwise.Len() {
		t.Fatalf("Len mismatch: built=%d stepwise=%d", built.Len(), stepwise.Len())
	}
	if !built.EndKey().Equal(stepwise.EndKey()) {
		t.Error("EndKey mismatch between Build and stepwise construction")
	}
}

func TestBuildStopsAtFirstFailure(t *testing.T) {
	rootPub, _ := testKeyPair(t, 0x01)
	_, wrongPriv := testKeyPair(t, 0x02)
	nextPub, _ := testKeyPair(t, 0x03)

	store := ListStore{rootPub}
	badSig := signLink(wrongPriv, nextPub)

	if _, err := Build(store, NewRoot(rootPub), NewLink(nextPub, badSig)); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestBuildExpiringMatchesStepwiseConstruction(t *testing.T) {
	rootPub, rootPriv := testKeyPair(t, 0x11)
	nextPub, _ := testKeyPair(t, 0x12)
	store := ListStore{rootPub}

	nb, _ := NewDate(2020, 1, 1)
	na, _ := NewDate(2030, 1, 1)
	exp, _ := NewExpiry(nb, na)

	unsigned := NewExpiringLink(nextPub, exp, Signature{})
	sig := signExpiring(rootPriv, unsigned)
	link := NewExpiringLink(nextPub, exp, sig)

	built, err := BuildExpiring(store, NewRoot(rootPub), link)
	if err != nil {
		t.Fatalf("BuildExpiring: %v", err)
	}
	if built.Len() != 2 {
		t.Errorf("Len = %d, want 2", built.Len())
	}

	stepwise, err := NewExpiring(store, NewRoot(rootPub))
	if err != nil {
		t.Fatalf("NewExpiring: %v", err)
	}
	stepwise, err = stepwise.Append(link)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if built.Len() != stepwise.Len() {
		t.Fatalf("Len mismatch: built=%d stepwise=%d", built.Len(), stepwise.Len())
	}
	if !built.EndKey().Equal(stepwise.EndKey()) {
		t.Error("EndKey mismatch between BuildExpiring and stepwise construction")
	}
}
