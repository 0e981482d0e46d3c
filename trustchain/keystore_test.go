// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

import "testing"

func TestListStoreContains(t *testing.T) {
	a, _ := testKeyPair(t, 0x01)
	b, _ := testKeyPair(t, 0x02)
	c, _ := testKeyPair(t, 0x03)

	store := ListStore{a, b}

	if !store.Contains(a) {
		t.Error("expected store to contain a")
	}
	if !store.Contains(b) {
		t.Error("expected store to contain b")
	}
	if store.Contains(c) {
		t.Error("expected store to not contain c")
	}
}

func TestListStoreEmpty(t *testing.T) {
	a, _ := testKeyPair(t, 0x01)
	var store ListStore
	if store.Contains(a) {
		t.Error("expected empty store to contain nothing")
	}
}
