// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

// Build is a convenience facade over New and repeated Append calls: it
// constructs a chain from a root and zero or more links in a single call,
// for call sites that know every link statically. It has identical
// semantics and error kinds to the stepwise form — New followed by
// Append, Append, ... — and stops at the first failure.
func Build(store RootKeyStore, root Root, links ...Link) (TrustChain, error) {
	chain, err := New(store, root)
	if err != nil {
		return TrustChain{}, err
	}
	for _, link := range links {
		chain, err = chain.Append(link)
		if err != nil {
			return TrustChain{}, err
		}
	}
	return chain, nil
}

// BuildExpiring is Build's counterpart for the v3-with-expiry dialect.
func BuildExpiring(store RootKeyStore, root Root, links ...ExpiringLink) (ExpiringChain, error) {
	chain, err := NewExpiring(store, root)
	if err != nil {
		return ExpiringChain{}, err
	}
	for _, link := range links {
		chain, err = chain.Append(link)
		if err != nil {
			return ExpiringChain{}, err
		}
	}
	return chain, nil
}
