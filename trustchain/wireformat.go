// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trustchain

// HeaderSize is the length in bytes of the common wire-format header:
// the two-byte "TC" magic followed by a big-endian uint16 version.
const HeaderSize = 4

// LinkSize is the length in bytes of a non-root link in the no-expiry
// wire formats (v2 and v3): a public key followed by the signature
// attesting it.
const LinkSize = PublicKeySize + SignatureSize

// ExpiringLinkSize is the length in bytes of a non-root link in the
// v3-with-expiry wire format: a public key, its expiry window, and the
// signature attesting key||expiry.
const ExpiringLinkSize = PublicKeySize + ExpirySize + SignatureSize

// VersionV2 and VersionV3 are the two supported big-endian uint16 version
// fields following the "TC" magic. V2's length byte counts links in
// addition to the root; V3's length byte counts the total number of keys,
// root included.
const (
	VersionV2 uint16 = 0x0002
	VersionV3 uint16 = 0x0003
)

// TC_V2_Header and TC_V3_Header are the 4-byte headers ("TC" followed by
// the big-endian version) for the two supported wire formats.
var (
	TC_V2_Header = [HeaderSize]byte{0x54, 0x43, 0x00, 0x02}
	TC_V3_Header = [HeaderSize]byte{0x54, 0x43, 0x00, 0x03}
)
