// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"

	"gitlab.com/nitya-sattva/go-x11"
)

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// X11H calculates the chained X11 digest of b (blake, bmw, groestl, jh,
// keccak, skein, luffa, cubehash, shavite, simd, echo) truncated to 256 bits.
// Block headers are identified by this digest.
//
// The x11 hasher keeps internal state, so a fresh one is created per call.
func X11H(b []byte) Hash {
	var out Hash
	x11.New().Hash(b, out[:])
	return out
}
