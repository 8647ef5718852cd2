// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paydayutil

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
)

const checksumLen = 4

var (
	// ErrChecksum indicates that the checksum of a check-encoded string
	// does not verify against the checksum.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidFormat indicates that the check-encoded string has an
	// invalid format.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// checksum returns the first four bytes of the double sha256 of input.
func checksum(input []byte) (cksum [checksumLen]byte) {
	copy(cksum[:], chainhash.DoubleHashB(input))
	return
}

// CheckEncode prepends the version prefix, which may be longer than one byte
// for extended keys, and appends a four byte checksum before base58 encoding.
func CheckEncode(prefix, payload []byte) string {
	b := make([]byte, 0, len(prefix)+len(payload)+checksumLen)
	b = append(b, prefix...)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and a prefix
// of prefixLen bytes, and verifies the checksum.
func CheckDecode(input string, prefixLen int) (prefix, payload []byte, err error) {
	decoded := base58.Decode(input)
	if len(decoded) < prefixLen+checksumLen {
		return nil, nil, ErrInvalidFormat
	}

	body := decoded[:len(decoded)-checksumLen]
	cksum := checksum(body)
	if !bytes.Equal(cksum[:], decoded[len(decoded)-checksumLen:]) {
		return nil, nil, ErrChecksum
	}
	return body[:prefixLen], body[prefixLen:], nil
}
