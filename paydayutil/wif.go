// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paydayutil

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/paydaycoin/paydayd/chaincfg"
)

// compressMagic is the magic byte used to identify a WIF encoding for
// an address created from a compressed serialized public key.
const compressMagic byte = 0x01

// ErrMalformedPrivateKey describes an error where a WIF-encoded private
// key cannot be decoded due to being improperly formatted.
var ErrMalformedPrivateKey = errors.New("malformed private key")

// WIF contains the individual components described by the Wallet Import Format
// (WIF).  A WIF string is typically used to represent a private key and its
// associated address in a way that may be easily copied and imported into or
// exported from wallet software.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *btcec.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a
	// compressed (33-byte) serialized public key, rather than an
	// uncompressed (65-byte) one.
	CompressPubKey bool

	// netID is the secret key prefix of the network the key is for.
	netID []byte
}

// NewWIF creates a new WIF structure to export an address and its private key
// as a string encoded in the Wallet Import Format.
func NewWIF(privKey *btcec.PrivateKey, params *chaincfg.Params, compress bool) *WIF {
	return &WIF{privKey, compress, params.Base58Prefix(chaincfg.SecretKey)}
}

// IsForNet returns whether or not the decoded WIF structure is associated
// with the passed payday network.
func (w *WIF) IsForNet(params *chaincfg.Params) bool {
	return bytes.Equal(w.netID, params.Base58Prefixes[chaincfg.SecretKey])
}

// String creates the Wallet Import Format string encoding of a WIF structure.
func (w *WIF) String() string {
	payload := w.PrivKey.Serialize()
	if w.CompressPubKey {
		payload = append(payload, compressMagic)
	}
	return CheckEncode(w.netID, payload)
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format.
func (w *WIF) SerializePubKey() []byte {
	if w.CompressPubKey {
		return w.PrivKey.PubKey().SerializeCompressed()
	}
	return w.PrivKey.PubKey().SerializeUncompressed()
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format.
func DecodeWIF(wif string) (*WIF, error) {
	prefix, payload, err := CheckDecode(wif, 1)
	if err != nil {
		return nil, err
	}

	var compress bool
	switch len(payload) {
	case btcec.PrivKeyBytesLen + 1:
		if payload[btcec.PrivKeyBytesLen] != compressMagic {
			return nil, ErrMalformedPrivateKey
		}
		compress = true
	case btcec.PrivKeyBytesLen:
	default:
		return nil, ErrMalformedPrivateKey
	}

	privKey, _ := btcec.PrivKeyFromBytes(payload[:btcec.PrivKeyBytesLen])
	return &WIF{privKey, compress, prefix}, nil
}
