// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paydayutil

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/crypto/ripemd160"

	"github.com/paydaycoin/paydayd/chaincfg"
	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
)

// Hash160Size is the size of a ripemd160(sha256(x)) digest.
const Hash160Size = ripemd160.Size

var (
	// ErrUnknownAddressType describes an error where an address can not
	// decoded as a specific address type due to the string encoding
	// beginning with an identifier byte unknown to the network.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrWrongNetwork describes an error where an address decodes fine
	// but carries another network's version byte.
	ErrWrongNetwork = errors.New("address is for the wrong network")
)

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	h := ripemd160.New()
	h.Write(chainhash.HashB(buf))
	return h.Sum(nil)
}

// Address is an interface type for any type of destination a transaction
// output may spend to.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	String() string

	// EncodeAddress returns the string encoding of the address.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed payday network.
	IsForNet(*chaincfg.Params) bool
}

// hashAddress is the shared body of pay-to-pubkey-hash and pay-to-script-hash
// addresses.
type hashAddress struct {
	hash  [Hash160Size]byte
	netID byte
	kind  chaincfg.Base58Type
}

func newHashAddress(hash []byte, kind chaincfg.Base58Type, params *chaincfg.Params) (hashAddress, error) {
	if len(hash) != Hash160Size {
		return hashAddress{}, fmt.Errorf("%v hash must be %d bytes, got %d",
			kind, Hash160Size, len(hash))
	}
	a := hashAddress{kind: kind}
	a.netID = params.Base58Prefixes[kind][0]
	copy(a.hash[:], hash)
	return a, nil
}

// EncodeAddress returns the base58-check string of the address.
func (a *hashAddress) EncodeAddress() string {
	return CheckEncode([]byte{a.netID}, a.hash[:])
}

// ScriptAddress returns the 20 byte hash the address commits to.
func (a *hashAddress) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the address is associated with the passed
// payday network.
func (a *hashAddress) IsForNet(params *chaincfg.Params) bool {
	return bytes.Equal(params.Base58Prefixes[a.kind], []byte{a.netID})
}

// String returns a human-readable string for the address.  This is equivalent
// to calling EncodeAddress, but is provided so the type can be used as a
// fmt.Stringer.
func (a *hashAddress) String() string {
	return a.EncodeAddress()
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hashAddress
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, params *chaincfg.Params) (*AddressPubKeyHash, error) {
	a, err := newHashAddress(pkHash, chaincfg.PubKeyAddress, params)
	if err != nil {
		return nil, err
	}
	return &AddressPubKeyHash{a}, nil
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hashAddress
}

// NewAddressScriptHash returns a new AddressScriptHash committing to the
// hash160 of serializedScript.
func NewAddressScriptHash(serializedScript []byte, params *chaincfg.Params) (*AddressScriptHash, error) {
	return NewAddressScriptHashFromHash(Hash160(serializedScript), params)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, params *chaincfg.Params) (*AddressScriptHash, error) {
	a, err := newHashAddress(scriptHash, chaincfg.ScriptAddress, params)
	if err != nil {
		return nil, err
	}
	return &AddressScriptHash{a}, nil
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if addr is a valid encoding for a known address type on the given
// network.
func DecodeAddress(addr string, params *chaincfg.Params) (Address, error) {
	prefix, payload, err := CheckDecode(addr, 1)
	if err != nil {
		return nil, fmt.Errorf("decoded address is of unknown format: %w", err)
	}
	if len(payload) != Hash160Size {
		return nil, ErrUnknownAddressType
	}

	switch {
	case bytes.Equal(prefix, params.Base58Prefixes[chaincfg.PubKeyAddress]):
		return NewAddressPubKeyHash(payload, params)
	case bytes.Equal(prefix, params.Base58Prefixes[chaincfg.ScriptAddress]):
		return NewAddressScriptHashFromHash(payload, params)
	}

	// Report a known prefix from another built-in network distinctly.
	for _, other := range []*chaincfg.Params{chaincfg.MainNetParams(), chaincfg.TestNetParams()} {
		if other.ID == params.ID {
			continue
		}
		if bytes.Equal(prefix, other.Base58Prefixes[chaincfg.PubKeyAddress]) ||
			bytes.Equal(prefix, other.Base58Prefixes[chaincfg.ScriptAddress]) {

			return nil, ErrWrongNetwork
		}
	}
	return nil, ErrUnknownAddressType
}
