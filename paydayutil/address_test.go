// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paydayutil

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/paydaycoin/paydayd/chaincfg"
)

const dummyHash160 = "f90c80821a10cbba3ebf406e73c68eb8c068d824"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecodeDarksendDummyAddress(t *testing.T) {
	mainnet := chaincfg.MainNetParams()

	addr, err := DecodeAddress(mainnet.DarksendPoolDummyAddress, mainnet)
	require.NoError(t, err)
	require.IsType(t, &AddressPubKeyHash{}, addr)
	require.Equal(t, dummyHash160, hex.EncodeToString(addr.ScriptAddress()))
	require.Equal(t, mainnet.DarksendPoolDummyAddress, addr.EncodeAddress())
	require.True(t, addr.IsForNet(mainnet))
	require.False(t, addr.IsForNet(chaincfg.TestNetParams()))

	_, err = DecodeAddress(mainnet.DarksendPoolDummyAddress, chaincfg.TestNetParams())
	require.ErrorIs(t, err, ErrWrongNetwork)
}

func TestEncodeAddresses(t *testing.T) {
	hash := mustHex(t, dummyHash160)

	tests := []struct {
		name   string
		params *chaincfg.Params
		p2sh   bool
		want   string
	}{
		{"mainnet p2pkh", chaincfg.MainNetParams(), false, "MWc1TrChdsnY7bPJbQDeyhkyeC8YHmzrx1"},
		{"mainnet p2sh", chaincfg.MainNetParams(), true, "bbS7vednVC1CjmGLT5sox6HWfr9ZEKNmQF"},
		{"testnet p2pkh", chaincfg.TestNetParams(), false, "WmNt7M4Ky2SgvZbJA3sz8b257o4EfkHtqX"},
		{"testnet p2sh", chaincfg.TestNetParams(), true, "2NFx5DhimJDSTWsjxAerBn1VqXqkG5kaWCN"},
	}

	for _, test := range tests {
		var (
			addr Address
			err  error
		)
		if test.p2sh {
			addr, err = NewAddressScriptHashFromHash(hash, test.params)
		} else {
			addr, err = NewAddressPubKeyHash(hash, test.params)
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, addr.EncodeAddress(), test.name)
		require.Equal(t, test.want, addr.String(), test.name)

		decoded, err := DecodeAddress(test.want, test.params)
		require.NoError(t, err, test.name)
		require.Equal(t, addr, decoded, test.name)
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	mainnet := chaincfg.MainNetParams()

	// Last character altered.
	_, err := DecodeAddress("MWc1TrChdsnY7bPJbQDeyhkyeC8YHmzrx2", mainnet)
	require.ErrorIs(t, err, ErrChecksum)

	_, err = DecodeAddress("", mainnet)
	require.ErrorIs(t, err, ErrInvalidFormat)

	// A secret key string has the wrong payload length for an address.
	_, err = DecodeAddress("DH8LTPufXm3Qsx6kuHm85SrRf4g9HjWLWfhpShkrkiZ5NyXJfq1u", mainnet)
	require.ErrorIs(t, err, ErrUnknownAddressType)

	_, err = NewAddressPubKeyHash([]byte{1, 2, 3}, mainnet)
	require.Error(t, err)
}

func TestHash160(t *testing.T) {
	one := make([]byte, btcec.PrivKeyBytesLen)
	one[len(one)-1] = 1
	_, pub := btcec.PrivKeyFromBytes(one)

	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6",
		hex.EncodeToString(Hash160(pub.SerializeCompressed())))
}

func TestWIF(t *testing.T) {
	one := make([]byte, btcec.PrivKeyBytesLen)
	one[len(one)-1] = 1
	priv, _ := btcec.PrivKeyFromBytes(one)
	mainnet := chaincfg.MainNetParams()

	tests := []struct {
		compress bool
		want     string
	}{
		{true, "DH8LTPufXm3Qsx6kuHm85SrRf4g9HjWLWfhpShkrkiZ5NyXJfq1u"},
		{false, "3nLneFFejK8oC6EYF7WwAcmH1U7bxSwgK3swFS6QWPZBxpZscUy"},
	}

	for _, test := range tests {
		wif := NewWIF(priv, mainnet, test.compress)
		require.Equal(t, test.want, wif.String())

		decoded, err := DecodeWIF(test.want)
		require.NoError(t, err)
		require.Equal(t, test.compress, decoded.CompressPubKey)
		require.Equal(t, one, decoded.PrivKey.Serialize())
		require.True(t, decoded.IsForNet(mainnet))

		// Testnet shares the secret key prefix.
		require.True(t, decoded.IsForNet(chaincfg.TestNetParams()))
		require.Equal(t, wif.SerializePubKey(), decoded.SerializePubKey())
	}

	_, err := DecodeWIF("MWc1TrChdsnY7bPJbQDeyhkyeC8YHmzrx1")
	require.ErrorIs(t, err, ErrMalformedPrivateKey)
}

func TestCheckEncodeMultiBytePrefix(t *testing.T) {
	xpub := chaincfg.MainNetParams().Base58Prefix(chaincfg.ExtPublicKey)
	payload := mustHex(t, "00112233")

	encoded := CheckEncode(xpub, payload)
	prefix, got, err := CheckDecode(encoded, len(xpub))
	require.NoError(t, err)
	require.Equal(t, xpub, prefix)
	require.Equal(t, payload, got)
}

func TestNetworkDataDir(t *testing.T) {
	root := filepath.Join("var", "paydayd")
	require.Equal(t, root, NetworkDataDir(root, chaincfg.MainNetParams()))
	require.Equal(t, filepath.Join(root, "testnet"),
		NetworkDataDir(root, chaincfg.TestNetParams()))
	require.NotEmpty(t, AppDataDir())
}
