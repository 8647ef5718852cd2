// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/paydaycoin/paydayd/wire"
)

// alertPubKey is the key allowed to sign network alerts on every network.
const alertPubKey = "04e317aba52be44f4cb4fb5a030fa014328cc85415dcdd1172cfaca76af8dd" +
	"39f58c99b2ff743fd742cdaa2641d6817aa861e60bf751c029c2703f08dc726f1cd2"

// newMainNetParams returns the network parameters for the main payday
// network.  It panics if the genesis block does not hash to the hard-coded
// values.
func newMainNetParams() *Params {
	p := &Params{
		Name:         "mainnet",
		ID:           MainNet,
		Net:          wire.MainNet,
		AlertPubKey:  hexDecode(alertPubKey),
		DefaultPort:  7214,
		RPCPort:      7215,
		PowLimit:     powLimit,
		PowLimitBits: genesisBits,
	}

	p.GenesisBlock = mustNewGenesisBlock()
	hash := mustVerifyGenesis(p.Name, p.GenesisBlock,
		newHashFromStr(genesisHashStr), newHashFromStr(genesisMerkleRootStr))
	p.GenesisHash = &hash

	p.Base58Prefixes = [NumBase58Types][]byte{
		PubKeyAddress:  {50}, // starts with M
		ScriptAddress:  {85},
		SecretKey:      {83},
		StealthAddress: {43},
		ExtPublicKey:   {0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
		ExtSecretKey:   {0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	}

	p.DNSSeeds = []DNSSeed{
		{"a.paydaycoin.io", "a.paydaycoin.io"},
		{"b.paydaycoin.io", "b.paydaycoin.io"},
		{"c.paydaycoin.io", "c.paydaycoin.io"},
		{"d.paydaycoin.io", "d.paydaycoin.io"},
		{"e.paydaycoin.io", "e.paydaycoin.io"},
		{"f.paydaycoin.io", "f.paydaycoin.io"},
		{"g.paydaycoin.io", "g.paydaycoin.io"},
		{"h.paydaycoin.io", "h.paydaycoin.io"},
		{"i.paydaycoin.io", "i.paydaycoin.io"},
		{"j.paydaycoin.io", "j.paydaycoin.io"},
	}
	p.FixedSeeds = AppendSeeds(nil, mainNetSeeds, p.DefaultPort)

	p.PoolMaxTransactions = 3
	p.DarksendPoolDummyAddress = "MWc1TrChdsnY7bPJbQDeyhkyeC8YHmzrx1"

	p.LastPOWBlock = 100000
	p.POSStartBlock = 100
	return p
}
