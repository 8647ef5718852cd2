// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"

	"github.com/paydaycoin/paydayd/wire"
)

// newTestNetParams returns the network parameters for the payday test
// network.  Testnet shares the mainnet genesis block, so it is derived from
// main and only overrides what differs.
func newTestNetParams(main *Params) *Params {
	p := *main
	p.Name = "testnet"
	p.ID = TestNet
	p.Net = wire.TestNet
	p.DataSubdir = "testnet"

	hash := mustVerifyGenesis(p.Name, p.GenesisBlock,
		newHashFromStr(genesisHashStr), newHashFromStr(genesisMerkleRootStr))
	p.GenesisHash = &hash

	p.Base58Prefixes = [NumBase58Types][]byte{
		PubKeyAddress:  {73},
		ScriptAddress:  {196},
		SecretKey:      {83},
		StealthAddress: {40},
		ExtPublicKey:   {0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		ExtSecretKey:   {0x04, 0x35, 0x83, 0x94}, // starts with tprv
	}

	p.DNSSeeds = nil
	p.FixedSeeds = AppendSeeds(nil, testNetSeeds, p.DefaultPort)

	// Never switch to proof-of-stake only.
	p.LastPOWBlock = math.MaxInt32
	return &p
}
