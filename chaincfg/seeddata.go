// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// mainNetSeeds is the packed mainnet fixed seed table.  Each entry is an IPv4
// address in host byte order, see AppendSeeds.
var mainNetSeeds = []uint32{
	0x1312110a, // 19.18.17.10
	0x1312110b, // 19.18.17.11
	0x1312110c, // 19.18.17.12
	0x13121114, // 19.18.17.20
	0x13121115, // 19.18.17.21
}

// testNetSeeds is the packed testnet fixed seed table.
var testNetSeeds = []uint32{
	0x13121114, // 19.18.17.20
	0x13121115, // 19.18.17.21
}
