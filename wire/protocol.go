// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"

	btcwire "github.com/btcsuite/btcd/wire"
)

// ProtocolVersion is the latest protocol version this package supports.
const ProtocolVersion uint32 = 60014

// SFNodeNetwork indicates a peer is a full node.  Fixed and DNS seeds are
// assumed to offer at least this service.
const SFNodeNetwork = btcwire.SFNodeNetwork

// PaydayNet represents which payday network a message belongs to.  It is the
// little-endian reading of the four message start bytes that prefix every
// peer-to-peer frame.
type PaydayNet uint32

// Constants used to indicate the message payday network.  They can also be
// used to seek to the next message when a stream's state is unknown.
const (
	// MainNet represents the main payday network (cf 2a d3 8e).
	MainNet PaydayNet = 0x8ed32acf

	// TestNet represents the payday test network (fc a2 3d e8).
	TestNet PaydayNet = 0xe83da2fc
)

// pnStrings is a map of payday networks back to their constant names for
// pretty printing.
var pnStrings = map[PaydayNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
}

// String returns the PaydayNet in human-readable form.
func (n PaydayNet) String() string {
	if s, ok := pnStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown PaydayNet (%d)", uint32(n))
}

// MessageStart returns the four magic bytes in the order they appear on the
// wire.
func (n PaydayNet) MessageStart() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}

// NetFromMessageStart returns the PaydayNet whose wire magic is b.
func NetFromMessageStart(b [4]byte) PaydayNet {
	return PaydayNet(binary.LittleEndian.Uint32(b[:]))
}
