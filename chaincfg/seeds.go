// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"math/bits"
	"math/rand"
	"net"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/paydaycoin/paydayd/wire"
)

// secondsInWeek is the width of the window seed timestamps are spread over.
const secondsInWeek = 7 * 24 * 60 * 60

// Hooks for tests.
var (
	seedNow   = time.Now
	seedInt63 = rand.Int63n
)

// AppendSeeds expands a packed seed table into address records and appends
// them to out.  Each word of raw is an IPv4 address in host (little-endian)
// order.  Every record gets port and a last-seen time between one and two
// weeks in the past so that nodes bootstrapped from the same binary do not
// all prefer the same seed.
func AppendSeeds(out []*btcwire.NetAddress, raw []uint32, port uint16) []*btcwire.NetAddress {
	now := seedNow().Unix()
	for _, word := range raw {
		// Swap to network order and lay the result out in memory the
		// way a little-endian host would.
		var octets [net.IPv4len]byte
		binary.LittleEndian.PutUint32(octets[:], bits.ReverseBytes32(word))

		ip := net.IPv4(octets[0], octets[1], octets[2], octets[3])
		addr := btcwire.NewNetAddressIPPort(ip, port, wire.SFNodeNetwork)
		addr.Timestamp = time.Unix(
			now-seedInt63(secondsInWeek)-secondsInWeek, 0)
		out = append(out, addr)
	}
	return out
}

// PackSeed returns the packed seed table word for the IPv4 address a.b.c.d.
func PackSeed(a, b, c, d byte) uint32 {
	return bits.ReverseBytes32(binary.LittleEndian.Uint32([]byte{a, b, c, d}))
}
