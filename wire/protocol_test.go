// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaydayNetMessageStart(t *testing.T) {
	tests := []struct {
		net   PaydayNet
		start [4]byte
		name  string
	}{
		{MainNet, [4]byte{0xcf, 0x2a, 0xd3, 0x8e}, "MainNet"},
		{TestNet, [4]byte{0xfc, 0xa2, 0x3d, 0xe8}, "TestNet"},
	}

	for _, test := range tests {
		require.Equal(t, test.start, test.net.MessageStart())
		require.Equal(t, test.net, NetFromMessageStart(test.start))
		require.Equal(t, test.name, test.net.String())
	}

	require.Equal(t, "Unknown PaydayNet (1)", PaydayNet(1).String())
}
