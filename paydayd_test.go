// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paydaycoin/paydayd/chaincfg"
)

func TestCollectSeeds(t *testing.T) {
	mainnet := chaincfg.MainNetParams()
	failing := func(string) ([]net.IP, error) {
		return nil, errors.New("offline")
	}

	// Fixed seeds only never touches DNS.
	addrs, err := collectSeeds(mainnet, func(string) ([]net.IP, error) {
		t.Fatal("unexpected DNS lookup")
		return nil, nil
	}, true)
	require.NoError(t, err)
	require.Len(t, addrs, len(mainnet.FixedSeeds))

	// A dead resolver falls back to the fixed table.
	addrs, err = collectSeeds(mainnet, failing, false)
	require.NoError(t, err)
	require.Len(t, addrs, len(mainnet.FixedSeeds))

	answering := func(string) ([]net.IP, error) {
		return []net.IP{net.ParseIP("19.18.17.10")}, nil
	}
	addrs, err = collectSeeds(mainnet, answering, false)
	require.NoError(t, err)
	require.Len(t, addrs, len(mainnet.DNSSeeds))
	for _, addr := range addrs {
		require.Equal(t, mainnet.DefaultPort, addr.Port)
	}
}
