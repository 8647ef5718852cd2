// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

// resetActive clears the selected network so each test starts unselected.
func resetActive(t *testing.T) {
	t.Helper()
	active.Store(nil)
	t.Cleanup(func() { active.Store(nil) })
}

func TestActiveNetParamsBeforeSelect(t *testing.T) {
	resetActive(t)
	require.Panics(t, func() { ActiveNetParams() })
}

func TestSelect(t *testing.T) {
	resetActive(t)

	Select(MainNet)
	first := ActiveNetParams()
	require.Same(t, MainNetParams(), first)

	// Selecting the same network again yields the same profile.
	Select(MainNet)
	require.Same(t, first, ActiveNetParams())

	Select(TestNet)
	require.Same(t, TestNetParams(), ActiveNetParams())
	require.Equal(t, []byte{73}, ActiveNetParams().Base58Prefix(PubKeyAddress))

	require.Panics(t, func() { Select(NetworkID(42)) })
	require.Same(t, TestNetParams(), ActiveNetParams())

	_, ok := ParamsForNetwork(NetworkID(42))
	require.False(t, ok)
}

func TestSelectFromCommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want NetworkID
	}{
		{"absent", nil, MainNet},
		{"other flags", []string{"--datadir=/tmp/x", "-debuglevel=info"}, MainNet},
		{"single dash", []string{"-testnet"}, TestNet},
		{"double dash", []string{"--testnet"}, TestNet},
		{"explicit one", []string{"-testnet=1"}, TestNet},
		{"explicit true", []string{"--testnet=true"}, TestNet},
		{"explicit zero", []string{"-testnet=0"}, MainNet},
		{"garbage", []string{"-testnet=maybe"}, MainNet},
		{"present but empty", []string{"-testnet="}, TestNet},
		{"double dash empty", []string{"--testnet="}, TestNet},
		{"clustered short", []string{"-dinfo"}, MainNet},
		{"mixed", []string{"-datadir=/tmp/x", "-testnet=1", "-printtoconsole"}, TestNet},
	}

	for _, test := range tests {
		resetActive(t)
		require.True(t, SelectFromCommandLine(test.args), test.name)
		require.Equal(t, test.want, ActiveNetParams().ID, test.name)
	}

	resetActive(t)
	require.True(t, SelectFromCommandLine([]string{"-testnet=1"}))
	require.Equal(t, [4]byte{0xfc, 0xa2, 0x3d, 0xe8},
		ActiveNetParams().MessageStart())
}

func TestParseBoolArg(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"1", true},
		{"0", false},
		{"true", true},
		{"false", false},
		{"2", true},
		{"yes", false},
	}

	for _, test := range tests {
		require.Equal(t, test.want, parseBoolArg(test.in), test.in)
	}
}

func TestUseTestNetAbsent(t *testing.T) {
	var f NetworkFlags
	require.False(t, f.UseTestNet())

	empty := ""
	f.TestNet = &empty
	require.True(t, f.UseTestNet())
}

func TestNormalizeArgs(t *testing.T) {
	var opts struct {
		DebugLevel string `short:"d" long:"debuglevel"`
		NetworkFlags
	}
	parser := flags.NewParser(&opts, flags.None)

	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"-testnet"}, []string{"--testnet"}},
		{[]string{"-testnet=0"}, []string{"--testnet=0"}},
		{[]string{"-debuglevel=info"}, []string{"--debuglevel=info"}},
		{[]string{"-dinfo", "-d", "info"}, []string{"-dinfo", "-d", "info"}},
		{[]string{"-printtoconsole"}, []string{"-printtoconsole"}},
		{[]string{"--testnet=1"}, []string{"--testnet=1"}},
		{[]string{"-testnet", "--", "-testnet"}, []string{"--testnet", "--", "-testnet"}},
	}

	for _, test := range tests {
		require.Equal(t, test.want, NormalizeArgs(parser, test.in), test.in)
	}
}
