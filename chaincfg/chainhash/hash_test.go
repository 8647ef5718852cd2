// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// merkleRootStr is the merkle root of the payday genesis block.
const merkleRootStr = "6aa0342003fef32d0416d3cb3853bf056c8ed42dcd1e6d8bab28af1452ba60a3"

func TestNewHashFromStr(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{
			in:   merkleRootStr,
			want: merkleRootStr,
		},
		{
			// Missing characters are zero padded on the displayed
			// (most significant) side.
			in:   "1",
			want: "0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			in:   "",
			want: "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			in:      merkleRootStr + "00",
			wantErr: ErrHashStrSize,
		},
	}

	for _, test := range tests {
		h, err := NewHashFromStr(test.in)
		if test.wantErr != nil {
			require.ErrorIs(t, err, test.wantErr)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, test.want, h.String())
	}

	_, err := NewHashFromStr("zz")
	require.Error(t, err)
}

func TestHashByteOrder(t *testing.T) {
	h, err := NewHashFromStr(merkleRootStr)
	require.NoError(t, err)

	// Internal order is the reverse of the displayed order.
	displayed, err := hex.DecodeString(merkleRootStr)
	require.NoError(t, err)
	require.Equal(t, displayed[0], h[HashSize-1])
	require.Equal(t, displayed[HashSize-1], h[0])

	clone := h.CloneBytes()
	clone[0] ^= 0xff
	require.NotEqual(t, clone[0], h[0])

	other, err := NewHash(h[:])
	require.NoError(t, err)
	require.True(t, other.IsEqual(h))
	require.False(t, other.IsEqual(nil))
	require.True(t, (*Hash)(nil).IsEqual(nil))

	_, err = NewHash(h[:HashSize-1])
	require.Error(t, err)
}

func TestHashJSON(t *testing.T) {
	h, err := NewHashFromStr(merkleRootStr)
	require.NoError(t, err)

	b, err := json.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, `"`+merkleRootStr+`"`, string(b))

	var decoded Hash
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, *h, decoded)
}

func TestDoubleHash(t *testing.T) {
	// sha256d of the empty string.
	const want = "56944c5d3f98413ef45cf54545538103cc9f298e0575820ad3591376e2e0f65d"
	h := DoubleHashH(nil)
	require.Equal(t, want, h.String())
	require.Equal(t, h[:], DoubleHashB(nil))

	single := HashH([]byte("payday"))
	require.Equal(t, single[:], HashB([]byte("payday")))
}

// TestX11Dash checks X11H against the Dash mainnet genesis header, a public
// X11 vector that does not depend on any payday constant.
func TestX11Dash(t *testing.T) {
	const (
		header = "01000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"c762a6567f3cc092f0684bb62b7e00a84890b990f07cc71a6bb58d64b98e02e0" +
			"022ddb52" + "f0ff0f1e" + "c23fb901"
		want = "00000ffd590b1485b3caadc19b22e6379c733355108f107a430458cdf3407ab6"
	)

	b, err := hex.DecodeString(header)
	require.NoError(t, err)
	require.Len(t, b, 80)

	h := X11H(b)
	require.Equal(t, want, h.String())

	// A fresh hasher per call leaves no state behind.
	require.Equal(t, h, X11H(b))
}
