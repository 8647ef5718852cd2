// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
)

// genesisSigScript is OP_0, a one byte push of 42 and the 60 byte banner
// "Start PayDay Coin at Saturday, 13-Oct-18 00:00:00 UTC (Test)".
const genesisSigScript = "00012a3c53746172742050617944617920436f696e20617420" +
	"53617475726461792c2031332d4f63742d31382030303a30303a30302055544320" +
	"285465737429"

func genesisCoinbase(t *testing.T) *MsgTx {
	script, err := hex.DecodeString(genesisSigScript)
	require.NoError(t, err)

	tx := NewMsgTx(1, 1539388800)
	tx.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{}, MaxPrevOutIndex), script))
	tx.AddTxOut(NewTxOut(0, nil))
	return tx
}

func TestGenesisCoinbaseHash(t *testing.T) {
	tx := genesisCoinbase(t)
	require.True(t, tx.IsCoinBase())
	require.True(t, tx.TxOut[0].IsEmpty())

	// 4 version + 4 time + 1 + 41 + 64 script + 1 + 9 + 4 locktime.
	require.Equal(t, 128, tx.SerializeSize())

	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))
	require.Equal(t, tx.SerializeSize(), buf.Len())

	// A single transaction block has its txid as the merkle root.
	want := "6aa0342003fef32d0416d3cb3853bf056c8ed42dcd1e6d8bab28af1452ba60a3"
	require.Equal(t, want, tx.TxHash().String())
}

func TestMsgTxDeserialize(t *testing.T) {
	tx := genesisCoinbase(t)
	tx.AddTxOut(NewTxOut(5000, []byte{0x76, 0xa9}))
	tx.LockTime = 77

	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))

	var decoded MsgTx
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	require.Equal(t, tx.TxHash(), decoded.TxHash())
	require.Equal(t, uint32(1539388800), decoded.Time)
	require.Equal(t, uint32(77), decoded.LockTime)
	require.Len(t, decoded.TxOut, 2)
	require.Equal(t, int64(5000), decoded.TxOut[1].Value)

	// Truncated input.
	err := decoded.Deserialize(bytes.NewReader(buf.Bytes()[:buf.Len()-1]))
	require.Error(t, err)
}

func TestIsCoinBase(t *testing.T) {
	tx := genesisCoinbase(t)
	tx.TxIn[0].PreviousOutPoint.Index = 0
	require.False(t, tx.IsCoinBase())

	tx = genesisCoinbase(t)
	tx.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{1}, 0), nil))
	require.False(t, tx.IsCoinBase())
}

func TestMsgBlockSerialize(t *testing.T) {
	tx := genesisCoinbase(t)
	merkle := tx.TxHash()
	header := NewBlockHeader(1, &chainhash.Hash{}, &merkle, 504365040, 10285)
	header.Timestamp = time.Unix(1539388800, 0)

	block := NewMsgBlock(header)
	block.AddTransaction(tx)
	require.False(t, block.IsProofOfStake())

	var hbuf bytes.Buffer
	require.NoError(t, block.Header.Serialize(&hbuf))
	require.Equal(t, BlockHeaderLen, hbuf.Len())

	var buf bytes.Buffer
	require.NoError(t, block.Serialize(&buf))
	require.Equal(t, BlockHeaderLen+1+tx.SerializeSize()+1, buf.Len())

	var decoded MsgBlock
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	require.Equal(t, block.Header, decoded.Header)
	require.Len(t, decoded.Transactions, 1)
	require.Equal(t, merkle, decoded.Transactions[0].TxHash())
	require.Empty(t, decoded.Signature)
}

func TestIsProofOfStake(t *testing.T) {
	block := NewMsgBlock(&BlockHeader{})
	block.AddTransaction(genesisCoinbase(t))

	coinstake := NewMsgTx(1, 1539388800)
	coinstake.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{9}, 1), nil))
	coinstake.AddTxOut(NewTxOut(0, nil))
	coinstake.AddTxOut(NewTxOut(100, []byte{0x51}))
	block.AddTransaction(coinstake)

	require.True(t, block.IsProofOfStake())
}
