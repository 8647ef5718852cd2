// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/txscript"

	"github.com/paydaycoin/paydayd/blockchain"
	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
	"github.com/paydaycoin/paydayd/wire"
)

const (
	// genesisTimestamp is Sat, 13 Oct 2018 00:00:00 UTC.  It is used for
	// both the coinbase transaction and the block header.
	genesisTimestamp = 1539388800

	// genesisBits is the compact difficulty of the genesis block.
	genesisBits = 0x1e0ffff0 // 504365040

	// genesisNonce is the nonce of the genesis block.
	genesisNonce = 10285

	// genesisBanner is pushed into the genesis coinbase signature script.
	genesisBanner = "Start PayDay Coin at Saturday, 13-Oct-18 00:00:00 UTC (Test)"

	// genesisHashStr and genesisMerkleRootStr are the expected digests of
	// the genesis block shared by mainnet and testnet.
	genesisHashStr       = "02a5367b5a7755c16c79ca39fe34ab336347998ede8cd4552cfe1b00b95a276e"
	genesisMerkleRootStr = "6aa0342003fef32d0416d3cb3853bf056c8ed42dcd1e6d8bab28af1452ba60a3"
)

// GenesisMismatchError describes a genesis block whose computed digests do
// not match the hard-coded ones.
type GenesisMismatchError struct {
	Field string
	Got   chainhash.Hash
	Want  chainhash.Hash
}

// Error satisfies the error interface and prints human-readable errors.
func (e GenesisMismatchError) Error() string {
	return fmt.Sprintf("genesis %s mismatch: got %v, want %v", e.Field,
		e.Got, e.Want)
}

// genesisCoinbaseScript returns the signature script of the genesis coinbase:
// OP_0, a push of the number 42 and a push of the banner.
func genesisCoinbaseScript(banner string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(42).
		AddData([]byte(banner)).
		Script()
}

// newGenesisBlock assembles the genesis block from its constituent constants.
// The merkle root is computed from the single coinbase transaction.
func newGenesisBlock(banner string, timestamp int64, bits, nonce uint32) (*wire.MsgBlock, error) {
	script, err := genesisCoinbaseScript(banner)
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(1, uint32(timestamp))
	coinbase.AddTxIn(wire.NewTxIn(
		wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), script))
	coinbase.AddTxOut(wire.NewTxOut(0, nil))

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: chainhash.Hash{}, // All zero.
			Timestamp: time.Unix(timestamp, 0),
			Bits:      bits,
			Nonce:     nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = blockchain.CalcMerkleRoot(block.Transactions)
	return block, nil
}

// verifyGenesis hashes block and compares the result and the merkle root with
// the expected digests.
func verifyGenesis(block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash) (chainhash.Hash, error) {
	hash := block.BlockHash()
	if hash != *wantHash {
		return hash, GenesisMismatchError{"hash", hash, *wantHash}
	}

	merkle := blockchain.CalcMerkleRoot(block.Transactions)
	if merkle != block.Header.MerkleRoot {
		return hash, GenesisMismatchError{"merkle root", merkle,
			block.Header.MerkleRoot}
	}
	if merkle != *wantMerkle {
		return hash, GenesisMismatchError{"merkle root", merkle, *wantMerkle}
	}
	return hash, nil
}

// mustVerifyGenesis is verifyGenesis that logs the block and panics on
// mismatch.  A mismatch means this binary would fork off the network, so
// there is nothing to recover.
func mustVerifyGenesis(net string, block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash) chainhash.Hash {
	hash, err := verifyGenesis(block, wantHash, wantMerkle)
	if err != nil {
		log.Criticalf("Genesis block for %s does not match:", net)
		log.Criticalf("Genesis hash: %v", hash)
		log.Criticalf("Genesis time: %d", block.Header.Timestamp.Unix())
		log.Criticalf("Genesis bits: %d", block.Header.Bits)
		log.Criticalf("Genesis nonce: %d", block.Header.Nonce)
		log.Criticalf("Genesis merkle: %v", block.Header.MerkleRoot)
		panic(fmt.Sprintf("%s: %v", net, err))
	}
	return hash
}

// mustNewGenesisBlock builds the genesis block from the package constants and
// panics if the script cannot be assembled.
func mustNewGenesisBlock() *wire.MsgBlock {
	block, err := newGenesisBlock(genesisBanner, genesisTimestamp,
		genesisBits, genesisNonce)
	if err != nil {
		panic(err)
	}
	return block
}
