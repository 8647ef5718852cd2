// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
)

const (
	// maxTxPerBlock bounds the number of transactions read for one block.
	maxTxPerBlock = 1000000

	// maxBlockSigSize bounds the block signature read off the wire.
	maxBlockSigSize = 80
)

// MsgBlock implements a payday block.  Proof-of-stake blocks carry the
// staker's signature after the transactions; proof-of-work blocks, including
// the genesis block, leave it empty.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	Signature    []byte
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// IsProofOfStake reports whether the block's second transaction is a
// coinstake, i.e. it spends a real output and its first output is empty.
func (msg *MsgBlock) IsProofOfStake() bool {
	if len(msg.Transactions) < 2 {
		return false
	}
	tx := msg.Transactions[1]
	return len(tx.TxIn) > 0 && !tx.IsCoinBase() &&
		len(tx.TxOut) >= 2 && tx.TxOut[0].IsEmpty()
}

// Serialize encodes the block to w.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	if err := msg.Header.Serialize(w); err != nil {
		return err
	}
	err := btcwire.WriteVarInt(w, ProtocolVersion, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return btcwire.WriteVarBytes(w, ProtocolVersion, msg.Signature)
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	if err := msg.Header.Deserialize(r); err != nil {
		return err
	}
	count, err := btcwire.ReadVarInt(r, ProtocolVersion)
	if err != nil {
		return err
	}
	if count > maxTxPerBlock {
		return fmt.Errorf("too many transactions to fit into a block "+
			"[count %d, max %d]", count, maxTxPerBlock)
	}
	msg.Transactions = make([]*MsgTx, 0, count)
	for i := uint64(0); i < count; i++ {
		tx := new(MsgTx)
		if err := tx.Deserialize(r); err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, tx)
	}
	msg.Signature, err = btcwire.ReadVarBytes(r, ProtocolVersion,
		maxBlockSigSize, "blocksig")
	return err
}

// NewMsgBlock returns a new payday block with the given header and no
// transactions.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0, 1),
	}
}
