// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paydayutil

import (
	"bytes"
	"fmt"

	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
	"github.com/paydaycoin/paydayd/wire"
)

// OutOfRangeError describes an error due to accessing an element that is out
// of range.
type OutOfRangeError string

// BlockHeightUnknown is the value returned for a block height that is unknown.
const BlockHeightUnknown = int32(-1)

// Error satisfies the error interface and prints human-readable errors.
func (e OutOfRangeError) Error() string {
	return string(e)
}

// Block wraps a wire.MsgBlock and memoizes its X11 hash, its serialization
// and its wrapped transactions on first access.
type Block struct {
	msgBlock        *wire.MsgBlock
	serializedBlock []byte
	blockHash       *chainhash.Hash
	blockHeight     int32
	transactions    []*Tx
}

// MsgBlock returns the underlying wire.MsgBlock for the Block.
func (b *Block) MsgBlock() *wire.MsgBlock {
	return b.msgBlock
}

// Bytes returns the serialized bytes for the Block, caching the result.
func (b *Block) Bytes() ([]byte, error) {
	if len(b.serializedBlock) != 0 {
		return b.serializedBlock, nil
	}

	var w bytes.Buffer
	if err := b.msgBlock.Serialize(&w); err != nil {
		return nil, err
	}
	b.serializedBlock = w.Bytes()
	return b.serializedBlock, nil
}

// Hash returns the block identifier hash for the Block, caching the result.
func (b *Block) Hash() *chainhash.Hash {
	if b.blockHash != nil {
		return b.blockHash
	}

	hash := b.msgBlock.BlockHash()
	b.blockHash = &hash
	return &hash
}

// Tx returns the wrapped transaction at index txNum of the block.
func (b *Block) Tx(txNum int) (*Tx, error) {
	numTx := len(b.msgBlock.Transactions)
	if txNum < 0 || txNum >= numTx {
		str := fmt.Sprintf("transaction index %d is out of range - max %d",
			txNum, numTx-1)
		return nil, OutOfRangeError(str)
	}

	if len(b.transactions) == 0 {
		b.transactions = make([]*Tx, numTx)
	}
	if b.transactions[txNum] == nil {
		tx := NewTx(b.msgBlock.Transactions[txNum])
		tx.SetIndex(txNum)
		b.transactions[txNum] = tx
	}
	return b.transactions[txNum], nil
}

// Transactions returns all of the wrapped transactions of the block.
func (b *Block) Transactions() []*Tx {
	for i := range b.msgBlock.Transactions {
		// Index is always in range here.
		b.Tx(i)
	}
	return b.transactions
}

// Height returns the saved height of the block in the block chain.  This value
// will be BlockHeightUnknown if it hasn't already explicitly been set.
func (b *Block) Height() int32 {
	return b.blockHeight
}

// SetHeight sets the height of the block in the block chain.
func (b *Block) SetHeight(height int32) {
	b.blockHeight = height
}

// NewBlock returns a new instance of a block given an underlying
// wire.MsgBlock.
func NewBlock(msgBlock *wire.MsgBlock) *Block {
	return &Block{
		msgBlock:    msgBlock,
		blockHeight: BlockHeightUnknown,
	}
}

// NewBlockFromBytes returns a new instance of a block given the serialized
// bytes.
func NewBlockFromBytes(serializedBlock []byte) (*Block, error) {
	var msgBlock wire.MsgBlock
	if err := msgBlock.Deserialize(bytes.NewReader(serializedBlock)); err != nil {
		return nil, err
	}
	b := NewBlock(&msgBlock)
	b.serializedBlock = serializedBlock
	return b, nil
}

// Tx wraps a wire.MsgTx and memoizes its hash.
type Tx struct {
	msgTx   *wire.MsgTx
	txHash  *chainhash.Hash
	txIndex int
}

// TxIndexUnknown is the value returned for a transaction index that is
// unknown.
const TxIndexUnknown = -1

// MsgTx returns the underlying wire.MsgTx for the transaction.
func (t *Tx) MsgTx() *wire.MsgTx {
	return t.msgTx
}

// Hash returns the hash of the transaction, caching the result.
func (t *Tx) Hash() *chainhash.Hash {
	if t.txHash != nil {
		return t.txHash
	}

	hash := t.msgTx.TxHash()
	t.txHash = &hash
	return &hash
}

// Index returns the saved index of the transaction within a block.
func (t *Tx) Index() int {
	return t.txIndex
}

// SetIndex sets the index of the transaction within a block.
func (t *Tx) SetIndex(index int) {
	t.txIndex = index
}

// NewTx returns a new instance of a transaction given an underlying
// wire.MsgTx.
func NewTx(msgTx *wire.MsgTx) *Tx {
	return &Tx{
		msgTx:   msgTx,
		txIndex: TxIndexUnknown,
	}
}
