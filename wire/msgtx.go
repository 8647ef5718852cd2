// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// maxScriptSize bounds scripts read off the wire.
	maxScriptSize = 10000

	// maxTxInOut bounds the number of inputs or outputs read for a single
	// transaction.
	maxTxInOut = 100000
)

// OutPoint defines a payday data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new payday transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return fmt.Sprintf("%v:%d", o.Hash, o.Index)
}

// TxIn defines a payday transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new payday transaction input with the provided
// previous outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a payday transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new payday transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// IsEmpty reports whether the output carries neither value nor script.  The
// first output of a coinstake transaction and the genesis coinbase output
// are empty.
func (t *TxOut) IsEmpty() bool {
	return t.Value == 0 && len(t.PkScript) == 0
}

// MsgTx implements a proof-of-stake payday transaction.  It differs from a
// bitcoin transaction by the Time field that follows the version.
type MsgTx struct {
	Version  int32
	Time     uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new payday transaction with the given version and
// timestamp and no inputs or outputs.
func NewMsgTx(version int32, timestamp uint32) *MsgTx {
	return &MsgTx{
		Version: version,
		Time:    timestamp,
		TxIn:    make([]*TxIn, 0, 1),
		TxOut:   make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not the transaction is a coinbase.  A
// coinbase is a special transaction created by miners that has no inputs.
// This is represented in the block chain by a transaction with a single input
// that has a previous output transaction index set to the maximum value along
// with a zero hash.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == MaxPrevOutIndex && prevOut.Hash == chainhash.Hash{}
}

// TxHash generates the Hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Time 4 bytes + LockTime 4 bytes + serialized varint
	// size for the number of transaction inputs and outputs.
	n := 12 + btcwire.VarIntSerializeSize(uint64(len(msg.TxIn))) +
		btcwire.VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		// Outpoint 36 bytes + Sequence 4 bytes + script.
		n += 40 + btcwire.VarIntSerializeSize(uint64(len(txIn.SignatureScript))) +
			len(txIn.SignatureScript)
	}
	for _, txOut := range msg.TxOut {
		n += 8 + btcwire.VarIntSerializeSize(uint64(len(txOut.PkScript))) +
			len(txOut.PkScript)
	}
	return n
}

// Serialize encodes the transaction to w using the format that is hashed for
// the transaction id and stored on disk.
func (msg *MsgTx) Serialize(w io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(msg.Version))
	binary.LittleEndian.PutUint32(buf[4:], msg.Time)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}

	if err := btcwire.WriteVarInt(w, ProtocolVersion, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := btcwire.WriteVarInt(w, ProtocolVersion, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		binary.LittleEndian.PutUint64(buf[:], uint64(to.Value))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
		if err := btcwire.WriteVarBytes(w, ProtocolVersion, to.PkScript); err != nil {
			return err
		}
	}

	binary.LittleEndian.PutUint32(buf[:4], msg.LockTime)
	_, err := w.Write(buf[:4])
	return err
}

// Deserialize decodes a transaction from r into the receiver using the same
// format Serialize writes.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	msg.Version = int32(binary.LittleEndian.Uint32(buf[:4]))
	msg.Time = binary.LittleEndian.Uint32(buf[4:])

	count, err := readCount(r, "txin")
	if err != nil {
		return err
	}
	msg.TxIn = make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		ti, err := readTxIn(r)
		if err != nil {
			return err
		}
		msg.TxIn = append(msg.TxIn, ti)
	}

	count, err = readCount(r, "txout")
	if err != nil {
		return err
	}
	msg.TxOut = make([]*TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		value := int64(binary.LittleEndian.Uint64(buf[:]))
		pkScript, err := btcwire.ReadVarBytes(r, ProtocolVersion,
			maxScriptSize, "pkscript")
		if err != nil {
			return err
		}
		msg.TxOut = append(msg.TxOut, NewTxOut(value, pkScript))
	}

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	msg.LockTime = binary.LittleEndian.Uint32(buf[:4])
	return nil
}

func readCount(r io.Reader, field string) (uint64, error) {
	count, err := btcwire.ReadVarInt(r, ProtocolVersion)
	if err != nil {
		return 0, err
	}
	if count > maxTxInOut {
		return 0, fmt.Errorf("too many %s entries to fit into a "+
			"transaction [count %d, max %d]", field, count, maxTxInOut)
	}
	return count, nil
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
		return err
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], ti.PreviousOutPoint.Index)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	if err := btcwire.WriteVarBytes(w, ProtocolVersion, ti.SignatureScript); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf[:], ti.Sequence)
	_, err := w.Write(buf[:])
	return err
}

func readTxIn(r io.Reader) (*TxIn, error) {
	ti := new(TxIn)
	if _, err := io.ReadFull(r, ti.PreviousOutPoint.Hash[:]); err != nil {
		return nil, err
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	ti.PreviousOutPoint.Index = binary.LittleEndian.Uint32(buf[:])

	script, err := btcwire.ReadVarBytes(r, ProtocolVersion, maxScriptSize,
		"sigscript")
	if err != nil {
		return nil, err
	}
	ti.SignatureScript = script

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	ti.Sequence = binary.LittleEndian.Uint32(buf[:])
	return ti, nil
}
