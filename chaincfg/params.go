// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math/big"

	btcchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	btcwire "github.com/btcsuite/btcd/wire"

	"github.com/paydaycoin/paydayd/chaincfg/chainhash"
	"github.com/paydaycoin/paydayd/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// powLimit is the highest proof of work value a payday block can have.
	// It is the value (2^256 - 1) >> 16 and is shared by every network.
	powLimit = new(big.Int).Rsh(
		new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne), 16)
)

// NetworkID identifies one of the built-in payday networks.
type NetworkID int

const (
	// MainNet is the production payday network.
	MainNet NetworkID = iota

	// TestNet is the public payday test network.
	TestNet
)

// String returns the NetworkID in human-readable form.
func (id NetworkID) String() string {
	switch id {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	}
	return fmt.Sprintf("unknown network (%d)", int(id))
}

// Base58Type enumerates the kinds of payloads that are base58-check encoded
// with a network specific version prefix.
type Base58Type int

const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	StealthAddress
	ExtPublicKey
	ExtSecretKey

	// NumBase58Types is the number of prefix kinds every network defines.
	NumBase58Types
)

var base58TypeStrings = [NumBase58Types]string{
	PubKeyAddress:  "PUBKEY_ADDRESS",
	ScriptAddress:  "SCRIPT_ADDRESS",
	SecretKey:      "SECRET_KEY",
	StealthAddress: "STEALTH_ADDRESS",
	ExtPublicKey:   "EXT_PUBLIC_KEY",
	ExtSecretKey:   "EXT_SECRET_KEY",
}

// String returns the Base58Type in human-readable form.
func (t Base58Type) String() string {
	if t >= 0 && t < NumBase58Types {
		return base58TypeStrings[t]
	}
	return fmt.Sprintf("Unknown Base58Type (%d)", int(t))
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a short label for the seed.
	Name string

	// Host is the hostname or IP literal queried for peers.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a payday network by its parameters.  These parameters may be
// used by payday applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// The built-in profiles are created once and must be treated as read-only.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// ID identifies which built-in network this is.
	ID NetworkID

	// Net defines the magic bytes used to identify the network.
	Net wire.PaydayNet

	// AlertPubKey is the serialized public key allowed to sign alerts.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort uint16

	// RPCPort defines the default JSON-RPC port for the network.
	RPCPort uint16

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the genesis difficulty in compact form.
	PowLimitBits uint32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Base58Prefixes holds the version bytes prepended to each kind of
	// base58-check encoded payload.
	Base58Prefixes [NumBase58Types][]byte

	// FixedSeeds are hard-coded peers used when DNS seeding yields nothing.
	FixedSeeds []*btcwire.NetAddress

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// DataSubdir is the directory below the data root holding this
	// network's state.  Empty means the data root itself.
	DataSubdir string

	// Mixing pool parameters.
	PoolMaxTransactions      int
	DarksendPoolDummyAddress string

	// Keys for sporks and masternode payments.  Unused on both networks.
	SporkKey                 string
	MasternodePaymentsPubKey string

	// LastPOWBlock is the last height accepting proof-of-work blocks.
	LastPOWBlock int32

	// POSStartBlock is the first height accepting proof-of-stake blocks.
	POSStartBlock int32
}

// MessageStart returns the four magic bytes prefixing every peer-to-peer
// message on this network.
func (p *Params) MessageStart() [4]byte {
	return p.Net.MessageStart()
}

// Base58Prefix returns a copy of the version bytes for the given kind of
// payload.  Unknown kinds yield nil.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	if t < 0 || t >= NumBase58Types {
		return nil
	}
	return append([]byte(nil), p.Base58Prefixes[t]...)
}

// AlertKey parses AlertPubKey as a secp256k1 public key.
func (p *Params) AlertKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.AlertPubKey)
}

// IsProofOfWorkHeight reports whether a proof-of-work block may be connected
// at height.
func (p *Params) IsProofOfWorkHeight(height int32) bool {
	return height <= p.LastPOWBlock
}

// IsProofOfStakeHeight reports whether a proof-of-stake block may be
// connected at height.
func (p *Params) IsProofOfStakeHeight(height int32) bool {
	return height >= p.POSStartBlock
}

// GenesisTarget returns the target encoded by PowLimitBits.  It is at most
// PowLimit.
func (p *Params) GenesisTarget() *big.Int {
	return btcchain.CompactToBig(p.PowLimitBits)
}

// GenesisWork returns the work a block at PowLimitBits contributes to the
// chain.
func (p *Params) GenesisWork() *big.Int {
	return btcchain.CalcWork(p.PowLimitBits)
}

// PowLimitCompact returns PowLimit in compact form.  This differs from
// PowLimitBits, which is the literal the genesis block was mined at.
func (p *Params) PowLimitCompact() uint32 {
	return btcchain.BigToCompact(p.PowLimit)
}

// DefaultPortString returns DefaultPort formatted for net.JoinHostPort.
func (p *Params) DefaultPortString() string {
	return fmt.Sprintf("%d", p.DefaultPort)
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs.  This is only used in the hard-coded parameters
// below, so the only way it can fail is a typo in this file.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
