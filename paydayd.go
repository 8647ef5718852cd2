// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"

	"github.com/paydaycoin/paydayd/chaincfg"
	"github.com/paydaycoin/paydayd/connmgr"
	"github.com/paydaycoin/paydayd/paydayutil"
)

var (
	cfg *config
)

// describeParams logs the identifying values of the active profile.
func describeParams(p *chaincfg.Params) {
	magic := p.MessageStart()
	pyddLog.Infof("Network %s (magic %x, port %d, rpc port %d)", p.Name,
		magic[:], p.DefaultPort, p.RPCPort)
	genesis := paydayutil.NewBlock(p.GenesisBlock)
	if serialized, err := genesis.Bytes(); err == nil {
		pyddLog.Infof("Genesis block %v (%d bytes, merkle root %v)",
			genesis.Hash(), len(serialized), p.GenesisBlock.Header.MerkleRoot)
	}
	pyddLog.Infof("Genesis bits %08x (target %064x, work %v), pow limit %08x",
		p.PowLimitBits, p.GenesisTarget(), p.GenesisWork(), p.PowLimitCompact())
	pyddLog.Infof("Proof of work ends at height %d, proof of stake starts "+
		"at height %d", p.LastPOWBlock, p.POSStartBlock)
}

// collectSeeds gathers the addresses produced by seeding the active network.
// With fixedOnly set, DNS is not consulted.
func collectSeeds(p *chaincfg.Params, lookup connmgr.LookupFunc, fixedOnly bool) ([]*wire.NetAddress, error) {
	var addrs []*wire.NetAddress
	onSeed := func(found []*wire.NetAddress) {
		addrs = append(addrs, found...)
	}

	var err error
	if fixedOnly {
		onSeed(connmgr.FixedSeeds(p))
	} else {
		err = connmgr.Bootstrap(p, wire.SFNodeNetwork, lookup, onSeed)
	}
	return addrs, err
}

// paydaydMain is the real main function for paydayd.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func paydaydMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	tcfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	cfg = tcfg

	if cfg.ShowVersion {
		fmt.Println("paydayd version", version())
		return nil
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show version at startup.
	pyddLog.Infof("Version %s", version())

	params := chaincfg.ActiveNetParams()
	describeParams(params)

	if cfg.ShowParams {
		fmt.Print(spew.Sdump(params))
		return nil
	}

	addrs, err := collectSeeds(params, net.LookupIP, cfg.DisableSeeds)
	if err != nil {
		pyddLog.Warnf("Peer seeding failed: %v", err)
		return err
	}
	pyddLog.Infof("Collected %d seed addresses for %s", len(addrs), params.Name)
	for _, addr := range addrs {
		pyddLog.Debugf("Seed %s:%d last seen %v", addr.IP, addr.Port,
			addr.Timestamp)
	}

	return nil
}

func main() {
	if err := paydaydMain(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
