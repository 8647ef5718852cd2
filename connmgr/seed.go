// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/paydaycoin/paydayd/chaincfg"
)

const (
	// secondsInWeek is the width of the window DNS-discovered addresses
	// are aged over, matching the fixed seed table.
	secondsInWeek = 7 * 24 * 60 * 60
)

// ErrSeedLookup is returned when no seed produced any address.
var ErrSeedLookup = errors.New("no seed produced any addresses")

// Hooks for tests.
var (
	seedNow   = time.Now
	seedInt63 = rand.Int63n
)

// OnSeed is the signature of the callback function which is invoked when DNS
// seeding is successful.
type OnSeed func(addrs []*wire.NetAddress)

// LookupFunc is the signature of the DNS lookup function.
type LookupFunc func(string) ([]net.IP, error)

// SeedFromDNS queries every DNS seed of params concurrently and hands the
// addresses each one returns to seedFn.  It blocks until all lookups have
// finished and returns an error wrapping ErrSeedLookup when none of them
// produced an address.
func SeedFromDNS(params *chaincfg.Params, reqServices wire.ServiceFlag,
	lookupFn LookupFunc, seedFn OnSeed) error {

	if len(params.DNSSeeds) == 0 {
		return fmt.Errorf("%s has no DNS seeds: %w", params.Name, ErrSeedLookup)
	}

	var (
		wg    sync.WaitGroup
		mtx   sync.Mutex
		found int
	)
	for _, dnsseed := range params.DNSSeeds {
		wg.Add(1)
		go func(host string) {
			defer wg.Done()

			seedpeers, err := lookupFn(host)
			if err != nil {
				log.Infof("DNS discovery failed on seed %s: %v", host, err)
				return
			}
			numPeers := len(seedpeers)

			log.Infof("%d addresses found from DNS seed %s", numPeers, host)

			if numPeers == 0 {
				return
			}

			addresses := make([]*wire.NetAddress, 0, numPeers)
			now := seedNow().Unix()
			for _, peer := range seedpeers {
				addr := wire.NewNetAddressIPPort(peer,
					params.DefaultPort, reqServices)
				addr.Timestamp = time.Unix(
					now-seedInt63(secondsInWeek)-secondsInWeek, 0)
				addresses = append(addresses, addr)
			}

			mtx.Lock()
			found += numPeers
			seedFn(addresses)
			mtx.Unlock()
		}(dnsseed.Host)
	}
	wg.Wait()

	if found == 0 {
		return fmt.Errorf("%d DNS seeds queried: %w", len(params.DNSSeeds),
			ErrSeedLookup)
	}
	return nil
}

// FixedSeeds returns a copy of the hard-coded seed addresses of params.  The
// copies may be modified freely.
func FixedSeeds(params *chaincfg.Params) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(params.FixedSeeds))
	for _, seed := range params.FixedSeeds {
		addr := *seed
		addr.IP = append(net.IP(nil), seed.IP...)
		addrs = append(addrs, &addr)
	}
	return addrs
}

// Bootstrap seeds from DNS and falls back to the fixed seed table of params
// when DNS seeding yields nothing.
func Bootstrap(params *chaincfg.Params, reqServices wire.ServiceFlag,
	lookupFn LookupFunc, seedFn OnSeed) error {

	err := SeedFromDNS(params, reqServices, lookupFn, seedFn)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSeedLookup) {
		return err
	}

	fixed := FixedSeeds(params)
	if len(fixed) == 0 {
		return err
	}
	log.Infof("Adding %d fixed seed addresses for %s", len(fixed), params.Name)
	seedFn(fixed)
	return nil
}
