// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paydayutil

import (
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/paydaycoin/paydayd/chaincfg"
)

// AppDataDir returns the default data root for paydayd on this operating
// system.
func AppDataDir() string {
	return btcutil.AppDataDir("paydayd", false)
}

// NetworkDataDir returns the directory under root that holds the state of
// the network described by params.  Mainnet uses root itself.
func NetworkDataDir(root string, params *chaincfg.Params) string {
	if params.DataSubdir == "" {
		return root
	}
	return filepath.Join(root, params.DataSubdir)
}
