// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	flags "github.com/jessevdk/go-flags"
)

var (
	builtinOnce   sync.Once
	mainNetParams *Params
	testNetParams *Params

	// active is written by Select during startup and only read afterwards.
	active atomic.Pointer[Params]
)

// buildParams constructs the built-in profiles the first time any of them is
// needed.  A genesis mismatch panics from here.
func buildParams() {
	builtinOnce.Do(func() {
		mainNetParams = newMainNetParams()
		testNetParams = newTestNetParams(mainNetParams)
	})
}

// MainNetParams returns the built-in main network parameters.
func MainNetParams() *Params {
	buildParams()
	return mainNetParams
}

// TestNetParams returns the built-in test network parameters.
func TestNetParams() *Params {
	buildParams()
	return testNetParams
}

// ParamsForNetwork returns the built-in parameters for id, or false when no
// such network is implemented.
func ParamsForNetwork(id NetworkID) (*Params, bool) {
	switch id {
	case MainNet:
		return MainNetParams(), true
	case TestNet:
		return TestNetParams(), true
	}
	return nil, false
}

// Select makes the built-in profile for id the active one.  It must be called
// once during startup, before any subsystem reads ActiveNetParams.  Selecting
// a network that is not implemented is a programming error and panics.
func Select(id NetworkID) {
	p, ok := ParamsForNetwork(id)
	if !ok {
		panic(fmt.Sprintf("unimplemented network: %v", id))
	}
	active.Store(p)
	log.Debugf("Selected %s network parameters", p.Name)
}

// ActiveNetParams returns the profile chosen by Select.  Calling it before
// Select is a programming error and panics.
func ActiveNetParams() *Params {
	p := active.Load()
	if p == nil {
		panic("chaincfg: network parameters read before Select")
	}
	return p
}

// NetworkFlags holds the command-line options that choose the network.  It
// can be embedded in a larger go-flags config struct.
type NetworkFlags struct {
	TestNet *string `long:"testnet" optional:"yes" optional-value:"1" description:"Use the test network"`
}

// UseTestNet interprets the testnet option the way boolean arguments are
// interpreted everywhere in the daemon.  An absent option is false and a
// present one without a value is true.
func (f *NetworkFlags) UseTestNet() bool {
	if f.TestNet == nil {
		return false
	}
	return parseBoolArg(*f.TestNet)
}

// parseBoolArg parses the value of a boolean option that was given.  Empty
// means true, strconv booleans are honored, numbers are true when non-zero
// and anything else is false.
func parseBoolArg(v string) bool {
	if v == "" {
		return true
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	n, err := strconv.Atoi(v)
	return err == nil && n != 0
}

// NormalizeArgs rewrites single dash long options such as -testnet=1 to the
// double dash form go-flags expects.  Only names parser knows as long options
// are rewritten, so clustered short options with attached values such as
// -dinfo pass through untouched.  Nothing after a bare -- is rewritten.
func NormalizeArgs(parser *flags.Parser, args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			name := arg[1:]
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name = name[:eq]
			}
			if len(name) > 1 && parser.FindOptionByLongName(name) != nil {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}

// SelectFromCommandLine selects mainnet or testnet depending on the testnet
// option in args.  Options it does not know about are ignored.  It returns
// false only when the arguments cannot be parsed at all.
func SelectFromCommandLine(args []string) bool {
	var opts NetworkFlags
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(NormalizeArgs(parser, args)); err != nil {
		log.Errorf("Unable to parse network selection from %q: %v",
			strings.Join(args, " "), err)
		return false
	}

	if opts.UseTestNet() {
		Select(TestNet)
	} else {
		Select(MainNet)
	}
	return true
}
