// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The PayDay Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/paydaycoin/paydayd/chaincfg"
	"github.com/paydaycoin/paydayd/paydayutil"
)

const (
	defaultConfigFilename = "paydayd.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "paydayd.log"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = paydayutil.AppDataDir()
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// config defines the configuration options for paydayd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile   string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir      string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir       string `long:"logdir" description:"Directory to log output."`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	ShowParams   bool   `long:"showparams" description:"Dump the active network parameters and exit"`
	DisableSeeds bool   `long:"nodnsseed" description:"Disable DNS seeding for peers and use the fixed seed table only"`

	chaincfg.NetworkFlags

	params *chaincfg.Params
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Select the network from the command line alone
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in paydayd functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultHomeDir,
		DebugLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	args = chaincfg.NormalizeArgs(preParser, args)

	// The network is chosen before anything else reads the profile.
	if !chaincfg.SelectFromCommandLine(args) {
		return nil, errors.New("unable to select a network from the command line")
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, err
	}
	if preCfg.ShowVersion {
		cfg.ShowVersion = true
		return &cfg, nil
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(preCfg.ConfigFile))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	// A config file may still ask for testnet.
	if cfg.UseTestNet() && chaincfg.ActiveNetParams().ID != chaincfg.TestNet {
		chaincfg.Select(chaincfg.TestNet)
	}
	cfg.params = chaincfg.ActiveNetParams()

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, err
	}

	cfg.DataDir = paydayutil.NetworkDataDir(cleanAndExpandPath(cfg.DataDir), cfg.params)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, defaultLogDirname)
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	return &cfg, nil
}
