// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"

	"github.com/peasproject/peasd/engine/clvm"
	"github.com/peasproject/peasd/log"
	"github.com/peasproject/peasd/params"
)

// The prefarm pays the whole height-zero reward to these two addresses,
// half of each reward amount to each.
const (
	defaultAddress1 = "pea16ljz9fll4lj2p402ytsfy24sfy7lplmc90vdfsqcppjfyj95ehsssqey9j"
	defaultAddress2 = "pea16ljz9fll4lj2p402ytsfy24sfy7lplmc90vdfsqcppjfyj95ehsssqey9j"
)

type Config struct {
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	PrivNet    bool   `long:"privnet" description:"Use the private network"`
	Address1   string `long:"address1" description:"First recipient address; takes half of each reward"`
	Address2   string `long:"address2" description:"Second recipient address; takes half of each reward"`
	Height     uint32 `long:"height" description:"Block height whose rewards the puzzles must pay out (default 0, the prefarm)"`
	CostLimit  uint64 `long:"costlimit" description:"CLVM cost limit for puzzle evaluation (default: the network maximum)"`
	LogFile    string `long:"logfile" description:"Write log output to this file, rolling it as it grows"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	net *params.Params
}

// LoadConfig initializes and parses the config using command line options.
// This function also initializes logging and configures it accordingly.
func LoadConfig() (*Config, error) {
	cfg := Config{
		Address1:   defaultAddress1,
		Address2:   defaultAddress2,
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	// Multiple networks can't be selected simultaneously.
	cfg.net = &params.MainNetParams
	numNets := 0
	if cfg.TestNet {
		cfg.net = &params.TestNetParams
		numNets++
	}
	if cfg.PrivNet {
		cfg.net = &params.PrivNetParams
		numNets++
	}
	if numNets > 1 {
		return nil, fmt.Errorf("the testnet and privnet params can't be " +
			"used together -- choose one of the two")
	}

	if cfg.CostLimit == 0 {
		cfg.CostLimit = cfg.net.MaxCLVMCost
	}

	if cfg.LogFile != "" {
		log.InitLogRotator(cfg.LogFile)
	}
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return nil, fmt.Errorf("invalid debuglevel %q", cfg.DebugLevel)
	}
	plog.SetLevel(level)

	clvmLog := log.New("CLVM")
	clvmLog.SetLevel(level)
	clvm.UseLogger(clvmLog)

	return &cfg, nil
}
