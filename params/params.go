// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params defines the peas networks and the consensus constants that
// differ between them.
package params

import (
	"errors"
	"strings"
)

// Params defines a peas network by its parameters.  These parameters may be
// used by peas applications to differentiate networks as well as addresses
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// AddressPrefix is the bech32m human-readable part that address
	// strings on this network carry.
	AddressPrefix string

	// MojosPerCoin is the number of indivisible mojo units in one coin.
	MojosPerCoin uint64

	// PrefarmCoins is the whole-coin size of the height-zero prefarm
	// that seeds the pool reward schedule.
	PrefarmCoins uint64

	// BlocksPerYear is the expected block count of one block-year; the
	// reward schedule halves on multiples of three block-years.
	BlocksPerYear uint64

	// MaxCLVMCost is the cost limit applied to puzzle evaluation.
	MaxCLVMCost uint64
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a
	// standard network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate network")

	registeredPrefixes = make(map[string]*Params)
)

// Register registers the network parameters so addresses carrying its
// prefix can be resolved back to the network.  This may error with
// ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default
// networks).
func Register(params *Params) error {
	prefix := strings.ToLower(params.AddressPrefix)
	if _, ok := registeredPrefixes[prefix]; ok {
		return ErrDuplicateNet
	}
	registeredPrefixes[prefix] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error.  This should only be called from package init
// functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsForPrefix resolves an address prefix back to its registered
// network, or nil when no network claims the prefix.
func ParamsForPrefix(prefix string) *Params {
	return registeredPrefixes[strings.ToLower(prefix)]
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&PrivNetParams)
}
