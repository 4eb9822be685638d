// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// TestNetParams defines the network parameters for the test peas network.
// The schedule matches mainnet; only the address prefix differs, so test
// coins can never be mistaken for mainnet coins.
var TestNetParams = Params{
	Name:          "testnet",
	AddressPrefix: "tpea",

	MojosPerCoin:  1000 * 1000 * 1000 * 1000,
	PrefarmCoins:  21000000,
	BlocksPerYear: 1681920,
	MaxCLVMCost:   11000000000,
}
