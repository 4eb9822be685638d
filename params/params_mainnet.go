// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// MainNetParams defines the network parameters for the main peas network.
var MainNetParams = Params{
	Name:          "mainnet",
	AddressPrefix: "pea",

	// Consensus parameters.  One coin is a trillion mojos and the
	// schedule assumes a 32-block slot every ten minutes.
	MojosPerCoin:  1000 * 1000 * 1000 * 1000,
	PrefarmCoins:  21000000,
	BlocksPerYear: 1681920,
	MaxCLVMCost:   11000000000,
}
