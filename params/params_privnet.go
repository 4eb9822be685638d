// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// PrivNetParams defines the network parameters for the private test
// network.  The short block-year makes every reward band reachable in a
// local simulation.
var PrivNetParams = Params{
	Name:          "privnet",
	AddressPrefix: "ppea",

	MojosPerCoin:  1000 * 1000 * 1000 * 1000,
	PrefarmCoins:  21000000,
	BlocksPerYear: 1440,
	MaxCLVMCost:   11000000000,
}
