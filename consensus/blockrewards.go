// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus implements the fixed peas block reward schedule.  The
// coinbase of every block pays two coins, a pool reward and a farmer
// reward, whose amounts depend only on the block height and the network
// parameters.
package consensus

import (
	"github.com/peasproject/peasd/params"
)

// CalcPoolReward returns the pool reward amount, in mojos, for a block at
// the provided height.  This is mainly used for determining how much a
// newly generated block awards as well as validating that the coinbase for
// a block carries the expected value.
//
// The genesis block mints the entire prefarm.  After that the reward holds
// at two coins and halves on every third block-year boundary until it
// reaches zero after twelve block-years.  The pool takes seven eighths of
// each amount.
//
// Safe for concurrent access.
func CalcPoolReward(height uint32, p *params.Params) uint64 {
	eighth := p.MojosPerCoin / 8
	h := uint64(height)
	switch {
	case h == 0:
		return 7 * p.PrefarmCoins * eighth
	case h < 3*p.BlocksPerYear:
		return 7 * 2 * eighth
	case h < 6*p.BlocksPerYear:
		return 7 * eighth
	case h < 9*p.BlocksPerYear:
		return 7 * eighth / 2
	case h < 12*p.BlocksPerYear:
		return 7 * eighth / 4
	default:
		return 0
	}
}

// CalcBaseFarmerReward returns the farmer reward amount, in mojos, for a
// block at the provided height, excluding any transaction fees.  The
// farmer takes the remaining one eighth of the band amounts that
// CalcPoolReward pays seven eighths of.
//
// Safe for concurrent access.
func CalcBaseFarmerReward(height uint32, p *params.Params) uint64 {
	eighth := p.MojosPerCoin / 8
	h := uint64(height)
	switch {
	case h == 0:
		return p.PrefarmCoins * eighth
	case h < 3*p.BlocksPerYear:
		return 2 * eighth
	case h < 6*p.BlocksPerYear:
		return eighth
	case h < 9*p.BlocksPerYear:
		return eighth / 2
	case h < 12*p.BlocksPerYear:
		return eighth / 4
	default:
		return 0
	}
}
