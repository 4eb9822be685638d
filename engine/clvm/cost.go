// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clvm

import (
	"fmt"
)

// Operator costs.  Every reduction step charges its cost against the
// engine's limit before the operator runs, so two evaluators given the same
// inputs and limit exhaust their budget at the identical step.  The values
// match the cost schedule the original puzzle format fixes for consensus.
const (
	quoteCost = 20
	applyCost = 90

	pathLookupBaseCost    = 44
	pathLookupCostPerLeg  = 4
	pathLookupCostPerZero = 4

	ifCost    = 33
	consCost  = 50
	firstCost = 30
	restCost  = 30
	listpCost = 19

	eqBaseCost    = 117
	eqCostPerByte = 1

	sha256BaseCost    = 87
	sha256CostPerArg  = 134
	sha256CostPerByte = 2

	strlenBaseCost    = 173
	strlenCostPerByte = 1

	concatBaseCost    = 142
	concatCostPerArg  = 135
	concatCostPerByte = 3

	arithBaseCost    = 99
	arithCostPerArg  = 320
	arithCostPerByte = 3

	mulBaseCost     = 92
	mulCostPerOp    = 885
	mulLinearCost   = 6
	mulSquareDivide = 128

	divBaseCost    = 988
	divCostPerByte = 4

	grBaseCost    = 498
	grCostPerByte = 2
)

// charge adds cost to the running total, failing once the limit is
// exceeded.
func (e *Engine) charge(cost uint64) error {
	e.cost += cost
	if e.cost > e.costLimit {
		return evalError(ErrCostExceeded,
			fmt.Sprintf("cost %d exceeds limit %d", e.cost, e.costLimit))
	}
	return nil
}
