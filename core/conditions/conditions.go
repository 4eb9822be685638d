// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package conditions extracts spend conditions from the value a puzzle
// program evaluates to.  A well-formed output is a proper list of
// conditions, each itself a proper list led by an opcode atom.
package conditions

import (
	"fmt"
	"math/big"

	"github.com/peasproject/peasd/common/hash"
	"github.com/peasproject/peasd/core/sexp"
)

// Opcode identifies a spend condition kind.
type Opcode uint16

// Condition opcodes fixed by the on-chain format.
const (
	AggSigUnsafe Opcode = 49
	AggSigMe     Opcode = 50

	CreateCoin Opcode = 51
	ReserveFee Opcode = 52

	CreateCoinAnnouncement   Opcode = 60
	AssertCoinAnnouncement   Opcode = 61
	CreatePuzzleAnnouncement Opcode = 62
	AssertPuzzleAnnouncement Opcode = 63

	AssertMyCoinID     Opcode = 70
	AssertMyParentID   Opcode = 71
	AssertMyPuzzleHash Opcode = 72
	AssertMyAmount     Opcode = 73

	AssertSecondsRelative Opcode = 80
	AssertSecondsAbsolute Opcode = 81
	AssertHeightRelative  Opcode = 82
	AssertHeightAbsolute  Opcode = 83
)

// opcodeNames maps opcodes to the names the original tooling prints.
var opcodeNames = map[Opcode]string{
	AggSigUnsafe:             "AGG_SIG_UNSAFE",
	AggSigMe:                 "AGG_SIG_ME",
	CreateCoin:               "CREATE_COIN",
	ReserveFee:               "RESERVE_FEE",
	CreateCoinAnnouncement:   "CREATE_COIN_ANNOUNCEMENT",
	AssertCoinAnnouncement:   "ASSERT_COIN_ANNOUNCEMENT",
	CreatePuzzleAnnouncement: "CREATE_PUZZLE_ANNOUNCEMENT",
	AssertPuzzleAnnouncement: "ASSERT_PUZZLE_ANNOUNCEMENT",
	AssertMyCoinID:           "ASSERT_MY_COIN_ID",
	AssertMyParentID:         "ASSERT_MY_PARENT_ID",
	AssertMyPuzzleHash:       "ASSERT_MY_PUZZLEHASH",
	AssertMyAmount:           "ASSERT_MY_AMOUNT",
	AssertSecondsRelative:    "ASSERT_SECONDS_RELATIVE",
	AssertSecondsAbsolute:    "ASSERT_SECONDS_ABSOLUTE",
	AssertHeightRelative:     "ASSERT_HEIGHT_RELATIVE",
	AssertHeightAbsolute:     "ASSERT_HEIGHT_ABSOLUTE",
}

// opcodeArity gives the operand count each known opcode requires.  Opcodes
// outside this table pass through Parse unchecked so newer condition kinds
// do not break extraction.
var opcodeArity = map[Opcode]int{
	AggSigUnsafe:             2,
	AggSigMe:                 2,
	CreateCoin:               2,
	ReserveFee:               1,
	CreateCoinAnnouncement:   1,
	AssertCoinAnnouncement:   1,
	CreatePuzzleAnnouncement: 1,
	AssertPuzzleAnnouncement: 1,
	AssertMyCoinID:           1,
	AssertMyParentID:         1,
	AssertMyPuzzleHash:       1,
	AssertMyAmount:           1,
	AssertSecondsRelative:    1,
	AssertSecondsAbsolute:    1,
	AssertHeightRelative:     1,
	AssertHeightAbsolute:     1,
}

// String returns the opcode's conventional name, or its number for opcodes
// outside the known table.
func (op Opcode) String() string {
	if s := opcodeNames[op]; s != "" {
		return s
	}
	return fmt.Sprintf("CONDITION_%d", uint16(op))
}

// Condition is one extracted spend condition: an opcode and its raw operand
// atoms in order.
type Condition struct {
	Opcode Opcode
	Vars   [][]byte
}

// maxOpcode bounds the canonical integer an opcode atom may decode to.
var maxOpcode = big.NewInt(int64(^uint16(0)))

// Parse extracts the condition list from a puzzle program's output value.
//
// The output must be a proper list.  Each element must be a proper list
// whose first element is an atom decoding to a non-negative opcode no wider
// than 16 bits; the remaining elements become the condition's operand atoms
// and must themselves be atoms.  Known opcodes additionally have their
// operand count checked.
func Parse(output *sexp.Node) ([]Condition, error) {
	items, ok := output.ProperList()
	if !ok {
		return nil, ruleError(ErrNotList,
			"program output is not a proper list")
	}

	conds := make([]Condition, 0, len(items))
	for i, item := range items {
		fields, ok := item.ProperList()
		if !ok || len(fields) == 0 {
			return nil, ruleError(ErrConditionShape, fmt.Sprintf(
				"condition %d is not a non-empty proper list", i))
		}
		opInt, err := fields[0].Int()
		if err != nil {
			return nil, ruleError(ErrInvalidOpcode, fmt.Sprintf(
				"condition %d: opcode is not an atom", i))
		}
		if opInt.Sign() < 0 || opInt.Cmp(maxOpcode) > 0 {
			return nil, ruleError(ErrInvalidOpcode, fmt.Sprintf(
				"condition %d: opcode %s out of range", i, opInt))
		}
		op := Opcode(opInt.Uint64())

		vars := make([][]byte, 0, len(fields)-1)
		for j, field := range fields[1:] {
			b, err := field.CloneBytes()
			if err != nil {
				return nil, ruleError(ErrConditionShape,
					fmt.Sprintf("condition %d: operand %d is a pair",
						i, j))
			}
			vars = append(vars, b)
		}
		if want, known := opcodeArity[op]; known && len(vars) != want {
			return nil, ruleError(ErrInvalidArity, fmt.Sprintf(
				"condition %d: %s takes %d operands, got %d",
				i, op, want, len(vars)))
		}
		conds = append(conds, Condition{Opcode: op, Vars: vars})
	}
	return conds, nil
}

// PuzzleHash returns the 32-byte puzzle hash operand of a CREATE_COIN
// condition.
func (c *Condition) PuzzleHash() (hash.Hash, error) {
	if c.Opcode != CreateCoin {
		return hash.Hash{}, ruleError(ErrInvalidOpcode, fmt.Sprintf(
			"puzzle hash requested of %s", c.Opcode))
	}
	h, err := hash.NewHash(c.Vars[0])
	if err != nil {
		return hash.Hash{}, ruleError(ErrInvalidPuzzleHash, fmt.Sprintf(
			"%s puzzle hash is %d bytes, want %d",
			c.Opcode, len(c.Vars[0]), hash.HashSize))
	}
	return *h, nil
}

// Amount returns the coin amount operand of a CREATE_COIN condition as an
// unsigned 64-bit mojo count.
func (c *Condition) Amount() (uint64, error) {
	if c.Opcode != CreateCoin {
		return 0, ruleError(ErrInvalidOpcode, fmt.Sprintf(
			"amount requested of %s", c.Opcode))
	}
	v, err := sexp.Uint64FromBytes(c.Vars[1])
	if err != nil {
		return 0, ruleError(ErrInvalidAmount, fmt.Sprintf(
			"%s amount %x is not a valid 64-bit amount",
			c.Opcode, c.Vars[1]))
	}
	return v, nil
}
