// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package conditions

import (
	"fmt"
)

// ErrorCode identifies a kind of condition parsing error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrNotList indicates the program output was not a proper list of
	// conditions.
	ErrNotList ErrorCode = iota

	// ErrConditionShape indicates a single condition was not a proper
	// list with an opcode in its first position.
	ErrConditionShape

	// ErrInvalidOpcode indicates the opcode position held a pair, a
	// negative number, or a value too large for any opcode.
	ErrInvalidOpcode

	// ErrInvalidArity indicates a known opcode carried the wrong number
	// of operands.
	ErrInvalidArity

	// ErrInvalidAmount indicates a coin amount operand was negative or
	// too large for a 64-bit amount.
	ErrInvalidAmount

	// ErrInvalidPuzzleHash indicates a puzzle hash operand was not
	// exactly 32 bytes.
	ErrInvalidPuzzleHash
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrNotList:           "ErrNotList",
	ErrConditionShape:    "ErrConditionShape",
	ErrInvalidOpcode:     "ErrInvalidOpcode",
	ErrInvalidArity:      "ErrInvalidArity",
	ErrInvalidAmount:     "ErrInvalidAmount",
	ErrInvalidPuzzleHash: "ErrInvalidPuzzleHash",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a condition parsing failure.  The caller can use
// type assertions to access the ErrorCode field to ascertain the specific
// reason for the failure.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a RuleError with the passed code.
func IsErrorCode(err error, c ErrorCode) bool {
	rerr, ok := err.(RuleError)
	return ok && rerr.ErrorCode == c
}
