// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clvm

import (
	"fmt"
)

// ErrorCode identifies a kind of evaluation error.  All evaluation failures
// are structural or resource faults; the engine never aborts the process.
type ErrorCode int

// These constants are used to identify a specific EvalError.
const (
	// ErrCostExceeded indicates the running cost total passed the
	// caller's limit.  This is the engine's sole termination guarantee.
	ErrCostExceeded ErrorCode = iota

	// ErrArity indicates an operator received the wrong number of
	// operands.
	ErrArity

	// ErrTypeMismatch indicates an operator expected an atom but
	// received a pair, or vice versa.
	ErrTypeMismatch

	// ErrUnknownOperator indicates the atom in operator position has no
	// entry in the operator table.
	ErrUnknownOperator

	// ErrRaise indicates the program executed the raise operator.
	ErrRaise

	// ErrDivisionByZero indicates a division operator received a zero
	// divisor.
	ErrDivisionByZero

	// ErrPathIntoAtom indicates an environment path tried to descend
	// into an atom.
	ErrPathIntoAtom
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrCostExceeded:    "ErrCostExceeded",
	ErrArity:           "ErrArity",
	ErrTypeMismatch:    "ErrTypeMismatch",
	ErrUnknownOperator: "ErrUnknownOperator",
	ErrRaise:           "ErrRaise",
	ErrDivisionByZero:  "ErrDivisionByZero",
	ErrPathIntoAtom:    "ErrPathIntoAtom",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// EvalError identifies an evaluation failure.  The caller can use type
// assertions to access the ErrorCode field to ascertain the specific reason
// for the failure.
type EvalError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e EvalError) Error() string {
	return e.Description
}

// evalError creates an EvalError given a set of arguments.
func evalError(c ErrorCode, desc string) EvalError {
	return EvalError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is an EvalError with the passed code.
func IsErrorCode(err error, c ErrorCode) bool {
	eerr, ok := err.(EvalError)
	return ok && eerr.ErrorCode == c
}
