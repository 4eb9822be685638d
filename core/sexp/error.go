// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrSyntax indicates the assembler was given source text that is not
	// a well-formed expression: unbalanced parentheses, an invalid
	// literal token, or trailing garbage after a complete expression.
	ErrSyntax ErrorCode = iota

	// ErrTypeMismatch indicates an atom was used where a pair is required
	// or vice versa, such as requesting First of an atom or the integer
	// value of a pair.
	ErrTypeMismatch

	// ErrSerialization indicates a byte stream is not a valid serialized
	// expression: truncated input, an over-long size prefix, or trailing
	// garbage after a complete expression.
	ErrSerialization
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrSyntax:        "ErrSyntax",
	ErrTypeMismatch:  "ErrTypeMismatch",
	ErrSerialization: "ErrSerialization",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies an expression construction or parse failure.  The caller
// can use type assertions to access the ErrorCode field to ascertain the
// specific reason for the failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// sexpError creates an Error given a set of arguments.
func sexpError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is an Error with the passed code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
