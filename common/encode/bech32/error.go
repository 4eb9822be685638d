// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
)

// ErrorCode identifies a kind of codec error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrChecksum indicates the checksum embedded in the string does not
	// match the checksum computed over the human-readable part and data.
	ErrChecksum ErrorCode = iota

	// ErrMixedCase indicates the string mixes upper and lower case
	// characters.  A bech32m string must be case uniform.
	ErrMixedCase

	// ErrInvalidSeparator indicates the separator '1' is missing, is the
	// first character of the string, or leaves no room for a checksum.
	ErrInvalidSeparator

	// ErrInvalidCharacter indicates a character outside the valid range,
	// either in the human-readable part or outside the data charset.
	ErrInvalidCharacter

	// ErrInvalidLength indicates the overall string length is out of the
	// range permitted by the encoding.
	ErrInvalidLength

	// ErrInvalidDataByte indicates a data byte that does not encode a
	// 5-bit group.
	ErrInvalidDataByte

	// ErrInvalidBits indicates an impossible bit group size was requested
	// from ConvertBits.
	ErrInvalidBits

	// ErrInvalidPadding indicates non-zero or over-long padding when
	// regrouping bits without padding.
	ErrInvalidPadding
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrChecksum:         "ErrChecksum",
	ErrMixedCase:        "ErrMixedCase",
	ErrInvalidSeparator: "ErrInvalidSeparator",
	ErrInvalidCharacter: "ErrInvalidCharacter",
	ErrInvalidLength:    "ErrInvalidLength",
	ErrInvalidDataByte:  "ErrInvalidDataByte",
	ErrInvalidBits:      "ErrInvalidBits",
	ErrInvalidPadding:   "ErrInvalidPadding",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a codec failure.  The caller can use type assertions to
// access the ErrorCode field to ascertain the specific reason for the
// failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// codecError creates an Error given a set of arguments.
func codecError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is an Error with the passed code.
func IsErrorCode(err error, c ErrorCode) bool {
	cerr, ok := err.(Error)
	return ok && cerr.ErrorCode == c
}
