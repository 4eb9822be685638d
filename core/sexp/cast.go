// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"math/big"
)

var bigOne = big.NewInt(1)

// IntToBytes returns the canonical encoding of v: minimal length two's
// complement big-endian.  Zero encodes to the empty slice, and no encoding
// carries a superfluous leading sign-extension byte.
func IntToBytes(v *big.Int) []byte {
	sign := v.Sign()
	if sign == 0 {
		return nil
	}
	if sign > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			// A leading zero keeps the sign bit clear.
			padded := make([]byte, len(b)+1)
			copy(padded[1:], b)
			return padded
		}
		return b
	}

	// Negative values encode as v + 2^(8n) for the smallest n where
	// v >= -(2^(8n-1)).
	n := (v.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(bigOne, uint(8*n-1))
	min.Neg(min)
	if v.Cmp(min) < 0 {
		n++
	}
	t := new(big.Int).Lsh(bigOne, uint(8*n))
	t.Add(t, v)
	b := t.Bytes()

	// t is in [2^(8n-1), 2^(8n)), so it always fills exactly n bytes.
	return b
}

// IntFromBytes interprets b as a signed two's complement big-endian
// integer.  The empty slice is zero.  Redundant leading bytes are accepted;
// the value is unaffected.
func IntFromBytes(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(bigOne, uint(8*len(b))))
	}
	return v
}

// Uint64FromBytes interprets b as an unsigned integer, failing if the value
// is negative or does not fit in 64 bits.  Amount operands use this.
func Uint64FromBytes(b []byte) (uint64, error) {
	v := IntFromBytes(b)
	if v.Sign() < 0 {
		return 0, sexpError(ErrTypeMismatch, "negative value for unsigned field")
	}
	if v.BitLen() > 64 {
		return 0, sexpError(ErrTypeMismatch, "value overflows 64 bits")
	}
	return v.Uint64(), nil
}
