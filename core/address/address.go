// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements the human-readable form of puzzle hashes.  An
// address is a bech32m string whose prefix names the network and whose data
// part carries a 32-byte puzzle hash.
package address

import (
	"errors"
	"fmt"

	"github.com/peasproject/peasd/common/encode/bech32"
	"github.com/peasproject/peasd/common/hash"
	"github.com/peasproject/peasd/params"
)

// ErrUnknownPrefix describes an error where an address string carries a
// prefix no registered network claims.
var ErrUnknownPrefix = errors.New("unknown address prefix")

// Address is a puzzle hash bound to the network it pays on.
type Address struct {
	net        *params.Params
	puzzleHash hash.Hash
}

// NewAddress returns an address for the passed puzzle hash on the passed
// network.  puzzleHash must be 32 bytes.
func NewAddress(puzzleHash []byte, net *params.Params) (*Address, error) {
	h, err := hash.NewHash(puzzleHash)
	if err != nil {
		return nil, errors.New("puzzleHash must be 32 bytes")
	}
	return &Address{net: net, puzzleHash: *h}, nil
}

// DecodeAddress decodes an address string, validating its checksum and
// resolving its prefix to a registered network.
func DecodeAddress(addr string) (*Address, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, err
	}
	net := params.ParamsForPrefix(hrp)
	if net == nil {
		return nil, fmt.Errorf("%s: %q", ErrUnknownPrefix, hrp)
	}

	// The data part regroups to exactly 32 bytes; the codec rejects any
	// non-zero padding bits left over.
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	return NewAddress(decoded, net)
}

// Encode returns the bech32m string form of the address.
func (a *Address) Encode() string {
	// The puzzle hash regroups from 8-bit to 5-bit words without loss,
	// so the conversion cannot fail.
	converted, err := bech32.ConvertBits(a.puzzleHash.Bytes(), 8, 5, true)
	if err != nil {
		return ""
	}
	encoded, err := bech32.Encode(a.net.AddressPrefix, converted)
	if err != nil {
		return ""
	}
	return encoded
}

// String returns the string form of the address, which is its bech32m
// encoding.
func (a *Address) String() string {
	return a.Encode()
}

// PuzzleHash returns the puzzle hash the address pays to.
func (a *Address) PuzzleHash() hash.Hash {
	return a.puzzleHash
}

// IsForNet returns whether the address is for the passed network.
func (a *Address) IsForNet(net *params.Params) bool {
	return a.net == net
}
