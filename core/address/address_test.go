// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peasproject/peasd/common/encode/bech32"
	"github.com/peasproject/peasd/common/hash"
	"github.com/peasproject/peasd/params"
)

// A known mainnet address and the puzzle hash behind it.
const (
	knownAddr = "pea16ljz9fll4lj2p402ytsfy24sfy7lplmc90vdfsqcppjfyj95ehsssqey9j"
	knownHash = "d7e422a7ffafe4a0d5ea22e0922ab0493df0ff782bd8d4c01808649248b4cde1"
)

func TestDecodeKnownAddress(t *testing.T) {
	addr, err := DecodeAddress(knownAddr)
	require.Nil(t, err)

	assert.Equal(t, knownHash, addr.PuzzleHash().String())
	assert.True(t, addr.IsForNet(&params.MainNetParams))
	assert.False(t, addr.IsForNet(&params.TestNetParams))

	// Re-encoding reproduces the original string exactly.
	assert.Equal(t, knownAddr, addr.Encode())
	assert.Equal(t, knownAddr, addr.String())
}

func TestEncodeRoundTrip(t *testing.T) {
	ph := hash.MustHexToHash(knownHash)
	addr, err := NewAddress(ph.Bytes(), &params.MainNetParams)
	require.Nil(t, err)
	assert.Equal(t, knownAddr, addr.Encode())

	// The same hash on another network yields a different string that
	// still decodes to the same hash.
	taddr, err := NewAddress(ph.Bytes(), &params.TestNetParams)
	require.Nil(t, err)
	require.NotEqual(t, knownAddr, taddr.Encode())
	back, err := DecodeAddress(taddr.Encode())
	require.Nil(t, err)
	backHash := back.PuzzleHash()
	assert.True(t, ph.IsEqual(&backHash))
}

func TestNewAddressLength(t *testing.T) {
	_, err := NewAddress(bytes.Repeat([]byte{1}, 31), &params.MainNetParams)
	assert.NotNil(t, err)
	_, err = NewAddress(bytes.Repeat([]byte{1}, 33), &params.MainNetParams)
	assert.NotNil(t, err)
	_, err = NewAddress(bytes.Repeat([]byte{1}, 32), &params.MainNetParams)
	assert.Nil(t, err)
}

func TestDecodeAddressErrors(t *testing.T) {
	// Corrupt checksum.
	corrupted := knownAddr[:len(knownAddr)-1] + "k"
	_, err := DecodeAddress(corrupted)
	require.NotNil(t, err)
	assert.True(t, bech32.IsErrorCode(err, bech32.ErrChecksum), "err: %v", err)

	// Unregistered prefix, with a valid bech32m checksum.
	ph := hash.MustHexToHash(knownHash)
	converted, err := bech32.ConvertBits(ph.Bytes(), 8, 5, true)
	require.Nil(t, err)
	foreign, err := bech32.Encode("xpea", converted)
	require.Nil(t, err)
	_, err = DecodeAddress(foreign)
	require.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown address prefix"),
		"err: %v", err)

	// Wrong payload length for an address even though the string is
	// valid bech32m.
	short, err := bech32.ConvertBits([]byte{1, 2, 3}, 8, 5, true)
	require.Nil(t, err)
	shortAddr, err := bech32.Encode("pea", short)
	require.Nil(t, err)
	_, err = DecodeAddress(shortAddr)
	assert.NotNil(t, err)
}
