// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid bech32m test vectors from BIP 350.
var validBech32m = []string{
	"A1LQFN3A",
	"a1lqfn3a",
	"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber11sg7hg6",
	"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx",
	"split1checkupstagehandshakeupstreamerranterredcaperredlc445v",
	"?1v759aa",
}

func TestDecodeValid(t *testing.T) {
	for _, bech := range validBech32m {
		hrp, data, err := Decode(bech)
		require.Nil(t, err, "decode of %q failed: %v", bech, err)

		// Re-encoding the decoded parts must reproduce the original
		// string (lowercased, since output is case uniform).
		reencoded, err := Encode(hrp, data)
		require.Nil(t, err)
		assert.Equal(t, strings.ToLower(bech), reencoded)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		bech string
		code ErrorCode
	}{
		// Invalid checksum (valid bech32, not bech32m).
		{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", ErrChecksum},
		// No separator (BIP 350 invalid vector).
		{"qyrz8wqd2c9m", ErrInvalidSeparator},
		// Mixed case.
		{"aBcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx", ErrMixedCase},
		// No separator.
		{"pzry9x0s0muk", ErrInvalidSeparator},
		// Empty HRP.
		{"1pzry9x0s0muk", ErrInvalidSeparator},
		// Invalid data character.
		{"x1b4n0q5v", ErrInvalidCharacter},
		// Checksum truncated by the separator position rule.
		{"li1dgmt3", ErrInvalidSeparator},
		// Too short overall.
		{"a12uel5", ErrInvalidLength},
		// Control character in the string.
		{"de1lg7wt" + string(rune(0x7f)), ErrInvalidCharacter},
	}
	for _, test := range tests {
		_, _, err := Decode(test.bech)
		require.NotNil(t, err, "decode of %q unexpectedly succeeded", test.bech)
		assert.True(t, IsErrorCode(err, test.code),
			"decode of %q: got %v, want %v", test.bech, err, test.code)
	}
}

// TestSingleCharCorruption verifies that flipping any single data character
// of a previously encoded string to a different charset character is caught
// by the checksum.
func TestSingleCharCorruption(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	data, err := ConvertBits(payload, 8, 5, true)
	require.Nil(t, err)
	encoded, err := Encode("pea", data)
	require.Nil(t, err)

	sep := strings.LastIndexByte(encoded, '1')
	for i := sep + 1; i < len(encoded); i++ {
		for _, c := range []byte(charset) {
			if c == encoded[i] {
				continue
			}
			corrupted := encoded[:i] + string(c) + encoded[i+1:]
			_, _, err := Decode(corrupted)
			assert.True(t, IsErrorCode(err, ErrChecksum),
				"corruption at %d to %c went undetected", i, c)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		payload := make([]byte, 32)
		for j := range payload {
			payload[j] = byte(i*31 + j*17)
		}
		data, err := ConvertBits(payload, 8, 5, true)
		require.Nil(t, err)
		encoded, err := Encode("tpea", data)
		require.Nil(t, err)

		hrp, decoded, err := Decode(encoded)
		require.Nil(t, err)
		assert.Equal(t, "tpea", hrp)
		back, err := ConvertBits(decoded, 5, 8, false)
		require.Nil(t, err)
		assert.Equal(t, payload, back)
	}
}

func TestEncodeInvalid(t *testing.T) {
	_, err := Encode("", []byte{0, 1})
	assert.True(t, IsErrorCode(err, ErrInvalidLength))

	_, err = Encode("PEA", []byte{0, 1})
	assert.True(t, IsErrorCode(err, ErrInvalidCharacter))

	_, err = Encode("pea", make([]byte, 90))
	assert.True(t, IsErrorCode(err, ErrInvalidLength))

	// Data bytes must each encode 5 bits.
	_, err = Encode("pea", []byte{32})
	assert.True(t, IsErrorCode(err, ErrInvalidDataByte))
}

func TestConvertBits(t *testing.T) {
	// 8->5 with padding then back without padding is the identity.
	in := []byte{0xff, 0x00, 0xab}
	grouped, err := ConvertBits(in, 8, 5, true)
	require.Nil(t, err)
	out, err := ConvertBits(grouped, 5, 8, false)
	require.Nil(t, err)
	assert.Equal(t, in, out)

	// Non-zero padding must be rejected when pad is false.
	_, err = ConvertBits([]byte{0x1f}, 5, 8, false)
	assert.True(t, IsErrorCode(err, ErrInvalidPadding))

	_, err = ConvertBits([]byte{0}, 0, 5, true)
	assert.True(t, IsErrorCode(err, ErrInvalidBits))
}
