// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeGolden(t *testing.T) {
	tests := []struct {
		src string
		hex string
	}{
		{"()", "80"},
		{"1", "01"},
		{"127", "7f"},
		// One-byte atoms with the high bit set need a size prefix.
		{"-128", "8180"},
		{"0xCAFE", "82cafe"},
		{"(1 . 2)", "ff0102"},
		{"(q . 1)", "ff0101"},
		{"(+ (q . 1) (q . 2))", "ff10ffff0101ffff010280"},
		{"(51 0xCAFE 1000)", "ff33ff82cafeff8203e880"},
	}
	for _, test := range tests {
		n, err := Assemble(test.src)
		require.Nil(t, err)
		got := Serialize(n)
		assert.Equal(t, test.hex, hex.EncodeToString(got),
			"serialization of %q", test.src)

		back, err := Deserialize(got)
		require.Nil(t, err, "deserialization of %q failed: %v", test.hex, err)
		assert.True(t, n.Equal(back), "round trip of %q", test.src)
	}
}

func TestSerializeLongAtom(t *testing.T) {
	// An atom longer than 0x3f bytes takes the two-byte size prefix.
	atom := NewAtom(bytes.Repeat([]byte{0xab}, 0x40))
	buf := Serialize(atom)
	assert.Equal(t, byte(0xc0), buf[0])
	assert.Equal(t, byte(0x40), buf[1])
	assert.Equal(t, 2+0x40, len(buf))

	back, err := Deserialize(buf)
	require.Nil(t, err)
	assert.True(t, atom.Equal(back))
}

func TestDeserializeInvalid(t *testing.T) {
	tests := []string{
		"",         // empty input
		"ff01",     // pair missing its rest
		"ff",       // pair missing both children
		"83ab",     // atom shorter than its size prefix
		"fc",       // invalid size prefix byte
		"0102",     // trailing garbage
		"c001",     // truncated two-byte size prefix payload
	}
	for _, in := range tests {
		buf, err := hex.DecodeString(in)
		require.Nil(t, err)
		_, err = Deserialize(buf)
		assert.True(t, IsErrorCode(err, ErrSerialization),
			"deserialize of %q: got %v, want ErrSerialization", in, err)
	}
}

// deepNesting is the pair depth used by the deep-input tests.  Deep enough
// that a traversal recursing per nesting level would exhaust goroutine
// stack instead of returning.
const deepNesting = 1 << 20

// deepNestingBytes returns the serialization of the singleton list nested
// depth pairs deep: ((((...1...)))).
func deepNestingBytes(depth int) []byte {
	buf := make([]byte, 0, 2*depth+1)
	buf = append(buf, bytes.Repeat([]byte{0xff}, depth)...)
	buf = append(buf, 0x01)
	return append(buf, bytes.Repeat([]byte{0x80}, depth)...)
}

// Deeply nested input must parse and re-serialize rather than crash on
// nesting depth.
func TestSerializeDeepNesting(t *testing.T) {
	buf := deepNestingBytes(deepNesting)
	n, err := Deserialize(buf)
	require.Nil(t, err)

	assert.Equal(t, buf, Serialize(n))

	// Structural equality over the same depth.
	m, err := Deserialize(buf)
	require.Nil(t, err)
	assert.True(t, n.Equal(m))

	// A truncated deep serialization still fails with a typed error.
	_, err = Deserialize(buf[:len(buf)-1])
	assert.True(t, IsErrorCode(err, ErrSerialization), "err: %v", err)
}

func TestProgram(t *testing.T) {
	prog, err := AssembleProgram("(q . ((51 0xCAFE 1000)))")
	require.Nil(t, err)

	// The cached serialization and root agree.
	back, err := ProgramFromBytes(prog.Bytes())
	require.Nil(t, err)
	assert.True(t, prog.Root().Equal(back.Root()))
	assert.Equal(t, prog.String(), back.String())

	// The tree hash is stable across calls and matches the direct
	// computation.
	assert.Equal(t, prog.TreeHash(), prog.TreeHash())
	assert.Equal(t, TreeHash(prog.Root()), prog.TreeHash())

	_, err = ProgramFromBytes([]byte{0xff})
	assert.True(t, IsErrorCode(err, ErrSerialization))
}
