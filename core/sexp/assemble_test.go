// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want *Node
	}{
		{"()", Nil()},
		{"0", Nil()},
		{"1", NewInt64(1)},
		{"-1", NewInt64(-1)},
		{"1000", NewInt64(1000)},
		{"0xCAFE", NewAtom([]byte{0xca, 0xfe})},
		// Odd-length hex pads with a leading zero.
		{"0xF", NewAtom([]byte{0x0f})},
		{`"AB"`, NewAtom([]byte("AB"))},
		{"'AB'", NewAtom([]byte("AB"))},
		// Operator names assemble to their opcode atoms.
		{"q", NewInt64(1)},
		{"sha256", NewInt64(11)},
		{"#q", NewInt64(1)},
		// Unknown symbols assemble to their text bytes.
		{"hello", NewAtom([]byte("hello"))},
	}
	for _, test := range tests {
		got, err := Assemble(test.src)
		require.Nil(t, err, "assemble of %q failed: %v", test.src, err)
		assert.True(t, test.want.Equal(got), "assemble of %q: got %s, want %s",
			test.src, spew.Sdump(got), spew.Sdump(test.want))
	}
}

func TestAssembleStructure(t *testing.T) {
	n, err := Assemble("(q . ((51 0xcafe 1000) (51 0xbeef 1000)))")
	require.Nil(t, err)

	op, err := n.First()
	require.Nil(t, err)
	assert.True(t, op.Equal(NewInt64(1)))

	body, err := n.Rest()
	require.Nil(t, err)
	conds, ok := body.ProperList()
	require.True(t, ok)
	require.Equal(t, 2, len(conds))

	items, ok := conds[0].ProperList()
	require.True(t, ok)
	require.Equal(t, 3, len(items))
	assert.True(t, items[0].Equal(NewInt64(51)))
	assert.True(t, items[1].Equal(NewAtom([]byte{0xca, 0xfe})))
	assert.True(t, items[2].Equal(NewInt64(1000)))
}

func TestAssembleDottedPair(t *testing.T) {
	n, err := Assemble("(1 . 2)")
	require.Nil(t, err)
	assert.True(t, n.Equal(NewPair(NewInt64(1), NewInt64(2))))

	n, err = Assemble("(1 2 . 3)")
	require.Nil(t, err)
	assert.True(t, n.Equal(NewPair(NewInt64(1),
		NewPair(NewInt64(2), NewInt64(3)))))
}

func TestAssembleSyntaxErrors(t *testing.T) {
	tests := []string{
		"(a b",
		"(a b))",
		")",
		"(1 . 2 3)",
		"(1 .)",
		"(. 1)",
		"",
		"() ()",
		"0xZZ",
		`"unterminated`,
		"(1 . )",
	}
	for _, src := range tests {
		_, err := Assemble(src)
		assert.True(t, IsErrorCode(err, ErrSyntax),
			"assemble of %q: got %v, want ErrSyntax", src, err)
	}
}

func TestDisassembleRoundTrip(t *testing.T) {
	hash := strings.Repeat("aa", 32)
	tests := []string{
		"()",
		"(51 . 2)",
		"(+ (q . 1) (q . 2))",
		"(q (51 0x" + hash + " 1000) (51 0x" + hash + " 1000))",
		"(i (q . 1) (q . 10) (q . 20))",
	}
	for _, src := range tests {
		n, err := Assemble(src)
		require.Nil(t, err)
		rendered := Disassemble(n)
		assert.Equal(t, src, rendered)

		back, err := Assemble(rendered)
		require.Nil(t, err)
		assert.True(t, n.Equal(back), "round trip of %q", src)
	}
}
