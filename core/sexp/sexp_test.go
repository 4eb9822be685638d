// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomPairAccessors(t *testing.T) {
	a := NewAtom([]byte{0x01, 0x02})
	assert.True(t, a.IsAtom())
	assert.False(t, a.IsPair())

	b, err := a.Bytes()
	require.Nil(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)

	_, err = a.First()
	assert.True(t, IsErrorCode(err, ErrTypeMismatch))
	_, err = a.Rest()
	assert.True(t, IsErrorCode(err, ErrTypeMismatch))

	p := NewPair(a, Nil())
	assert.True(t, p.IsPair())
	_, err = p.Bytes()
	assert.True(t, IsErrorCode(err, ErrTypeMismatch))
	_, err = p.Int()
	assert.True(t, IsErrorCode(err, ErrTypeMismatch))

	first, err := p.First()
	require.Nil(t, err)
	assert.True(t, first.Equal(a))
	rest, err := p.Rest()
	require.Nil(t, err)
	assert.True(t, rest.IsNil())
}

func TestNilConventions(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.True(t, Nil().IsAtom())
	assert.True(t, NewAtom(nil).IsNil())
	assert.True(t, NewInt64(0).IsNil())
	assert.False(t, NewPair(Nil(), Nil()).IsNil())

	v, err := Nil().Int()
	require.Nil(t, err)
	assert.Equal(t, 0, v.Sign())
}

func TestEqual(t *testing.T) {
	e1, err := Assemble("(51 0xabcdef 1000)")
	require.Nil(t, err)
	e2, err := Assemble("(51 0xabcdef 1000)")
	require.Nil(t, err)
	e3, err := Assemble("(51 0xabcdef 1001)")
	require.Nil(t, err)

	assert.True(t, e1.Equal(e2), "%s != %s", e1.dump(), e2.dump())
	assert.False(t, e1.Equal(e3))
	assert.False(t, e1.Equal(Nil()))
}

func TestProperList(t *testing.T) {
	list := NewList(NewInt64(1), NewInt64(2), NewInt64(3))
	items, ok := list.ProperList()
	require.True(t, ok)
	require.Equal(t, 3, len(items))
	v, err := items[2].Int()
	require.Nil(t, err)
	assert.Equal(t, int64(3), v.Int64())

	improper := NewPair(NewInt64(1), NewInt64(2))
	_, ok = improper.ProperList()
	assert.False(t, ok)

	items, ok = Nil().ProperList()
	assert.True(t, ok)
	assert.Equal(t, 0, len(items))
}

func TestIntToBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want []byte
	}{
		{0, nil},
		{1, []byte{0x01}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{255, []byte{0x00, 0xff}},
		{256, []byte{0x01, 0x00}},
		{-256, []byte{0xff, 0x00}},
		{32767, []byte{0x7f, 0xff}},
		{32768, []byte{0x00, 0x80, 0x00}},
		{-32768, []byte{0x80, 0x00}},
	}
	for _, test := range tests {
		got := IntToBytes(big.NewInt(test.n))
		assert.Equal(t, test.want, got, "encoding of %d", test.n)

		// Decoding is the exact inverse.
		back := IntFromBytes(got)
		assert.Equal(t, test.n, back.Int64(), "round trip of %d", test.n)
	}
}

func TestIntFromBytesRedundant(t *testing.T) {
	// Redundant sign-extension bytes do not change the value.
	assert.Equal(t, int64(1), IntFromBytes([]byte{0x00, 0x01}).Int64())
	assert.Equal(t, int64(-1), IntFromBytes([]byte{0xff, 0xff}).Int64())
}

func TestUint64FromBytes(t *testing.T) {
	v, err := Uint64FromBytes([]byte{0x03, 0xe8})
	require.Nil(t, err)
	assert.Equal(t, uint64(1000), v)

	_, err = Uint64FromBytes([]byte{0xff})
	assert.True(t, IsErrorCode(err, ErrTypeMismatch))

	// 2^64 does not fit.
	_, err = Uint64FromBytes([]byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.True(t, IsErrorCode(err, ErrTypeMismatch))

	// Max uint64 does.
	v, err = Uint64FromBytes([]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	require.Nil(t, err)
	assert.Equal(t, ^uint64(0), v)
}
