// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"fmt"
)

// Serialized expression framing: a pair is 0xff followed by its two
// children, the empty atom is 0x80, a one-byte atom below 0x80 is that byte
// verbatim, and longer atoms carry a variable-length size prefix whose
// leading-one count selects the width.
const (
	pairMarker = 0xff
	nilMarker  = 0x80
)

// Serialize returns the canonical byte serialization of an expression.
// The tree is walked with an explicit stack so nesting depth is bounded by
// heap, not goroutine stack.
func Serialize(n *Node) []byte {
	var buf []byte
	stack := []*Node{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsPair() {
			buf = append(buf, pairMarker)
			stack = append(stack, n.rest, n.first)
			continue
		}
		buf = appendAtom(buf, n.atom)
	}
	return buf
}

func appendAtom(buf, atom []byte) []byte {
	size := uint64(len(atom))
	switch {
	case size == 0:
		return append(buf, nilMarker)
	case size == 1 && atom[0] < 0x80:
		return append(buf, atom[0])
	case size < 0x40:
		buf = append(buf, 0x80|byte(size))
	case size < 0x2000:
		buf = append(buf, 0xc0|byte(size>>8), byte(size))
	case size < 0x100000:
		buf = append(buf, 0xe0|byte(size>>16), byte(size>>8), byte(size))
	case size < 0x8000000:
		buf = append(buf, 0xf0|byte(size>>24), byte(size>>16),
			byte(size>>8), byte(size))
	case size < 0x400000000:
		buf = append(buf, 0xf8|byte(size>>32), byte(size>>24),
			byte(size>>16), byte(size>>8), byte(size))
	default:
		// Atoms of this size cannot be constructed in practice.
		panic("sexp: atom too large to serialize")
	}
	return append(buf, atom...)
}

// deserializer walks a byte buffer, tracking the read position.
type deserializer struct {
	buf []byte
	pos int
}

func (d *deserializer) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, sexpError(ErrSerialization, "unexpected end of input")
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *deserializer) readBytes(n uint64) ([]byte, error) {
	if uint64(len(d.buf)-d.pos) < n {
		return nil, sexpError(ErrSerialization, "unexpected end of input")
	}
	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)
	return b, nil
}

// readAtom parses one atom given its first byte, which must not be the
// pair marker.
func (d *deserializer) readAtom(b byte) (*Node, error) {
	if b == nilMarker {
		return Nil(), nil
	}
	if b < 0x80 {
		return NewAtom([]byte{b}), nil
	}

	// Count the leading one bits after the first to find how many size
	// bytes follow.
	var sizeBytes int
	var size uint64
	switch {
	case b&0xc0 == 0x80:
		sizeBytes, size = 0, uint64(b&0x3f)
	case b&0xe0 == 0xc0:
		sizeBytes, size = 1, uint64(b&0x1f)
	case b&0xf0 == 0xe0:
		sizeBytes, size = 2, uint64(b&0x0f)
	case b&0xf8 == 0xf0:
		sizeBytes, size = 3, uint64(b&0x07)
	case b&0xfc == 0xf8:
		sizeBytes, size = 4, uint64(b&0x03)
	default:
		return nil, sexpError(ErrSerialization,
			fmt.Sprintf("invalid size prefix byte %#02x", b))
	}
	for i := 0; i < sizeBytes; i++ {
		sb, err := d.readByte()
		if err != nil {
			return nil, err
		}
		size = size<<8 | uint64(sb)
	}
	atom, err := d.readBytes(size)
	if err != nil {
		return nil, err
	}
	return NewAtom(atom), nil
}

// Pending operations of the iterative deserializer.
const (
	deserOpRead = iota
	deserOpCons
)

// Deserialize parses a canonical byte serialization back into an expression
// tree.  The entire buffer must be consumed by one expression.
//
// Pair nesting is tracked on an explicit operation stack rather than the
// call stack, so arbitrarily deep input parses (or fails) without
// exhausting goroutine stack.
func Deserialize(buf []byte) (*Node, error) {
	d := &deserializer{buf: buf}
	ops := []int{deserOpRead}
	var vals []*Node
	for len(ops) > 0 {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if op == deserOpCons {
			rest := vals[len(vals)-1]
			first := vals[len(vals)-2]
			vals = vals[:len(vals)-2]
			vals = append(vals, NewPair(first, rest))
			continue
		}
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if b == pairMarker {
			// The cons runs after both children have been read.
			ops = append(ops, deserOpCons, deserOpRead, deserOpRead)
			continue
		}
		atom, err := d.readAtom(b)
		if err != nil {
			return nil, err
		}
		vals = append(vals, atom)
	}
	if d.pos != len(buf) {
		return nil, sexpError(ErrSerialization,
			fmt.Sprintf("trailing garbage at offset %d", d.pos))
	}
	return vals[0], nil
}
