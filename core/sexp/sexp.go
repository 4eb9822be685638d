// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sexp implements the symbolic-expression tree that puzzle programs
// are built from: immutable byte-string atoms and ordered pairs, the textual
// assembler for the literal puzzle language, the canonical wire
// serialization, and the sha256 tree hash that serves as a puzzle's
// on-chain identity.
package sexp

import (
	"bytes"
	"fmt"
	"math/big"
)

// Node is an expression: either an atom holding an immutable byte string or
// a pair of two child expressions.  The zero value is the empty atom, which
// conventionally represents nil and the empty list.  Nodes are never
// mutated after construction and may be shared freely across goroutines.
type Node struct {
	atom  []byte
	first *Node
	rest  *Node
}

// nilNode is the shared empty atom.  Nodes are immutable so sharing is not
// observable.
var nilNode = &Node{}

// Nil returns the empty atom, which represents nil and the empty list.
func Nil() *Node {
	return nilNode
}

// NewAtom returns an atom holding a copy of b.
func NewAtom(b []byte) *Node {
	if len(b) == 0 {
		return nilNode
	}
	atom := make([]byte, len(b))
	copy(atom, b)
	return &Node{atom: atom}
}

// NewInt returns an atom holding the canonical encoding of v: minimal
// length two's complement big-endian, with zero encoding to the empty atom.
func NewInt(v *big.Int) *Node {
	return &Node{atom: IntToBytes(v)}
}

// NewInt64 returns an atom holding the canonical encoding of v.
func NewInt64(v int64) *Node {
	return NewInt(big.NewInt(v))
}

// NewPair returns the pair (first . rest).
func NewPair(first, rest *Node) *Node {
	return &Node{first: first, rest: rest}
}

// NewList returns the proper list holding the passed items in order.
func NewList(items ...*Node) *Node {
	list := nilNode
	for i := len(items) - 1; i >= 0; i-- {
		list = NewPair(items[i], list)
	}
	return list
}

// IsAtom returns whether the node is an atom.
func (n *Node) IsAtom() bool {
	return n.first == nil
}

// IsPair returns whether the node is a pair.
func (n *Node) IsPair() bool {
	return n.first != nil
}

// IsNil returns whether the node is the empty atom.
func (n *Node) IsNil() bool {
	return n.first == nil && len(n.atom) == 0
}

// Bytes returns the raw bytes of an atom.
//
// NOTE: the returned slice aliases the node's backing array and must not be
// modified.  Use CloneBytes for a copy.
func (n *Node) Bytes() ([]byte, error) {
	if n.IsPair() {
		return nil, sexpError(ErrTypeMismatch, "bytes requested of a pair")
	}
	return n.atom, nil
}

// CloneBytes returns a copy of the raw bytes of an atom.
func (n *Node) CloneBytes() ([]byte, error) {
	b, err := n.Bytes()
	if err != nil {
		return nil, err
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c, nil
}

// Int returns the signed integer value of an atom per the canonical
// encoding.
func (n *Node) Int() (*big.Int, error) {
	if n.IsPair() {
		return nil, sexpError(ErrTypeMismatch, "integer requested of a pair")
	}
	return IntFromBytes(n.atom), nil
}

// First returns the first child of a pair.
func (n *Node) First() (*Node, error) {
	if n.IsAtom() {
		return nil, sexpError(ErrTypeMismatch, "first requested of an atom")
	}
	return n.first, nil
}

// Rest returns the rest child of a pair.
func (n *Node) Rest() (*Node, error) {
	if n.IsAtom() {
		return nil, sexpError(ErrTypeMismatch, "rest requested of an atom")
	}
	return n.rest, nil
}

// Pair returns both children of a pair at once.  The third return is false
// when the node is an atom.
func (n *Node) Pair() (*Node, *Node, bool) {
	if n.IsAtom() {
		return nil, nil, false
	}
	return n.first, n.rest, true
}

// Equal returns whether two expressions are structurally equal: identical
// tree shape and identical atom bytes at the leaves.  The comparison walks
// an explicit stack so deeply nested trees compare without exhausting
// goroutine stack.
func (n *Node) Equal(o *Node) bool {
	type nodePair struct {
		a, b *Node
	}
	stack := []nodePair{{n, o}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a.IsAtom() != p.b.IsAtom() {
			return false
		}
		if p.a.IsAtom() {
			if !bytes.Equal(p.a.atom, p.b.atom) {
				return false
			}
			continue
		}
		stack = append(stack,
			nodePair{p.a.rest, p.b.rest},
			nodePair{p.a.first, p.b.first})
	}
	return true
}

// ProperList flattens a proper list (a chain of pairs terminated by the
// empty atom) into a slice of its elements.  The second return is false
// when the node is not a proper list.
func (n *Node) ProperList() ([]*Node, bool) {
	var items []*Node
	for n.IsPair() {
		items = append(items, n.first)
		n = n.rest
	}
	if !n.IsNil() {
		return nil, false
	}
	return items, true
}

// String renders the expression in the assembler's literal syntax.  It is
// intended for diagnostics; use Serialize for the canonical byte form.
func (n *Node) String() string {
	return Disassemble(n)
}

// dump is a debugging aid used in test failure messages.
func (n *Node) dump() string {
	if n.IsAtom() {
		return fmt.Sprintf("atom<%x>", n.atom)
	}
	return fmt.Sprintf("(%s . %s)", n.first.dump(), n.rest.dump())
}
