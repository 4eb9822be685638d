// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"github.com/peasproject/peasd/common/hash"
)

// Domain separation bytes for the tree hash.  They must differ so an atom
// can never hash equal to a pair of the same serialized length.
const (
	treeHashAtomPrefix = 0x01
	treeHashPairPrefix = 0x02
)

// TreeHash computes the content hash that identifies an expression: atoms
// hash as sha256(0x01 || bytes), pairs as sha256(0x02 || TreeHash(first) ||
// TreeHash(rest)).  Structurally equal trees hash equal.  This is a total
// function over all expressions.
//
// The walk keeps its own stacks so deeply nested trees hash without
// exhausting goroutine stack.  A nil entry on the operation stack marks a
// pair whose child digests are ready to combine.
func TreeHash(n *Node) hash.Hash {
	ops := []*Node{n}
	var vals []hash.Hash
	for len(ops) > 0 {
		n := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if n == nil {
			rest := vals[len(vals)-1]
			first := vals[len(vals)-2]
			vals = vals[:len(vals)-2]
			buf := make([]byte, 0, 1+2*hash.HashSize)
			buf = append(buf, treeHashPairPrefix)
			buf = append(buf, first[:]...)
			buf = append(buf, rest[:]...)
			vals = append(vals, hash.HashH(buf))
			continue
		}
		if n.IsAtom() {
			buf := make([]byte, 0, 1+len(n.atom))
			buf = append(buf, treeHashAtomPrefix)
			buf = append(buf, n.atom...)
			vals = append(vals, hash.HashH(buf))
			continue
		}
		ops = append(ops, nil, n.rest, n.first)
	}
	return vals[0]
}
