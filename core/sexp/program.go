// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sexp

import (
	"encoding/hex"
	"sync"

	"github.com/peasproject/peasd/common/hash"
)

// Program wraps a root expression together with its canonical byte
// serialization and, computed lazily, its tree hash.  A Program is
// immutable after construction.
type Program struct {
	root       *Node
	serialized []byte

	hashOnce sync.Once
	treeHash hash.Hash
}

// NewProgram wraps the passed expression, serializing it eagerly.
func NewProgram(root *Node) *Program {
	return &Program{root: root, serialized: Serialize(root)}
}

// ProgramFromBytes parses a canonical serialization into a Program.
func ProgramFromBytes(buf []byte) (*Program, error) {
	root, err := Deserialize(buf)
	if err != nil {
		return nil, err
	}
	serialized := make([]byte, len(buf))
	copy(serialized, buf)
	return &Program{root: root, serialized: serialized}, nil
}

// AssembleProgram assembles source text directly into a Program.
func AssembleProgram(src string) (*Program, error) {
	root, err := Assemble(src)
	if err != nil {
		return nil, err
	}
	return NewProgram(root), nil
}

// Root returns the root expression.
func (p *Program) Root() *Node {
	return p.root
}

// Bytes returns a copy of the canonical serialization.
func (p *Program) Bytes() []byte {
	b := make([]byte, len(p.serialized))
	copy(b, p.serialized)
	return b
}

// TreeHash returns the program's content hash, its puzzle identity.  The
// hash is computed on first use and cached; safe for concurrent access.
func (p *Program) TreeHash() hash.Hash {
	p.hashOnce.Do(func() {
		p.treeHash = TreeHash(p.root)
	})
	return p.treeHash
}

// String returns the hex form of the canonical serialization, matching the
// representation the original tooling prints.
func (p *Program) String() string {
	return hex.EncodeToString(p.serialized)
}
