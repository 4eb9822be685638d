// Copyright (c) 2021 The peas developers

package hash

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the length in bytes of a Hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a hash
// string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a 32 byte digest. Puzzle hashes, unlike block hashes on some
// chains, are never byte-reversed for display.
type Hash [HashSize]byte

// ZeroHash is the all-zero hash.
var ZeroHash = Hash{}

// String returns the Hash as a hexadecimal string.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// Bytes returns the bytes which represent the hash as a byte slice.
//
// NOTE: the returned slice aliases the hash array.  It is generally cheaper
// to slice the hash directly, callers must not modify the result.
func (hash *Hash) Bytes() []byte {
	return hash[:]
}

// SetBytes sets the bytes which represent the hash.  An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen,
			HashSize)
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// NewHash returns a new Hash from a byte slice.  An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from a hexadecimal hash string.
func NewHashFromStr(src string) (*Hash, error) {
	if len(src) > MaxHashStringSize {
		return nil, ErrHashStrSize
	}
	data, err := hex.DecodeString(src)
	if err != nil {
		return nil, err
	}
	return NewHash(data)
}

// MustHexToHash converts a hex string to a hash. Must means it panics for
// invalid input.
func MustHexToHash(i string) Hash {
	h, err := NewHashFromStr(i)
	if err != nil {
		panic(err)
	}
	return *h
}
