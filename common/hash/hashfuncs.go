// Copyright (c) 2021 The peas developers

package hash

import (
	"crypto/sha256"
)

// HashB calculates the sha256 hash and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates sha256(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}
