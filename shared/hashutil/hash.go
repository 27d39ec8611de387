// Package hashutil includes all hash-function related helpers for the
// deposit pipeline.
package hashutil

import "crypto/sha256"

// Hash defines a function that returns the sha256 checksum of the data passed in.
// https://github.com/ethereum/consensus-specs/blob/master/specs/phase0/beacon-chain.md#hash
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}
