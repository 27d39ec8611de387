// Package bls implements a go-wrapper around a library implementing the
// the BLS12-381 curve and signature scheme. This package exposes a public API for
// creating keys and producing and verifying the BLS signatures carried in
// validator deposits.
package bls

import (
	"github.com/staking-tools/eth2-deposit/shared/bls/herumi"
	"github.com/staking-tools/eth2-deposit/shared/bls/iface"
)

// SecretKeyFromBytes creates a BLS private key from a 32-byte big-endian input.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return herumi.SecretKeyFromBytes(privKey)
}

// PublicKeyFromBytes creates a BLS public key from a 48-byte compressed input.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return herumi.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a 96-byte compressed input.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return herumi.SignatureFromBytes(sig)
}

// RandKey creates a new private key using a random input.
func RandKey() (SecretKey, error) {
	return herumi.RandKey()
}

// SecretKey represents a BLS secret or private key.
type SecretKey = iface.SecretKey

// PublicKey represents a BLS public key.
type PublicKey = iface.PublicKey

// Signature represents a BLS signature.
type Signature = iface.Signature
