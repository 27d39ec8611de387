package herumi

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/bls/common"
	"github.com/staking-tools/eth2-deposit/shared/bls/iface"
)

// SecretKeyLength is the expected length, in bytes, of a serialized
// BLS12-381 secret scalar.
const SecretKeyLength = 32

// blsSecretKey used in the BLS signature scheme.
type blsSecretKey struct {
	p *bls.SecretKey
}

// RandKey creates a new private key using a random method provided as an io.Reader.
func RandKey() (iface.SecretKey, error) {
	secKey := &bls.SecretKey{}
	secKey.SetByCSPRNG()
	return &blsSecretKey{secKey}, nil
}

// SecretKeyFromBytes creates a BLS private key from a 32-byte big-endian input.
func SecretKeyFromBytes(privKey []byte) (iface.SecretKey, error) {
	if len(privKey) != SecretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", SecretKeyLength)
	}
	if common.SecretKeyIsZero(privKey) {
		return nil, common.ErrZeroKey
	}
	secKey := &bls.SecretKey{}
	err := secKey.Deserialize(privKey)
	if err != nil {
		return nil, errors.Wrap(err, common.ErrSecretUnmarshal.Error())
	}
	return &blsSecretKey{p: secKey}, err
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *blsSecretKey) PublicKey() iface.PublicKey {
	return &PublicKey{p: s.p.GetPublicKey()}
}

// Sign a message using a secret key - in a beacon/validator client.
//
// In IETF draft BLS specification:
// Sign(SK, message) -> signature: a signing algorithm that generates
//      a deterministic signature given a secret key SK and a message.
func (s *blsSecretKey) Sign(msg []byte) iface.Signature {
	signature := s.p.SignByte(msg)
	return &Signature{s: signature}
}

// Marshal a secret key into a 32-byte big-endian slice.
func (s *blsSecretKey) Marshal() []byte {
	keyBytes := s.p.Serialize()
	return keyBytes
}
