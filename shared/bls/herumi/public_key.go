package herumi

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/bls/common"
	"github.com/staking-tools/eth2-deposit/shared/bls/iface"
)

// PublicKeyLength is the expected length, in bytes, of a compressed
// BLS12-381 G1 point.
const PublicKeyLength = 48

// PublicKey used in the BLS signature scheme.
type PublicKey struct {
	p *bls.PublicKey
}

// PublicKeyFromBytes creates a BLS public key from a 48-byte compressed input.
func PublicKeyFromBytes(pubKey []byte) (iface.PublicKey, error) {
	if len(pubKey) != PublicKeyLength {
		return nil, fmt.Errorf("public key must be %d bytes", PublicKeyLength)
	}
	if common.PublicKeyIsInfinite(pubKey) {
		return nil, common.ErrInfinitePubKey
	}
	p := &bls.PublicKey{}
	err := p.Deserialize(pubKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into public key")
	}
	return &PublicKey{p: p}, nil
}

// Marshal a public key into a compressed 48-byte slice.
func (p *PublicKey) Marshal() []byte {
	return p.p.Serialize()
}

// Copy the public key to a new pointer reference.
func (p *PublicKey) Copy() iface.PublicKey {
	np := *p.p
	return &PublicKey{p: &np}
}

// Equals checks if the provided public key is equal to
// the current one.
func (p *PublicKey) Equals(p2 iface.PublicKey) bool {
	return p.p.IsEqual(p2.(*PublicKey).p)
}
