package herumi

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/bls/common"
	"github.com/staking-tools/eth2-deposit/shared/bls/iface"
)

// SignatureLength is the expected length, in bytes, of a compressed
// BLS12-381 G2 point.
const SignatureLength = 96

// Signature used in the BLS signature scheme.
type Signature struct {
	s *bls.Sign
}

// SignatureFromBytes creates a BLS signature from a 96-byte compressed input.
func SignatureFromBytes(sig []byte) (iface.Signature, error) {
	if len(sig) != SignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", SignatureLength)
	}
	if common.SignatureIsInfinite(sig) {
		return nil, common.ErrInfiniteSig
	}
	signature := &bls.Sign{}
	err := signature.Deserialize(sig)
	if err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into signature")
	}
	return &Signature{s: signature}, nil
}

// Verify a bls signature given a public key and a message.
//
// In IETF draft BLS specification:
// Verify(PK, message, signature) -> VALID or INVALID: a verification
//      algorithm that outputs VALID if signature is a valid signature of
//      message under public key PK, and INVALID otherwise.
func (s *Signature) Verify(pub iface.PublicKey, msg []byte) bool {
	return s.s.VerifyByte(pub.(*PublicKey).p, msg)
}

// Marshal a signature into a compressed 96-byte slice.
func (s *Signature) Marshal() []byte {
	return s.s.Serialize()
}

// Copy returns a full deep copy of a signature.
func (s *Signature) Copy() iface.Signature {
	ns := *s.s
	return &Signature{s: &ns}
}
