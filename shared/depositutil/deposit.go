// Package depositutil contains useful functions for dealing
// with eth2 deposit inputs: withdrawal credential hashing, deposit
// signing domains, signing roots and deposit signature verification.
package depositutil

import (
	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/bls"
	"github.com/staking-tools/eth2-deposit/shared/hashutil"
	"github.com/staking-tools/eth2-deposit/shared/params"
)

// ErrNilDepositData is returned when asked to operate on a nil deposit record.
var ErrNilDepositData = errors.New("deposit data is nil")

// WithdrawalCredentialsHash forms a 32 byte hash of the withdrawal public
// address.
//
// The specification is as follows:
//   withdrawal_credentials[:1] == BLS_WITHDRAWAL_PREFIX_BYTE
//   withdrawal_credentials[1:] == hash(withdrawal_pubkey)[1:]
// where withdrawal_credentials is of type bytes32.
func WithdrawalCredentialsHash(withdrawalKey bls.SecretKey) []byte {
	h := hashutil.Hash(withdrawalKey.PublicKey().Marshal())
	return append([]byte{params.BeaconConfig().BLSWithdrawalPrefixByte}, h[1:]...)[:32]
}

// ComputeDepositDomain returns the 32-byte BLS domain for deposit signatures
// on the chain identified by forkVersion. Deposits are valid across forks of
// the same chain, so the genesis validators root mixed into the fork data is
// always zero.
func ComputeDepositDomain(forkVersion [4]byte) ([]byte, error) {
	cfg := params.BeaconConfig()
	forkData := &ForkData{
		CurrentVersion:        forkVersion[:],
		GenesisValidatorsRoot: cfg.ZeroHash[:],
	}
	forkDataRoot, err := forkData.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not compute fork data root")
	}
	domain := make([]byte, 0, 32)
	domain = append(domain, cfg.DomainDeposit[:]...)
	domain = append(domain, forkDataRoot[:28]...)
	return domain, nil
}

// ComputeSigningRoot computes the root of the object by calculating the hash
// tree root of the signing data with the given domain.
//
// Spec pseudocode definition:
//	def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//	    return hash_tree_root(SigningData(
//	        object_root=hash_tree_root(ssz_object),
//	        domain=domain,
//	    ))
func ComputeSigningRoot(objectRoot [32]byte, domain []byte) ([32]byte, error) {
	signingData := &SigningData{
		ObjectRoot: objectRoot[:],
		Domain:     domain,
	}
	return signingData.HashTreeRoot()
}

// VerifyDepositSignature verifies the correctness of an eth1 deposit BLS
// signature against the deposit domain of the given fork version. A deposit
// whose signature does not verify is unusable on that chain.
func VerifyDepositSignature(dd *DepositData, forkVersion [4]byte) error {
	if dd == nil {
		return ErrNilDepositData
	}
	blsPubkey, err := bls.PublicKeyFromBytes(dd.Pubkey)
	if err != nil {
		return errors.Wrap(err, "could not deserialize deposit public key")
	}
	blsSig, err := bls.SignatureFromBytes(dd.Signature)
	if err != nil {
		return errors.Wrap(err, "could not deserialize deposit signature")
	}
	domain, err := ComputeDepositDomain(forkVersion)
	if err != nil {
		return errors.Wrap(err, "could not compute deposit domain")
	}
	msg := &DepositMessage{
		Pubkey:                dd.Pubkey,
		WithdrawalCredentials: dd.WithdrawalCredentials,
		Amount:                dd.Amount,
	}
	msgRoot, err := msg.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not compute deposit message root")
	}
	signingRoot, err := ComputeSigningRoot(msgRoot, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	if !blsSig.Verify(blsPubkey, signingRoot[:]) {
		return errors.New("invalid deposit signature")
	}
	return nil
}
