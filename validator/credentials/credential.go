// Package credentials implements per-validator deposit credentials derived
// from a BIP-39 mnemonic: the withdrawal and signing keys at the EIP-2334
// paths of a validator index, the signed deposit record for activating the
// validator, and the encrypted keystore protecting the signing key at rest.
package credentials

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/staking-tools/eth2-deposit/shared/bls"
	"github.com/staking-tools/eth2-deposit/shared/bytesutil"
	"github.com/staking-tools/eth2-deposit/shared/depositutil"
	"github.com/staking-tools/eth2-deposit/shared/keyderivation"
	"github.com/staking-tools/eth2-deposit/shared/params"
	"github.com/staking-tools/eth2-deposit/validator/keymanager"
)

var log = logrus.WithField("prefix", "credentials")

const (
	// WithdrawalKeyDerivationPathTemplate defining the hierarchical path for withdrawal
	// keys for eth2 validators. According to EIP-2334, the format is as follows:
	// m / purpose / coin_type / account_index / withdrawal_key
	WithdrawalKeyDerivationPathTemplate = "m/12381/3600/%d/0"
	// SigningKeyDerivationPathTemplate defining the hierarchical path for signing
	// keys for eth2 validators. According to EIP-2334, the format is as follows:
	// m / purpose / coin_type / account_index / withdrawal_key / signing_key
	SigningKeyDerivationPathTemplate = "m/12381/3600/%d/0/0"
)

// ErrDepositAmountOutOfRange is returned when a deposit amount lies outside
// the chain's [MinDepositAmount, MaxDepositAmount] bounds.
var ErrDepositAmountOutOfRange = errors.New("deposit amount is outside the chain's deposit bounds")

// Credential holds everything needed to process a single validator: the two
// independently derived secret keys, the deposit amount and the fork version
// of the target chain. A credential is immutable once constructed; every
// other value is recomputed from these fields on demand.
type Credential struct {
	withdrawalKey  bls.SecretKey
	signingKey     bls.SecretKey
	signingKeyPath string
	amount         uint64
	forkVersion    [4]byte
}

// NewCredential derives the withdrawal and signing keys for the validator at
// the given account index of the mnemonic. Construction either fully
// succeeds or returns an error with no partial credential.
func NewCredential(mnemonic, mnemonicPassword string, index uint64, amount uint64, forkVersion [4]byte) (*Credential, error) {
	withdrawalKeyPath := fmt.Sprintf(WithdrawalKeyDerivationPathTemplate, index)
	signingKeyPath := fmt.Sprintf(SigningKeyDerivationPathTemplate, index)
	withdrawalKey, err := keyderivation.SecretKeyFromMnemonicAndPath(mnemonic, mnemonicPassword, withdrawalKeyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not derive withdrawal key for account %d", index)
	}
	signingKey, err := keyderivation.SecretKeyFromMnemonicAndPath(mnemonic, mnemonicPassword, signingKeyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not derive signing key for account %d", index)
	}
	return &Credential{
		withdrawalKey:  withdrawalKey,
		signingKey:     signingKey,
		signingKeyPath: signingKeyPath,
		amount:         amount,
		forkVersion:    forkVersion,
	}, nil
}

// SigningKeyPath returns the EIP-2334 path of the signing key.
func (c *Credential) SigningKeyPath() string {
	return c.signingKeyPath
}

// Amount returns the deposit amount in Gwei this credential was built for.
func (c *Credential) Amount() uint64 {
	return c.amount
}

// ForkVersion returns the fork version of the chain this credential targets.
func (c *Credential) ForkVersion() [4]byte {
	return c.forkVersion
}

// SigningPublicKey returns the public key of the signing secret key.
func (c *Credential) SigningPublicKey() bls.PublicKey {
	return c.signingKey.PublicKey()
}

// WithdrawalPublicKey returns the public key of the withdrawal secret key.
func (c *Credential) WithdrawalPublicKey() bls.PublicKey {
	return c.withdrawalKey.PublicKey()
}

// WithdrawalCredentials returns the 32-byte BLS withdrawal credentials
// committing to the withdrawal public key.
func (c *Credential) WithdrawalCredentials() []byte {
	return depositutil.WithdrawalCredentialsHash(c.withdrawalKey)
}

// DepositMessage builds the unsigned deposit message for this credential,
// validating the amount against the chain's deposit bounds first.
func (c *Credential) DepositMessage() (*depositutil.DepositMessage, error) {
	cfg := params.BeaconConfig()
	if c.amount < cfg.MinDepositAmount || c.amount > cfg.MaxDepositAmount {
		return nil, errors.Wrapf(ErrDepositAmountOutOfRange,
			"%d gwei is not within [%d, %d]", c.amount, cfg.MinDepositAmount, cfg.MaxDepositAmount)
	}
	return &depositutil.DepositMessage{
		Pubkey:                c.SigningPublicKey().Marshal(),
		WithdrawalCredentials: c.WithdrawalCredentials(),
		Amount:                c.amount,
	}, nil
}

// SignedDeposit builds the deposit message, substituting
// overrideWithdrawalCredentials into the message when non-nil, and signs its
// domain-separated signing root with the signing key. The domain and roots
// are recomputed from the credential's current fork version on every call.
func (c *Credential) SignedDeposit(overrideWithdrawalCredentials []byte) (*depositutil.DepositData, error) {
	domain, err := depositutil.ComputeDepositDomain(c.forkVersion)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute deposit domain")
	}
	msg, err := c.DepositMessage()
	if err != nil {
		return nil, err
	}
	if overrideWithdrawalCredentials != nil {
		// Copy so a caller mutating the override afterwards cannot corrupt
		// the signed record.
		msg.WithdrawalCredentials = bytesutil.SafeCopyBytes(overrideWithdrawalCredentials)
	}
	msgRoot, err := msg.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not compute deposit message root")
	}
	signingRoot, err := depositutil.ComputeSigningRoot(msgRoot, domain)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute signing root")
	}
	return &depositutil.DepositData{
		Pubkey:                msg.Pubkey,
		WithdrawalCredentials: msg.WithdrawalCredentials,
		Amount:                msg.Amount,
		Signature:             c.signingKey.Sign(signingRoot[:]).Marshal(),
	}, nil
}

// SigningKeystore encrypts the signing key under the given password into an
// EIP-2335 keystore tagged with the signing key's derivation path.
func (c *Credential) SigningKeystore(password string) (*keymanager.Keystore, error) {
	return keymanager.Encrypt(c.signingKey.Marshal(), password, c.signingKeyPath, c.SigningPublicKey().Marshal())
}

// SaveSigningKeystore encrypts the signing key and persists the keystore
// into folder, returning the path of the written file. The file name embeds
// the derivation path (separators replaced with underscores) and a coarse
// unix timestamp, matching what other deposit tooling produces.
func (c *Credential) SaveSigningKeystore(password, folder string) (string, error) {
	keystore, err := c.SigningKeystore(password)
	if err != nil {
		return "", err
	}
	file := fmt.Sprintf("%s/keystore-%s-%d.json", folder, strings.ReplaceAll(keystore.Path, "/", "_"), time.Now().Unix())
	if err := keystore.Save(file); err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"path": keystore.Path,
		"file": file,
	}).Debug("Wrote signing keystore")
	return file, nil
}

// VerifyKeystore loads the keystore file, decrypts it with the password and
// compares the recovered secret against the credential's signing key. A
// failed decrypt (wrong password, or a corrupted crypto section - the
// keystorev4 checksum makes the two indistinguishable) yields (false, nil);
// file-level read or parse failures are returned as errors.
func (c *Credential) VerifyKeystore(keystoreFile, password string) (bool, error) {
	keystore, err := keymanager.LoadKeystore(keystoreFile)
	if err != nil {
		return false, err
	}
	secret, err := keystore.Decrypt(password)
	if err != nil {
		return false, nil
	}
	return bytes.Equal(secret, c.signingKey.Marshal()), nil
}
