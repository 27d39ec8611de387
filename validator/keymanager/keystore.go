package keymanager

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/fileutil"
	keystorev4 "github.com/wealdtech/go-eth2-wallet-encryptor-keystorev4"
)

// Encrypt a secret key under the given password into an EIP-2335 keystore.
// The pubkey is recorded in hex alongside the derivation path so the
// keystore can be matched back to its validator without decrypting it.
func Encrypt(secret []byte, password, path string, pubkey []byte) (*Keystore, error) {
	encryptor := keystorev4.New()
	cryptoFields, err := encryptor.Encrypt(secret, password)
	if err != nil {
		return nil, errors.Wrap(err, "could not encrypt secret key")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "could not generate unique UUID")
	}
	return &Keystore{
		Crypto:  cryptoFields,
		Pubkey:  fmt.Sprintf("%x", pubkey),
		Path:    path,
		ID:      id.String(),
		Version: encryptor.Version(),
	}, nil
}

// Decrypt the keystore's crypto section with the given password, returning
// the original secret. A wrong password surfaces as a checksum error from
// the decryptor; it can never silently return the wrong secret.
func (k *Keystore) Decrypt(password string) ([]byte, error) {
	decryptor := keystorev4.New()
	secret, err := decryptor.Decrypt(k.Crypto, password)
	if err != nil {
		return nil, errors.Wrap(err, "could not decrypt keystore")
	}
	return secret, nil
}

// Save the keystore as JSON at the given file path. The write is atomic
// from the caller's perspective.
func (k *Keystore) Save(file string) error {
	encoded, err := json.MarshalIndent(k, "", "\t")
	if err != nil {
		return errors.Wrap(err, "could not marshal keystore")
	}
	if err := fileutil.WriteFile(file, encoded); err != nil {
		return errors.Wrapf(err, "could not write keystore to %s", file)
	}
	return nil
}

// LoadKeystore reads and parses a keystore JSON file from disk.
func LoadKeystore(file string) (*Keystore, error) {
	expanded, err := fileutil.ExpandPath(file)
	if err != nil {
		return nil, err
	}
	encoded, err := ioutil.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read keystore file %s", file)
	}
	keystore := &Keystore{}
	if err := json.Unmarshal(encoded, keystore); err != nil {
		return nil, errors.Wrapf(err, "could not parse keystore file %s", file)
	}
	return keystore, nil
}
