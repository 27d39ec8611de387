package credentials

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/depositutil"
	"github.com/staking-tools/eth2-deposit/shared/fileutil"
)

// ErrMismatchedAmounts is returned when the number of deposit amounts does
// not equal the number of keys to derive.
var ErrMismatchedAmounts = errors.New("number of keys does not equal the number of deposit amounts")

// Observer is notified once per completed unit of batch work. It is purely
// observational and never affects results; *progressbar.ProgressBar
// satisfies it directly, and a nil Observer is a valid no-op.
type Observer interface {
	Add(num int) error
}

func observe(obs Observer) {
	if obs == nil {
		return
	}
	// Progress display failures must never fail the batch.
	_ = obs.Add(1)
}

// CredentialList is an ordered collection of credentials, one for each
// validator, covering a contiguous range of account indices.
type CredentialList struct {
	credentials []*Credential
}

// FromMnemonic derives one credential per index in
// [startIndex, startIndex+numKeys), in strictly ascending index order, using
// amounts[i-startIndex] for index i. The amounts length is validated before
// any derivation work begins, and a derivation failure at any index aborts
// the whole batch.
func FromMnemonic(
	mnemonic, mnemonicPassword string,
	numKeys int,
	amounts []uint64,
	forkVersion [4]byte,
	startIndex uint64,
	obs Observer,
) (*CredentialList, error) {
	if len(amounts) != numKeys {
		return nil, errors.Wrapf(ErrMismatchedAmounts, "%d keys, %d amounts", numKeys, len(amounts))
	}
	creds := make([]*Credential, 0, numKeys)
	for i := 0; i < numKeys; i++ {
		index := startIndex + uint64(i)
		credential, err := NewCredential(mnemonic, mnemonicPassword, index, amounts[i], forkVersion)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create credential for index %d", index)
		}
		creds = append(creds, credential)
		observe(obs)
	}
	return &CredentialList{credentials: creds}, nil
}

// Credentials returns the ordered credentials in the list.
func (cl *CredentialList) Credentials() []*Credential {
	return cl.credentials
}

// ExportKeystores writes one encrypted signing keystore per credential into
// folder, in list order, all under the same password. The returned paths
// are ordered like the credentials. Any failure aborts the remaining batch.
func (cl *CredentialList) ExportKeystores(password, folder string, obs Observer) ([]string, error) {
	files := make([]string, 0, len(cl.credentials))
	for i, credential := range cl.credentials {
		file, err := credential.SaveSigningKeystore(password, folder)
		if err != nil {
			return nil, errors.Wrapf(err, "could not export keystore %d of %d", i+1, len(cl.credentials))
		}
		files = append(files, file)
		observe(obs)
	}
	return files, nil
}

// ExportDepositDataJSON computes the deposit datum for every credential, in
// list order, and writes the array to a timestamp-named JSON file in folder.
// The optional override replaces the derived withdrawal credentials in every
// datum. Returns the path of the written file.
func (cl *CredentialList) ExportDepositDataJSON(folder string, overrideWithdrawalCredentials []byte, obs Observer) (string, error) {
	data := make([]*DepositDatum, 0, len(cl.credentials))
	for i, credential := range cl.credentials {
		datum, err := credential.DepositDatum(overrideWithdrawalCredentials)
		if err != nil {
			return "", errors.Wrapf(err, "could not build deposit datum %d of %d", i+1, len(cl.credentials))
		}
		data = append(data, datum)
		observe(obs)
	}
	encoded, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return "", errors.Wrap(err, "could not marshal deposit data")
	}
	file := fmt.Sprintf("%s/deposit_data-%d.json", folder, time.Now().Unix())
	if err := fileutil.WriteFile(file, encoded); err != nil {
		return "", errors.Wrapf(err, "could not write deposit data to %s", file)
	}
	return file, nil
}

// VerifyKeystores pairs credentials with keystore files by position and
// checks that every pair decrypts to the matching signing key under the one
// shared password. It returns true only if every pair verifies.
func (cl *CredentialList) VerifyKeystores(keystoreFiles []string, password string, obs Observer) (bool, error) {
	if len(keystoreFiles) != len(cl.credentials) {
		return false, errors.Errorf(
			"have %d credentials but %d keystore files", len(cl.credentials), len(keystoreFiles))
	}
	for i, credential := range cl.credentials {
		ok, err := credential.VerifyKeystore(keystoreFiles[i], password)
		if err != nil {
			return false, errors.Wrapf(err, "could not verify keystore %s", keystoreFiles[i])
		}
		if !ok {
			return false, nil
		}
		observe(obs)
	}
	return true, nil
}

// SignedDeposits returns the signed deposit record of every credential in
// list order, without any withdrawal credentials override.
func (cl *CredentialList) SignedDeposits() ([]*depositutil.DepositData, error) {
	deposits := make([]*depositutil.DepositData, 0, len(cl.credentials))
	for i, credential := range cl.credentials {
		deposit, err := credential.SignedDeposit(nil)
		if err != nil {
			return nil, errors.Wrapf(err, "could not sign deposit %d of %d", i+1, len(cl.credentials))
		}
		deposits = append(deposits, deposit)
	}
	return deposits, nil
}
