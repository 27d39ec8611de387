package credentials_test

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/staking-tools/eth2-deposit/shared/depositutil"
	"github.com/staking-tools/eth2-deposit/shared/params"
	"github.com/staking-tools/eth2-deposit/validator/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Signing public keys for account indices 0-2 of testMnemonic.
var wantSigningPks = []string{
	"90d317fa6a570715d34556f27f5b390a9c6b3deab4ef0092b45214e553f2302724d22324eeae418ba8b358cb108125ec",
	"a1bfc1bb4c5f8b1fe607a746dd73d47e41927e700b830f4e67b07460bd78235eccd387fe21d3add095d980157a42dff7",
	"b0ad35e61a768b75844907ab6b065c3a5c99ec202bd14f8c4bd3a86881412819f9848bfdd4d2ef11940479c421a624a3",
}

// countingObserver records how many progress notifications it received.
type countingObserver struct {
	count int
}

func (c *countingObserver) Add(num int) error {
	c.count += num
	return nil
}

func amountsFor(n int) []uint64 {
	amounts := make([]uint64, n)
	for i := range amounts {
		amounts[i] = depositAmountGwei
	}
	return amounts
}

func newTestCredentialList(t *testing.T, n int) *credentials.CredentialList {
	params.UseMainnetConfig()
	list, err := credentials.FromMnemonic(testMnemonic, "", n, amountsFor(n), mainnetFork, 0, nil)
	require.NoError(t, err)
	return list
}

func TestFromMnemonic_Ordering(t *testing.T) {
	list := newTestCredentialList(t, 3)
	creds := list.Credentials()
	require.Len(t, creds, 3)
	for i, credential := range creds {
		assert.Equal(t, wantSigningPks[i], hex.EncodeToString(credential.SigningPublicKey().Marshal()))
	}
}

func TestFromMnemonic_StartIndex(t *testing.T) {
	params.UseMainnetConfig()
	list, err := credentials.FromMnemonic(testMnemonic, "", 2, amountsFor(2), mainnetFork, 1, nil)
	require.NoError(t, err)
	creds := list.Credentials()
	require.Len(t, creds, 2)
	assert.Equal(t, wantSigningPks[1], hex.EncodeToString(creds[0].SigningPublicKey().Marshal()))
	assert.Equal(t, wantSigningPks[2], hex.EncodeToString(creds[1].SigningPublicKey().Marshal()))
	assert.Equal(t, "m/12381/3600/1/0/0", creds[0].SigningKeyPath())
}

func TestFromMnemonic_MismatchedAmounts(t *testing.T) {
	params.UseMainnetConfig()
	_, err := credentials.FromMnemonic(testMnemonic, "", 3, amountsFor(2), mainnetFork, 0, nil)
	require.ErrorIs(t, err, credentials.ErrMismatchedAmounts)
}

func TestFromMnemonic_ObserverNotified(t *testing.T) {
	params.UseMainnetConfig()
	obs := &countingObserver{}
	_, err := credentials.FromMnemonic(testMnemonic, "", 3, amountsFor(3), mainnetFork, 0, obs)
	require.NoError(t, err)
	assert.Equal(t, 3, obs.count)
}

func TestExportKeystores_ThenVerify(t *testing.T) {
	list := newTestCredentialList(t, 3)
	folder := t.TempDir()

	files, err := list.ExportKeystores("batch-pass", folder, nil)
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, file := range files {
		assert.Contains(t, filepath.Base(file), "keystore-m_12381_3600_")
		assert.Contains(t, file, folder)
	}

	ok, err := list.VerifyKeystores(files, "batch-pass", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = list.VerifyKeystores(files, "other-pass", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyKeystores_SwappedFiles(t *testing.T) {
	list := newTestCredentialList(t, 2)
	files, err := list.ExportKeystores("password", t.TempDir(), nil)
	require.NoError(t, err)

	swapped := []string{files[1], files[0]}
	ok, err := list.VerifyKeystores(swapped, "password", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyKeystores_LengthMismatch(t *testing.T) {
	list := newTestCredentialList(t, 2)
	files, err := list.ExportKeystores("password", t.TempDir(), nil)
	require.NoError(t, err)

	_, err = list.VerifyKeystores(files[:1], "password", nil)
	require.Error(t, err)
}

func TestExportDepositDataJSON(t *testing.T) {
	list := newTestCredentialList(t, 3)
	folder := t.TempDir()

	file, err := list.ExportDepositDataJSON(folder, nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(file), "deposit_data-"))
	assert.True(t, strings.HasSuffix(file, ".json"))

	raw, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Len(t, data, 3)
	for i, datum := range data {
		assert.Equal(t, wantSigningPks[i], datum["pubkey"])
		assert.Equal(t, float64(depositAmountGwei), datum["amount"])
		assert.Equal(t, "00000000", datum["fork_version"])
	}
}

func TestExportDepositDataJSON_Override(t *testing.T) {
	list := newTestCredentialList(t, 2)
	override := make([]byte, 32)
	override[0] = 0x01

	file, err := list.ExportDepositDataJSON(t.TempDir(), override, nil)
	require.NoError(t, err)
	raw, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))
	for _, datum := range data {
		assert.Equal(t, hex.EncodeToString(override), datum["withdrawal_credentials"])
	}
}

func TestSignedDeposits(t *testing.T) {
	list := newTestCredentialList(t, 2)
	deposits, err := list.SignedDeposits()
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	for _, deposit := range deposits {
		require.NoError(t, depositutil.VerifyDepositSignature(deposit, mainnetFork))
	}
}
