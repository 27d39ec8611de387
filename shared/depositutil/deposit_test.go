package depositutil_test

import (
	"encoding/hex"
	"testing"

	"github.com/staking-tools/eth2-deposit/shared/bls"
	"github.com/staking-tools/eth2-deposit/shared/bytesutil"
	"github.com/staking-tools/eth2-deposit/shared/depositutil"
	"github.com/staking-tools/eth2-deposit/shared/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexDecodeOrDie(t *testing.T, input string) []byte {
	b, err := hex.DecodeString(input)
	require.NoError(t, err)
	return b
}

func TestWithdrawalCredentialsHash(t *testing.T) {
	params.UseMainnetConfig()
	// Withdrawal key at m/12381/3600/0/0 of the BIP-39 phrase
	// "legal winner thank year wave sausage worth useful legal winner thank yellow".
	withdrawalKey, err := bls.SecretKeyFromBytes(
		hexDecodeOrDie(t, "2c80c2b76cbb277d77ffb4829b51396eb2ba7d0ae7ac91e2ef068d82909e49eb"))
	require.NoError(t, err)

	credentials := depositutil.WithdrawalCredentialsHash(withdrawalKey)
	require.Len(t, credentials, 32)
	assert.Equal(t,
		"0070a99ca6ac465426ef9e8f3f5a5c5844fd4698677cf88842700266bce70f81",
		hex.EncodeToString(credentials))
	assert.Equal(t, params.BeaconConfig().BLSWithdrawalPrefixByte, credentials[0])
}

func TestComputeDepositDomain(t *testing.T) {
	params.UseMainnetConfig()
	domain, err := depositutil.ComputeDepositDomain(params.BeaconConfig().GenesisForkVersion)
	require.NoError(t, err)
	// 0x03000000 || fork_data_root(version=0x00000000, root=0x00..00)[:28]
	assert.Equal(t,
		"03000000f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a9",
		hex.EncodeToString(domain))
}

func TestComputeDepositDomain_DependsOnForkVersion(t *testing.T) {
	params.UseMainnetConfig()
	mainnet, err := depositutil.ComputeDepositDomain([4]byte{0, 0, 0, 0})
	require.NoError(t, err)
	prater, err := depositutil.ComputeDepositDomain(bytesutil.ToBytes4([]byte{0x00, 0x00, 0x10, 0x20}))
	require.NoError(t, err)
	require.Len(t, prater, 32)
	assert.Equal(t, params.BeaconConfig().DomainDeposit[:], prater[:4])
	assert.NotEqual(t, mainnet, prater)
}

func TestComputeSigningRoot(t *testing.T) {
	params.UseMainnetConfig()
	msgRoot := bytesutil.ToBytes32(hexDecodeOrDie(t, "53440ada75391dcd43e5a565006ff860d510833854a73a2b4fe4a8d88d586280"))
	domain, err := depositutil.ComputeDepositDomain([4]byte{0, 0, 0, 0})
	require.NoError(t, err)

	signingRoot, err := depositutil.ComputeSigningRoot(msgRoot, domain)
	require.NoError(t, err)
	assert.Equal(t,
		"1aabadc26148427cd50a8f4df76bf3385ba4847994d0122061730304e34b2c13",
		hex.EncodeToString(signingRoot[:]))
}

func TestVerifyDepositSignature(t *testing.T) {
	params.UseMainnetConfig()
	forkVersion := params.BeaconConfig().GenesisForkVersion
	key, err := bls.RandKey()
	require.NoError(t, err)

	msg := &depositutil.DepositMessage{
		Pubkey:                key.PublicKey().Marshal(),
		WithdrawalCredentials: make([]byte, 32),
		Amount:                params.BeaconConfig().MaxDepositAmount,
	}
	msgRoot, err := msg.HashTreeRoot()
	require.NoError(t, err)
	domain, err := depositutil.ComputeDepositDomain(forkVersion)
	require.NoError(t, err)
	signingRoot, err := depositutil.ComputeSigningRoot(msgRoot, domain)
	require.NoError(t, err)

	dd := &depositutil.DepositData{
		Pubkey:                msg.Pubkey,
		WithdrawalCredentials: msg.WithdrawalCredentials,
		Amount:                msg.Amount,
		Signature:             key.Sign(signingRoot[:]).Marshal(),
	}
	require.NoError(t, depositutil.VerifyDepositSignature(dd, forkVersion))

	// Any change to the signed fields must invalidate the signature.
	dd.Amount--
	require.Error(t, depositutil.VerifyDepositSignature(dd, forkVersion))
	dd.Amount++
	require.Error(t, depositutil.VerifyDepositSignature(dd, [4]byte{0x00, 0x00, 0x10, 0x20}))
}

func TestVerifyDepositSignature_NilData(t *testing.T) {
	err := depositutil.VerifyDepositSignature(nil, [4]byte{})
	require.ErrorIs(t, err, depositutil.ErrNilDepositData)
}

func TestDepositMessageHashTreeRoot(t *testing.T) {
	msg := &depositutil.DepositMessage{
		Pubkey:                hexDecodeOrDie(t, "90d317fa6a570715d34556f27f5b390a9c6b3deab4ef0092b45214e553f2302724d22324eeae418ba8b358cb108125ec"),
		WithdrawalCredentials: hexDecodeOrDie(t, "0070a99ca6ac465426ef9e8f3f5a5c5844fd4698677cf88842700266bce70f81"),
		Amount:                32000000000,
	}
	root, err := msg.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t,
		"53440ada75391dcd43e5a565006ff860d510833854a73a2b4fe4a8d88d586280",
		hex.EncodeToString(root[:]))
}

func TestForkDataAndSigningDataSSZ(t *testing.T) {
	forkData := &depositutil.ForkData{
		CurrentVersion:        []byte{0, 0, 0, 0},
		GenesisValidatorsRoot: make([]byte, 32),
	}
	encoded, err := forkData.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, encoded, forkData.SizeSSZ())
	decodedFork := &depositutil.ForkData{}
	require.NoError(t, decodedFork.UnmarshalSSZ(encoded))
	assert.Equal(t, forkData, decodedFork)

	// fork_data_root of the zero fork and zero root, the value the mainnet
	// deposit domain is built from.
	forkRoot, err := forkData.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t,
		"f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b",
		hex.EncodeToString(forkRoot[:]))

	signingData := &depositutil.SigningData{
		ObjectRoot: forkRoot[:],
		Domain:     make([]byte, 32),
	}
	encoded, err = signingData.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, encoded, signingData.SizeSSZ())
	decodedSigning := &depositutil.SigningData{}
	require.NoError(t, decodedSigning.UnmarshalSSZ(encoded))
	assert.Equal(t, signingData, decodedSigning)
	_, err = signingData.HashTreeRoot()
	require.NoError(t, err)
}

func TestDepositDataSSZRoundtrip(t *testing.T) {
	dd := &depositutil.DepositData{
		Pubkey:                bytesutil.PadTo([]byte("pubkey"), 48),
		WithdrawalCredentials: bytesutil.PadTo([]byte("creds"), 32),
		Amount:                32000000000,
		Signature:             bytesutil.PadTo([]byte("sig"), 96),
	}
	encoded, err := dd.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, encoded, dd.SizeSSZ())

	decoded := &depositutil.DepositData{}
	require.NoError(t, decoded.UnmarshalSSZ(encoded))
	assert.Equal(t, dd, decoded)

	require.Error(t, decoded.UnmarshalSSZ(encoded[:len(encoded)-1]))
}
