package params_test

import (
	"testing"

	"github.com/staking-tools/eth2-deposit/shared/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainnetDepositBounds(t *testing.T) {
	cfg := params.MainnetConfig()
	assert.Equal(t, uint64(1000000000), cfg.MinDepositAmount)
	assert.Equal(t, uint64(32000000000), cfg.MaxDepositAmount)
	assert.Equal(t, [4]byte{3, 0, 0, 0}, cfg.DomainDeposit)
	assert.Equal(t, [4]byte{0, 0, 0, 0}, cfg.GenesisForkVersion)
	assert.Equal(t, byte(0), cfg.BLSWithdrawalPrefixByte)
}

func TestConfigForNetwork(t *testing.T) {
	cfg, err := params.ConfigForNetwork(params.PraterName)
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x00, 0x00, 0x10, 0x20}, cfg.GenesisForkVersion)

	_, err = params.ConfigForNetwork("notachain")
	require.Error(t, err)
}

func TestKnownNetworksSorted(t *testing.T) {
	networks := params.KnownNetworks()
	require.NotEmpty(t, networks)
	assert.Contains(t, networks, params.MainnetName)
	for i := 1; i < len(networks); i++ {
		assert.Less(t, networks[i-1], networks[i])
	}
}

func TestOverrideBeaconConfig(t *testing.T) {
	defer params.UseMainnetConfig()
	cfg := params.MainnetConfig().Copy()
	cfg.MinDepositAmount = 5
	params.OverrideBeaconConfig(cfg)
	assert.Equal(t, uint64(5), params.BeaconConfig().MinDepositAmount)
}
