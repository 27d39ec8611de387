package params

// MainnetName is the network name for the Ethereum mainnet.
const MainnetName = "mainnet"

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

var mainnetBeaconConfig = &BeaconChainConfig{
	ConfigName: MainnetName,

	// Gwei value constants.
	MinDepositAmount:          1 * 1e9,
	MaxDepositAmount:          32 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,
	GweiPerEth:                1000000000,

	// Initial value constants.
	BLSWithdrawalPrefixByte: byte(0),
	ZeroHash:                [32]byte{},

	// Signature domains.
	DomainDeposit: [4]byte{3, 0, 0, 0},

	GenesisForkVersion: [4]byte{0, 0, 0, 0},
}

// Copy returns a copy of the config object.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := *b
	return &config
}
