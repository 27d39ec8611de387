package params

// PraterName is the network name for the Prater testnet.
const PraterName = "prater"

// PyrmontName is the network name for the Pyrmont testnet.
const PyrmontName = "pyrmont"

// PraterConfig defines the config for the Prater testnet.
func PraterConfig() *BeaconChainConfig {
	cfg := mainnetBeaconConfig.Copy()
	cfg.ConfigName = PraterName
	cfg.GenesisForkVersion = [4]byte{0x00, 0x00, 0x10, 0x20}
	return cfg
}

// PyrmontConfig defines the config for the Pyrmont testnet.
func PyrmontConfig() *BeaconChainConfig {
	cfg := mainnetBeaconConfig.Copy()
	cfg.ConfigName = PyrmontName
	cfg.GenesisForkVersion = [4]byte{0x00, 0x00, 0x20, 0x09}
	return cfg
}
