// Package params defines the chain-level constants consumed when building
// validator deposits: Gwei bounds, domain types, withdrawal prefixes and
// per-network genesis fork versions.
package params

import (
	"sort"

	"github.com/pkg/errors"
)

// BeaconChainConfig contains the subset of beacon chain constants that
// deposit construction depends on.
type BeaconChainConfig struct {
	// Network identity.
	ConfigName string // ConfigName for the network this config represents.

	// Gwei value constants.
	MinDepositAmount          uint64 // MinDepositAmount is the minimum amount of Gwei a validator can deposit.
	MaxDepositAmount          uint64 // MaxDepositAmount is the largest deposit this tooling will produce.
	EffectiveBalanceIncrement uint64 // EffectiveBalanceIncrement is used for converting the high balance into the low balance for validators.
	GweiPerEth                uint64 // GweiPerEth is the amount of gwei corresponding to 1 eth.

	// Initial value constants.
	BLSWithdrawalPrefixByte byte     // BLSWithdrawalPrefixByte is used for BLS withdrawal and it's the first byte.
	ZeroHash                [32]byte // ZeroHash is used to represent a zeroed out 32 byte array.

	// Signature domains.
	DomainDeposit [4]byte // DomainDeposit defines the BLS signature domain for deposit verification.

	// Fork version of the network's genesis, mixed into the deposit
	// signing domain to prevent cross-chain replay.
	GenesisForkVersion [4]byte
}

var beaconConfig = MainnetConfig()

// BeaconConfig retrieves the beacon chain config in use.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig by replacing the config. The preferred pattern is to
// call BeaconConfig(), change the specific parameters, and then call
// OverrideBeaconConfig(c). Any subsequent calls to params.BeaconConfig() will
// return this new configuration.
func OverrideBeaconConfig(c *BeaconChainConfig) {
	beaconConfig = c
}

// UseMainnetConfig for beacon chain services.
func UseMainnetConfig() {
	beaconConfig = MainnetConfig()
}

// ConfigForNetwork returns the chain configuration registered under the given
// network name, such as "mainnet" or "prater".
func ConfigForNetwork(name string) (*BeaconChainConfig, error) {
	cfg, ok := knownNetworks[name]
	if !ok {
		return nil, errors.Errorf("unknown network %q, supported networks are %v", name, KnownNetworks())
	}
	return cfg, nil
}

// KnownNetworks returns the sorted names of every network this tooling can
// produce deposits for.
func KnownNetworks() []string {
	names := make([]string, 0, len(knownNetworks))
	for name := range knownNetworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var knownNetworks = map[string]*BeaconChainConfig{
	MainnetName: MainnetConfig(),
	PraterName:  PraterConfig(),
	PyrmontName: PyrmontConfig(),
}
