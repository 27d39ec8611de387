package main

import (
	"strings"

	"github.com/staking-tools/eth2-deposit/shared/params"
	"github.com/urfave/cli/v2"
)

var (
	numValidatorsFlag = &cli.IntFlag{
		Name:  "num_validators",
		Usage: "Number of validators to generate keys for",
	}
	chainFlag = &cli.StringFlag{
		Name:  "chain",
		Usage: "Name of the chain to generate deposits for: " + strings.Join(params.KnownNetworks(), ", ") + ". Prompted for when unset",
	}
	keystorePasswordFlag = &cli.StringFlag{
		Name:  "keystore_password",
		Usage: "Password used to encrypt the generated keystores. Prompted for when unset",
	}
	folderFlag = &cli.StringFlag{
		Name:  "folder",
		Usage: "Folder to write the validator_keys directory into",
		Value: ".",
	}
	mnemonicFlag = &cli.StringFlag{
		Name:  "mnemonic",
		Usage: "BIP-39 mnemonic to derive keys from. Prompted for when unset",
	}
	mnemonicPasswordFlag = &cli.StringFlag{
		Name:  "mnemonic_password",
		Usage: "Optional passphrase that was used alongside the mnemonic",
	}
	validatorStartIndexFlag = &cli.Uint64Flag{
		Name:  "validator_start_index",
		Usage: "Account index to start deriving keys from",
	}
	withdrawalCredentialsFlag = &cli.StringFlag{
		Name:  "withdrawal_credentials",
		Usage: "Optional 32-byte hex withdrawal credentials overriding the derived ones",
	}
)
