package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/promptutil"
	"github.com/tyler-smith/go-bip39"
	"github.com/urfave/cli/v2"
)

var existingMnemonicCommand = &cli.Command{
	Name:  "existing-mnemonic",
	Usage: "derive validator keys and deposit data from a mnemonic you already have",
	Flags: []cli.Flag{
		mnemonicFlag,
		mnemonicPasswordFlag,
		validatorStartIndexFlag,
		numValidatorsFlag,
		chainFlag,
		keystorePasswordFlag,
		folderFlag,
		withdrawalCredentialsFlag,
	},
	Action: existingMnemonicAction,
}

func existingMnemonicAction(cliCtx *cli.Context) error {
	cfg, err := configFromCli(cliCtx)
	if err != nil {
		return err
	}
	mnemonic := cliCtx.String(mnemonicFlag.Name)
	if !cliCtx.IsSet(mnemonicFlag.Name) {
		mnemonic, err = promptutil.ValidatePrompt("Enter your seed phrase", validateMnemonic)
		if err != nil {
			return errors.Wrap(err, "could not get mnemonic phrase")
		}
	}
	if err := validateMnemonic(mnemonic); err != nil {
		return err
	}
	cfg.mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	cfg.mnemonicPassword = cliCtx.String(mnemonicPasswordFlag.Name)
	return generate(cfg)
}

func validateMnemonic(mnemonic string) error {
	if strings.TrimSpace(mnemonic) == "" {
		return errors.New("phrase cannot be empty")
	}
	normalized := strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(normalized) {
		return errors.New("not a valid BIP-39 phrase")
	}
	return nil
}
