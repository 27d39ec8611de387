package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/promptutil"
	"github.com/tyler-smith/go-bip39"
	"github.com/urfave/cli/v2"
)

var newMnemonicCommand = &cli.Command{
	Name:  "new-mnemonic",
	Usage: "generate a new BIP-39 mnemonic and derive validator keys and deposit data from it",
	Flags: []cli.Flag{
		numValidatorsFlag,
		chainFlag,
		keystorePasswordFlag,
		folderFlag,
		withdrawalCredentialsFlag,
	},
	Action: newMnemonicAction,
}

func newMnemonicAction(cliCtx *cli.Context) error {
	cfg, err := configFromCli(cliCtx)
	if err != nil {
		return err
	}
	mnemonic, err := generateMnemonic()
	if err != nil {
		return errors.Wrap(err, "could not generate a new mnemonic")
	}
	if err := confirmMnemonicAcknowledgement(mnemonic); err != nil {
		return err
	}
	cfg.mnemonic = mnemonic
	return generate(cfg)
}

// generateMnemonic creates a 24-word english seed phrase from 256 bits of
// system entropy.
func generateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// confirmMnemonicAcknowledgement displays the phrase and requires the user
// to type it back in full before any key material is derived from it.
func confirmMnemonicAcknowledgement(mnemonic string) error {
	log.Info("Write down the phrase below, it is the only way to recover your validator keys")
	fmt.Printf(`
=================Seed Recovery Phrase====================

%s

=========================================================

`, au.BrightCyan(mnemonic))
	_, err := promptutil.ValidatePrompt("Type your mnemonic to confirm you have written it down", func(input string) error {
		if input != mnemonic {
			return errors.New("entered phrase does not match")
		}
		return nil
	})
	return err
}
