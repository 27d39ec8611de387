package main

import (
	"encoding/hex"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/fileutil"
	"github.com/staking-tools/eth2-deposit/shared/params"
	"github.com/staking-tools/eth2-deposit/shared/progressutil"
	"github.com/staking-tools/eth2-deposit/shared/promptutil"
	"github.com/staking-tools/eth2-deposit/validator/credentials"
	"github.com/urfave/cli/v2"
)

const keysDirName = "validator_keys"

// generateConfig carries everything the common generation flow needs once
// the per-command prompting is done.
type generateConfig struct {
	mnemonic              string
	mnemonicPassword      string
	numValidators         int
	startIndex            uint64
	keystorePassword      string
	folder                string
	forkVersion           [4]byte
	withdrawalCredentials []byte
}

// configFromCli resolves the flags common to both commands, prompting for
// whatever was not supplied on the command line.
func configFromCli(cliCtx *cli.Context) (*generateConfig, error) {
	network := cliCtx.String(chainFlag.Name)
	if !cliCtx.IsSet(chainFlag.Name) {
		var err error
		network, err = promptutil.SelectPrompt("Select the chain to generate deposits for", params.KnownNetworks())
		if err != nil {
			return nil, err
		}
	}
	config, err := params.ConfigForNetwork(network)
	if err != nil {
		return nil, err
	}
	params.OverrideBeaconConfig(config)

	numValidators := cliCtx.Int(numValidatorsFlag.Name)
	if !cliCtx.IsSet(numValidatorsFlag.Name) {
		input, err := promptutil.ValidatePrompt("How many validators do you wish to run", func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return errors.New("enter a positive number")
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		numValidators, err = strconv.Atoi(input)
		if err != nil {
			return nil, err
		}
	}
	if numValidators < 1 {
		return nil, errors.New("number of validators must be at least 1")
	}

	keystorePassword := cliCtx.String(keystorePasswordFlag.Name)
	if !cliCtx.IsSet(keystorePasswordFlag.Name) {
		keystorePassword, err = promptutil.PasswordWithConfirmation("Password to encrypt the generated keystores")
		if err != nil {
			return nil, err
		}
	}

	folder, err := fileutil.ExpandPath(cliCtx.String(folderFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "could not expand folder path")
	}

	var overrideCredentials []byte
	if cliCtx.IsSet(withdrawalCredentialsFlag.Name) {
		raw := strings.TrimPrefix(cliCtx.String(withdrawalCredentialsFlag.Name), "0x")
		overrideCredentials, err = hex.DecodeString(raw)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse withdrawal credentials")
		}
		if len(overrideCredentials) != 32 {
			return nil, errors.Errorf("withdrawal credentials must be 32 bytes, got %d", len(overrideCredentials))
		}
	}

	return &generateConfig{
		numValidators:         numValidators,
		startIndex:            cliCtx.Uint64(validatorStartIndexFlag.Name),
		keystorePassword:      keystorePassword,
		folder:                folder,
		forkVersion:           config.GenesisForkVersion,
		withdrawalCredentials: overrideCredentials,
	}, nil
}

// generate runs the shared pipeline: derive the credentials, export the
// keystores and the deposit data file, then verify every written keystore
// against its credential before declaring success.
func generate(cfg *generateConfig) error {
	keysDir := filepath.Join(cfg.folder, keysDirName)
	if err := fileutil.MkdirAll(keysDir); err != nil {
		return errors.Wrapf(err, "could not create %s", keysDir)
	}

	amounts := make([]uint64, cfg.numValidators)
	for i := range amounts {
		amounts[i] = params.BeaconConfig().MaxDepositAmount
	}

	bar := progressutil.InitializeProgressBar(cfg.numValidators, "Deriving validator keys...")
	credentialList, err := credentials.FromMnemonic(
		cfg.mnemonic,
		cfg.mnemonicPassword,
		cfg.numValidators,
		amounts,
		cfg.forkVersion,
		cfg.startIndex,
		bar,
	)
	if err != nil {
		return errors.Wrap(err, "could not derive validator credentials")
	}

	bar = progressutil.InitializeProgressBar(cfg.numValidators, "Writing keystores...")
	keystoreFiles, err := credentialList.ExportKeystores(cfg.keystorePassword, keysDir, bar)
	if err != nil {
		return errors.Wrap(err, "could not export keystores")
	}

	bar = progressutil.InitializeProgressBar(cfg.numValidators, "Writing deposit data...")
	depositDataFile, err := credentialList.ExportDepositDataJSON(keysDir, cfg.withdrawalCredentials, bar)
	if err != nil {
		return errors.Wrap(err, "could not export deposit data")
	}

	bar = progressutil.InitializeProgressBar(cfg.numValidators, "Verifying keystores...")
	ok, err := credentialList.VerifyKeystores(keystoreFiles, cfg.keystorePassword, bar)
	if err != nil {
		return errors.Wrap(err, "could not verify the written keystores")
	}
	if !ok {
		return errors.New("a written keystore did not decrypt back to its signing key, aborting")
	}

	log.WithField("folder", keysDir).Info(au.BrightGreen("Success! Your keys and deposit data are ready"))
	log.WithField("file", depositDataFile).Info("Submit the deposit data file to the launchpad of your chosen network")
	return nil
}
