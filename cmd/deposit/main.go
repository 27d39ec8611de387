// Package main implements the validator deposit tool. It derives validator
// signing and withdrawal keys from a BIP-39 mnemonic, writes encrypted
// keystores, and produces the deposit data file accepted by the launchpad.
package main

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/staking-tools/eth2-deposit/shared/version"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	log = logrus.WithField("prefix", "deposit")
	au  = aurora.NewAurora(true)
)

func main() {
	app := &cli.App{
		Name:    "deposit",
		Usage:   "generate validator keys and deposit data for an eth2 chain",
		Version: version.Version(),
		Commands: []*cli.Command{
			newMnemonicCommand,
			existingMnemonicCommand,
		},
		Before: func(cliCtx *cli.Context) error {
			formatter := new(prefixed.TextFormatter)
			formatter.TimestampFormat = "2006-01-02 15:04:05"
			formatter.FullTimestamp = true
			logrus.SetFormatter(formatter)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
