// The keystores tool inspects and produces EIP-2335 keystore files. It can
// decrypt the keystores written by the deposit tool to show the key pair
// inside, or encrypt a raw hex secret key into a fresh keystore file.
package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/bls"
	"github.com/staking-tools/eth2-deposit/shared/fileutil"
	"github.com/staking-tools/eth2-deposit/shared/promptutil"
	"github.com/staking-tools/eth2-deposit/validator/keymanager"
	"github.com/urfave/cli/v2"
)

var (
	keystoresFlag = &cli.StringFlag{
		Name:     "keystores",
		Usage:    "Path to a keystore file, or a directory containing keystore files",
		Required: true,
	}
	passwordFlag = &cli.StringFlag{
		Name:  "password",
		Usage: "Password for the keystore(s). Prompted for when unset",
	}
	secretKeyFlag = &cli.StringFlag{
		Name:  "secret-key",
		Usage: "Hex-encoded BLS secret key to encrypt",
	}
)

func main() {
	app := &cli.App{
		Name:  "keystores",
		Usage: "inspect and produce EIP-2335 keystore files",
		Commands: []*cli.Command{
			{
				Name:   "decrypt",
				Usage:  "decrypt a keystore file or a directory of keystore files",
				Flags:  []cli.Flag{keystoresFlag, passwordFlag},
				Action: decrypt,
			},
			{
				Name:   "encrypt",
				Usage:  "encrypt a hex secret key into a keystore file",
				Flags:  []cli.Flag{keystoresFlag, passwordFlag, secretKeyFlag},
				Action: encrypt,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func decrypt(cliCtx *cli.Context) error {
	fullPath, err := fileutil.ExpandPath(cliCtx.String(keystoresFlag.Name))
	if err != nil {
		return err
	}
	password, err := inputPassword(cliCtx)
	if err != nil {
		return err
	}
	isDir, err := fileutil.HasDir(fullPath)
	if err != nil {
		return err
	}
	if !isDir {
		return decryptKeystoreFile(fullPath, password)
	}
	files, err := ioutil.ReadDir(fullPath)
	if err != nil {
		return err
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasPrefix(f.Name(), "keystore") {
			continue
		}
		if err := decryptKeystoreFile(filepath.Join(fullPath, f.Name()), password); err != nil {
			return err
		}
	}
	return nil
}

func decryptKeystoreFile(file, password string) error {
	keystore, err := keymanager.LoadKeystore(file)
	if err != nil {
		return errors.Wrapf(err, "could not read keystore %s", file)
	}
	secret, err := keystore.Decrypt(password)
	if err != nil {
		return errors.Wrapf(err, "could not decrypt keystore %s", file)
	}
	fmt.Printf("File: %s\n", file)
	fmt.Printf("Privkey: %#x\n", secret)
	fmt.Printf("Pubkey: 0x%s\n", keystore.Pubkey)
	fmt.Printf("Path: %s\n", keystore.Path)
	return nil
}

func encrypt(cliCtx *cli.Context) error {
	fullPath, err := fileutil.ExpandPath(cliCtx.String(keystoresFlag.Name))
	if err != nil {
		return err
	}
	password, err := inputPassword(cliCtx)
	if err != nil {
		return err
	}
	rawKey := cliCtx.String(secretKeyFlag.Name)
	if rawKey == "" {
		rawKey, err = promptutil.PasswordPrompt("Hex secret key to encrypt")
		if err != nil {
			return err
		}
	}
	secret, err := hex.DecodeString(strings.TrimPrefix(rawKey, "0x"))
	if err != nil {
		return errors.Wrap(err, "could not parse the secret key")
	}
	secretKey, err := bls.SecretKeyFromBytes(secret)
	if err != nil {
		return errors.Wrap(err, "not a valid BLS secret key")
	}
	keystore, err := keymanager.Encrypt(secret, password, "", secretKey.PublicKey().Marshal())
	if err != nil {
		return errors.Wrap(err, "could not encrypt the secret key")
	}
	if err := keystore.Save(fullPath); err != nil {
		return errors.Wrapf(err, "could not write keystore to %s", fullPath)
	}
	fmt.Printf("Wrote keystore to %s\n", fullPath)
	return nil
}

func inputPassword(cliCtx *cli.Context) (string, error) {
	if cliCtx.IsSet(passwordFlag.Name) {
		return cliCtx.String(passwordFlag.Name), nil
	}
	return promptutil.PasswordPrompt("Keystore password")
}
