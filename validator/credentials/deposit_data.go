package credentials

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/depositutil"
	"github.com/staking-tools/eth2-deposit/shared/version"
)

// DepositDatum is the complete record for one validator deposit: the signed
// deposit data plus the two Merkle roots, the fork version, and the version
// of the tooling that produced it. This is the unit consumed downstream for
// deposit submission and auditing.
type DepositDatum struct {
	Data               *depositutil.DepositData
	DepositMessageRoot [32]byte
	DepositDataRoot    [32]byte
	ForkVersion        [4]byte
	ToolVersion        string
}

// depositDatumJSON is the interchange form of DepositDatum: every byte field
// is lowercase hex without a 0x prefix, the amount a plain integer in Gwei.
// Field names and ordering follow the established deposit-data format.
type depositDatumJSON struct {
	Pubkey                string `json:"pubkey"`
	WithdrawalCredentials string `json:"withdrawal_credentials"`
	Amount                uint64 `json:"amount"`
	Signature             string `json:"signature"`
	DepositMessageRoot    string `json:"deposit_message_root"`
	DepositDataRoot       string `json:"deposit_data_root"`
	ForkVersion           string `json:"fork_version"`
	DepositCliVersion     string `json:"deposit_cli_version"`
}

// MarshalJSON hex-encodes the datum into the interchange form.
func (d *DepositDatum) MarshalJSON() ([]byte, error) {
	return json.Marshal(&depositDatumJSON{
		Pubkey:                fmt.Sprintf("%x", d.Data.Pubkey),
		WithdrawalCredentials: fmt.Sprintf("%x", d.Data.WithdrawalCredentials),
		Amount:                d.Data.Amount,
		Signature:             fmt.Sprintf("%x", d.Data.Signature),
		DepositMessageRoot:    fmt.Sprintf("%x", d.DepositMessageRoot),
		DepositDataRoot:       fmt.Sprintf("%x", d.DepositDataRoot),
		ForkVersion:           fmt.Sprintf("%x", d.ForkVersion),
		DepositCliVersion:     d.ToolVersion,
	})
}

// DepositDatum signs a deposit for this credential and bundles it with the
// freshly computed message and data roots. Both roots are recomputed on
// every call; the override may differ between calls, so nothing is reused
// from previous invocations.
func (c *Credential) DepositDatum(overrideWithdrawalCredentials []byte) (*DepositDatum, error) {
	signedDeposit, err := c.SignedDeposit(overrideWithdrawalCredentials)
	if err != nil {
		return nil, err
	}
	msg := &depositutil.DepositMessage{
		Pubkey:                signedDeposit.Pubkey,
		WithdrawalCredentials: signedDeposit.WithdrawalCredentials,
		Amount:                signedDeposit.Amount,
	}
	msgRoot, err := msg.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not compute deposit message root")
	}
	dataRoot, err := signedDeposit.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not compute deposit data root")
	}
	return &DepositDatum{
		Data:               signedDeposit,
		DepositMessageRoot: msgRoot,
		DepositDataRoot:    dataRoot,
		ForkVersion:        c.forkVersion,
		ToolVersion:        version.Version(),
	}, nil
}
