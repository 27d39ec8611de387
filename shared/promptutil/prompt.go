// Package promptutil contains the interactive prompts used by the deposit
// CLI: hidden password entry, mnemonic confirmation, and network selection.
// No password-strength policy is enforced here; any non-empty password the
// operator confirms is accepted.
package promptutil

import (
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

// ErrPasswordMismatch is returned when the confirmation entry does not match
// the original password entry.
var ErrPasswordMismatch = errors.New("the two entered passwords do not match")

// PasswordPrompt reads a password from the terminal without echoing it.
func PasswordPrompt(promptText string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptText,
		Mask:  '*',
	}
	return prompt.Run()
}

// PasswordWithConfirmation reads a password twice and requires both entries
// to match exactly.
func PasswordWithConfirmation(promptText string) (string, error) {
	password, err := PasswordPrompt(promptText)
	if err != nil {
		return "", err
	}
	confirmation, err := PasswordPrompt("Repeat for confirmation")
	if err != nil {
		return "", err
	}
	if password != confirmation {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

// ValidatePrompt reads a visible line and re-prompts until the validator
// accepts the input.
func ValidatePrompt(promptText string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptText,
		Validate: validate,
	}
	input, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// SelectPrompt asks the user to pick one of the given items.
func SelectPrompt(promptText string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: promptText,
		Items: items,
	}
	_, selection, err := prompt.Run()
	return selection, err
}
