// Package keymanager implements the EIP-2335 keystore format used to
// protect validator signing keys at rest. Secrets are encrypted with the
// keystorev4 scrypt construction and written to disk as JSON.
package keymanager

// Keystore json file representation as a Go struct.
type Keystore struct {
	Crypto      map[string]interface{} `json:"crypto"`
	Description string                 `json:"description"`
	Pubkey      string                 `json:"pubkey"`
	Path        string                 `json:"path"`
	ID          string                 `json:"uuid"`
	Version     uint                   `json:"version"`
}

// IncorrectPasswordErrMsg defines a common error string representing an EIP-2335
// keystore password was incorrect. The keystorev4 decryptor reports a wrong
// password and a corrupted crypto section identically, as a checksum failure.
const IncorrectPasswordErrMsg = "invalid checksum"
