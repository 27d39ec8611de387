// Package version carries the semantic version of this tooling. The value
// is embedded into every exported deposit record so downstream audits can
// tell which release produced a deposit.
package version

// depositToolVersion is overridden at build time via
// -ldflags "-X github.com/staking-tools/eth2-deposit/shared/version.depositToolVersion=..."
var depositToolVersion = "1.2.0"

// Version returns the semantic version of this build.
func Version() string {
	return depositToolVersion
}
