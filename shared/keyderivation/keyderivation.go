// Package keyderivation turns a BIP-39 mnemonic and an EIP-2334 path into a
// BLS12-381 secret key. The mnemonic is stretched into a seed with the
// standard BIP-39 PBKDF2 construction and the seed is walked down the path
// with EIP-2333 hierarchical derivation. Both steps are standardized and
// must be bit-for-bit reproducible across implementations.
package keyderivation

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/staking-tools/eth2-deposit/shared/bls"
	"github.com/tyler-smith/go-bip39"
	e2types "github.com/wealdtech/go-eth2-types/v2"
	util "github.com/wealdtech/go-eth2-util"
)

// ErrInvalidMnemonic is returned when the supplied phrase is not a valid
// BIP-39 mnemonic.
var ErrInvalidMnemonic = errors.New("mnemonic is invalid")

var initOnce sync.Once
var initErr error

// The wealdtech derivation library requires its BLS backend to be
// initialized before any key can be derived.
func initBLS() error {
	initOnce.Do(func() {
		initErr = e2types.InitBLS()
	})
	return initErr
}

// SecretKeyFromMnemonicAndPath derives the BLS secret key found at the given
// EIP-2334 path of the given mnemonic. The mnemonic password is mixed into
// the seed derivation salt and may be empty. The same inputs always produce
// the same key.
func SecretKeyFromMnemonicAndPath(mnemonic, mnemonicPassword, path string) (bls.SecretKey, error) {
	if err := initBLS(); err != nil {
		return nil, errors.Wrap(err, "could not initialize BLS library")
	}
	if ok := bip39.IsMnemonicValid(mnemonic); !ok {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, mnemonicPassword)
	key, err := util.PrivateKeyFromSeedAndPath(seed, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not derive key at path %s", path)
	}
	return bls.SecretKeyFromBytes(key.Marshal())
}
