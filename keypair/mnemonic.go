package keypair

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"solana-keypair/crypto/key_ed25519"
	"solana-keypair/crypto/slip10"
)

// FromMnemonic recovers a keypair from a BIP-39 phrase. With an empty path the first 32
// bytes of the BIP-39 seed are used directly, as solana-keygen does. Otherwise the
// seed is walked down the SLIP-0010 path, e.g. slip10.SolanaPath.
func FromMnemonic(mnemonic, passphrase, path string) (*Keypair, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, passphrase)

	if path == "" {
		return FromSeed(seed[:key_ed25519.SeedSize])
	}
	child, err := slip10.DerivePath(seed, path)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", path, err)
	}
	return FromSeed(child)
}

// NewMnemonic returns a fresh phrase of 12 (128 bits) or 24 (256 bits) words.
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}
