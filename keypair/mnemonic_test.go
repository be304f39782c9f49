package keypair

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"solana-keypair/crypto/slip10"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestFromMnemonicNoPath(t *testing.T) {
	kp, err := FromMnemonic(testMnemonic, "", "")
	require.NoError(t, err)

	seed := bip39.NewSeed(testMnemonic, "")
	want := ed25519.NewKeyFromSeed(seed[:32])
	assert.Equal(t, []byte(want), []byte(kp.SecretKey()))
}

func TestFromMnemonicWithPath(t *testing.T) {
	kp, err := FromMnemonic(testMnemonic, "", slip10.SolanaPath)
	require.NoError(t, err)

	child, err := slip10.DerivePath(bip39.NewSeed(testMnemonic, ""), slip10.SolanaPath)
	require.NoError(t, err)
	want := ed25519.NewKeyFromSeed(child)
	assert.Equal(t, []byte(want), []byte(kp.SecretKey()))

	plain, err := FromMnemonic(testMnemonic, "", "")
	require.NoError(t, err)
	assert.False(t, kp.Equal(plain))
}

func TestFromMnemonicPassphraseAndSpacing(t *testing.T) {
	a, err := FromMnemonic(testMnemonic, "TREZOR", "")
	require.NoError(t, err)
	b, err := FromMnemonic("  "+strings.ReplaceAll(testMnemonic, " ", "\n  ")+"\n", "TREZOR", "")
	require.NoError(t, err)
	c, err := FromMnemonic(testMnemonic, "", "")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFromMnemonicErrors(t *testing.T) {
	_, err := FromMnemonic("abandon abandon abandon", "", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	_, err = FromMnemonic(strings.Repeat("abandon ", 12), "", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	_, err = FromMnemonic(testMnemonic, "", "m/44'/501")
	assert.ErrorIs(t, err, slip10.ErrNotHardened)
}

func TestNewMnemonic(t *testing.T) {
	for _, tt := range []struct {
		bits  int
		words int
	}{{128, 12}, {256, 24}} {
		m, err := NewMnemonic(tt.bits)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(m), tt.words)

		_, err = FromMnemonic(m, "", slip10.SolanaPath)
		assert.NoError(t, err)
	}

	_, err := NewMnemonic(100)
	assert.Error(t, err)
}
