package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-keypair/crypto/base58"
	"solana-keypair/keypair"
)

func TestRunRoundTrip(t *testing.T) {
	kp, err := keypair.Generate()
	require.NoError(t, err)

	var wallet bytes.Buffer
	require.NoError(t, run([]string{"-to", "wallet", kp.SecretKeyBase58()}, strings.NewReader(""), &wallet))
	assert.Equal(t, keypair.FormatWalletBytes(kp.SecretKey())+"\n", wallet.String())

	var encoded bytes.Buffer
	require.NoError(t, run([]string{"-to", "base58"}, &wallet, &encoded))
	assert.Equal(t, kp.SecretKeyBase58()+"\n", encoded.String())
}

func TestRunReadsStdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, strings.NewReader("StV1DL6CwTryKyV\n"), &out))
	assert.Equal(t, keypair.FormatWalletBytes([]byte("hello world"))+"\n", out.String())
}

func TestRunSpacedByteArray(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-to", "base58", "[0, 0, 1]"}, strings.NewReader(""), &out))
	assert.Equal(t, "112\n", out.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"Bad base58", []string{"-to", "wallet", "0OIl"}, base58.ErrInvalidEncoding},
		{"Bad byte array", []string{"-to", "base58", "[1,300]"}, keypair.ErrInvalidWallet},
		{"Unknown target", []string{"-to", "hex", "abc"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, strings.NewReader(""), &out)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Zero(t, out.Len())
		})
	}
}
