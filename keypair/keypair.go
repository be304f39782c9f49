// Package keypair turns base58 secret keys, wallet files and seeds into Ed25519
// keypairs laid out the way Solana wallets store them.
package keypair

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"solana-keypair/crypto/base58"
	"solana-keypair/crypto/key_ed25519"
)

// Keypair is immutable once built. Accessors hand out copies.
type Keypair struct {
	priv key_ed25519.PrivateKey
}

type options struct {
	skipValidation bool
}

type Option func(*options)

// SkipValidation accepts a 64-byte secret key whose public half does not belong to its
// seed. The public key is then taken verbatim from the secret key.
func SkipValidation() Option {
	return func(o *options) { o.skipValidation = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Derive decodes a base58 secret key and builds the keypair from it.
func Derive(encoded string, opts ...Option) (*Keypair, error) {
	raw, err := base58.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromSecretKey(raw, opts...)
}

func FromSecretKey(secret []byte, opts ...Option) (*Keypair, error) {
	if len(secret) != key_ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrKeyLength, len(secret), key_ed25519.PrivateKeySize)
	}
	priv := append(key_ed25519.PrivateKey{}, secret...)

	if !buildOptions(opts).skipValidation {
		if err := priv.Check(); err != nil {
			if errors.Is(err, key_ed25519.ErrMismatch) {
				return nil, ErrKeyMismatch
			}
			return nil, err
		}
	}
	return &Keypair{priv: priv}, nil
}

func FromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != key_ed25519.SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeed, len(seed), key_ed25519.SeedSize)
	}
	priv, err := key_ed25519.NewFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

func Generate() (*Keypair, error) {
	priv, err := key_ed25519.New()
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

func (kp *Keypair) PublicKey() key_ed25519.PublicKey {
	return append(key_ed25519.PublicKey{}, kp.priv.Public()...)
}

func (kp *Keypair) SecretKey() key_ed25519.PrivateKey {
	return append(key_ed25519.PrivateKey{}, kp.priv...)
}

func (kp *Keypair) PublicKeyBase58() string {
	return base58.Encode(kp.priv.Public())
}

func (kp *Keypair) SecretKeyBase58() string {
	return base58.Encode(kp.priv)
}

func (kp *Keypair) Equal(other *Keypair) bool {
	if kp == nil || other == nil {
		return kp == other
	}
	return bytes.Equal(kp.priv, other.priv)
}

// String returns the base58 address, never secret material.
func (kp *Keypair) String() string {
	return kp.PublicKeyBase58()
}

// Deriver is Derive with logging and fixed options.
type Deriver struct {
	logger *logrus.Logger
	opts   []Option
}

func NewDeriver(logger *logrus.Logger, opts ...Option) *Deriver {
	if logger == nil {
		logger = logrus.New()
	}
	return &Deriver{logger: logger, opts: opts}
}

func (d *Deriver) Derive(encoded string) (*Keypair, error) {
	kp, err := Derive(encoded, d.opts...)
	if err != nil {
		d.logger.Debugf("Derive failed: %v", err)
		return nil, err
	}
	d.logger.WithField("pubkey", kp.PublicKeyBase58()).Debug("Derived keypair")
	return kp, nil
}
