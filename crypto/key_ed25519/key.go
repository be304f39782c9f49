package key_ed25519

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

const (
	SeedSize       = ed25519.SeedSize
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
)

var (
	ErrInvalidLength = errors.New("invalid key length")
	ErrMismatch      = errors.New("public key does not match seed")
)

type (
	// PrivateKey is a 64-byte secret key: the 32-byte seed followed by its public key
	PrivateKey []byte
	// PublicKey is a 32-byte public key
	PublicKey []byte
)

var (
	Suite = suites.MustFind("Ed25519") // Use the edwards25519-curve
)

func New() (PrivateKey, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return NewFromSeed(seed)
}

func NewFromSeed(seed []byte) (PrivateKey, error) {
	pub, err := PublicFromSeed(seed)
	if err != nil {
		return nil, err
	}
	priv := make(PrivateKey, 0, PrivateKeySize)
	priv = append(priv, seed...)
	return append(priv, pub...), nil
}

// PublicFromSeed computes A = s*B where s is the clamped lower half of SHA-512(seed).
func PublicFromSeed(seed []byte) (PublicKey, error) {
	s, err := seedScalar(seed)
	if err != nil {
		return nil, err
	}
	return Suite.Point().Mul(s, nil).MarshalBinary()
}

func seedScalar(seed []byte) (kyber.Scalar, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes, want %d", ErrInvalidLength, len(seed), SeedSize)
	}
	digest := sha512.Sum512(seed)
	digest[0] &= 248
	digest[31] &= 127
	digest[31] |= 64
	return Suite.Scalar().SetBytes(digest[:32]), nil
}

func (privB PrivateKey) Seed() []byte {
	return privB[:SeedSize]
}

// Public returns the embedded public half without recomputing it.
func (privB PrivateKey) Public() PublicKey {
	return PublicKey(privB[SeedSize:])
}

// Check verifies the length and that the embedded public half is a curve point
// equal to s*B for the seed scalar s.
func (privB PrivateKey) Check() error {
	s, err := privB.ToScalar()
	if err != nil {
		return err
	}
	pub, err := privB.Public().ToPoint()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMismatch, err)
	}
	if !Suite.Point().Mul(s, nil).Equal(pub) {
		return ErrMismatch
	}
	// The same point may arrive in a non-canonical encoding.
	if canonical, err := pub.MarshalBinary(); err != nil || !bytes.Equal(canonical, privB.Public()) {
		return ErrMismatch
	}
	return nil
}

func (privB PrivateKey) ToScalar() (kyber.Scalar, error) {
	if len(privB) != PrivateKeySize {
		return nil, fmt.Errorf("%w: secret key is %d bytes, want %d", ErrInvalidLength, len(privB), PrivateKeySize)
	}
	return seedScalar(privB.Seed())
}

func (pubB PublicKey) ToPoint() (kyber.Point, error) {
	pubK := Suite.Point()
	if err := pubK.UnmarshalBinary(pubB); err != nil {
		return nil, err
	}
	return pubK, nil
}
