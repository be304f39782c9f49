package slip10

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	slip10 "github.com/anyproto/go-slip10"
)

const (
	HardenedOffset uint32 = 0x80000000

	// SolanaPath is the account path used by most Solana wallets
	SolanaPath = "m/44'/501'/0'/0'"
)

var (
	ErrInvalidPath  = errors.New("invalid derivation path")
	ErrNotHardened  = errors.New("ed25519 only supports hardened derivation")
	ErrSeedTooShort = errors.New("seed must be at least 16 bytes")
)

// DerivePath walks seed down path and returns the 32-byte ed25519 seed of the child.
func DerivePath(seed []byte, path string) ([]byte, error) {
	if len(seed) < 16 {
		return nil, ErrSeedTooShort
	}
	indexes, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if len(indexes) == 0 {
		return nil, fmt.Errorf("%w: %q has no child segments", ErrInvalidPath, path)
	}

	node, err := slip10.DeriveForPath(canonical(indexes), seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	_, priv := node.Keypair()
	return priv.Seed(), nil
}

// ParsePath parses paths of the form m/44'/501'/0'. Segments may be marked hardened
// with either ' or H.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, path)
	}

	indexes := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		trimmed := strings.TrimRight(segment, "'hH")
		if trimmed == segment {
			return nil, fmt.Errorf("%w: segment %q", ErrNotHardened, segment)
		}
		if len(segment)-len(trimmed) != 1 {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidPath, segment)
		}
		n, err := strconv.ParseUint(trimmed, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidPath, segment)
		}
		indexes = append(indexes, uint32(n)+HardenedOffset)
	}
	return indexes, nil
}

// canonical renders hardened indexes in the m/N' form the derivation library expects.
func canonical(indexes []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range indexes {
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
		b.WriteString("'")
	}
	return b.String()
}
