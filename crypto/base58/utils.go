package base58

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

var (
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
)

// Encode returns the base58 text of b using the Bitcoin alphabet.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode trims surrounding whitespace and decodes s. Leading '1' characters decode
// to leading zero bytes.
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidEncoding)
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}
