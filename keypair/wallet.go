package keypair

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FormatWalletBytes renders b as a JSON array of byte values, the format the Solana
// CLI uses for keypair files.
func FormatWalletBytes(b []byte) string {
	data, _ := json.Marshal(walletValues(b))
	return string(data)
}

// ParseWalletBytes accepts "[1, 2, 3]" with or without brackets and arbitrary spacing.
// An opening bracket requires a closing one and vice versa.
func ParseWalletBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	opened, closed := strings.HasPrefix(s, "["), strings.HasSuffix(s, "]")
	if opened != closed {
		return nil, fmt.Errorf("%w: unbalanced brackets", ErrInvalidWallet)
	}
	if opened {
		s = s[1 : len(s)-1]
	}
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty array", ErrInvalidWallet)
	}

	parts := strings.Split(s, ",")
	out := make([]byte, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d %q", ErrInvalidWallet, i, strings.TrimSpace(part))
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// writeWallet is replaced in tests to fail a write.
var writeWallet = func(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}

// SaveWallet writes kp to path with mode 0600. Unless overwrite is set an existing
// file is left alone and ErrWalletExists is returned; a file created by a failed
// write is removed.
func SaveWallet(path string, kp *Keypair, overwrite bool) error {
	data, err := json.Marshal(walletValues(kp.priv))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrWalletExists, path)
		}
		return err
	}
	if err := writeWallet(file, data); err != nil {
		file.Close()
		if !overwrite {
			os.Remove(path)
		}
		return err
	}
	return file.Close()
}

func LoadWallet(path string, opts ...Option) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWallet, path, err)
	}
	secret := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: %s: element %d out of range", ErrInvalidWallet, path, i)
		}
		secret[i] = byte(v)
	}
	return FromSecretKey(secret, opts...)
}

// json.Marshal would base64 a []byte, so the values are widened first.
func walletValues(b []byte) []int {
	values := make([]int, len(b))
	for i, v := range b {
		values[i] = int(v)
	}
	return values
}
