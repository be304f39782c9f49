package keypair

import "errors"

var (
	ErrDecode          = errors.New("secret key is not valid base58")
	ErrKeyLength       = errors.New("bad secret key size")
	ErrKeyMismatch     = errors.New("provided secret key is invalid")
	ErrInvalidSeed     = errors.New("bad seed size")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrInvalidWallet   = errors.New("invalid wallet bytes")
	ErrWalletExists    = errors.New("wallet file already exists")
)
