package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	DefaultEnvFile    = ".env"
	DefaultWalletPath = "dev-wallet.json"
	DefaultFormat     = "text"
	DefaultLogLevel   = "info"

	// Environment keys

	EnvPrivateKey   = "PRIVATE_KEY"
	EnvWalletPath   = "WALLET_PATH"
	EnvOutputFormat = "OUTPUT_FORMAT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvRedactSecret = "REDACT_SECRET"
)

type Config struct {
	// PrivateKey is the base58 secret key. Never logged.
	PrivateKey   string
	// WalletPath is empty unless WALLET_PATH is set; see Wallet.
	WalletPath   string
	OutputFormat string
	LogLevel     string
	RedactSecret bool
}

// Load reads the given .env files, or DefaultEnvFile when none are given, into the
// process environment and builds a Config from it. Variables already set in the
// environment are not overridden. A missing default file is ignored; a missing
// file that was asked for by name is an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.Join(envFiles, ","), err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		PrivateKey:   strings.TrimSpace(os.Getenv(EnvPrivateKey)),
		WalletPath:   strings.TrimSpace(os.Getenv(EnvWalletPath)),
		OutputFormat: getenv(EnvOutputFormat, DefaultFormat),
		LogLevel:     getenv(EnvLogLevel, DefaultLogLevel),
	}
	if raw := os.Getenv(EnvRedactSecret); raw != "" {
		redact, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvRedactSecret, err)
		}
		cfg.RedactSecret = redact
	}
	return cfg, nil
}

// Wallet returns WALLET_PATH, or DefaultWalletPath when it is unset.
func (c *Config) Wallet() string {
	if c.WalletPath != "" {
		return c.WalletPath
	}
	return DefaultWalletPath
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
