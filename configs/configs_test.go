package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPrivateKey, EnvWalletPath, EnvOutputFormat, EnvLogLevel, EnvRedactSecret} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		OutputFormat: DefaultFormat,
		LogLevel:     DefaultLogLevel,
	}, cfg)
	assert.Equal(t, DefaultWalletPath, cfg.Wallet())
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrivateKey, "  abc\n")
	t.Setenv(EnvWalletPath, "wallets/main.json")
	t.Setenv(EnvOutputFormat, "yaml")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvRedactSecret, "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.PrivateKey)
	assert.Equal(t, "wallets/main.json", cfg.WalletPath)
	assert.Equal(t, "wallets/main.json", cfg.Wallet())
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RedactSecret)
}

func TestFromEnvBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRedactSecret, "sometimes")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("PRIVATE_KEY=fromfile\nOUTPUT_FORMAT=json\nWALLET_PATH=wallets/dotenv.json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.PrivateKey)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "wallets/dotenv.json", cfg.Wallet())
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrivateKey, "fromenv")
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("PRIVATE_KEY=fromfile\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.PrivateKey)
}

func TestLoadMissingFiles(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	saved := DefaultEnvFile
	DefaultEnvFile = filepath.Join(t.TempDir(), "absent.env")
	defer func() { DefaultEnvFile = saved }()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultWalletPath, cfg.Wallet())
}
