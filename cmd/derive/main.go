package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"solana-keypair/configs"
	"solana-keypair/keypair"
)

var logger = logrus.New()

type options struct {
	envFiles       []string
	key            string
	wallet         string
	mnemonic       string
	passphrase     string
	path           string
	format         string
	logLevel       string
	redact         bool
	skipValidation bool
}

var errNoKey = errors.New("no secret key given: pass -key, -wallet or -mnemonic, or set " + configs.EnvPrivateKey + " or " + configs.EnvWalletPath)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatalf("Failed to derive keypair: %v", err)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	envFiles := fs.String("env", "", "comma separated .env files to load (default .env if present)")
	fs.StringVar(&opts.key, "key", "", "base58 secret key (overrides "+configs.EnvPrivateKey+")")
	fs.StringVar(&opts.wallet, "wallet", "", "read the secret key from a JSON byte array wallet file")
	fs.StringVar(&opts.mnemonic, "mnemonic", "", "recover from a BIP-39 seed phrase")
	fs.StringVar(&opts.passphrase, "passphrase", "", "BIP-39 passphrase used with -mnemonic")
	fs.StringVar(&opts.path, "path", "", "SLIP-0010 derivation path used with -mnemonic, e.g. m/44'/501'/0'/0'")
	fs.StringVar(&opts.format, "format", "", "output format: text, json or yaml")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level")
	fs.BoolVar(&opts.redact, "redact", false, "do not print secret key bytes")
	fs.BoolVar(&opts.skipValidation, "skip-validation", false, "accept a secret key whose public half does not match its seed")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *envFiles != "" {
		opts.envFiles = strings.Split(*envFiles, ",")
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := configs.Load(opts.envFiles...)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)

	formatName := cfg.OutputFormat
	if opts.format != "" {
		formatName = opts.format
	}
	format, err := keypair.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var kpOpts []keypair.Option
	if opts.skipValidation {
		kpOpts = append(kpOpts, keypair.SkipValidation())
	}

	kp, err := resolve(opts, cfg, kpOpts)
	if err != nil {
		return err
	}

	redact := cfg.RedactSecret || opts.redact
	if !redact {
		logger.Warn("Secret key bytes are written to stdout; pass -redact to hide them")
	}
	return keypair.Render(stdout, kp, format, keypair.RenderOptions{RedactSecret: redact})
}

// resolve picks the key source: -key, -wallet, -mnemonic, then PRIVATE_KEY and
// WALLET_PATH from the environment.
func resolve(opts *options, cfg *configs.Config, kpOpts []keypair.Option) (*keypair.Keypair, error) {
	switch {
	case opts.key != "":
		return keypair.NewDeriver(logger, kpOpts...).Derive(opts.key)
	case opts.wallet != "":
		logger.Infof("Reading wallet file %s", opts.wallet)
		return keypair.LoadWallet(opts.wallet, kpOpts...)
	case opts.mnemonic != "":
		return keypair.FromMnemonic(opts.mnemonic, opts.passphrase, opts.path)
	case cfg.PrivateKey != "":
		return keypair.NewDeriver(logger, kpOpts...).Derive(cfg.PrivateKey)
	case cfg.WalletPath != "":
		logger.Infof("Reading wallet file %s from %s", cfg.WalletPath, configs.EnvWalletPath)
		return keypair.LoadWallet(cfg.WalletPath, kpOpts...)
	default:
		return nil, errNoKey
	}
}
