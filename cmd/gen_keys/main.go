package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"solana-keypair/configs"
	"solana-keypair/crypto/slip10"
	"solana-keypair/keypair"
)

var logger = logrus.New()

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatalf("Failed to generate keypair: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gen_keys", flag.ContinueOnError)
	out := fs.String("out", "", "wallet file to write (default "+configs.EnvWalletPath+" or "+configs.DefaultWalletPath+")")
	force := fs.Bool("force", false, "overwrite an existing wallet file")
	words := fs.Int("words", 0, "derive from a new 12 or 24 word mnemonic instead of random bytes")
	path := fs.String("path", slip10.SolanaPath, "SLIP-0010 derivation path used with -words")
	envFiles := fs.String("env", "", "comma separated .env files to load (default .env if present)")
	redactFlag := fs.Bool("redact", false, "do not print the secret key bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var files []string
	if *envFiles != "" {
		files = strings.Split(*envFiles, ",")
	}
	cfg, err := configs.Load(files...)
	if err != nil {
		return err
	}
	walletPath := cfg.Wallet()
	if *out != "" {
		walletPath = *out
	}

	var (
		kp       *keypair.Keypair
		mnemonic string
	)
	switch *words {
	case 0:
		kp, err = keypair.Generate()
	case 12, 24:
		mnemonic, err = keypair.NewMnemonic(*words / 3 * 32)
		if err == nil {
			kp, err = keypair.FromMnemonic(mnemonic, "", *path)
		}
	default:
		return fmt.Errorf("-words must be 12 or 24, got %d", *words)
	}
	if err != nil {
		return err
	}

	// Save the keypair as a JSON byte array
	if err := keypair.SaveWallet(walletPath, kp, *force); err != nil {
		return err
	}
	logger.Infof("Saved wallet to %s", walletPath)

	fmt.Fprintf(stdout, "You've generated a new wallet: %s\n", kp.PublicKeyBase58())
	fmt.Fprintf(stdout, "Saved to: %s\n", walletPath)
	if cfg.RedactSecret || *redactFlag {
		fmt.Fprintln(stdout, "Secret key: <redacted>")
	} else {
		logger.Warn("Secret key bytes are written to stdout; pass -redact to hide them")
		fmt.Fprintln(stdout, "To save your wallet somewhere, copy and paste the following into a JSON file:")
		fmt.Fprintln(stdout, keypair.FormatWalletBytes(kp.SecretKey()))
	}
	if mnemonic != "" {
		fmt.Fprintf(stdout, "Seed phrase (path %s): %s\n", *path, mnemonic)
	}
	return nil
}
