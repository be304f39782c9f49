package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"solana-keypair/crypto/base58"
	"solana-keypair/keypair"
)

var logger = logrus.New()

const (
	toWallet = "wallet"
	toBase58 = "base58"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Fatalf("Conversion failed: %v", err)
	}
}

// run converts between base58 text and a wallet byte array. The input is the first
// positional argument, or stdin when there is none.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	to := fs.String("to", toWallet, "target form: wallet (byte array) or base58")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := fs.Arg(0)
	if input == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		input = string(raw)
	}
	input = strings.TrimSpace(input)

	switch *to {
	case toWallet:
		b, err := base58.Decode(input)
		if err != nil {
			return err
		}
		if len(b) != 64 {
			logger.Warnf("Decoded %d bytes, a wallet secret key is 64", len(b))
		}
		fmt.Fprintln(stdout, keypair.FormatWalletBytes(b))
	case toBase58:
		b, err := keypair.ParseWalletBytes(input)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, base58.Encode(b))
	default:
		return fmt.Errorf("-to must be %q or %q, got %q", toWallet, toBase58, *to)
	}
	return nil
}
