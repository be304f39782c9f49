package keypair

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	redactedMarker = "<redacted>"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

type RenderOptions struct {
	RedactSecret bool
}

// View is the printable shape of a keypair.
type View struct {
	PublicKey string `json:"publicKey" yaml:"publicKey"`
	SecretKey []int  `json:"secretKey,omitempty" yaml:"secretKey,flow,omitempty"`
	Redacted  bool   `json:"redacted,omitempty" yaml:"redacted,omitempty"`
}

func NewView(kp *Keypair, opts RenderOptions) View {
	v := View{PublicKey: kp.PublicKeyBase58()}
	if opts.RedactSecret {
		v.Redacted = true
	} else {
		v.SecretKey = walletValues(kp.priv)
	}
	return v
}

// Render writes the public key, the secret key bytes and the full keypair. The text
// format is for people; json and yaml emit the View alone.
func Render(w io.Writer, kp *Keypair, format Format, opts RenderOptions) error {
	view := NewView(kp, opts)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		return writeYAML(w, view, 2)
	case FormatText, "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	secret := redactedMarker
	if !opts.RedactSecret {
		secret = FormatWalletBytes(kp.priv)
	}
	if _, err := fmt.Fprintf(w, "Public Key: %s\nSecret Key: %s\nFull Keypair:\n", view.PublicKey, secret); err != nil {
		return err
	}
	var full strings.Builder
	if err := writeYAML(&full, view, 2); err != nil {
		return err
	}
	for _, line := range strings.SplitAfter(strings.TrimRight(full.String(), "\n"), "\n") {
		if _, err := io.WriteString(w, "  "+line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeYAML(w io.Writer, v any, indent int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
