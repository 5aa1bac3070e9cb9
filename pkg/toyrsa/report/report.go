package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
)

// Format selects an encoding for Encode.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCBOR:
		return f, nil
	default:
		return "", toyrsa.Errorf("ParseFormat", toyrsa.ErrInvalidInput, "unknown format %q", s)
	}
}

// Key is an (exponent, modulus) pair.
type Key struct {
	Exponent *big.Int `json:"exponent"`
	Modulus  *big.Int `json:"modulus"`
}

// Factors holds the result of the factorization attack.
type Factors struct {
	P *big.Int `json:"p"`
	Q *big.Int `json:"q"`
}

// Recovered holds the result of the exponent brute force.
type Recovered struct {
	Message  *big.Int `json:"message"`
	Exponent *big.Int `json:"exponent"`
}

// Timings records how long each step took.
type Timings struct {
	KeyGeneration time.Duration `json:"key_generation_ns"`
	Encryption    time.Duration `json:"encryption_ns"`
	Decryption    time.Duration `json:"decryption_ns"`
	Factorization time.Duration `json:"factorization_ns"`
	BruteForce    time.Duration `json:"brute_force_ns"`
}

// Run is the outcome of one session. Attack fields are nil when the attack
// failed; the matching error field then holds the reason.
type Run struct {
	Bits            int        `json:"bits"`
	PublicKey       Key        `json:"public_key"`
	PrivateKey      Key        `json:"private_key"`
	Message         *big.Int   `json:"message"`
	Ciphertext      *big.Int   `json:"ciphertext"`
	Decrypted       *big.Int   `json:"decrypted"`
	Factors         *Factors   `json:"factors,omitempty"`
	FactorizeError  string     `json:"factorize_error,omitempty"`
	BruteForce      *Recovered `json:"brute_force,omitempty"`
	BruteForceError string     `json:"brute_force_error,omitempty"`
	Timings         Timings    `json:"timings"`
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, f Format, r Run) error {
	switch f {
	case FormatText:
		return encodeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	case FormatCBOR:
		data, err := cbor.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode CBOR: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write CBOR: %w", err)
		}
		return nil
	default:
		return toyrsa.Errorf("Encode", toyrsa.ErrInvalidInput, "unknown format %q", string(f))
	}
}

func encodeText(w io.Writer, r Run) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Key Generation Time: %s\n\n", millis(r.Timings.KeyGeneration))
	fmt.Fprintf(&b, "Public Key (e, n): (%s, %s)\n", r.PublicKey.Exponent, r.PublicKey.Modulus)
	fmt.Fprintf(&b, "Private Key (d, n): (%s, %s)\n\n", r.PrivateKey.Exponent, r.PrivateKey.Modulus)
	fmt.Fprintf(&b, "Encryption Time: %s\n", millis(r.Timings.Encryption))
	fmt.Fprintf(&b, "Encrypted message: %s\n\n", r.Ciphertext)
	fmt.Fprintf(&b, "Decryption Time: %s\n", millis(r.Timings.Decryption))
	fmt.Fprintf(&b, "Decrypted message: %s\n\n", r.Decrypted)

	fmt.Fprintf(&b, "Factorization Time: %s\n", millis(r.Timings.Factorization))
	if r.Factors != nil {
		fmt.Fprintf(&b, "Factors (p, q): (%s, %s)\n\n", r.Factors.P, r.Factors.Q)
	} else {
		fmt.Fprintf(&b, "Factorization failed: %s\n\n", r.FactorizeError)
	}

	fmt.Fprintf(&b, "Brute Force Time: %s\n", millis(r.Timings.BruteForce))
	if r.BruteForce != nil {
		fmt.Fprintf(&b, "Brute Force (message, d): (%s, %s)\n", r.BruteForce.Message, r.BruteForce.Exponent)
	} else {
		fmt.Fprintf(&b, "Brute force failed: %s\n", r.BruteForceError)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.6f ms", float64(d)/float64(time.Millisecond))
}
