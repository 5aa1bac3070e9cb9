package report_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/report"
)

func sampleRun() report.Run {
	return report.Run{
		Bits:       8,
		PublicKey:  report.Key{Exponent: big.NewInt(7), Modulus: big.NewInt(60491)},
		PrivateKey: report.Key{Exponent: big.NewInt(17143), Modulus: big.NewInt(60491)},
		Message:    big.NewInt(42),
		Ciphertext: big.NewInt(26454),
		Decrypted:  big.NewInt(42),
		Factors:    &report.Factors{P: big.NewInt(241), Q: big.NewInt(251)},
		BruteForce: &report.Recovered{Message: big.NewInt(42), Exponent: big.NewInt(5143)},
		Timings: report.Timings{
			KeyGeneration: 1500 * time.Microsecond,
			Encryption:    2 * time.Microsecond,
		},
	}
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatText, sampleRun()))

	out := buf.String()
	for _, want := range []string{
		"Key Generation Time: 1.500000 ms",
		"Public Key (e, n): (7, 60491)",
		"Private Key (d, n): (17143, 60491)",
		"Encryption Time: 0.002000 ms",
		"Encrypted message: 26454",
		"Decrypted message: 42",
		"Factors (p, q): (241, 251)",
		"Brute Force (message, d): (42, 5143)",
	} {
		require.Contains(t, out, want)
	}
}

func TestEncodeTextFailedAttacks(t *testing.T) {
	run := sampleRun()
	run.Factors = nil
	run.FactorizeError = "deadline exceeded"
	run.BruteForce = nil
	run.BruteForceError = "not found"

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatText, run))
	require.Contains(t, buf.String(), "Factorization failed: deadline exceeded")
	require.Contains(t, buf.String(), "Brute force failed: not found")
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatJSON, sampleRun()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.EqualValues(t, 8, got["bits"])
	require.Contains(t, got, "public_key")
	require.NotContains(t, got, "factorize_error")
}

func TestEncodeCBOR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatCBOR, sampleRun()))

	var got report.Run
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, 8, got.Bits)
	require.Zero(t, got.PublicKey.Modulus.Cmp(big.NewInt(60491)))
	require.Zero(t, got.BruteForce.Exponent.Cmp(big.NewInt(5143)))
	require.Equal(t, 1500*time.Microsecond, got.Timings.KeyGeneration)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat(" JSON ")
	require.NoError(t, err)
	require.Equal(t, report.FormatJSON, f)

	_, err = report.ParseFormat("yaml")
	require.ErrorIs(t, err, toyrsa.ErrInvalidInput)

	err = report.Encode(&bytes.Buffer{}, report.Format("yaml"), sampleRun())
	require.ErrorIs(t, err, toyrsa.ErrInvalidInput)
}
