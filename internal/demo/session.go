package demo

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/attack"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/cipher"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/entropy"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/keygen"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/report"
)

// MessageFunc supplies the plaintext once the public key is known.
type MessageFunc func(pub toyrsa.PublicKey) (*big.Int, error)

// FixedMessage returns a MessageFunc that always yields m.
func FixedMessage(m *big.Int) MessageFunc {
	return func(toyrsa.PublicKey) (*big.Int, error) { return m, nil }
}

// Session holds the collaborators of a run. Zero fields take defaults.
type Session struct {
	Config toyrsa.Config
	Source entropy.Source
	Logger logging.Logger
	Now    func() time.Time
}

func (s *Session) defaults() {
	s.Config = s.Config.WithDefaults()
	if s.Source == nil {
		s.Source = entropy.Default()
	}
	s.Logger = logging.OrDiscard(s.Logger)
	if s.Now == nil {
		s.Now = time.Now
	}
}

// Run executes one session. Key generation, encryption and decryption errors
// abort the run; attack failures are recorded in the report instead, so a
// timed-out attack still yields a printable result.
func (s *Session) Run(ctx context.Context, bits int, message MessageFunc) (report.Run, error) {
	s.defaults()
	if err := s.Config.Validate(); err != nil {
		return report.Run{}, err
	}
	run := report.Run{Bits: bits}

	start := s.Now()
	kp, err := keygen.New(s.Source, s.Config, keygen.WithLogger(s.Logger)).Generate(ctx, bits)
	if err != nil {
		return report.Run{}, err
	}
	run.Timings.KeyGeneration = s.Now().Sub(start)
	run.PublicKey = report.Key{Exponent: kp.Public.E, Modulus: kp.Public.N}
	run.PrivateKey = report.Key{Exponent: kp.Private.D, Modulus: kp.Private.N}

	m, err := message(kp.Public)
	if err != nil {
		return report.Run{}, err
	}
	run.Message = m

	start = s.Now()
	c, err := cipher.Encrypt(m, kp.Public)
	if err != nil {
		return report.Run{}, err
	}
	run.Timings.Encryption = s.Now().Sub(start)
	run.Ciphertext = c

	start = s.Now()
	plain, err := cipher.Decrypt(c, kp.Private)
	if err != nil {
		return report.Run{}, err
	}
	run.Timings.Decryption = s.Now().Sub(start)
	run.Decrypted = plain
	if plain.Cmp(m) != 0 {
		s.Logger.Error(ctx, "round trip mismatch", "message", m.String(), "decrypted", plain.String())
	}

	start = s.Now()
	p, q, err := attack.Factorize(ctx, kp.Public.N)
	run.Timings.Factorization = s.Now().Sub(start)
	if err != nil {
		run.FactorizeError = err.Error()
		s.Logger.Warn(ctx, "factorization failed", "error", err)
	} else {
		run.Factors = &report.Factors{P: p, Q: q}
	}
	if errors.Is(err, toyrsa.ErrTimeout) {
		return run, err
	}

	start = s.Now()
	rm, rd, err := attack.BruteForceExponent(ctx, kp.Public, c,
		attack.WithMaxIterations(s.Config.MaxBruteForceIterations),
		attack.WithLogger(s.Logger),
	)
	run.Timings.BruteForce = s.Now().Sub(start)
	if err != nil {
		run.BruteForceError = err.Error()
		s.Logger.Warn(ctx, "brute force failed", "error", err)
		if errors.Is(err, toyrsa.ErrTimeout) {
			return run, err
		}
	} else {
		run.BruteForce = &report.Recovered{Message: rm, Exponent: rd}
	}
	return run, nil
}
