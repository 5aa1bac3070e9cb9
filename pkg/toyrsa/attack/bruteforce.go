package attack

import (
	"context"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/numtheory"
)

type bruteForce struct {
	known         *big.Int
	maxIterations int
	logger        logging.Logger
}

// Option customizes BruteForceExponent.
type Option func(*bruteForce)

// WithKnownPlaintext accepts the first d whose decryption equals m.
func WithKnownPlaintext(m *big.Int) Option {
	return func(b *bruteForce) { b.known = new(big.Int).Set(m) }
}

// WithMaxIterations bounds the number of candidate exponents. Zero means the
// search runs up to d = n-1.
func WithMaxIterations(k int) Option {
	return func(b *bruteForce) { b.maxIterations = k }
}

// WithLogger sets the logger used to report the search outcome.
func WithLogger(l logging.Logger) Option {
	return func(b *bruteForce) { b.logger = logging.OrDiscard(l) }
}

// BruteForceExponent searches for an exponent d >= 2 that decrypts c under
// pub and returns the recovered plaintext with that exponent. See the package
// documentation for the acceptance rule.
func BruteForceExponent(ctx context.Context, pub toyrsa.PublicKey, c *big.Int, opts ...Option) (m, d *big.Int, err error) {
	const op = "BruteForceExponent"
	cfg := bruteForce{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := pub.Validate(); err != nil {
		return nil, nil, err
	}
	if c == nil || c.Sign() < 0 || c.Cmp(pub.N) >= 0 {
		return nil, nil, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "ciphertext outside [0, %s)", pub.N)
	}
	if cfg.maxIterations < 0 {
		return nil, nil, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "max iterations must be non-negative")
	}

	// Candidates run from 2 to last inclusive.
	last := new(big.Int).Sub(pub.N, bigOne)
	if cfg.maxIterations > 0 {
		bound := new(big.Int).Add(big.NewInt(int64(cfg.maxIterations)), bigOne)
		if bound.Cmp(last) < 0 {
			last = bound
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, toyrsa.FromContext(op, err)
	}

	n := pub.N
	candidate, err := numtheory.ModPow(c, bigTwo, n)
	if err != nil {
		return nil, nil, &toyrsa.Error{Op: op, Err: err}
	}
	var iter uint64
	for d = big.NewInt(2); d.Cmp(last) <= 0; d.Add(d, bigOne) {
		iter++
		if iter%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, toyrsa.FromContext(op, err)
			}
		}

		var ok bool
		if cfg.known != nil {
			ok = candidate.Cmp(cfg.known) == 0
		} else {
			check, err := numtheory.ModPow(candidate, pub.E, n)
			if err != nil {
				return nil, nil, &toyrsa.Error{Op: op, Err: err}
			}
			ok = check.Cmp(c) == 0
		}
		if ok {
			cfg.logger.Info(ctx, "private exponent recovered", "n", n.String(), "iterations", iter, logging.Redacted("d"))
			return candidate, d, nil
		}

		// m_{d+1} = m_d * c mod n
		if candidate, err = numtheory.ModMul(candidate, c, n); err != nil {
			return nil, nil, &toyrsa.Error{Op: op, Err: err}
		}
	}
	return nil, nil, toyrsa.Errorf(op, toyrsa.ErrNotFound, "no exponent found after %d candidates", iter)
}
