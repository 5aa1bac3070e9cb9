package primes

import (
	"context"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/entropy"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/numtheory"
)

// Sampler draws pairs of random primes of a fixed bit length.
type Sampler struct {
	src         entropy.Source
	maxBits     int
	maxAttempts int
	allowEqual  bool
	logger      logging.Logger
}

// Option customizes a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger used for attempt statistics.
func WithLogger(l logging.Logger) Option {
	return func(s *Sampler) { s.logger = logging.OrDiscard(l) }
}

// WithMaxAttempts overrides Config.MaxPrimeAttempts.
func WithMaxAttempts(n int) Option {
	return func(s *Sampler) { s.maxAttempts = n }
}

// NewSampler returns a Sampler reading randomness from src and bounded by cfg.
func NewSampler(src entropy.Source, cfg toyrsa.Config, opts ...Option) *Sampler {
	cfg = cfg.WithDefaults()
	s := &Sampler{
		src:         src,
		maxBits:     cfg.MaxBits,
		maxAttempts: cfg.MaxPrimeAttempts,
		allowEqual:  cfg.AllowEqualPrimes,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleTwoPrimes returns primes p and q drawn from [2^(bits-1), 2^bits].
// Unless the configuration allows it, p != q.
func (s *Sampler) SampleTwoPrimes(ctx context.Context, bits int) (p, q *big.Int, err error) {
	const op = "SampleTwoPrimes"
	if bits < toyrsa.MinBits || bits > s.maxBits {
		return nil, nil, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "bits must be in [%d, %d], got %d", toyrsa.MinBits, s.maxBits, bits)
	}
	if s.maxAttempts <= 0 {
		return nil, nil, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "max attempts must be positive")
	}

	lo := toyrsa.PowerOfTwo(bits - 1)
	hi := toyrsa.PowerOfTwo(bits)
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, toyrsa.FromContext(op, err)
		}
		p, err = entropy.Range(s.src, lo, hi)
		if err != nil {
			return nil, nil, &toyrsa.Error{Op: op, Err: err}
		}
		q, err = entropy.Range(s.src, lo, hi)
		if err != nil {
			return nil, nil, &toyrsa.Error{Op: op, Err: err}
		}
		if !numtheory.IsPrime(p) || !numtheory.IsPrime(q) {
			continue
		}
		if !s.allowEqual && p.Cmp(q) == 0 {
			continue
		}
		s.logger.Debug(ctx, "primes sampled", "bits", bits, "attempts", attempt)
		return p, q, nil
	}
	return nil, nil, toyrsa.Errorf(op, toyrsa.ErrNotFound, "no prime pair after %d attempts", s.maxAttempts)
}
