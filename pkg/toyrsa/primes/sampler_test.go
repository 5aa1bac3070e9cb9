package primes_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/entropy"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/entropy/entropytest"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/numtheory"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/primes"
)

func TestSampleTwoPrimesScripted(t *testing.T) {
	// bits=8 draws from [128, 256]; offsets 123 and 113 land on 251 and 241.
	// The first pair (128, 129) is rejected as composite.
	src := entropytest.NewScript(0, 1, 123, 113)
	s := primes.NewSampler(src, toyrsa.DefaultConfig())

	p, q, err := s.SampleTwoPrimes(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, int64(251), p.Int64())
	require.Equal(t, int64(241), q.Int64())
	require.Equal(t, 4, src.Calls())
}

func TestSampleTwoPrimesInRange(t *testing.T) {
	src := entropy.Seeded(entropy.SeedFromPhrase("sampler"))
	s := primes.NewSampler(src, toyrsa.DefaultConfig())

	for _, bits := range []int{2, 3, 4, 8, 12, 16, 20} {
		p, q, err := s.SampleTwoPrimes(context.Background(), bits)
		require.NoError(t, err, "bits=%d", bits)

		lo := toyrsa.PowerOfTwo(bits - 1)
		hi := toyrsa.PowerOfTwo(bits)
		for _, v := range []*big.Int{p, q} {
			require.True(t, numtheory.IsPrime(v), "%s is not prime", v)
			require.True(t, v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0, "%s outside [%s, %s]", v, lo, hi)
		}
		require.NotZero(t, p.Cmp(q), "equal primes for bits=%d", bits)
	}
}

func TestSampleTwoPrimesRejectsEqualPair(t *testing.T) {
	// (251, 251) is skipped, (251, 241) accepted.
	src := entropytest.NewScript(123, 123, 123, 113)
	s := primes.NewSampler(src, toyrsa.DefaultConfig())

	p, q, err := s.SampleTwoPrimes(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, int64(251), p.Int64())
	require.Equal(t, int64(241), q.Int64())
}

func TestSampleTwoPrimesAllowEqual(t *testing.T) {
	cfg := toyrsa.DefaultConfig()
	cfg.AllowEqualPrimes = true
	s := primes.NewSampler(entropytest.Constant(123), cfg)

	p, q, err := s.SampleTwoPrimes(context.Background(), 8)
	require.NoError(t, err)
	require.Zero(t, p.Cmp(q))
}

func TestSampleTwoPrimesInvalidBits(t *testing.T) {
	s := primes.NewSampler(entropy.Default(), toyrsa.DefaultConfig())
	for _, bits := range []int{-1, 0, 1, 33} {
		_, _, err := s.SampleTwoPrimes(context.Background(), bits)
		require.ErrorIs(t, err, toyrsa.ErrInvalidInput, "bits=%d", bits)
	}
}

func TestSampleTwoPrimesExhausted(t *testing.T) {
	// 128 is never prime, so every attempt fails.
	s := primes.NewSampler(entropytest.Constant(0), toyrsa.DefaultConfig(), primes.WithMaxAttempts(50))

	_, _, err := s.SampleTwoPrimes(context.Background(), 8)
	require.ErrorIs(t, err, toyrsa.ErrNotFound)
}

func TestSampleTwoPrimesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := primes.NewSampler(entropy.Default(), toyrsa.DefaultConfig())

	_, _, err := s.SampleTwoPrimes(ctx, 8)
	require.ErrorIs(t, err, toyrsa.ErrTimeout)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampleTwoPrimesSourceFailure(t *testing.T) {
	s := primes.NewSampler(entropytest.NewScript(), toyrsa.DefaultConfig())
	_, _, err := s.SampleTwoPrimes(context.Background(), 8)
	require.ErrorIs(t, err, entropytest.ErrExhausted)
}
