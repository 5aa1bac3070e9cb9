package keygen

import (
	"context"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/entropy"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/numtheory"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/primes"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Generator produces key pairs. It is not safe for concurrent use unless its
// Source is.
type Generator struct {
	src                 entropy.Source
	sampler             *primes.Sampler
	maxExponentAttempts int
	logger              logging.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger for the generator and its prime sampler.
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) { g.logger = logging.OrDiscard(l) }
}

// New returns a Generator drawing primes and exponents from src.
func New(src entropy.Source, cfg toyrsa.Config, opts ...Option) *Generator {
	cfg = cfg.WithDefaults()
	g := &Generator{
		src:                 src,
		maxExponentAttempts: cfg.MaxExponentAttempts,
		logger:              logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.sampler = primes.NewSampler(src, cfg, primes.WithLogger(logging.Component(g.logger, "sampler")))
	return g
}

// Generate samples two primes of the given bit length and derives a key pair
// from them. The private key carries p and q.
func (g *Generator) Generate(ctx context.Context, bits int) (toyrsa.KeyPair, error) {
	p, q, err := g.sampler.SampleTwoPrimes(ctx, bits)
	if err != nil {
		return toyrsa.KeyPair{}, err
	}

	n := new(big.Int).Mul(p, q)
	phi := totient(p, q)
	e, err := g.chooseExponent(ctx, n, phi)
	if err != nil {
		return toyrsa.KeyPair{}, err
	}

	kp := assemble(p, q, n, phi, e)
	g.logger.Info(ctx, "key pair generated",
		"bits", bits,
		"n", kp.Public.N.String(),
		"e", kp.Public.E.String(),
		logging.Secrets("d", "p", "q"),
	)
	return kp, nil
}

// chooseExponent draws e uniformly from [2, n) until gcd(e, phi) = 1.
func (g *Generator) chooseExponent(ctx context.Context, n, phi *big.Int) (*big.Int, error) {
	const op = "Generate"
	if g.maxExponentAttempts <= 0 {
		return nil, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "max exponent attempts must be positive")
	}
	hi := new(big.Int).Sub(n, bigOne)
	for attempt := 1; attempt <= g.maxExponentAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, toyrsa.FromContext(op, err)
		}
		e, err := entropy.Range(g.src, bigTwo, hi)
		if err != nil {
			return nil, &toyrsa.Error{Op: op, Err: err}
		}
		if numtheory.GCD(e, phi).Cmp(bigOne) == 0 {
			g.logger.Debug(ctx, "public exponent chosen", "attempts", attempt)
			return e, nil
		}
	}
	return nil, toyrsa.Errorf(op, toyrsa.ErrNotFound, "no exponent coprime to phi after %d attempts", g.maxExponentAttempts)
}

// FromPrimes derives the key pair for distinct primes p, q and public exponent
// e. It is the deterministic counterpart of Generate.
func FromPrimes(p, q, e *big.Int) (toyrsa.KeyPair, error) {
	const op = "FromPrimes"
	if !numtheory.IsPrime(p) || !numtheory.IsPrime(q) {
		return toyrsa.KeyPair{}, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "p and q must be prime")
	}
	if p.Cmp(q) == 0 {
		return toyrsa.KeyPair{}, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "p and q must differ")
	}
	n := new(big.Int).Mul(p, q)
	if e == nil || e.Cmp(bigOne) <= 0 || e.Cmp(n) >= 0 {
		return toyrsa.KeyPair{}, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "e must satisfy 1 < e < n")
	}
	phi := totient(p, q)
	if _, err := numtheory.ModInverse(e, phi); err != nil {
		return toyrsa.KeyPair{}, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "e is not invertible modulo phi")
	}
	return assemble(p, q, n, phi, e), nil
}

func totient(p, q *big.Int) *big.Int {
	p1 := new(big.Int).Sub(p, bigOne)
	q1 := new(big.Int).Sub(q, bigOne)
	return p1.Mul(p1, q1)
}

// assemble computes d from the Bezout coefficient of e in e*x + phi*y = 1,
// lifted into [0, phi). Callers have already established gcd(e, phi) = 1.
func assemble(p, q, n, phi, e *big.Int) toyrsa.KeyPair {
	_, d, _ := numtheory.ExtendedGCD(e, phi)
	if d.Sign() < 0 {
		d.Add(d, phi)
	}
	return toyrsa.KeyPair{
		Public: toyrsa.PublicKey{
			E: new(big.Int).Set(e),
			N: n,
		},
		Private: toyrsa.PrivateKey{
			D: d,
			N: new(big.Int).Set(n),
			P: new(big.Int).Set(p),
			Q: new(big.Int).Set(q),
		},
	}
}
