package attack

import (
	"context"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/numtheory"
)

// ctxCheckInterval is how many loop iterations run between context checks.
const ctxCheckInterval = 1 << 14

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFour = big.NewInt(4)
)

// Factorize returns the smallest factor p of n and its cofactor n/p, found by
// trial division up to floor(sqrt(n)). A prime n or n < 4 yields
// toyrsa.ErrNotFactorable.
func Factorize(ctx context.Context, n *big.Int) (p, q *big.Int, err error) {
	const op = "Factorize"
	if n == nil || n.Sign() <= 0 {
		return nil, nil, toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "modulus must be positive")
	}
	if n.Cmp(bigFour) < 0 {
		return nil, nil, toyrsa.Errorf(op, toyrsa.ErrNotFactorable, "%s has no non-trivial factors", n)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, toyrsa.FromContext(op, err)
	}
	if n.IsUint64() {
		return factorizeUint64(ctx, n.Uint64())
	}
	return factorizeBig(ctx, n)
}

func factorizeUint64(ctx context.Context, n uint64) (*big.Int, *big.Int, error) {
	const op = "Factorize"
	for i := uint64(2); i <= n/i; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, toyrsa.FromContext(op, err)
			}
		}
		if n%i == 0 {
			return new(big.Int).SetUint64(i), new(big.Int).SetUint64(n / i), nil
		}
	}
	return nil, nil, toyrsa.Errorf(op, toyrsa.ErrNotFactorable, "%d is prime", n)
}

func factorizeBig(ctx context.Context, n *big.Int) (*big.Int, *big.Int, error) {
	const op = "Factorize"
	limit, err := numtheory.ISqrt(n)
	if err != nil {
		return nil, nil, err
	}
	q, r := new(big.Int), new(big.Int)
	var iter uint64
	for i := big.NewInt(2); i.Cmp(limit) <= 0; i.Add(i, bigOne) {
		iter++
		if iter%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, toyrsa.FromContext(op, err)
			}
		}
		q.QuoRem(n, i, r)
		if r.Sign() == 0 {
			return new(big.Int).Set(i), q, nil
		}
	}
	return nil, nil, toyrsa.Errorf(op, toyrsa.ErrNotFactorable, "%s is prime", n)
}
