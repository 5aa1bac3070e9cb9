package numtheory

import (
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
)

// ModPow returns base^exp mod m using right-to-left square-and-multiply, so no
// intermediate value exceeds m^2. exp = 0 yields 1 and m = 1 yields 0. A
// non-positive modulus or a negative exponent is an ErrArithmetic.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, errArithmetic("ModPow", "modulus must be positive")
	}
	if exp == nil || exp.Sign() < 0 {
		return nil, errArithmetic("ModPow", "exponent must be non-negative")
	}
	if m.Cmp(bigOne) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b).Mod(result, m)
		}
		b.Mul(b, b).Mod(b, m)
	}
	return result, nil
}

// ModMul returns a*b mod m with the result in [0, m).
func ModMul(a, b, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, errArithmetic("ModMul", "modulus must be positive")
	}
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m), nil
}

func errArithmetic(op, format string, args ...any) error {
	return toyrsa.Errorf(op, toyrsa.ErrArithmetic, format, args...)
}
