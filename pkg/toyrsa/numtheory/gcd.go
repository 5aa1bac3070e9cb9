package numtheory

import "math/big"

// GCD returns the non-negative greatest common divisor of a and b using the
// iterative Euclidean algorithm. GCD(a, 0) = |a| and GCD(0, b) = |b|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ExtendedGCD returns (g, x, y) with a*x + b*y = g = gcd(a, b). It recurses on
// (b mod a, a) with base case a = 0 -> (b, 0, 1). Both inputs must be
// non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}
	q, r := new(big.Int).QuoRem(b, a, new(big.Int))
	g, x1, y1 := ExtendedGCD(r, a)
	x = new(big.Int).Mul(q, x1)
	x.Sub(y1, x)
	return g, x, x1
}

// ModInverse returns the inverse of a modulo m in [0, m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, errArithmetic("ModInverse", "modulus must be positive")
	}
	r := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(r, m)
	if g.Cmp(bigOne) != 0 {
		return nil, errArithmetic("ModInverse", "%s is not invertible modulo %s", a, m)
	}
	return x.Mod(x, m), nil
}

// ISqrt returns floor(sqrt(n)) for n >= 0.
func ISqrt(n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() < 0 {
		return nil, errArithmetic("ISqrt", "square root of a negative number")
	}
	return new(big.Int).Sqrt(n), nil
}
