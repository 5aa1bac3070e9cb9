package numtheory

import "math/big"

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigSix = big.NewInt(6)
)

// IsPrime reports whether n is prime by trial division with divisors of the
// form 6k-1 and 6k+1 up to floor(sqrt(n)). It is deterministic and O(sqrt(n)).
func IsPrime(n *big.Int) bool {
	if n == nil || n.Sign() <= 0 {
		return false
	}
	if n.IsUint64() {
		return isPrimeUint64(n.Uint64())
	}
	return isPrimeBig(n)
}

func isPrimeUint64(n uint64) bool {
	switch {
	case n <= 1:
		return false
	case n <= 3:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	// i <= n/i instead of i*i <= n so the bound cannot overflow.
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

func isPrimeBig(n *big.Int) bool {
	r := new(big.Int)
	if r.Mod(n, bigTwo).Sign() == 0 || r.Mod(n, big.NewInt(3)).Sign() == 0 {
		return false
	}
	i := big.NewInt(5)
	j := new(big.Int)
	sq := new(big.Int)
	for sq.Mul(i, i).Cmp(n) <= 0 {
		if r.Mod(n, i).Sign() == 0 {
			return false
		}
		if r.Mod(n, j.Add(i, bigTwo)).Sign() == 0 {
			return false
		}
		i.Add(i, bigSix)
	}
	return true
}
