package toyrsa

import "math/big"

var bigOne = big.NewInt(1)

// PublicKey is the pair (e, n).
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the pair (d, n). P and Q are the prime factors of N when the
// key came from a generator; they are nil otherwise.
type PrivateKey struct {
	D *big.Int
	N *big.Int
	P *big.Int
	Q *big.Int
}

// KeyPair groups the two halves of a key sharing the same modulus.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// Validate checks n > 1 and 1 < e < n.
func (k PublicKey) Validate() error {
	if k.N == nil || k.E == nil {
		return Errorf("PublicKey.Validate", ErrInvalidInput, "missing e or n")
	}
	if k.N.Cmp(bigOne) <= 0 {
		return Errorf("PublicKey.Validate", ErrInvalidInput, "modulus must be greater than 1")
	}
	if k.E.Cmp(bigOne) <= 0 || k.E.Cmp(k.N) >= 0 {
		return Errorf("PublicKey.Validate", ErrInvalidInput, "exponent must satisfy 1 < e < n")
	}
	return nil
}

// Validate checks n > 1, d >= 0 and, when factors are present, p*q = n.
func (k PrivateKey) Validate() error {
	if k.N == nil || k.D == nil {
		return Errorf("PrivateKey.Validate", ErrInvalidInput, "missing d or n")
	}
	if k.N.Cmp(bigOne) <= 0 {
		return Errorf("PrivateKey.Validate", ErrInvalidInput, "modulus must be greater than 1")
	}
	if k.D.Sign() < 0 {
		return Errorf("PrivateKey.Validate", ErrInvalidInput, "exponent must be non-negative")
	}
	if k.HasFactors() && new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		return Errorf("PrivateKey.Validate", ErrInvalidInput, "factors do not multiply to the modulus")
	}
	return nil
}

// HasFactors reports whether both prime factors are attached.
func (k PrivateKey) HasFactors() bool {
	return k.P != nil && k.Q != nil
}

// Phi returns (p-1)(q-1). It needs the factors carried by the private key.
func (kp KeyPair) Phi() (*big.Int, error) {
	if !kp.Private.HasFactors() {
		return nil, Errorf("KeyPair.Phi", ErrInvalidInput, "factors unknown")
	}
	p1 := new(big.Int).Sub(kp.Private.P, bigOne)
	q1 := new(big.Int).Sub(kp.Private.Q, bigOne)
	return p1.Mul(p1, q1), nil
}

// Validate checks both halves and that they share the modulus.
func (kp KeyPair) Validate() error {
	if err := kp.Public.Validate(); err != nil {
		return err
	}
	if err := kp.Private.Validate(); err != nil {
		return err
	}
	if kp.Public.N.Cmp(kp.Private.N) != 0 {
		return Errorf("KeyPair.Validate", ErrInvalidInput, "public and private moduli differ")
	}
	return nil
}

// MinBits is the smallest bit length whose range [2^(bits-1), 2^bits] holds two
// distinct primes.
const MinBits = 2

// PowerOfTwo returns 2^k.
func PowerOfTwo(k int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(k))
}
