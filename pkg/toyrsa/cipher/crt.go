package cipher

import (
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
)

// DecryptCRT returns c^d mod n computed as two half-size exponentiations
// modulo p and q recombined with Garner's formula:
//
//	x1 = c^d mod p, x2 = c^d mod q
//	m  = x1 + p * ((x2 - x1) * p^-1 mod q)
//
// Keys without odd, distinct factors fall back to Decrypt.
func DecryptCRT(c *big.Int, priv toyrsa.PrivateKey) (*big.Int, error) {
	if err := priv.Validate(); err != nil {
		return nil, err
	}
	if err := inRange("DecryptCRT", "ciphertext", c, priv.N); err != nil {
		return nil, err
	}
	if !crtUsable(priv) {
		return Decrypt(c, priv)
	}

	p, q := priv.P, priv.Q
	capN := priv.N.BitLen()

	pNat := natOf(p, p.BitLen())
	qNat := natOf(q, q.BitLen())
	pMod := saferith.ModulusFromNat(pNat)
	qMod := saferith.ModulusFromNat(qNat)
	d := natOf(priv.D, max(priv.D.BitLen(), 1))

	x1 := new(saferith.Nat).Exp(natOf(new(big.Int).Mod(c, p), p.BitLen()), d, pMod)
	x2 := new(saferith.Nat).Exp(natOf(new(big.Int).Mod(c, q), q.BitLen()), d, qMod)

	// p^-1 mod q; p < q is not guaranteed so reduce first.
	pInv := new(saferith.Nat).ModInverse(natOf(new(big.Int).Mod(p, q), q.BitLen()), qMod)

	h := new(saferith.Nat).ModSub(x2, new(saferith.Nat).Mod(x1, qMod), qMod)
	h.ModMul(h, pInv, qMod)

	m := new(saferith.Nat).Mul(h, pNat, capN)
	m.Add(m, x1, capN)
	return m.Big(), nil
}

// crtUsable reports whether the key carries two distinct odd factors.
// saferith's modular inverse needs an odd modulus.
func crtUsable(priv toyrsa.PrivateKey) bool {
	if !priv.HasFactors() {
		return false
	}
	return priv.P.Bit(0) == 1 && priv.Q.Bit(0) == 1 && priv.P.Cmp(priv.Q) != 0
}

func natOf(x *big.Int, capacity int) *saferith.Nat {
	return new(saferith.Nat).SetBig(x, max(capacity, 1))
}
