package cipher

import (
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/numtheory"
)

// Encrypt returns m^e mod n.
func Encrypt(m *big.Int, pub toyrsa.PublicKey) (*big.Int, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	if err := inRange("Encrypt", "message", m, pub.N); err != nil {
		return nil, err
	}
	return numtheory.ModPow(m, pub.E, pub.N)
}

// Decrypt returns c^d mod n.
func Decrypt(c *big.Int, priv toyrsa.PrivateKey) (*big.Int, error) {
	if err := priv.Validate(); err != nil {
		return nil, err
	}
	if err := inRange("Decrypt", "ciphertext", c, priv.N); err != nil {
		return nil, err
	}
	return numtheory.ModPow(c, priv.D, priv.N)
}

func inRange(op, what string, v, n *big.Int) error {
	if v == nil {
		return toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "missing %s", what)
	}
	if v.Sign() < 0 || v.Cmp(n) >= 0 {
		return toyrsa.Errorf(op, toyrsa.ErrInvalidInput, "%s %s outside [0, %s)", what, v, n)
	}
	return nil
}
