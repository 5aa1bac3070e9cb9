package attack_test

import (
	"context"
	"fmt"
	"log"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/attack"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/cipher"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/keygen"
)

// Example recovers a message and the key behind it from the public key alone.
func Example() {
	kp, err := keygen.FromPrimes(big.NewInt(251), big.NewInt(241), big.NewInt(7))
	if err != nil {
		log.Fatalf("key: %v", err)
	}
	c, err := cipher.Encrypt(big.NewInt(42), kp.Public)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}

	ctx := context.Background()
	p, q, err := attack.Factorize(ctx, kp.Public.N)
	if err != nil {
		log.Fatalf("factorize: %v", err)
	}
	fmt.Printf("n = %s = %s * %s\n", kp.Public.N, p, q)

	recovered, err := keygen.FromPrimes(p, q, kp.Public.E)
	if err != nil {
		log.Fatalf("rebuild key: %v", err)
	}
	fmt.Println("private exponent:", recovered.Private.D)

	m, d, err := attack.BruteForceExponent(ctx, kp.Public, c)
	if err != nil {
		log.Fatalf("brute force: %v", err)
	}
	fmt.Printf("brute force: message %s with d = %s\n", m, d)
	// Output:
	// n = 60491 = 241 * 251
	// private exponent: 17143
	// brute force: message 42 with d = 5143
}
