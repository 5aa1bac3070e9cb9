// Package toyrsa holds the types shared by the toy RSA engine: key values, the
// error taxonomy and the search limits that bound every retry loop.
//
// The numeric engine lives in subpackages:
//
//   - numtheory: primality testing, gcd, extended gcd and modular exponentiation
//   - entropy: injectable randomness sources (crypto/rand, seeded ChaCha8)
//   - primes: bounded sampling of two random primes of a given bit length
//   - keygen: key pair generation
//   - cipher: integer encryption and decryption
//   - attack: modulus factorization and private exponent brute force
//
// # Scope
//
// The engine is educational. Keys are a few dozen bits wide so that the attacks
// finish, there is no padding scheme and nothing is constant time except
// cipher.DecryptCRT. Never use these keys to protect real data.
//
// # Errors
//
// All failures wrap one of the sentinel errors so callers can branch with
// errors.Is:
//
//	_, _, err := attack.Factorize(ctx, n)
//	if errors.Is(err, toyrsa.ErrNotFactorable) {
//	    // n is prime or too small
//	}
package toyrsa
