// Package numtheory implements the integer arithmetic the toy RSA engine is
// built from: a deterministic trial-division primality test, Euclid's gcd in
// its plain and extended forms, modular inversion and square-and-multiply
// modular exponentiation.
//
// All functions are pure. Inputs are never modified and every result is a
// freshly allocated *big.Int.
package numtheory
