// Package keygen builds RSA key pairs from two sampled primes.
//
// Generation follows the textbook recipe: n = p*q, phi = (p-1)(q-1), a random
// public exponent e in [2, n) coprime to phi, and d = e^-1 mod phi obtained from
// the Bezout coefficient of the extended Euclidean algorithm. Both the prime
// search and the exponent search are bounded by toyrsa.Config.
package keygen
