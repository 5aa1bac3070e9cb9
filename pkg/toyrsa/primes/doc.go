// Package primes samples the two random primes an RSA modulus is built from.
//
// Candidates are drawn independently and uniformly from [2^(bits-1), 2^bits]
// and tested with numtheory.IsPrime. The search is bounded by
// Config.MaxPrimeAttempts and by the caller's context.
package primes
