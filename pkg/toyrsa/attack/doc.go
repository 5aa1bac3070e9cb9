// Package attack demonstrates why small RSA moduli are insecure. Both attacks
// see only the public key (and, for the brute force, one ciphertext).
//
// # Factorization
//
// Factorize trial-divides n by 2, 3, ..., floor(sqrt(n)). Once p and q are known
// the private exponent follows from keygen.FromPrimes.
//
// # Exponent brute force
//
// BruteForceExponent tries d = 2, 3, ... and keeps the candidate plaintext
// m_d = c^d mod n. A candidate is accepted when it re-encrypts to the
// ciphertext, m_d^e mod n = c. Encryption with a valid key permutes [0, n), so
// the accepted m_d is the original plaintext and d is the smallest exponent
// that decrypts this particular ciphertext. It is congruent to the generated
// private exponent modulo the multiplicative order of c, so it may be smaller
// than that exponent.
//
// With WithKnownPlaintext the re-encryption is replaced by a direct comparison
// against the known message.
//
// Both searches are bounded and honour context cancellation.
package attack
