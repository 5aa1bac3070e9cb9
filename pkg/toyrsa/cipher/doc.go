// Package cipher encrypts and decrypts single integers under a toy RSA key.
//
// Messages and ciphertexts must lie in [0, n). Values outside that range are
// rejected with toyrsa.ErrInvalidInput rather than silently reduced, since a
// reduced message no longer round-trips.
//
// DecryptCRT computes the same result as Decrypt from the prime factors using
// the Chinese remainder theorem and constant-time arithmetic from saferith.
package cipher
