// Package demo drives one interactive session of the toy RSA engine: generate
// a key pair, encrypt and decrypt a message, then attack the public key by
// factoring the modulus and brute-forcing the private exponent. Every step is
// timed and collected into a report.Run.
package demo
