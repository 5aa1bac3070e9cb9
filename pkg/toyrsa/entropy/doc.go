// Package entropy supplies the randomness consumed by the prime sampler and the
// key generator.
//
// Randomness is always passed in explicitly as a Source. Production callers use
// Default, which reads crypto/rand. Reproducible runs use Seeded, a ChaCha8
// stream keyed by a 32-byte seed; SeedFromPhrase derives such a seed from a
// human-readable phrase with BLAKE2b-256:
//
//	src := entropy.Seeded(entropy.SeedFromPhrase("lecture-3"))
//	kp, err := keygen.New(src, cfg).Generate(ctx, 16)
//
// The same phrase and configuration always produce the same key pair.
package entropy
