// Package logging provides a minimal logging facade for the toy RSA engine.
//
// The Logger interface wraps the subset of log/slog used by the key generator,
// the prime sampler and the attacks. Components default to Discard so a library
// caller sees no output unless it passes a logger in:
//
//	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	gen := keygen.New(entropy.Default(), cfg, keygen.WithLogger(logger))
//
// # Redaction
//
// Private exponents and prime factors never reach a log line. Use Redacted to
// record that a value existed without printing it:
//
//	logger.Info(ctx, "key pair generated", "n", n, logging.Redacted("d"))
//	// Logs: n=60491 d=[redacted]
//
// Secrets redacts several values at once under a "secret" group, and
// Component tags a sub-logger with the stage that owns it.
package logging
