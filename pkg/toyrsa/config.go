package toyrsa

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config bounds every search the engine performs. A zero limit means "use the
// default" for attempts and "bounded by n" for the brute force.
type Config struct {
	// MaxBits caps the prime bit length. Primality testing and both attacks
	// are O(sqrt(n)), so wide keys make the demo hang rather than fail.
	MaxBits int `json:"max_bits"`

	// MaxPrimeAttempts bounds the number of candidate pairs drawn by the
	// prime sampler.
	MaxPrimeAttempts int `json:"max_prime_attempts"`

	// MaxExponentAttempts bounds the search for a public exponent coprime to
	// the totient.
	MaxExponentAttempts int `json:"max_exponent_attempts"`

	// MaxBruteForceIterations bounds the private exponent search. Zero lets
	// the search run up to n.
	MaxBruteForceIterations int `json:"max_brute_force_iterations"`

	// AllowEqualPrimes accepts p == q from the sampler. The resulting modulus
	// is a square, (p-1)(q-1) is not its totient and decryption breaks, so this
	// only exists to reproduce the unguarded behaviour.
	AllowEqualPrimes bool `json:"allow_equal_primes"`
}

// DefaultConfig returns the limits used when no configuration is supplied.
func DefaultConfig() Config {
	return Config{
		MaxBits:             32,
		MaxPrimeAttempts:    1_000_000,
		MaxExponentAttempts: 100_000,
	}
}

// Validate rejects negative limits and a MaxBits below MinBits.
func (c Config) Validate() error {
	if c.MaxBits < MinBits {
		return Errorf("Config.Validate", ErrInvalidInput, "max_bits must be at least %d", MinBits)
	}
	if c.MaxPrimeAttempts < 0 || c.MaxExponentAttempts < 0 || c.MaxBruteForceIterations < 0 {
		return Errorf("Config.Validate", ErrInvalidInput, "limits must be non-negative")
	}
	return nil
}

// WithDefaults fills zero attempt limits from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.MaxBits == 0 {
		c.MaxBits = def.MaxBits
	}
	if c.MaxPrimeAttempts == 0 {
		c.MaxPrimeAttempts = def.MaxPrimeAttempts
	}
	if c.MaxExponentAttempts == 0 {
		c.MaxExponentAttempts = def.MaxExponentAttempts
	}
	return c
}

// LoadConfig reads a JSON configuration file and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return Config{}, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return Config{}, fmt.Errorf("read file: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal JSON: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}
