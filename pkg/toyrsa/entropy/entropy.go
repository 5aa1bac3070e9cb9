package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
)

// Source produces uniformly distributed integers.
type Source interface {
	// Int returns a uniform value in [0, max). max must be positive.
	Int(max *big.Int) (*big.Int, error)
}

// Default returns a Source backed by crypto/rand. It is safe for concurrent use.
func Default() Source {
	return Reader(rand.Reader)
}

// Reader returns a Source that draws bytes from r. Access to r is serialized.
func Reader(r io.Reader) Source {
	return &readerSource{r: r}
}

// Seeded returns a deterministic Source keyed by seed.
func Seeded(seed [32]byte) Source {
	return Reader(mrand.NewChaCha8(seed))
}

// SeedFromPhrase hashes phrase into a seed for Seeded.
func SeedFromPhrase(phrase string) [32]byte {
	return blake2b.Sum256([]byte(phrase))
}

// Range returns a uniform value in the inclusive range [lo, hi].
func Range(src Source, lo, hi *big.Int) (*big.Int, error) {
	if lo.Cmp(hi) > 0 {
		return nil, toyrsa.Errorf("Range", toyrsa.ErrInvalidInput, "empty range [%s, %s]", lo, hi)
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, big.NewInt(1))
	v, err := src.Int(width)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lo), nil
}

type readerSource struct {
	mu sync.Mutex
	r  io.Reader
}

// Int uses rejection sampling over the smallest byte string covering max-1,
// masking the excess high bits so each draw succeeds with probability > 1/2.
func (s *readerSource) Int(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, toyrsa.Errorf("Source.Int", toyrsa.ErrInvalidInput, "max must be positive")
	}
	top := new(big.Int).Sub(max, big.NewInt(1))
	bitLen := top.BitLen()
	if bitLen == 0 {
		return new(big.Int), nil
	}
	buf := make([]byte, (bitLen+7)/8)
	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := new(big.Int)
	for {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return nil, fmt.Errorf("entropy: read: %w", err)
		}
		buf[0] &= uint8(int(1<<b) - 1)
		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
