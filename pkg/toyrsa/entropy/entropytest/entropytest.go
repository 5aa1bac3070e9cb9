// Package entropytest provides scripted randomness for tests that need to
// steer the sampler or the key generator to known values.
package entropytest

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// ErrExhausted is returned once every scripted value has been consumed.
var ErrExhausted = errors.New("entropytest: script exhausted")

// Script replays a fixed list of values. Each call to Int returns the next one.
type Script struct {
	mu     sync.Mutex
	values []*big.Int
	calls  int
}

// NewScript returns a Script replaying values in order.
func NewScript(values ...int64) *Script {
	s := &Script{}
	for _, v := range values {
		s.values = append(s.values, big.NewInt(v))
	}
	return s
}

// Int returns the next scripted value. It fails when the value is outside
// [0, max) so tests catch offsets computed against the wrong range.
func (s *Script) Int(max *big.Int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= len(s.values) {
		return nil, ErrExhausted
	}
	v := s.values[s.calls]
	s.calls++
	if v.Sign() < 0 || v.Cmp(max) >= 0 {
		return nil, fmt.Errorf("entropytest: scripted value %s outside [0, %s)", v, max)
	}
	return new(big.Int).Set(v), nil
}

// Calls reports how many values have been consumed.
func (s *Script) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Constant always returns the same value.
type Constant int64

// Int returns c, or an error when c is outside [0, max).
func (c Constant) Int(max *big.Int) (*big.Int, error) {
	v := big.NewInt(int64(c))
	if v.Sign() < 0 || v.Cmp(max) >= 0 {
		return nil, fmt.Errorf("entropytest: constant %s outside [0, %s)", v, max)
	}
	return v, nil
}
