package toyrsa

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a bit length, message or key that the engine rejects
	ErrInvalidInput = errors.New("toyrsa: invalid input")

	// ErrArithmetic indicates an undefined arithmetic operation such as a zero modulus
	ErrArithmetic = errors.New("toyrsa: arithmetic error")

	// ErrNotFound indicates a bounded search exhausted its attempts
	ErrNotFound = errors.New("toyrsa: not found")

	// ErrTimeout indicates the caller's context ended before a search converged
	ErrTimeout = errors.New("toyrsa: timeout")

	// ErrNotFactorable indicates the modulus is prime or smaller than 4
	ErrNotFactorable = errors.New("toyrsa: not factorable")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("toyrsa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf returns an *Error for op whose chain contains kind.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// FromContext converts a context error into ErrTimeout, keeping the original
// context error reachable through errors.Is.
func FromContext(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Op: op, Err: errors.Join(ErrTimeout, err)}
	}
	return &Error{Op: op, Err: err}
}
