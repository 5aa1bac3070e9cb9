package demo

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
)

// Prompter reads integers from a line-oriented input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a Prompter writing prompts to out and reading from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Bits prompts for the prime bit length.
func (p *Prompter) Bits() (int, error) {
	line, err := p.line("Enter the number of bits for key generation: ")
	if err != nil {
		return 0, err
	}
	bits, err := strconv.Atoi(line)
	if err != nil {
		return 0, toyrsa.Errorf("Prompter.Bits", toyrsa.ErrInvalidInput, "%q is not an integer", line)
	}
	return bits, nil
}

// Message prints the public key and prompts for a plaintext in [0, n).
// It satisfies MessageFunc.
func (p *Prompter) Message(pub toyrsa.PublicKey) (*big.Int, error) {
	label := fmt.Sprintf("\nPublic Key (e, n): (%s, %s)\nEnter the Message (0 <= m < %s): ", pub.E, pub.N, pub.N)
	line, err := p.line(label)
	if err != nil {
		return nil, err
	}
	m, ok := new(big.Int).SetString(line, 10)
	if !ok {
		return nil, toyrsa.Errorf("Prompter.Message", toyrsa.ErrInvalidInput, "%q is not an integer", line)
	}
	return m, nil
}

func (p *Prompter) line(label string) (string, error) {
	if _, err := io.WriteString(p.out, label); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}
