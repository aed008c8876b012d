package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// MinLength is the shortest password Generate will produce.
const MinLength = 8

var ErrInvalidLength = errors.New("password length must be at least 8 characters")

// Generator produces passwords containing at least one character from every
// class. A Generator holds no random state between calls, so one value may
// be shared across goroutines as long as its entropy source is safe for
// concurrent reads (crypto/rand.Reader is).
type Generator struct {
	entropy io.Reader
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithEntropy sets the reader each call seeds its keystream from.
func WithEntropy(r io.Reader) GeneratorOption {
	return func(g *Generator) {
		g.entropy = r
	}
}

// NewGenerator creates a Generator seeded from crypto/rand unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{entropy: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate creates a password of the given length using the default generator.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate creates a password of exactly length characters drawn from
// Alphabet, with one guaranteed character per class placed at a random
// position. There is no upper bound on length.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinLength {
		return "", ErrInvalidLength
	}

	s, err := newStream(g.entropy)
	if err != nil {
		return "", fmt.Errorf("seeding generator: %w", err)
	}

	result := make([]byte, 0, length)

	// Guarantee at least one character from each class.
	for _, class := range Classes {
		result = append(result, s.pick(class.Chars()))
	}

	// Fill the remaining positions from the full alphabet.
	for len(result) < length {
		result = append(result, s.pick(Alphabet))
	}

	s.shuffle(result)

	return string(result), nil
}
