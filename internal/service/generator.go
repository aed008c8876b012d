package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/metrics"
	"github.com/vaultpass/pwgen-go/internal/model"
)

const (
	DefaultLength    = 16
	DefaultMaxLength = 1024
)

var ErrLengthTooLong = errors.New("password length exceeds server maximum")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator     *crypto.Generator
	metrics       *metrics.Metrics
	defaultLength int
	maxLength     int
}

// Option configures a GeneratorService.
type Option func(*GeneratorService)

// WithGenerator replaces the password generator.
func WithGenerator(g *crypto.Generator) Option {
	return func(s *GeneratorService) { s.generator = g }
}

// WithMetrics records generation and verification counters to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *GeneratorService) { s.metrics = m }
}

// WithLengths sets the length used for zero-length requests and the
// largest length accepted.
func WithLengths(defaultLength, maxLength int) Option {
	return func(s *GeneratorService) {
		s.defaultLength = defaultLength
		s.maxLength = maxLength
	}
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(opts ...Option) *GeneratorService {
	s := &GeneratorService{
		generator:     crypto.NewGenerator(),
		defaultLength: DefaultLength,
		maxLength:     DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.defaultLength
	}

	if s.maxLength > 0 && length > s.maxLength {
		s.metrics.GenerateFailed("too_long")
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	password, err := s.generator.Generate(length)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidLength) {
			s.metrics.GenerateFailed("invalid_length")
		} else {
			s.metrics.GenerateFailed("internal")
		}
		return model.GenerateResponse{}, err
	}
	s.metrics.Generated()

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strong:   crypto.IsStrong(password),
	}, nil
}

// Verify reports whether the password satisfies the complexity policy.
func (s *GeneratorService) Verify(req model.VerifyRequest) model.VerifyResponse {
	report := crypto.Analyze(req.Password)
	s.metrics.Verified(report.Strong())

	missing := make([]string, 0, len(crypto.Classes))
	for _, c := range report.Missing() {
		missing = append(missing, c.String())
	}

	return model.VerifyResponse{
		Strong:    report.Strong(),
		Lowercase: report.Lowercase,
		Uppercase: report.Uppercase,
		Digit:     report.Digit,
		Special:   report.Special,
		Missing:   missing,
	}
}
