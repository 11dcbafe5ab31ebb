// Package shortcode issues short uppercase alphanumeric codes that are unique
// against a persisted set. Uniqueness is guaranteed by the claim callback, which
// must insert under a unique constraint; the existence check only saves a round
// trip on the common collision path.
package shortcode

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"venue-booking/internal/pkg/errs"
)

const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	TicketCodeLength = 8
	GiftCodeLength   = 12

	DefaultMaxAttempts = 10
)

var (
	// ErrCodeTaken is returned by a ClaimFunc when the code is already persisted.
	ErrCodeTaken = errs.Conflict("short code already taken")

	ErrGenerationExhausted = errs.Exhausted("short code generation exhausted")
)

type (
	ExistsFunc func(ctx context.Context, code string) (bool, error)
	ClaimFunc  func(ctx context.Context, code string) error
)

type Generator struct {
	length      int
	maxAttempts int

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Generator)

func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithRand pins the random source, mostly for tests that need collisions.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

func NewGenerator(length int, opts ...Option) *Generator {
	g := &Generator{
		length:      length,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func NewTicketCodeGenerator() *Generator { return NewGenerator(TicketCodeLength) }
func NewGiftCodeGenerator() *Generator   { return NewGenerator(GiftCodeLength) }

func (g *Generator) Length() int { return g.length }

// Next draws one candidate code. It does not check uniqueness.
func (g *Generator) Next() string {
	var sb strings.Builder
	sb.Grow(g.length)
	for range g.length {
		sb.WriteByte(Alphabet[g.intN(len(Alphabet))])
	}
	return sb.String()
}

func (g *Generator) intN(n int) int {
	if g.rnd == nil {
		return rand.IntN(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

// Issue draws codes until claim accepts one. exists may be nil.
func (g *Generator) Issue(ctx context.Context, exists ExistsFunc, claim ClaimFunc) (string, error) {
	for range g.maxAttempts {
		if err := ctx.Err(); err != nil {
			return "", errs.Wrap(err, "issue short code")
		}

		code := g.Next()
		if exists != nil {
			taken, err := exists(ctx, code)
			if err != nil {
				return "", errs.Wrap(err, "check short code existence")
			}
			if taken {
				continue
			}
		}

		if err := claim(ctx, code); err != nil {
			if errs.Is(err, ErrCodeTaken) {
				continue
			}
			return "", errs.Wrap(err, "claim short code")
		}
		return code, nil
	}

	return "", errs.Wrapf(ErrGenerationExhausted, "no free code after %d attempts", g.maxAttempts)
}

// IsWellFormed reports whether code has the given length and only uses Alphabet.
func IsWellFormed(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for i := range len(code) {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// Normalize upper-cases and trims a code typed or scanned by a person.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
