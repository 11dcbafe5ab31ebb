//go:build unit

package shortcode_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeSet struct {
	mu    sync.Mutex
	codes map[string]struct{}
}

func newCodeSet() *codeSet {
	return &codeSet{codes: make(map[string]struct{})}
}

func (s *codeSet) exists(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.codes[code]
	return ok, nil
}

func (s *codeSet) claim(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[code]; ok {
		return shortcode.ErrCodeTaken
	}
	s.codes[code] = struct{}{}
	return nil
}

func TestGenerator_Next(t *testing.T) {
	gen := shortcode.NewTicketCodeGenerator()

	for range 100 {
		code := gen.Next()
		assert.True(t, shortcode.IsWellFormed(code, shortcode.TicketCodeLength), code)
	}
	assert.True(t, shortcode.IsWellFormed(shortcode.NewGiftCodeGenerator().Next(), shortcode.GiftCodeLength))
}

func TestGenerator_IssueUniqueUnderLoad(t *testing.T) {
	const (
		workers = 20
		perWork = 500
	)
	gen := shortcode.NewTicketCodeGenerator()
	set := newCodeSet()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		issued []string
		failed []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWork {
				code, err := gen.Issue(context.Background(), set.exists, set.claim)
				mu.Lock()
				if err != nil {
					failed = append(failed, err)
				} else {
					issued = append(issued, code)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Empty(t, failed)
	require.Len(t, issued, workers*perWork)

	seen := make(map[string]struct{}, len(issued))
	for _, code := range issued {
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
	assert.Len(t, set.codes, workers*perWork)
}

func TestGenerator_IssueRetriesOnCollision(t *testing.T) {
	t.Run("claim conflict is retried", func(t *testing.T) {
		gen := shortcode.NewGenerator(4)
		calls := 0
		claim := func(_ context.Context, _ string) error {
			calls++
			if calls < 3 {
				return shortcode.ErrCodeTaken
			}
			return nil
		}

		code, err := gen.Issue(context.Background(), nil, claim)
		require.NoError(t, err)
		assert.Len(t, code, 4)
		assert.Equal(t, 3, calls)
	})

	t.Run("pre-check hit skips the claim", func(t *testing.T) {
		gen := shortcode.NewGenerator(4)
		checks, claims := 0, 0
		exists := func(_ context.Context, _ string) (bool, error) {
			checks++
			return checks == 1, nil
		}
		claim := func(_ context.Context, _ string) error {
			claims++
			return nil
		}

		_, err := gen.Issue(context.Background(), exists, claim)
		require.NoError(t, err)
		assert.Equal(t, 2, checks)
		assert.Equal(t, 1, claims)
	})

	t.Run("same seed collides until exhausted", func(t *testing.T) {
		set := newCodeSet()
		first := shortcode.NewGenerator(8, shortcode.WithRand(rand.New(rand.NewPCG(1, 2))))
		code, err := first.Issue(context.Background(), set.exists, set.claim)
		require.NoError(t, err)

		replay := shortcode.NewGenerator(8,
			shortcode.WithRand(rand.New(rand.NewPCG(1, 2))),
			shortcode.WithMaxAttempts(1),
		)
		_, err = replay.Issue(context.Background(), set.exists, set.claim)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shortcode.ErrGenerationExhausted))
		assert.True(t, errs.Is(err, errs.ErrExhausted))
		assert.Len(t, set.codes, 1)
		assert.Contains(t, set.codes, code)
	})
}

func TestGenerator_IssueExhausted(t *testing.T) {
	gen := shortcode.NewTicketCodeGenerator()
	attempts := 0
	claim := func(_ context.Context, _ string) error {
		attempts++
		return shortcode.ErrCodeTaken
	}

	_, err := gen.Issue(context.Background(), nil, claim)
	require.Error(t, err)
	assert.True(t, errs.Is(err, shortcode.ErrGenerationExhausted))
	assert.Equal(t, shortcode.DefaultMaxAttempts, attempts)
}

func TestGenerator_IssueClaimFailure(t *testing.T) {
	gen := shortcode.NewTicketCodeGenerator()
	boom := errs.New("db down")

	_, err := gen.Issue(context.Background(), nil, func(context.Context, string) error { return boom })
	require.Error(t, err)
	assert.True(t, errs.Is(err, boom))
	assert.False(t, errs.Is(err, shortcode.ErrGenerationExhausted))
}

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"AB12CD34", true},
		{"ab12cd34", false},
		{"AB12CD3", false},
		{"AB12-D34", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, shortcode.IsWellFormed(tt.code, 8))
		})
	}
	assert.Equal(t, "AB12CD34", shortcode.Normalize(" ab12cd34 "))
}
