package errs

import "errors"

// Error categories. Specific errors belong to exactly one of these so that
// transport layers can map them without knowing every sentinel.
var (
	// ErrValidation: bad input shape or values, never retried.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: missing ticket, gift code or schedule.
	ErrNotFound = errors.New("not found")
	// ErrConflict: wrong state, already used, already redeemed. Expected under concurrency.
	ErrConflict = errors.New("conflict")
	// ErrExternalService: payment provider unreachable or rejected the request.
	ErrExternalService = errors.New("external service error")
	// ErrExhausted: code generation ran out of attempts.
	ErrExhausted = errors.New("exhausted")
)

var categories = []error{ErrValidation, ErrNotFound, ErrConflict, ErrExternalService, ErrExhausted}

// categorized is a sentinel that also matches its category under Is.
// Sentinels compare by identity, so two of them never match each other.
type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Is(target error) bool { return target == e.category }

func Validation(msg string) error { return &categorized{msg: msg, category: ErrValidation} }
func NotFound(msg string) error   { return &categorized{msg: msg, category: ErrNotFound} }
func Conflict(msg string) error   { return &categorized{msg: msg, category: ErrConflict} }
func External(msg string) error   { return &categorized{msg: msg, category: ErrExternalService} }
func Exhausted(msg string) error  { return &categorized{msg: msg, category: ErrExhausted} }

// CategoryOf returns the category err belongs to, or nil.
func CategoryOf(err error) error {
	for _, c := range categories {
		if Is(err, c) {
			return c
		}
	}
	return nil
}

// Message returns the text of the categorized error inside err, without the
// wrapping context, or "" when there is none.
func Message(err error) string {
	var c *categorized
	if errors.As(err, &c) {
		return c.msg
	}
	return ""
}
