//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	used := errs.Conflict("thing already used")
	stale := errs.Conflict("thing is stale")
	wrapped := errs.Wrap(used, "validate thing")

	assert.True(t, errs.Is(wrapped, used))
	assert.True(t, errors.Is(wrapped, used))
	assert.True(t, errs.Is(wrapped, errs.ErrConflict))
	assert.False(t, errs.Is(wrapped, stale))
	assert.False(t, errs.Is(wrapped, errs.ErrValidation))

	assert.Equal(t, errs.ErrConflict, errs.CategoryOf(wrapped))
	assert.Equal(t, errs.ErrNotFound, errs.CategoryOf(errs.Wrapf(errs.NotFound("gone"), "id %d", 7)))
	assert.Nil(t, errs.CategoryOf(errs.New("plain")))
	assert.Nil(t, errs.CategoryOf(nil))
}

func TestMark(t *testing.T) {
	base := errs.New("driver failure")
	marked := errs.Mark(base, errs.ErrExternalService)

	assert.True(t, errs.Is(marked, errs.ErrExternalService))
	assert.Equal(t, errs.ErrExternalService, errs.Mark(nil, errs.ErrExternalService))
	assert.Nil(t, errs.Wrap(nil, "nothing"))
}

func TestMessage(t *testing.T) {
	full := errs.Wrapf(errs.NotFound("ticket not found"), "lookup %s", "ABCD1234")

	assert.Equal(t, "ticket not found", errs.Message(full))
	assert.Contains(t, full.Error(), "ABCD1234")
	assert.Empty(t, errs.Message(errs.New("plain")))
}
