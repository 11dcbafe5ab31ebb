//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByCode(t *testing.T) {
	store := memstore.New()
	stored := builder.NewTicketBuilder().WithCode("LOOKUP01").BuildDomain()
	store.PutTicket(stored)
	q := queries.NewTicketQueries(store)

	tests := []struct {
		name      string
		code      string
		expectErr error
	}{
		{name: "exact code", code: "LOOKUP01"},
		{name: "lower case with spaces", code: "  lookup01 "},
		{name: "malformed", code: "LOOK-UP", expectErr: ticket.ErrNotFound},
		{name: "unknown", code: "NOTHERE1", expectErr: ticket.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := q.GetByCode(context.Background(), tt.code)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID(), view.ID)
			assert.Equal(t, "2030-06-03", view.ReservationDate)
		})
	}
}
