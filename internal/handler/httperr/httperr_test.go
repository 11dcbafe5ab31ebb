//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ticket.ErrInvalidEmail, http.StatusBadRequest},
		{"wrapped validation", errs.Wrap(ticket.ErrDateInPast, "create"), http.StatusBadRequest},
		{"not found", giftcode.ErrNotFound, http.StatusNotFound},
		{"conflict", ticket.ErrSlotFull, http.StatusConflict},
		{"external", ticket.ErrPaymentSession, http.StatusBadGateway},
		{"exhausted", shortcode.ErrGenerationExhausted, http.StatusServiceUnavailable},
		{"repository not found", infra.WrapRepoErr("find ticket", pgx.ErrNoRows), http.StatusNotFound},
		{"uncategorised", errs.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}
