package api

import (
	"io"
	"log/slog"
	"net/http"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	maxWebhookBody  = 64 << 10
	signatureHeader = "Stripe-Signature"
)

type EventParser interface {
	Parse(payload []byte, signature string) (payment.Event, error)
}

type WebhookHandler struct {
	parser EventParser
	cmds   commands.WebhookCommands
}

func NewWebhookHandler(parser EventParser, cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{parser: parser, cmds: cmds}
}

// @Summary Payment webhook
// @Description Stripe event delivery. Replays are acknowledged without side effects.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	event, err := h.parser.Parse(payload, c.GetHeader(signatureHeader))
	if err != nil {
		slog.Warn("rejected webhook delivery", "error", err.Error())
		httperr.AbortWithDomainError(c, err, "Invalid webhook")
		return
	}

	// a non-2xx makes the provider redeliver, which is safe
	result, err := h.cmds.ReconcileWebhook(c.Request.Context(), event)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Webhook processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received": true,
		"event_id": result.EventID,
		"outcome":  result.Outcome.String(),
		"updated":  result.Updated,
	})
}
