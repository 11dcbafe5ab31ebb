package api

import (
	"net/http"
	"time"

	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SweepHandler struct {
	cmds  commands.SweepCommands
	grace time.Duration
}

func NewSweepHandler(cmds commands.SweepCommands, grace time.Duration) *SweepHandler {
	return &SweepHandler{cmds: cmds, grace: grace}
}

// @Summary Run expiry sweep
// @Description Cancel stale pending tickets and expire gift codes now instead of waiting for the next tick
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} httperr.Response
// @Router /api/admin/sweeps [post]
func (h *SweepHandler) Run(c *gin.Context) {
	result := h.cmds.SweepExpired(c.Request.Context(), h.grace)
	if result.Err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, result.Err, "Sweep failed", gin.H{
			"tickets_cancelled":  result.TicketsCancelled,
			"gift_codes_expired": result.GiftCodesExpired,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tickets_cancelled":  result.TicketsCancelled,
		"gift_codes_expired": result.GiftCodesExpired,
	})
}
