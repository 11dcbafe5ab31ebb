package api

import (
	"log/slog"
	"net/http"

	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	validation commands.ValidationCommands
}

func NewStaffHandler(validation commands.ValidationCommands) *StaffHandler {
	return &StaffHandler{validation: validation}
}

// @Summary Validate ticket
// @Description Admit a paid ticket at the entrance. A ticket can be validated once.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param code path string true "Ticket code"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/tickets/{code}/validate [post]
func (h *StaffHandler) ValidateTicket(c *gin.Context) {
	view, err := h.validation.ValidateTicket(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Ticket validation failed")
		return
	}

	staffID, _ := middleware.GetStaffID(c)
	slog.Info("ticket admitted",
		"ticket_id", view.ID.String(),
		"staff_id", staffID.String())

	res, err := resdto.FromTicketView(view)
	respond(c, http.StatusOK, res, err)
}
