package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	cmds   commands.TicketCommands
	basket commands.BasketCommands
	q      queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, basket commands.BasketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, basket: basket, q: q}
}

// @Summary Create ticket
// @Description Reserve one pending ticket for a slot
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req reqdto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	details, err := req.ToDetails()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.CreateTicket(c.Request.Context(), details)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Create ticket failed")
		return
	}
	res, err := resdto.FromTicketView(view)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Checkout basket
// @Description Create every ticket of a basket and open one payment session for the total
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Basket"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout [post]
func (h *TicketHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	items, err := req.ToBasketItems()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid request")
		return
	}

	result, err := h.basket.CreateBasketWithPayment(c.Request.Context(), items)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Checkout failed")
		return
	}
	res, err := resdto.FromBasketResult(result)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Get ticket
// @Description Look a ticket up by its public code
// @Tags tickets
// @Produce json
// @Param code path string true "Ticket code"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{code} [get]
func (h *TicketHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load ticket")
		return
	}
	res, err := resdto.FromTicketView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Cancel ticket
// @Description Cancel a pending ticket
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/tickets/{id}/cancel [post]
func (h *TicketHandler) Cancel(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	view, err := h.cmds.CancelTicket(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Cancel ticket failed")
		return
	}
	res, err := resdto.FromTicketView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Mark ticket paid
// @Description Settle a pending ticket paid outside the payment provider
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/tickets/{id}/mark-paid [post]
func (h *TicketHandler) MarkPaid(c *gin.Context) {
	id, ok := bindIDParam(c)
	if !ok {
		return
	}
	view, err := h.cmds.MarkPaid(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Mark paid failed")
		return
	}
	res, err := resdto.FromTicketView(view)
	respond(c, http.StatusOK, res, err)
}
