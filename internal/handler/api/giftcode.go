package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type GiftCodeHandler struct {
	cmds commands.GiftCodeCommands
}

func NewGiftCodeHandler(cmds commands.GiftCodeCommands) *GiftCodeHandler {
	return &GiftCodeHandler{cmds: cmds}
}

// @Summary Validate gift code
// @Description Check that a gift code can still be redeemed
// @Tags gift-codes
// @Produce json
// @Param code path string true "Gift code"
// @Success 200 {object} resdto.GiftCodeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/gift-codes/{code} [get]
func (h *GiftCodeHandler) Validate(c *gin.Context) {
	view, err := h.cmds.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Gift code validation failed")
		return
	}
	res, err := resdto.FromGiftCodeView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Create gift code pack
// @Description Issue a batch of gift codes under one pack id
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGiftCodePackRequest true "Pack"
// @Success 201 {object} resdto.GiftCodePackResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/gift-code-packs [post]
func (h *GiftCodeHandler) CreatePack(c *gin.Context) {
	var req reqdto.CreateGiftCodePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreatePack(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Create gift code pack failed")
		return
	}
	res, err := resdto.FromPackResult(result)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Redeem gift code
// @Description Bind an unused gift code to an existing ticket
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Gift code"
// @Param request body reqdto.RedeemGiftCodeRequest true "Target ticket"
// @Success 200 {object} resdto.GiftCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/gift-codes/{code}/redeem [post]
func (h *GiftCodeHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemGiftCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Redeem(c.Request.Context(), c.Param("code"), req.TicketID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Gift code redemption failed")
		return
	}
	res, err := resdto.FromGiftCodeView(view)
	respond(c, http.StatusOK, res, err)
}
