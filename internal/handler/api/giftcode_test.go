//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GiftCodeHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockGiftCodeCommands
}

func (s *GiftCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockGiftCodeCommands(s.mockCtrl)

	h := api.NewGiftCodeHandler(s.mockCmds)
	s.router.GET("/gift-codes/:code", h.Validate)
	s.router.POST("/admin/gift-code-packs", h.CreatePack)
	s.router.POST("/admin/gift-codes/:code/redeem", h.Redeem)
}

func (s *GiftCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGiftCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(GiftCodeHandlerTestSuite))
}

func (s *GiftCodeHandlerTestSuite) TestValidate() {
	s.Run("unused code", func() {
		s.mockCmds.EXPECT().Validate(gomock.Any(), "GIFT00000001").
			Return(builder.NewGiftCodeBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gift-codes/GIFT00000001", nil, "")

		var body resdto.GiftCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("unused", body.Status)
	})

	s.Run("expired code is 409", func() {
		s.mockCmds.EXPECT().Validate(gomock.Any(), "GIFT00000002").Return(nil, giftcode.ErrExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gift-codes/GIFT00000002", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "gift code expired")
	})
}

func (s *GiftCodeHandlerTestSuite) TestCreatePack() {
	expires := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success", func() {
		packID := uuid.New()
		s.mockCmds.EXPECT().CreatePack(gomock.Any(), giftcode.PackRequest{Quantity: 2, ExpiresAt: &expires}).
			Return(&commands.PackResult{
				PackID:    packID,
				ExpiresAt: &expires,
				Codes: []*queries.GiftCodeView{
					builder.NewGiftCodeBuilder().BuildView(),
					builder.NewGiftCodeBuilder().WithCode("GIFT00000002").BuildView(),
				},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/gift-code-packs",
			map[string]any{"quantity": 2, "expires_at": expires.Format(time.RFC3339)}, "")

		var body resdto.GiftCodePackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(packID.String(), body.PackID)
		s.Len(body.Codes, 2)
	})

	for _, qty := range []int{0, 501} {
		s.Run("quantity out of range", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/gift-code-packs",
				map[string]any{"quantity": qty}, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("expiry in the past surfaces the domain message", func() {
		s.mockCmds.EXPECT().CreatePack(gomock.Any(), gomock.Any()).Return(nil, giftcode.ErrExpiryInPast)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/gift-code-packs",
			map[string]any{"quantity": 1, "expires_at": "2020-01-01T00:00:00Z"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "pack expiry must be in the future")
	})
}

func (s *GiftCodeHandlerTestSuite) TestRedeem() {
	ticketID := uuid.New()

	s.Run("success", func() {
		view := builder.NewGiftCodeBuilder().WithStatus(giftcode.StatusUsed).BuildView()
		view.TicketID = &ticketID
		s.mockCmds.EXPECT().Redeem(gomock.Any(), "GIFT00000001", ticketID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/gift-codes/GIFT00000001/redeem",
			map[string]any{"ticket_id": ticketID.String()}, "")

		var body resdto.GiftCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.TicketID)
		s.Equal(ticketID.String(), *body.TicketID)
	})

	s.Run("second redemption loses", func() {
		s.mockCmds.EXPECT().Redeem(gomock.Any(), "GIFT00000001", ticketID).Return(nil, giftcode.ErrAlreadyUsed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/gift-codes/GIFT00000001/redeem",
			map[string]any{"ticket_id": ticketID.String()}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "gift code already used")
	})

	s.Run("missing ticket id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/gift-codes/GIFT00000001/redeem",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
