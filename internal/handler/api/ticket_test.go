//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/handler/api"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/testutil"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockCmds   *commandsmock.MockTicketCommands
	mockBasket *commandsmock.MockBasketCommands
	mockQ      *queriesmock.MockTicketQueries
	handler    *api.TicketHandler
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.mockBasket = commandsmock.NewMockBasketCommands(s.mockCtrl)
	s.mockQ = queriesmock.NewMockTicketQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockCmds, s.mockBasket, s.mockQ)

	s.router.POST("/tickets", s.handler.Create)
	s.router.GET("/tickets/:code", s.handler.GetByCode)
	s.router.POST("/checkout", s.handler.Checkout)
	s.router.POST("/admin/tickets/:id/cancel", s.handler.Cancel)
	s.router.POST("/admin/tickets/:id/mark-paid", s.handler.MarkPaid)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

type testCaseTicket struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TicketHandlerTestSuite) TestCreate() {
	url := "/tickets"
	b := builder.NewTicketBuilder().WithDonation(250)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: converts decimal amounts to minor units", func() {
		s.mockCmds.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, d ticket.Details) (*queries.TicketView, error) {
				s.Equal(int64(1000), d.TicketPrice)
				s.Equal(int64(250), d.DonationAmount)
				s.Equal("2030-06-03", d.ReservationDate.Format("2006-01-02"))
				return view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.Code, body.Code)
		s.Equal("10:00", body.SlotStart)
		s.Equal(int64(1250), body.TotalAmount)
	})

	validation := []testCaseTicket{
		{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "malformed email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "missing date", mutate: testutil.Field("reservation_date", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("reservation_date", "03/06/2030"), expectCode: http.StatusBadRequest},
		{name: "malformed slot", mutate: testutil.Field("slot_start", "25:00"), expectCode: http.StatusBadRequest},
		{name: "sub-cent price", mutate: testutil.Field("ticket_price", "10.005"), expectCode: http.StatusBadRequest},
		{name: "unknown audience", mutate: testutil.Field("audience_type", "vip"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "slot full", err: ticket.ErrSlotFull, expectCode: http.StatusConflict, expectMsg: "slot is fully booked"},
		{name: "venue closed", err: errs.Wrap(ticket.ErrVenueClosed, "reserve"), expectCode: http.StatusBadRequest, expectMsg: "venue is closed"},
		{name: "price mismatch", err: commands.ErrPriceMismatch, expectCode: http.StatusBadRequest, expectMsg: "slot price"},
		{name: "database down", err: errs.New("connection refused"), expectCode: http.StatusInternalServerError, expectMsg: "Create ticket failed"},
	}
	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCmds.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *TicketHandlerTestSuite) TestCheckout() {
	url := "/checkout"
	first := builder.NewTicketBuilder().WithCheckout("cs_test_1", "ref-1")
	second := builder.NewTicketBuilder().WithCode("EFGH5678").WithCheckout("cs_test_1", "ref-1")

	gift := "  GIFT00000001 "
	reqBody := map[string]any{
		"items": []any{
			testutil.DtoMap(s.T(), first.BuildCreateRequestDTO()),
			testutil.DtoMap(s.T(), second.BuildCreateRequestDTO(), testutil.Field("gift_code", gift)),
		},
	}

	s.Run("success: returns payment url and every ticket", func() {
		s.mockBasket.EXPECT().CreateBasketWithPayment(gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(_ any, items []commands.BasketItem) (*commands.BasketResult, error) {
				s.Nil(items[0].GiftCode)
				s.Require().NotNil(items[1].GiftCode)
				s.Equal("GIFT00000001", *items[1].GiftCode)
				return &commands.BasketResult{
					CheckoutID:      "cs_test_1",
					PaymentURL:      "https://checkout.stripe.test/cs_test_1",
					PaymentRequired: true,
					TotalAmount:     1000,
					Currency:        "eur",
					Tickets:         []*queries.TicketView{first.BuildView(), second.BuildView()},
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("https://checkout.stripe.test/cs_test_1", body.PaymentURL)
		s.Len(body.Tickets, 2)
	})

	s.Run("error: empty basket is rejected before the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"items": []any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: one malformed line rejects the whole basket", func() {
		basket := reqdto.CheckoutRequest{Items: []reqdto.CheckoutItemRequest{
			{CreateTicketRequest: first.BuildCreateRequestDTO()},
			{CreateTicketRequest: second.BuildCreateRequestDTO()},
		}}
		body := testutil.DtoMap(s.T(), basket, testutil.Item(1, testutil.Field("email", "not-an-email")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: payment provider failure is 502", func() {
		s.mockBasket.EXPECT().CreateBasketWithPayment(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(ticket.ErrPaymentSession, "open session"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Checkout failed")
	})
}

// ================================================================================
// TestGetByCode
// ================================================================================

func (s *TicketHandlerTestSuite) TestGetByCode() {
	view := builder.NewTicketBuilder().WithStatus(ticket.StatusPaid).BuildView()

	s.Run("success", func() {
		s.mockQ.EXPECT().GetByCode(gomock.Any(), "ABCD1234").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/ABCD1234", nil, "")

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body.Status)
	})

	s.Run("error: unknown code is 404", func() {
		s.mockQ.EXPECT().GetByCode(gomock.Any(), "ZZZZ9999").Return(nil, ticket.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/ZZZZ9999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "ticket not found")
	})
}

// ================================================================================
// TestAdminTransitions
// ================================================================================

func (s *TicketHandlerTestSuite) TestAdminTransitions() {
	id := uuid.New()

	s.Run("cancel success", func() {
		view := builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) { b.ID = id }).
			WithStatus(ticket.StatusCancelled).BuildView()
		s.mockCmds.EXPECT().CancelTicket(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/tickets/"+id.String()+"/cancel", nil, "")

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Equal(id.String(), body.ID)
	})

	s.Run("mark paid on a ticket that is no longer pending is 409", func() {
		s.mockCmds.EXPECT().MarkPaid(gomock.Any(), id).Return(nil, ticket.ErrNotPending)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/tickets/"+id.String()+"/mark-paid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer pending")
	})

	s.Run("malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/tickets/not-a-uuid/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
