//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/memstore"
	sharedmock "venue-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketUseCaseTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	store     *memstore.Store
	notifier  *sharedmock.MockNotifier
	publisher *sharedmock.MockPublisher
	uc        commands.TicketCommands
}

func (s *TicketUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = openStore()
	s.notifier = sharedmock.NewMockNotifier(s.mockCtrl)
	s.publisher = sharedmock.NewMockPublisher(s.mockCtrl)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.uc = commands.NewTicketUseCase(s.store, testRules(2), s.notifier, s.publisher, shared.NopRecorder{}, testClock())
}

func (s *TicketUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketUseCaseSuite(t *testing.T) {
	suite.Run(t, new(TicketUseCaseTestSuite))
}

func (s *TicketUseCaseTestSuite) TestCreateTicket() {
	s.Run("success: pending ticket with a well-formed code", func() {
		view, err := s.uc.CreateTicket(s.ctx, details(10, 12, 1000))
		s.Require().NoError(err)
		s.Equal(ticket.StatusPending.String(), view.Status)
		s.Len(view.Code, 8)
		s.Equal(int64(1000), view.TotalAmount)
		s.NotNil(s.store.Ticket(view.ID))
	})

	s.Run("publishes an availability refresh for the date", func() {
		ctrl := gomock.NewController(s.T())
		pub := sharedmock.NewMockPublisher(ctrl)
		pub.EXPECT().Publish(gomock.Any(), "availability:2030-06-03", "refresh").Return(nil).Times(1)
		uc := commands.NewTicketUseCase(openStore(), testRules(2), s.notifier, pub, shared.NopRecorder{}, testClock())

		_, err := uc.CreateTicket(s.ctx, details(10, 12, 1000))
		s.Require().NoError(err)
	})

	s.Run("error: date in the past", func() {
		d := details(10, 12, 1000)
		d.ReservationDate = now.AddDate(0, 0, -1)

		_, err := s.uc.CreateTicket(s.ctx, d)
		s.ErrorIs(err, ticket.ErrDateInPast)
	})

	s.Run("error: slot outside opening hours", func() {
		_, err := s.uc.CreateTicket(s.ctx, details(17, 19, 1000))
		s.ErrorIs(err, ticket.ErrOutsideOpening)
	})

	s.Run("error: closing exception wins over the weekly rule", func() {
		store := openStore()
		store.PutSchedules(builder.ClosedOn(schedule.AudiencePublic, monday, "maintenance"))
		uc := commands.NewTicketUseCase(store, testRules(2), s.notifier, s.publisher, shared.NopRecorder{}, testClock())

		_, err := uc.CreateTicket(s.ctx, details(10, 12, 1000))
		s.ErrorIs(err, ticket.ErrVenueClosed)
	})
}

func (s *TicketUseCaseTestSuite) TestCreateTicket_Pricing() {
	tests := []struct {
		name      string
		start     int
		end       int
		price     int64
		expectErr error
	}{
		{name: "complete slot at full price", start: 10, end: 12, price: 1000},
		{name: "trailing partial slot at half price", start: 16, end: 17, price: 500},
		{name: "partial slot charged full price", start: 16, end: 17, price: 1000, expectErr: commands.ErrPriceMismatch},
		{name: "complete slot charged half price", start: 10, end: 12, price: 500, expectErr: commands.ErrPriceMismatch},
		{name: "whole day at half price", start: 9, end: 17, price: 500, expectErr: ticket.ErrNotPlannedSlot},
		{name: "three hour span at half price", start: 11, end: 14, price: 500, expectErr: ticket.ErrNotPlannedSlot},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			_, err := s.uc.CreateTicket(s.ctx, details(tt.start, tt.end, tt.price))
			if tt.expectErr != nil {
				s.ErrorIs(err, tt.expectErr)
				s.Empty(s.store.Tickets())
				return
			}
			s.NoError(err)
		})
	}
}

// Capacity counts every held ticket whose interval overlaps the requested
// one; touching endpoints do not overlap.
func (s *TicketUseCaseTestSuite) TestCreateTicket_OverlapCounting() {
	_, err := s.uc.CreateTicket(s.ctx, details(10, 12, 1000))
	s.Require().NoError(err)
	_, err = s.uc.CreateTicket(s.ctx, details(11, 13, 1000))
	s.Require().NoError(err)

	_, err = s.uc.CreateTicket(s.ctx, details(11, 13, 1000))
	s.ErrorIs(err, ticket.ErrSlotFull, "11-13 overlaps both existing tickets")

	_, err = s.uc.CreateTicket(s.ctx, details(12, 14, 1000))
	s.NoError(err, "12-14 only overlaps 11-13")

	_, err = s.uc.CreateTicket(s.ctx, details(14, 16, 1000))
	s.NoError(err)
}

func (s *TicketUseCaseTestSuite) TestCreateTicket_CancelledTicketsFreeCapacity() {
	cancelled := builder.NewTicketBuilder().WithCode("CANCEL01").WithStatus(ticket.StatusCancelled).BuildDomain()
	used := builder.NewTicketBuilder().WithCode("USED0001").WithStatus(ticket.StatusUsed).BuildDomain()
	s.store.PutTicket(cancelled)
	s.store.PutTicket(used)

	_, err := s.uc.CreateTicket(s.ctx, details(10, 12, 1000))
	s.Require().NoError(err)
	_, err = s.uc.CreateTicket(s.ctx, details(10, 12, 1000))
	s.NoError(err)
}

func (s *TicketUseCaseTestSuite) TestCancelTicket() {
	pending := builder.NewTicketBuilder().BuildDomain()
	s.store.PutTicket(pending)

	s.Run("success: pending ticket is cancelled", func() {
		view, err := s.uc.CancelTicket(s.ctx, pending.ID())
		s.Require().NoError(err)
		s.Equal(ticket.StatusCancelled.String(), view.Status)
		s.Equal("cancelled_by_admin", *s.store.Ticket(pending.ID()).TransactionStatus())
	})

	s.Run("error: no longer pending", func() {
		_, err := s.uc.CancelTicket(s.ctx, pending.ID())
		s.ErrorIs(err, ticket.ErrNotPending)
	})

	s.Run("error: unknown ticket", func() {
		_, err := s.uc.CancelTicket(s.ctx, uuid.New())
		s.ErrorIs(err, ticket.ErrNotFound)
	})
}

func (s *TicketUseCaseTestSuite) TestMarkPaid() {
	s.Run("success: sends confirmation and donation receipt", func() {
		pending := builder.NewTicketBuilder().WithCode("DONOR001").WithDonation(500).BuildDomain()
		s.store.PutTicket(pending)

		s.notifier.EXPECT().SendTicketConfirmation(gomock.Any(), gomock.Len(1)).Return(nil).Times(1)
		s.notifier.EXPECT().SendDonationReceipt(gomock.Any(), gomock.Len(1)).Return(nil).Times(1)

		view, err := s.uc.MarkPaid(s.ctx, pending.ID())
		s.Require().NoError(err)
		s.Equal(ticket.StatusPaid.String(), view.Status)
	})

	s.Run("success: no receipt without donation", func() {
		pending := builder.NewTicketBuilder().WithCode("PLAIN001").BuildDomain()
		s.store.PutTicket(pending)

		s.notifier.EXPECT().SendTicketConfirmation(gomock.Any(), gomock.Len(1)).Return(nil).Times(1)

		_, err := s.uc.MarkPaid(s.ctx, pending.ID())
		s.NoError(err)
	})

	s.Run("error: already paid", func() {
		paid := builder.NewTicketBuilder().WithCode("PAID0001").WithStatus(ticket.StatusPaid).BuildDomain()
		s.store.PutTicket(paid)

		_, err := s.uc.MarkPaid(s.ctx, paid.ID())
		s.ErrorIs(err, ticket.ErrNotPending)
	})
}
